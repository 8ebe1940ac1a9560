package reports

import "context"

const (
	employeesSQL = `
SELECT
  e.employee_number,
  e.first_name,
  e.last_name,
  e.job_title,
  e.reports_to,
  o.office_code,
  o.city,
  o.country,
  COUNT(DISTINCT c.customer_number) AS customers_managed
FROM employees e
JOIN offices o ON e.office_code = o.office_code
LEFT JOIN customers c ON e.employee_number = c.sales_rep_employee_number
GROUP BY e.employee_number, o.office_code
ORDER BY e.first_name, e.last_name
`

	employeePerformanceSQL = `
SELECT
  e.first_name || ' ' || e.last_name AS name,
  e.job_title,
  e.employee_number,
  (SELECT COUNT(*) FROM customers c
     WHERE c.sales_rep_employee_number = e.employee_number) AS customers_count,
  (SELECT COUNT(*) FROM orders o
     JOIN customers c ON o.customer_number = c.customer_number
     WHERE c.sales_rep_employee_number = e.employee_number) AS orders_count,
  COALESCE((SELECT SUM(p.amount) FROM payments p
     JOIN customers c ON p.customer_number = c.customer_number
     WHERE c.sales_rep_employee_number = e.employee_number), 0) AS total_revenue
FROM employees e
ORDER BY total_revenue DESC, e.employee_number
`
)

// Employees lists the workforce with office placement and the number of
// customers each rep manages. Non-rep employees show 0.
func (s *service) Employees(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	if err := s.scan(ctx, &rows, "query employees", employeesSQL); err != nil {
		return nil, err
	}
	return rows, nil
}

// EmployeePerformance ranks every employee by revenue attributed through
// their customers' payments. The three aggregates are independent
// correlated subqueries so order counts never inflate payment totals.
func (s *service) EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error) {
	var rows []EmployeePerformanceRow
	if err := s.scan(ctx, &rows, "query employee performance", employeePerformanceSQL); err != nil {
		return nil, err
	}
	return rows, nil
}
