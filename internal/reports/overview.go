package reports

import "context"

const (
	overviewTotalsSQL = `
SELECT
  (SELECT COUNT(*) FROM employees) AS total_employees,
  (SELECT COUNT(*) FROM offices) AS total_offices
`

	avgOrderValueSQL = `
SELECT COALESCE(ROUND(AVG(order_total), 2), 0) AS avg_order_value
FROM (
  SELECT COALESCE(SUM(od.quantity_ordered * od.price_each), 0) AS order_total
  FROM orders o
  LEFT JOIN orderdetails od ON o.order_number = od.order_number
  GROUP BY o.order_number
) order_totals
`

	topOfficesSQL = `
SELECT
  o.city,
  o.country,
  COUNT(DISTINCT c.customer_number) AS customers,
  COALESCE(SUM(cp.total_paid), 0) AS revenue
FROM offices o
LEFT JOIN employees e ON o.office_code = e.office_code
LEFT JOIN customers c ON e.employee_number = c.sales_rep_employee_number
LEFT JOIN (
  SELECT customer_number, SUM(amount) AS total_paid
  FROM payments GROUP BY customer_number
) cp ON cp.customer_number = c.customer_number
GROUP BY o.office_code
ORDER BY revenue DESC
LIMIT ?
`

	officeRegionSalesSQL = `
SELECT
  o.country AS region,
  COUNT(DISTINCT c.customer_number) AS customers,
  COALESCE(SUM(co.order_count), 0) AS orders,
  COALESCE(SUM(cp.total_paid), 0) AS revenue
FROM offices o
LEFT JOIN employees e ON o.office_code = e.office_code
LEFT JOIN customers c ON e.employee_number = c.sales_rep_employee_number
LEFT JOIN (
  SELECT customer_number, COUNT(*) AS order_count
  FROM orders GROUP BY customer_number
) co ON co.customer_number = c.customer_number
LEFT JOIN (
  SELECT customer_number, SUM(amount) AS total_paid
  FROM payments GROUP BY customer_number
) cp ON cp.customer_number = c.customer_number
GROUP BY o.country
ORDER BY revenue DESC
`

	productPerformanceSQL = `
SELECT
  p.product_name,
  p.product_line,
  COUNT(od.order_number) AS times_sold,
  COALESCE(SUM(od.quantity_ordered), 0) AS total_quantity,
  COALESCE(SUM(od.quantity_ordered * od.price_each), 0) AS total_revenue
FROM products p
LEFT JOIN orderdetails od ON p.product_code = od.product_code
GROUP BY p.product_code
ORDER BY total_revenue DESC
LIMIT ?
`

	topEmployeesSQL = `
SELECT
  e.first_name || ' ' || e.last_name AS name,
  e.job_title,
  (SELECT COUNT(*) FROM customers c
     WHERE c.sales_rep_employee_number = e.employee_number) AS customers,
  (SELECT COUNT(*) FROM orders o
     JOIN customers c ON o.customer_number = c.customer_number
     WHERE c.sales_rep_employee_number = e.employee_number) AS orders,
  COALESCE((SELECT SUM(p.amount) FROM payments p
     JOIN customers c ON p.customer_number = c.customer_number
     WHERE c.sales_rep_employee_number = e.employee_number), 0) AS revenue
FROM employees e
ORDER BY revenue DESC, e.employee_number
LIMIT ?
`
)

// Overview assembles the advanced analytics page in one call. Region sales
// roll up by office country here, unlike SalesByRegion which groups by
// customer country; when every customer's rep sits in the customer's own
// country the two agree. Any sub-query failure fails the whole bundle.
func (s *service) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}

	var totals struct {
		TotalEmployees int64 `gorm:"column:total_employees"`
		TotalOffices   int64 `gorm:"column:total_offices"`
	}
	if err := s.scan(ctx, &totals, "query overview totals", overviewTotalsSQL); err != nil {
		return nil, err
	}
	out.TotalEmployees = totals.TotalEmployees
	out.TotalOffices = totals.TotalOffices

	var aov struct {
		AvgOrderValue float64 `gorm:"column:avg_order_value"`
	}
	if err := s.scan(ctx, &aov, "query average order value", avgOrderValueSQL); err != nil {
		return nil, err
	}
	out.AvgOrderValue = aov.AvgOrderValue

	if err := s.scan(ctx, &out.TopOffices, "query top offices", topOfficesSQL, overviewOfficesCap); err != nil {
		return nil, err
	}
	if err := s.scan(ctx, &out.RegionSales, "query region sales", officeRegionSalesSQL); err != nil {
		return nil, err
	}
	if err := s.scan(ctx, &out.ProductPerformance, "query product performance", productPerformanceSQL, overviewLeadersCap); err != nil {
		return nil, err
	}
	if err := s.scan(ctx, &out.EmployeePerformance, "query top employees", topEmployeesSQL, overviewLeadersCap); err != nil {
		return nil, err
	}
	return out, nil
}
