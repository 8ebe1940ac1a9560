package reports

import "context"

const (
	officesSQL = `
SELECT
  o.office_code,
  o.city,
  o.country,
  o.postal_code,
  o.phone,
  COUNT(DISTINCT e.employee_number) AS employee_count,
  COUNT(DISTINCT c.customer_number) AS customer_count
FROM offices o
LEFT JOIN employees e ON o.office_code = e.office_code
LEFT JOIN customers c ON e.employee_number = c.sales_rep_employee_number
GROUP BY o.office_code
ORDER BY o.country, o.city
`

	salesByRegionSQL = `
SELECT
  c.country,
  COUNT(DISTINCT c.customer_number) AS customers,
  COALESCE(SUM(co.order_count), 0) AS orders,
  COALESCE(SUM(cp.total_paid), 0) AS revenue
FROM customers c
LEFT JOIN (
  SELECT customer_number, COUNT(*) AS order_count
  FROM orders GROUP BY customer_number
) co ON co.customer_number = c.customer_number
LEFT JOIN (
  SELECT customer_number, SUM(amount) AS total_paid
  FROM payments GROUP BY customer_number
) cp ON cp.customer_number = c.customer_number
GROUP BY c.country
ORDER BY revenue DESC
`
)

// Offices lists every office with distinct employee and customer counts.
// Counting DISTINCT keys keeps the two counts independent of each other
// despite the chained joins.
func (s *service) Offices(ctx context.Context) ([]OfficeRow, error) {
	var rows []OfficeRow
	if err := s.scan(ctx, &rows, "query offices", officesSQL); err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByRegion aggregates customers, orders, and payment revenue per
// customer country. Orders and payments are pre-aggregated per customer
// before the rollup so neither multiplies the other.
func (s *service) SalesByRegion(ctx context.Context) ([]RegionSalesRow, error) {
	var rows []RegionSalesRow
	if err := s.scan(ctx, &rows, "query sales by region", salesByRegionSQL); err != nil {
		return nil, err
	}
	return rows, nil
}
