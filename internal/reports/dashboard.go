package reports

import "context"

const summarySQL = `
SELECT
  (SELECT COUNT(*) FROM customers) AS total_customers,
  (SELECT COUNT(*) FROM orders) AS total_orders,
  (SELECT COALESCE(SUM(amount), 0) FROM payments) AS total_revenue,
  (SELECT COUNT(*) FROM products) AS total_products
`

// Summary returns the headline counters for the dashboard landing page.
// Scalar subselects keep the four counts independent; an empty database
// yields zeros rather than nulls.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	var row Summary
	if err := s.scan(ctx, &row, "query dashboard summary", summarySQL); err != nil {
		return nil, err
	}
	return &row, nil
}
