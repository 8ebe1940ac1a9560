package reports

import "context"

const (
	customersSQL = `
SELECT
  c.customer_number,
  c.customer_name,
  c.city,
  c.country,
  (SELECT COUNT(*) FROM orders o WHERE o.customer_number = c.customer_number) AS order_count,
  COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.customer_number = c.customer_number), 0) AS total_payment
FROM customers c
ORDER BY c.customer_name
LIMIT ?
`

	topCustomersSQL = `
SELECT
  c.customer_number,
  c.customer_name,
  c.country,
  COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.customer_number = c.customer_number), 0) AS total_spent
FROM customers c
ORDER BY total_spent DESC, c.customer_number
LIMIT ?
`
)

// Customers lists customers alphabetically with their order count and
// lifetime payment total. The per-customer aggregates are correlated
// subqueries; joining orders and payments in one pass would multiply the
// payment total by the order count.
func (s *service) Customers(ctx context.Context) ([]CustomerRow, error) {
	var rows []CustomerRow
	if err := s.scan(ctx, &rows, "query customers", customersSQL, customerListCap); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopCustomers ranks customers by lifetime payments. Customers who have
// never paid rank at the bottom with 0.
func (s *service) TopCustomers(ctx context.Context) ([]TopCustomerRow, error) {
	var rows []TopCustomerRow
	if err := s.scan(ctx, &rows, "query top customers", topCustomersSQL, topCustomersCap); err != nil {
		return nil, err
	}
	return rows, nil
}
