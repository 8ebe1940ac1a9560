package reports

import "context"

const (
	productCutoffSQL = `
SELECT COALESCE(to_char(MIN(order_date), 'YYYY-MM-DD'), '1900-01-01') AS cutoff
FROM (SELECT order_date FROM orders ORDER BY order_date DESC LIMIT ?) recent
`

	productsSQL = `
SELECT
  p.product_code,
  p.product_name,
  p.product_line,
  p.quantity_in_stock,
  p.buy_price,
  p.msrp,
  COUNT(DISTINCT o.order_number) AS order_count
FROM products p
LEFT JOIN orderdetails od ON p.product_code = od.product_code
LEFT JOIN orders o ON od.order_number = o.order_number AND o.order_date >= ?
GROUP BY p.product_code
ORDER BY order_count DESC, p.product_code
LIMIT ?
`
)

// Products ranks products by how many recent orders included them. Recency
// is a window of the N most recent orders: the oldest order date inside the
// window becomes the cutoff, and only orders on or after it count. With no
// orders at all the cutoff falls back far enough that nothing is excluded.
// Products never ordered still appear, with a count of 0.
func (s *service) Products(ctx context.Context, recentOrders int) ([]ProductRow, error) {
	if recentOrders <= 0 {
		recentOrders = DefaultProductWindowLimit
	}
	var cutoff struct {
		Cutoff string `gorm:"column:cutoff"`
	}
	if err := s.scan(ctx, &cutoff, "query product cutoff", productCutoffSQL, recentOrders); err != nil {
		return nil, err
	}
	var rows []ProductRow
	if err := s.scan(ctx, &rows, "query products", productsSQL, cutoff.Cutoff, productListCap); err != nil {
		return nil, err
	}
	return rows, nil
}
