package reports

import "context"

const (
	inventoryAnalysisSQL = `
SELECT
  p.product_line,
  COUNT(*) AS product_count,
  SUM(p.quantity_in_stock) AS total_quantity,
  AVG(p.quantity_in_stock) AS avg_quantity,
  SUM(p.quantity_in_stock * p.buy_price) AS total_value
FROM products p
GROUP BY p.product_line
ORDER BY total_value DESC
`

	productLinesSQL = `
SELECT
  pl.product_line,
  COUNT(p.product_code) AS product_count,
  COALESCE(SUM(p.quantity_in_stock), 0) AS total_stock
FROM productlines pl
LEFT JOIN products p ON pl.product_line = p.product_line
GROUP BY pl.product_line
ORDER BY pl.product_line
`
)

// InventoryAnalysis aggregates stock counts and inventory value per product
// line, most valuable line first. Value is priced at acquisition cost, not
// MSRP. Lines with no products do not appear.
func (s *service) InventoryAnalysis(ctx context.Context) ([]InventoryLineRow, error) {
	var rows []InventoryLineRow
	if err := s.scan(ctx, &rows, "query inventory analysis", inventoryAnalysisSQL); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductLines lists every catalog line with its product count and total
// stock, including lines that currently carry no products.
func (s *service) ProductLines(ctx context.Context) ([]ProductLineRow, error) {
	var rows []ProductLineRow
	if err := s.scan(ctx, &rows, "query product lines", productLinesSQL); err != nil {
		return nil, err
	}
	return rows, nil
}
