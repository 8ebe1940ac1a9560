package reports

import (
	"context"

	"github.com/salesdash-io/salesdash-api/pkg/enums"
)

const (
	recentOrdersSQL = `
SELECT
  o.order_number,
  to_char(o.order_date, 'YYYY-MM-DD') AS order_date,
  to_char(o.required_date, 'YYYY-MM-DD') AS required_date,
  to_char(o.shipped_date, 'YYYY-MM-DD') AS shipped_date,
  o.status,
  o.comments,
  c.customer_name,
  COALESCE((
    SELECT SUM(od.quantity_ordered * od.price_each)
    FROM orderdetails od
    WHERE od.order_number = o.order_number
  ), 0) AS total
FROM orders o
JOIN customers c ON o.customer_number = c.customer_number
ORDER BY o.order_date DESC, o.order_number DESC
LIMIT ?
`

	orderAnalyticsSQL = `
SELECT
  COUNT(*) AS total_orders,
  COUNT(*) FILTER (WHERE o.status = ?) AS shipped_orders,
  COUNT(*) FILTER (WHERE o.status = ?) AS pending_orders,
  COUNT(*) FILTER (WHERE o.status = ?) AS cancelled_orders,
  COALESCE(ROUND((AVG(o.shipped_date - o.order_date) FILTER (WHERE o.shipped_date IS NOT NULL))::numeric, 2), 0) AS avg_fulfillment_time
FROM (SELECT * FROM orders ORDER BY order_date DESC LIMIT ?) o
`
)

// RecentOrders lists the newest orders with their customer and line-item
// total. The per-order total is a correlated subquery so an order without
// line items still appears, at 0.
func (s *service) RecentOrders(ctx context.Context, limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = DefaultRecentOrdersLimit
	}
	var rows []OrderRow
	if err := s.scan(ctx, &rows, "query recent orders", recentOrdersSQL, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// OrderAnalytics summarizes status counts and average fulfillment days over
// the most recent orders. Unshipped orders are excluded from the average,
// not counted as zero-day fulfillments.
func (s *service) OrderAnalytics(ctx context.Context, limit int) (*OrderAnalytics, error) {
	if limit <= 0 {
		limit = DefaultOrderAnalyticsLimit
	}
	var row OrderAnalytics
	err := s.scan(ctx, &row, "query order analytics", orderAnalyticsSQL,
		enums.OrderStatusShipped.String(),
		enums.OrderStatusPending.String(),
		enums.OrderStatusCancelled.String(),
		limit,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
