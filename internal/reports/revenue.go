package reports

import "context"

const (
	dailyRevenueSQL = `
SELECT
  to_char(payment_date, 'YYYY-MM-DD') AS date,
  SUM(amount) AS revenue
FROM payments
GROUP BY payment_date
ORDER BY payment_date DESC
LIMIT ?
`

	monthlyRevenueSQL = `
SELECT
  to_char(payment_date, 'YYYY-MM') AS month,
  SUM(amount) AS revenue
FROM payments
GROUP BY to_char(payment_date, 'YYYY-MM')
ORDER BY month DESC
LIMIT ?
`
)

// DailyRevenue sums payments per day over the most recent N days that saw
// any payment. The query selects newest-first to apply the limit, then the
// slice is reversed so callers get ascending chronological order.
func (s *service) DailyRevenue(ctx context.Context, days int) ([]RevenuePoint, error) {
	if days <= 0 {
		days = DefaultDailyRevenueDays
	}
	var rows []RevenuePoint
	if err := s.scan(ctx, &rows, "query daily revenue", dailyRevenueSQL, days); err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// MonthlyRevenue sums payments per calendar month for the most recent
// twelve months with activity, newest first.
func (s *service) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenuePoint, error) {
	var rows []MonthlyRevenuePoint
	if err := s.scan(ctx, &rows, "query monthly revenue", monthlyRevenueSQL, monthlyRevenueMonths); err != nil {
		return nil, err
	}
	return rows, nil
}
