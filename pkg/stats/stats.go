// Package stats reproduces the display statistics the dashboard client
// derives from already-fetched report rows. Chart and table code on the
// browser side recomputes these numbers; any reimplementation has to match
// them exactly.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopN returns the n items with the largest values, descending. The sort is
// stable: ties keep their input order.
func TopN[T any](items []T, n int, value func(T) float64) []T {
	if n <= 0 {
		return nil
	}
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// PercentOfTotal computes count/total*100. A zero total yields 0; rounding is
// the caller's display concern.
func PercentOfTotal(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// AverageOrderValue divides total revenue by the order count, substituting a
// denominator of 1 when there are no orders.
func AverageOrderValue(totalRevenue decimal.Decimal, totalOrders int64) decimal.Decimal {
	if totalOrders == 0 {
		totalOrders = 1
	}
	return totalRevenue.Div(decimal.NewFromInt(totalOrders))
}

// SumAmounts totals a list of monetary amounts.
func SumAmounts(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// CountBy group-counts items by the given key.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}
