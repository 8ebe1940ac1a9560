package enums

// StockLevel is the derived inventory classification; it is never stored.
type StockLevel string

const (
	StockLevelLow    StockLevel = "low"
	StockLevelMedium StockLevel = "medium"
	StockLevelHigh   StockLevel = "high"
)

func (s StockLevel) String() string {
	return string(s)
}

// StockLevelFor buckets a quantity-in-stock into low (<=50), medium (51-100),
// or high (>100). Quantities are never negative in the store.
func StockLevelFor(quantityInStock int) StockLevel {
	switch {
	case quantityInStock <= 50:
		return StockLevelLow
	case quantityInStock <= 100:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}
