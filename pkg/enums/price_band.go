package enums

// PriceBand is the MSRP display bucket used by the products page.
type PriceBand string

const (
	PriceBandBudget  PriceBand = "budget"
	PriceBandMid     PriceBand = "mid"
	PriceBandPremium PriceBand = "premium"
)

func (p PriceBand) String() string {
	return string(p)
}

// PriceBandFor buckets an MSRP into budget (<50), mid (50-100), or
// premium (>100).
func PriceBandFor(msrp float64) PriceBand {
	switch {
	case msrp < 50:
		return PriceBandBudget
	case msrp <= 100:
		return PriceBandMid
	default:
		return PriceBandPremium
	}
}
