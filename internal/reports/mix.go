package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salesdash-io/salesdash-api/pkg/enums"
	"github.com/salesdash-io/salesdash-api/pkg/stats"
)

const productMixSQL = `
SELECT quantity_in_stock, msrp
FROM products
`

type MixBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ProductMix is the catalog distribution panel: how products spread across
// stock levels and MSRP price bands, plus the average list price.
type ProductMix struct {
	TotalProducts int         `json:"totalProducts"`
	AverageMSRP   float64     `json:"averageMSRP"`
	StockLevels   []MixBucket `json:"stockLevels"`
	PriceBands    []MixBucket `json:"priceBands"`
}

type productMixRow struct {
	QuantityInStock int     `gorm:"column:quantity_in_stock"`
	MSRP            float64 `gorm:"column:msrp"`
}

// ProductMix buckets the whole catalog in Go. The buckets mirror what the
// dashboard's product page renders, so the math here has to match the
// client's exactly.
func (s *service) ProductMix(ctx context.Context) (*ProductMix, error) {
	var rows []productMixRow
	if err := s.scan(ctx, &rows, "query product mix", productMixSQL); err != nil {
		return nil, err
	}

	prices := make([]decimal.Decimal, 0, len(rows))
	for _, r := range rows {
		prices = append(prices, decimal.NewFromFloat(r.MSRP))
	}
	avg := stats.AverageOrderValue(stats.SumAmounts(prices), int64(len(rows)))

	stockCounts := stats.CountBy(rows, func(r productMixRow) string {
		return enums.StockLevelFor(r.QuantityInStock).String()
	})
	priceCounts := stats.CountBy(rows, func(r productMixRow) string {
		return enums.PriceBandFor(r.MSRP).String()
	})

	mix := &ProductMix{
		TotalProducts: len(rows),
		AverageMSRP:   avg.Round(2).InexactFloat64(),
		StockLevels:   buckets(stockCounts, len(rows), enums.StockLevelLow.String(), enums.StockLevelMedium.String(), enums.StockLevelHigh.String()),
		PriceBands:    buckets(priceCounts, len(rows), enums.PriceBandBudget.String(), enums.PriceBandMid.String(), enums.PriceBandPremium.String()),
	}
	return mix, nil
}

// buckets renders counts in band order, then busiest first. Empty bands stay
// in the payload so the chart always has its full axis.
func buckets(counts map[string]int, total int, labels ...string) []MixBucket {
	out := make([]MixBucket, 0, len(labels))
	for _, label := range labels {
		out = append(out, MixBucket{
			Label:   label,
			Count:   counts[label],
			Percent: stats.PercentOfTotal(counts[label], total),
		})
	}
	return stats.TopN(out, len(out), func(b MixBucket) float64 {
		return float64(b.Count)
	})
}
