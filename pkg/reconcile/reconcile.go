// Package reconcile blends the adjusted prices of the included
// comparables into a single indicated value plus dispersion statistics.
package reconcile

import (
	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// Contribution is one included comparable's share of the weighted value.
type Contribution struct {
	// Position is the 1-based position of the comparable in the full
	// sequence, recomputed from current order.
	Position      int
	AdjustedPrice float64
	Weight        float64
	Contribution  float64
}

// Spread holds min/max/average/median over one per-comparable ratio.
type Spread struct {
	Min     numeric.Value
	Max     numeric.Value
	Average numeric.Value
	Median  numeric.Value
}

// Summary is the reconciliation over the included comparables. All
// fields are derived; Summarize never mutates its input.
type Summary struct {
	WeightedValue   numeric.Value
	AverageAdjusted numeric.Value
	MedianAdjusted  numeric.Value
	MinAdjusted     numeric.Value
	MaxAdjusted     numeric.Value
	Range           numeric.Value
	PricePerArea    Spread
	TotalWeight     float64
	IncludedCount   int
	Contributions   []Contribution
}

// Summarize computes the reconciliation statistics over the comparables
// flagged as included. Weights are not normalized or validated; the
// weighted value divides by their actual total, and is unavailable only
// when that total is exactly zero.
func Summarize(all []comps.Comparable) Summary {
	var summary Summary

	var weightedSum float64
	var adjustedPrices []numeric.Value
	var pricesPerArea []numeric.Value

	for i := range all {
		c := &all[i]
		if !c.Included {
			continue
		}
		summary.IncludedCount++

		adjusted := c.AdjustedPrice()
		weight := c.Weight.Or(0)
		summary.TotalWeight += weight
		weightedSum += adjusted * weight
		summary.Contributions = append(summary.Contributions, Contribution{
			Position:      i + 1,
			AdjustedPrice: adjusted,
			Weight:        weight,
			Contribution:  adjusted * weight,
		})

		// Comparables with a non-positive adjusted price (typically a
		// missing sale price) are excluded from the dispersion
		// statistics but still participate in the weighted value.
		if adjusted > 0 {
			adjustedPrices = append(adjustedPrices, numeric.Some(adjusted))
		}

		if adjusted != 0 {
			if v := numeric.SafeDivide(numeric.Some(adjusted), c.GLA); v.Valid {
				pricesPerArea = append(pricesPerArea, v)
			}
		}
	}

	if summary.TotalWeight != 0 {
		summary.WeightedValue = numeric.Some(weightedSum / summary.TotalWeight)
	}

	summary.AverageAdjusted = numeric.Mean(adjustedPrices)
	summary.MedianAdjusted = numeric.Median(adjustedPrices)
	summary.MinAdjusted = numeric.Min(adjustedPrices)
	summary.MaxAdjusted = numeric.Max(adjustedPrices)
	if summary.MinAdjusted.Valid && summary.MaxAdjusted.Valid {
		summary.Range = numeric.Some(summary.MaxAdjusted.Float64 - summary.MinAdjusted.Float64)
	}

	summary.PricePerArea = Spread{
		Min:     numeric.Min(pricesPerArea),
		Max:     numeric.Max(pricesPerArea),
		Average: numeric.Mean(pricesPerArea),
		Median:  numeric.Median(pricesPerArea),
	}

	return summary
}
