package reconcile

import (
	"math"
	"testing"

	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

func comparable(price, gla, weight float64, included bool) comps.Comparable {
	c := comps.Comparable{Included: included}
	if price != 0 {
		c.SalePrice = numeric.Some(price)
	}
	if gla != 0 {
		c.GLA = numeric.Some(gla)
	}
	c.Weight = numeric.Some(weight)
	return c
}

func TestWeightedValue(t *testing.T) {
	tests := []struct {
		name        string
		comparables []comps.Comparable
		valid       bool
		expected    float64
	}{
		{
			name: "Weights summing to one",
			comparables: []comps.Comparable{
				comparable(300000, 1500, 0.5, true),
				comparable(320000, 1600, 0.5, true),
			},
			valid:    true,
			expected: 310000,
		},
		{
			name: "Weights not summing to one still normalize",
			comparables: []comps.Comparable{
				comparable(300000, 1500, 2, true),
				comparable(320000, 1600, 2, true),
			},
			valid:    true,
			expected: 310000,
		},
		{
			name: "Zero total weight is unavailable",
			comparables: []comps.Comparable{
				comparable(300000, 1500, 0, true),
				comparable(320000, 1600, 0, true),
			},
			valid: false,
		},
		{
			name:        "No included comparables",
			comparables: nil,
			valid:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.comparables)
			if summary.WeightedValue.Valid != tt.valid {
				t.Fatalf("WeightedValue.Valid = %v, expected %v", summary.WeightedValue.Valid, tt.valid)
			}
			if tt.valid && math.Abs(summary.WeightedValue.Float64-tt.expected) > 1e-9 {
				t.Errorf("WeightedValue = %v, expected %v", summary.WeightedValue.Float64, tt.expected)
			}
		})
	}
}

func TestExclusionIsolation(t *testing.T) {
	all := []comps.Comparable{
		comparable(300000, 1500, 0.4, true),
		comparable(900000, 1500, 0.4, true), // outlier
		comparable(310000, 1550, 0.2, true),
	}

	before := Summarize(all)
	if before.IncludedCount != 3 {
		t.Fatalf("IncludedCount = %d, expected 3", before.IncludedCount)
	}

	// Excluding the outlier removes it from every aggregate but leaves
	// the other comparables' derived values and positions untouched.
	all[1].Included = false
	after := Summarize(all)

	if after.IncludedCount != 2 {
		t.Fatalf("IncludedCount after exclusion = %d, expected 2", after.IncludedCount)
	}
	expectedWeighted := (300000*0.4 + 310000*0.2) / 0.6
	if math.Abs(after.WeightedValue.Float64-expectedWeighted) > 1e-9 {
		t.Errorf("WeightedValue = %v, expected %v", after.WeightedValue.Float64, expectedWeighted)
	}
	if after.MaxAdjusted.Float64 != 310000 {
		t.Errorf("MaxAdjusted = %v, expected 310000", after.MaxAdjusted.Float64)
	}

	positions := []int{after.Contributions[0].Position, after.Contributions[1].Position}
	if positions[0] != 1 || positions[1] != 3 {
		t.Errorf("contribution positions = %v, expected [1 3]", positions)
	}
	if after.Contributions[0].AdjustedPrice != before.Contributions[0].AdjustedPrice {
		t.Errorf("excluding one comparable changed another's adjusted price")
	}
}

func TestDispersionSkipsNonPositivePrices(t *testing.T) {
	all := []comps.Comparable{
		comparable(300000, 1500, 0.5, true),
		comparable(0, 1600, 0.5, true), // no sale price: adjusted price 0
	}

	summary := Summarize(all)
	if !summary.AverageAdjusted.Valid || summary.AverageAdjusted.Float64 != 300000 {
		t.Errorf("AverageAdjusted = %+v, expected 300000", summary.AverageAdjusted)
	}
	if !summary.MedianAdjusted.Valid || summary.MedianAdjusted.Float64 != 300000 {
		t.Errorf("MedianAdjusted = %+v, expected 300000", summary.MedianAdjusted)
	}
	if summary.Range.Float64 != 0 || !summary.Range.Valid {
		t.Errorf("Range = %+v, expected 0", summary.Range)
	}

	// The zero-priced comparable still drags the weighted value down.
	if summary.WeightedValue.Float64 != 150000 {
		t.Errorf("WeightedValue = %v, expected 150000", summary.WeightedValue.Float64)
	}
}

func TestRangeUnavailableOnEmptySet(t *testing.T) {
	summary := Summarize([]comps.Comparable{comparable(0, 1500, 0.5, true)})
	if summary.Range.Valid {
		t.Errorf("Range should be unavailable with no positive adjusted prices")
	}
	if summary.MinAdjusted.Valid || summary.MaxAdjusted.Valid {
		t.Errorf("Min/MaxAdjusted should be unavailable with no positive adjusted prices")
	}
}

func TestPricePerAreaSpread(t *testing.T) {
	noGLA := comparable(400000, 0, 0.2, true)
	all := []comps.Comparable{
		comparable(300000, 1500, 0.4, true), // 200/sf
		comparable(330000, 1500, 0.4, true), // 220/sf
		noGLA,                               // skipped: no living area
	}

	spread := Summarize(all).PricePerArea
	if !spread.Min.Valid || spread.Min.Float64 != 200 {
		t.Errorf("PricePerArea.Min = %+v, expected 200", spread.Min)
	}
	if spread.Max.Float64 != 220 {
		t.Errorf("PricePerArea.Max = %v, expected 220", spread.Max.Float64)
	}
	if spread.Average.Float64 != 210 {
		t.Errorf("PricePerArea.Average = %v, expected 210", spread.Average.Float64)
	}
	if spread.Median.Float64 != 210 {
		t.Errorf("PricePerArea.Median = %v, expected 210", spread.Median.Float64)
	}
}

func TestAdjustmentsFlowIntoSummary(t *testing.T) {
	c := comparable(300000, 1500, 1, true)
	c.Adjustments[comps.GrossLivingArea] = numeric.Some(15000)
	summary := Summarize([]comps.Comparable{c})

	if summary.WeightedValue.Float64 != 315000 {
		t.Errorf("WeightedValue = %v, expected 315000", summary.WeightedValue.Float64)
	}
	if summary.PricePerArea.Average.Float64 != 210 {
		t.Errorf("PricePerArea.Average = %v, expected 210", summary.PricePerArea.Average.Float64)
	}
}
