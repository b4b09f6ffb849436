// Package trend computes quarterly market statistics, absorption, and
// the sale-price distribution from an imported MLS collection.
package trend

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/trendsheet/pkg/constants"
	"github.com/iwvelando/trendsheet/pkg/datetime"
	"github.com/iwvelando/trendsheet/pkg/mls"
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// soldKeywords and activeKeywords classify records from free-text
// status values; MLS feeds do not share a status vocabulary.
var (
	soldKeywords   = []string{"s"}
	activeKeywords = []string{"act", "a"}
)

// IsSale reports whether the record is a closed sale: a sold-indicating
// status plus a sale price.
func IsSale(r mls.Record) bool {
	return r.SalePrice != "" && statusMatches(r.Status, soldKeywords)
}

// IsActiveListing reports whether the record is an active listing.
func IsActiveListing(r mls.Record) bool {
	return statusMatches(r.Status, activeKeywords)
}

func statusMatches(status string, keywords []string) bool {
	s := strings.ToLower(status)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// WindowStats holds one trailing 3-month window, [Start, End).
type WindowStats struct {
	Label           string
	Start           time.Time
	End             time.Time
	Sales           int
	AvgPricePerArea numeric.Value
	AvgPrice        numeric.Value
	MedianPrice     numeric.Value
	MedianDOM       numeric.Value
}

// Bucket is one bar of the sale-price distribution, [Low, High).
type Bucket struct {
	Low   float64
	High  float64
	Count int
}

// Report is the full market-trend analysis for one effective date.
type Report struct {
	Windows []WindowStats
	// TotalSales counts closed sales within the trailing 12 months.
	TotalSales     int
	ActiveListings int
	// AbsorptionRate is sales per month over the trailing 12 months;
	// zero sales yield a rate of zero, never unavailable.
	AbsorptionRate float64
	// MonthsOfSupply is unavailable when either the trailing sale
	// count or the active-listing count is zero.
	MonthsOfSupply numeric.Value
	Histogram      []Bucket
}

// Analyze buckets closed sales into four trailing quarterly windows
// ending at the effective date and derives the absorption and
// distribution statistics. It is a pure function over its inputs.
func Analyze(records []mls.Record, effectiveDate time.Time) Report {
	var sales []mls.Record
	activeListings := 0
	for _, r := range records {
		if IsSale(r) {
			sales = append(sales, r)
		}
		if IsActiveListing(r) {
			activeListings++
		}
	}

	report := Report{ActiveListings: activeListings}

	for w := 0; w < constants.TrendWindowCount; w++ {
		end := datetime.MonthsBefore(effectiveDate, w*constants.MonthsPerWindow)
		start := datetime.MonthsBefore(effectiveDate, (w+1)*constants.MonthsPerWindow)
		report.Windows = append(report.Windows, windowStats(sales, start, end, windowLabel(w)))
	}

	horizon := datetime.MonthsBefore(effectiveDate, constants.MonthsPerYear)
	for _, s := range sales {
		closed, ok := datetime.ParseMLSDate(s.CloseDate)
		if ok && !closed.Before(horizon) && closed.Before(effectiveDate) {
			report.TotalSales++
		}
	}

	report.AbsorptionRate = float64(report.TotalSales) / constants.MonthsPerYear
	if report.TotalSales > 0 && activeListings > 0 {
		report.MonthsOfSupply = numeric.Some(float64(activeListings) / report.AbsorptionRate)
	}

	report.Histogram = histogram(sales)
	return report
}

func windowLabel(w int) string {
	if w == 0 {
		return fmt.Sprintf("0-%d Mo", constants.MonthsPerWindow)
	}
	return fmt.Sprintf("%d-%d Mo", w*constants.MonthsPerWindow+1, (w+1)*constants.MonthsPerWindow)
}

// windowStats aggregates the sales closing within [start, end). Each
// statistic filters to present values independently and is rounded to
// whole units for display.
func windowStats(sales []mls.Record, start, end time.Time, label string) WindowStats {
	stats := WindowStats{Label: label, Start: start, End: end}

	var prices, pricesPerArea, doms []numeric.Value
	for _, s := range sales {
		closed, ok := datetime.ParseMLSDate(s.CloseDate)
		if !ok || closed.Before(start) || !closed.Before(end) {
			continue
		}
		stats.Sales++

		price := numeric.Parse(s.SalePrice)
		if price.Valid {
			prices = append(prices, price)
		}
		if v := numeric.SafeDivide(price, numeric.Parse(s.LivingArea)); v.Valid {
			pricesPerArea = append(pricesPerArea, v)
		}
		if dom := numeric.Parse(s.DaysOnMarket); dom.Valid {
			doms = append(doms, dom)
		}
	}

	stats.AvgPricePerArea = numeric.Round(numeric.Mean(pricesPerArea))
	stats.AvgPrice = numeric.Round(numeric.Mean(prices))
	stats.MedianPrice = numeric.Round(numeric.Median(prices))
	stats.MedianDOM = numeric.Round(numeric.Median(doms))
	return stats
}

// histogram partitions all sale prices into equal-width buckets
// spanning [min, max]. The maximum-price sale is clamped into the last
// bucket; identical prices collapse to a span of 1 so the width never
// divides by zero.
func histogram(sales []mls.Record) []Bucket {
	var prices []float64
	for _, s := range sales {
		if p := numeric.Parse(s.SalePrice); p.Valid {
			prices = append(prices, p.Float64)
		}
	}
	if len(prices) == 0 {
		return nil
	}

	min, max := prices[0], prices[0]
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	span := max - min
	if span == 0 {
		span = 1
	}
	width := span / constants.HistogramBuckets

	buckets := make([]Bucket, constants.HistogramBuckets)
	for i := range buckets {
		buckets[i].Low = min + float64(i)*width
		buckets[i].High = min + float64(i+1)*width
	}
	for _, p := range prices {
		idx := int((p - min) / width)
		if idx >= constants.HistogramBuckets {
			idx = constants.HistogramBuckets - 1
		}
		buckets[idx].Count++
	}
	return buckets
}
