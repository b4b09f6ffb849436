// Package output provides utilities for formatting and displaying
// worksheet reports.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/trendsheet/internal/report"
	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/constants"
	"github.com/iwvelando/trendsheet/pkg/format"
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

const (
	labelWidth = 24
	cellWidth  = 14
)

// PrettyFormat outputs a human-readable rather than machine-readable
// report.
func PrettyFormat(result *report.Report) {
	printSubject(result)
	printGrid(result)
	printSuggestions(result)
	printReconciliation(result)
	printTrend(result)
}

func printSubject(result *report.Report) {
	effectiveDate := format.Unavailable
	if !result.Subject.EffectiveDate.IsZero() {
		effectiveDate = result.Subject.EffectiveDate.Format(constants.DateLayout)
	}
	fmt.Printf("--- Subject ---\n")
	fmt.Printf("Effective date: %s | Sales price: %s | GLA: %s sf\n\n",
		effectiveDate,
		format.Currency(result.Subject.SalesPrice),
		format.Number(result.Subject.GLA, 0),
	)
}

func printGrid(result *report.Report) {
	fmt.Printf("--- Sales comparison grid ---\n")

	header := pad("Line Item", labelWidth)
	separator := pad(strings.Repeat("_", 9), labelWidth)
	for _, row := range result.Comparables {
		name := fmt.Sprintf("Comp %d", row.Position)
		if !row.Comparable.Included {
			name += " (excl)"
		}
		header += " | " + pad(name, cellWidth)
		separator += " | " + pad(strings.Repeat("_", len(name)), cellWidth)
	}
	fmt.Println(header)
	fmt.Println(separator)

	printRow("Sale Price", result, func(row report.CompRow) string {
		return format.Currency(row.Comparable.SalePrice)
	})
	for item := comps.LineItem(0); item < comps.NumLineItems; item++ {
		item := item
		printRow(item.Label(), result, func(row report.CompRow) string {
			return blankOrCurrency(row.Comparable.Adjustments[item])
		})
	}
	printRow("Net Adjustment", result, func(row report.CompRow) string {
		return format.Currency(numeric.Some(row.Derived.NetAdjustment))
	})
	printRow("Gross Adjustment", result, func(row report.CompRow) string {
		return format.Currency(numeric.Some(row.Derived.GrossAdjustment))
	})
	printRow("Adjusted Price", result, func(row report.CompRow) string {
		return format.Currency(numeric.Some(row.Derived.AdjustedPrice))
	})
	printRow("Adjusted $/SF", result, func(row report.CompRow) string {
		return format.Number(row.Derived.AdjustedPricePerArea, 2)
	})
	printRow("Net Adj %", result, func(row report.CompRow) string {
		return format.Percent(row.Derived.NetAdjustmentPercent, 1)
	})
	printRow("Gross Adj %", result, func(row report.CompRow) string {
		return format.Percent(row.Derived.GrossAdjustmentPercent, 1)
	})
	printRow("Weight", result, func(row report.CompRow) string {
		return format.Number(row.Comparable.Weight, 2)
	})
	fmt.Printf("\n")
}

func printRow(label string, result *report.Report, cell func(report.CompRow) string) {
	line := pad(label, labelWidth)
	for _, row := range result.Comparables {
		line += " | " + pad(cell(row), cellWidth)
	}
	fmt.Println(line)
}

func printSuggestions(result *report.Report) {
	var lines []string
	for _, row := range result.Comparables {
		var hints []string
		for item := comps.LineItem(0); item < comps.NumLineItems; item++ {
			if suggestion := row.Suggested[item]; suggestion.Valid {
				hints = append(hints, fmt.Sprintf("%s %s", item.Label(), format.Currency(suggestion)))
			}
		}
		if len(hints) > 0 {
			lines = append(lines, fmt.Sprintf("Comp %d: %s", row.Position, strings.Join(hints, ", ")))
		}
	}
	if len(lines) == 0 {
		return
	}

	fmt.Printf("--- Suggested adjustments (entry aids only) ---\n")
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Printf("\n")
}

func printReconciliation(result *report.Report) {
	summary := result.Reconciliation

	fmt.Printf("--- Reconciliation ---\n")
	fmt.Printf("Weighted value:     %s\n", format.Currency(summary.WeightedValue))
	fmt.Printf("Average adjusted:   %s\n", format.Currency(summary.AverageAdjusted))
	fmt.Printf("Median adjusted:    %s\n", format.Currency(summary.MedianAdjusted))
	fmt.Printf("Adjusted range:     %s (%s - %s)\n",
		format.Currency(summary.Range),
		format.Currency(summary.MinAdjusted),
		format.Currency(summary.MaxAdjusted),
	)
	fmt.Printf("Adjusted $/SF:      avg %s, median %s, min %s, max %s\n",
		format.Number(summary.PricePerArea.Average, 2),
		format.Number(summary.PricePerArea.Median, 2),
		format.Number(summary.PricePerArea.Min, 2),
		format.Number(summary.PricePerArea.Max, 2),
	)
	fmt.Printf("Total weight:       %.2f across %d included comparables\n",
		summary.TotalWeight, summary.IncludedCount)
	for _, contribution := range summary.Contributions {
		fmt.Printf("  Comp %d: %s x %.2f = %s\n",
			contribution.Position,
			format.Currency(numeric.Some(contribution.AdjustedPrice)),
			contribution.Weight,
			format.Currency(numeric.Some(contribution.Contribution)),
		)
	}
	fmt.Printf("\n")
}

func printTrend(result *report.Report) {
	if result.Trend == nil {
		return
	}
	trendReport := result.Trend

	fmt.Printf("--- Market trend (%d MLS records) ---\n", result.MLSRecordCount)
	fmt.Printf("Window   | Sales | Avg $/SF    | Avg Price    | Median Price | Median DOM\n")
	fmt.Printf("______   | _____ | ________    | _________    | ____________ | __________\n")
	for _, window := range trendReport.Windows {
		fmt.Printf("%-8s | %5d | %-11s | %-12s | %-12s | %s\n",
			window.Label,
			window.Sales,
			format.Number(window.AvgPricePerArea, 0),
			format.Currency(window.AvgPrice),
			format.Currency(window.MedianPrice),
			format.Number(window.MedianDOM, 0),
		)
	}
	fmt.Printf("Trailing 12-month sales: %d\n", trendReport.TotalSales)
	fmt.Printf("Active listings:         %d\n", trendReport.ActiveListings)
	fmt.Printf("Absorption rate:         %.2f sales/month\n", trendReport.AbsorptionRate)
	fmt.Printf("Months of supply:        %s\n", format.Number(trendReport.MonthsOfSupply, 1))

	if len(trendReport.Histogram) > 0 {
		fmt.Printf("\n--- Sale price distribution ---\n")
		for _, bucket := range trendReport.Histogram {
			fmt.Printf("%s - %s | %s (%d)\n",
				format.Currency(numeric.Some(bucket.Low)),
				format.Currency(numeric.Some(bucket.High)),
				strings.Repeat("#", bucket.Count),
				bucket.Count,
			)
		}
	}
	fmt.Printf("\n")
}

// CsvFormat outputs in comma-separated value format: the grid, the
// reconciliation, and the trend table as sections separated by blank
// lines. The histogram is pretty-only.
func CsvFormat(result *report.Report) {
	fmt.Printf(`"lineItem"`)
	for _, row := range result.Comparables {
		fmt.Printf(`,"comp %d"`, row.Position)
	}
	fmt.Printf("\n")

	csvRow("included", result, func(row report.CompRow) string {
		return fmt.Sprintf("%t", row.Comparable.Included)
	})
	csvRow("salePrice", result, func(row report.CompRow) string {
		return csvValue(row.Comparable.SalePrice)
	})
	for item := comps.LineItem(0); item < comps.NumLineItems; item++ {
		item := item
		csvRow(item.Label(), result, func(row report.CompRow) string {
			return csvValue(row.Comparable.Adjustments[item])
		})
	}
	csvRow("netAdjustment", result, func(row report.CompRow) string {
		return csvValue(numeric.Some(row.Derived.NetAdjustment))
	})
	csvRow("grossAdjustment", result, func(row report.CompRow) string {
		return csvValue(numeric.Some(row.Derived.GrossAdjustment))
	})
	csvRow("adjustedPrice", result, func(row report.CompRow) string {
		return csvValue(numeric.Some(row.Derived.AdjustedPrice))
	})
	csvRow("adjustedPricePerArea", result, func(row report.CompRow) string {
		return csvValue(row.Derived.AdjustedPricePerArea)
	})
	csvRow("netAdjustmentPct", result, func(row report.CompRow) string {
		return csvFraction(row.Derived.NetAdjustmentPercent)
	})
	csvRow("grossAdjustmentPct", result, func(row report.CompRow) string {
		return csvFraction(row.Derived.GrossAdjustmentPercent)
	})
	csvRow("weight", result, func(row report.CompRow) string {
		return csvValue(row.Comparable.Weight)
	})

	summary := result.Reconciliation
	fmt.Printf("\n")
	fmt.Printf("\"weightedValue\",\"%s\"\n", csvValue(summary.WeightedValue))
	fmt.Printf("\"averageAdjusted\",\"%s\"\n", csvValue(summary.AverageAdjusted))
	fmt.Printf("\"medianAdjusted\",\"%s\"\n", csvValue(summary.MedianAdjusted))
	fmt.Printf("\"minAdjusted\",\"%s\"\n", csvValue(summary.MinAdjusted))
	fmt.Printf("\"maxAdjusted\",\"%s\"\n", csvValue(summary.MaxAdjusted))
	fmt.Printf("\"adjustedRange\",\"%s\"\n", csvValue(summary.Range))
	fmt.Printf("\"totalWeight\",\"%.2f\"\n", summary.TotalWeight)
	fmt.Printf("\"includedComps\",\"%d\"\n", summary.IncludedCount)

	if result.Trend == nil {
		return
	}
	trendReport := result.Trend
	fmt.Printf("\n")
	fmt.Printf("\"mlsRecords\",\"%d\"\n", result.MLSRecordCount)
	fmt.Printf("\"window\",\"sales\",\"avgPricePerArea\",\"avgPrice\",\"medianPrice\",\"medianDOM\"\n")
	for _, window := range trendReport.Windows {
		fmt.Printf("\"%s\",\"%d\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			window.Label,
			window.Sales,
			csvValue(window.AvgPricePerArea),
			csvValue(window.AvgPrice),
			csvValue(window.MedianPrice),
			csvValue(window.MedianDOM),
		)
	}
	fmt.Printf("\"trailingSales\",\"%d\"\n", trendReport.TotalSales)
	fmt.Printf("\"activeListings\",\"%d\"\n", trendReport.ActiveListings)
	fmt.Printf("\"absorptionRate\",\"%.2f\"\n", trendReport.AbsorptionRate)
	fmt.Printf("\"monthsOfSupply\",\"%s\"\n", csvValue(trendReport.MonthsOfSupply))
}

func csvRow(label string, result *report.Report, cell func(report.CompRow) string) {
	fmt.Printf(`"%s"`, label)
	for _, row := range result.Comparables {
		fmt.Printf(`,"%s"`, cell(row))
	}
	fmt.Printf("\n")
}

// csvValue renders a raw value with no separators; unavailable renders
// as an empty cell.
func csvValue(v numeric.Value) string {
	if !v.Valid {
		return ""
	}
	return fmt.Sprintf("%.2f", v.Float64)
}

// csvFraction renders a ratio with enough precision to reconstruct a
// percentage.
func csvFraction(v numeric.Value) string {
	if !v.Valid {
		return ""
	}
	return fmt.Sprintf("%.4f", v.Float64)
}

func blankOrCurrency(v numeric.Value) string {
	if !v.Valid {
		return ""
	}
	return format.Currency(v)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
