// Package report assembles the full worksheet report: the adjustment
// grid with derived values, the value reconciliation, and the market
// trend analysis when MLS data was imported.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/trendsheet/internal/config"
	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/mls"
	"github.com/iwvelando/trendsheet/pkg/numeric"
	"github.com/iwvelando/trendsheet/pkg/reconcile"
	"github.com/iwvelando/trendsheet/pkg/trend"
	"go.uber.org/zap"
)

// CompRow is one comparable with its derived values and the advisory
// suggestions for its grid. Rows exist for every comparable regardless
// of inclusion state.
type CompRow struct {
	// Position is 1-based in the worksheet sequence.
	Position   int
	Comparable comps.Comparable
	Derived    comps.Derived
	// Suggested holds the coefficient-backed hints; only advisory line
	// items carry a value. Hints are never summed into totals.
	Suggested [comps.NumLineItems]numeric.Value
}

// Report is the complete computed output for one worksheet.
type Report struct {
	Subject        comps.Subject
	Comparables    []CompRow
	Reconciliation reconcile.Summary
	// Trend is nil when no MLS records were imported.
	Trend          *trend.Report
	MLSRecordCount int
}

// Build processes the worksheet into a report. The trend analysis uses
// the subject's effective date, falling back to the current date when
// the worksheet leaves it unset.
func Build(logger *zap.Logger, worksheet *config.Worksheet, records []mls.Record) (*Report, error) {
	return BuildWithFixedTime(logger, worksheet, records, time.Now())
}

// BuildWithFixedTime processes the worksheet with an injectable current
// time for testing. Given the same inputs it always produces the same
// report.
func BuildWithFixedTime(logger *zap.Logger, worksheet *config.Worksheet, records []mls.Record, fixedTime time.Time) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if worksheet == nil {
		return nil, fmt.Errorf("no worksheet provided")
	}

	subject := worksheet.Subject.ToCompsSubject()
	coefficients := worksheet.Coefficients.ToCompsCoefficients()
	comparables := worksheet.EngineComparables()

	result := &Report{
		Subject:        subject,
		MLSRecordCount: len(records),
	}

	for i := range comparables {
		comp := &comparables[i]
		row := CompRow{
			Position:   i + 1,
			Comparable: *comp,
			Derived:    comp.Derive(),
		}
		for item := comps.LineItem(0); item < comps.NumLineItems; item++ {
			if item.Advisory() {
				row.Suggested[item] = comps.SuggestedAdjustment(item, coefficients, subject, comp)
			}
		}
		result.Comparables = append(result.Comparables, row)

		logger.Debug(fmt.Sprintf("derived values for comp %d", row.Position),
			zap.String("op", "report.BuildWithFixedTime"),
			zap.Bool("included", comp.Included),
			zap.Float64("adjustedPrice", row.Derived.AdjustedPrice),
		)
	}

	result.Reconciliation = reconcile.Summarize(comparables)
	logger.Debug("reconciliation complete",
		zap.String("op", "report.BuildWithFixedTime"),
		zap.Int("includedComps", result.Reconciliation.IncludedCount),
		zap.Float64("totalWeight", result.Reconciliation.TotalWeight),
	)

	if len(records) > 0 {
		effectiveDate := subject.EffectiveDate
		if effectiveDate.IsZero() {
			effectiveDate = fixedTime
		}
		trendReport := trend.Analyze(records, effectiveDate)
		result.Trend = &trendReport
		logger.Debug("market trend analysis complete",
			zap.String("op", "report.BuildWithFixedTime"),
			zap.Int("totalSales", trendReport.TotalSales),
			zap.Int("activeListings", trendReport.ActiveListings),
		)
	}

	return result, nil
}
