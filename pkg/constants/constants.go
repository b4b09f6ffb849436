// Package constants provides shared constants for the trendsheet application.
package constants

// DateLayout is the format expected for dates in worksheet files and is
// also the output date format.
const DateLayout = "2006-01-02"

// Market trend constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MonthsPerWindow is the span of one quarterly trend window
	MonthsPerWindow = 3

	// TrendWindowCount is the number of trailing quarterly windows
	TrendWindowCount = 4

	// HistogramBuckets is the number of equal-width price buckets
	HistogramBuckets = 10
)

// Comparable defaults
const (
	// PrimaryCompWeight is the default weight for the first comparables
	PrimaryCompWeight = 0.20

	// SecondaryCompWeight is the default weight beyond the primary set
	SecondaryCompWeight = 0.10

	// PrimaryCompCount is how many comparables receive the primary weight
	PrimaryCompCount = 3

	// WeightSumTolerance is how far included weights may drift from 1.0
	// before validation flags them
	WeightSumTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultWorksheetFile is the default worksheet file name
	DefaultWorksheetFile = "worksheet.yaml"

	// ExampleWorksheetFile is the example worksheet file name
	ExampleWorksheetFile = "worksheet.yaml.example"
)
