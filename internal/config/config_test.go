package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/trendsheet/pkg/constants"
)

const sampleWorksheet = `subject:
  effectiveDate: 2024-06-01
  salesPrice: "310000"
  gla: "1500"
  siteSize: "0.25"
  siteSizeUnit: acres
  condition: Good
comparables:
  - mlsNumber: "100001"
    salePrice: "300000"
    closeDate: 2024-04-12
    gla: "1450"
    weight: 0.5
    adjustments:
      gla: "2500"
      location: "-5000"
  - mlsNumber: "100002"
    salePrice: "320000"
    gla: "1600"
    weight: 0.5
coefficients:
  glaPerSquareFoot: "50"
  agePerYear: "500"
logging:
  level: debug
output:
  format: csv
`

func writeWorksheet(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worksheet.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing worksheet fixture: %v", err)
	}
	return path
}

func TestLoadWorksheet(t *testing.T) {
	worksheet, err := LoadWorksheet(writeWorksheet(t, sampleWorksheet))
	if err != nil {
		t.Fatalf("LoadWorksheet() error = %v", err)
	}

	if worksheet.Subject.EffectiveDate != "2024-06-01" {
		t.Errorf("Subject.EffectiveDate = %q, expected 2024-06-01", worksheet.Subject.EffectiveDate)
	}
	if worksheet.Subject.SiteSizeUnit != "acres" {
		t.Errorf("Subject.SiteSizeUnit = %q, expected acres", worksheet.Subject.SiteSizeUnit)
	}
	if len(worksheet.Comparables) != 2 {
		t.Fatalf("len(Comparables) = %d, expected 2", len(worksheet.Comparables))
	}
	comp := worksheet.Comparables[0]
	if comp.MLSNumber != "100001" || comp.SalePrice != "300000" {
		t.Errorf("comp 1 = %q/%q, expected 100001/300000", comp.MLSNumber, comp.SalePrice)
	}
	// Unquoted YAML dates decode back into layout strings.
	if comp.CloseDate != "2024-04-12" {
		t.Errorf("comp 1 close date = %q, expected 2024-04-12", comp.CloseDate)
	}
	if comp.Weight == nil || *comp.Weight != 0.5 {
		t.Errorf("comp 1 weight = %v, expected 0.5", comp.Weight)
	}
	if comp.Adjustments.GLA != "2500" || comp.Adjustments.Location != "-5000" {
		t.Errorf("comp 1 adjustments = %+v", comp.Adjustments)
	}
	if worksheet.Coefficients.GLAPerSquareFoot != "50" {
		t.Errorf("Coefficients.GLAPerSquareFoot = %q, expected 50", worksheet.Coefficients.GLAPerSquareFoot)
	}
	if worksheet.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", worksheet.Logging.Level)
	}
	if worksheet.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", worksheet.Output.Format)
	}
}

// The shipped example worksheet must stay loadable; its dates are
// unquoted, which the YAML parser hands over as time.Time.
func TestLoadWorksheetExampleFile(t *testing.T) {
	worksheet, err := LoadWorksheet(filepath.Join("..", "..", constants.ExampleWorksheetFile))
	if err != nil {
		t.Fatalf("LoadWorksheet(%s) error = %v", constants.ExampleWorksheetFile, err)
	}

	if worksheet.Subject.EffectiveDate != "2024-06-01" {
		t.Errorf("Subject.EffectiveDate = %q, expected 2024-06-01", worksheet.Subject.EffectiveDate)
	}
	if len(worksheet.Comparables) != 3 {
		t.Fatalf("len(Comparables) = %d, expected 3", len(worksheet.Comparables))
	}
	if got := worksheet.Comparables[0].CloseDate; got != "2024-04-12" {
		t.Errorf("comp 1 close date = %q, expected 2024-04-12", got)
	}
	if warnings := worksheet.Validate(); len(warnings) != 0 {
		t.Errorf("example worksheet should validate cleanly, got %v", warnings)
	}
}

func TestLoadWorksheetMissingFile(t *testing.T) {
	if _, err := LoadWorksheet("nonexistent.yaml"); err == nil {
		t.Errorf("LoadWorksheet() expected error but got none")
	}
}

func TestDefaultComparable(t *testing.T) {
	tests := []struct {
		position       int
		expectedWeight float64
	}{
		{0, 0.20},
		{2, 0.20},
		{3, 0.10},
		{7, 0.10},
	}

	for _, tt := range tests {
		comp := DefaultComparable(tt.position)
		if !comp.IsIncluded() {
			t.Errorf("DefaultComparable(%d) not included", tt.position)
		}
		if comp.Condition != "Good" {
			t.Errorf("DefaultComparable(%d) condition = %q, expected Good", tt.position, comp.Condition)
		}
		if got := comp.EffectiveWeight(tt.position); got != tt.expectedWeight {
			t.Errorf("DefaultComparable(%d) weight = %v, expected %v", tt.position, got, tt.expectedWeight)
		}
	}
}

func TestIncludedAndWeightDefaults(t *testing.T) {
	var comp Comparable
	if !comp.IsIncluded() {
		t.Errorf("omitted included flag should mean included")
	}
	if got := comp.EffectiveWeight(0); got != 0.20 {
		t.Errorf("EffectiveWeight(0) = %v, expected position default 0.20", got)
	}
	if got := comp.EffectiveWeight(5); got != 0.10 {
		t.Errorf("EffectiveWeight(5) = %v, expected position default 0.10", got)
	}

	excluded := false
	comp.Included = &excluded
	if comp.IsIncluded() {
		t.Errorf("explicit false should exclude the comparable")
	}
}

func TestValidate(t *testing.T) {
	included := true
	weight := func(w float64) *float64 { return &w }

	tests := []struct {
		name        string
		worksheet   Worksheet
		wantWarning string
	}{
		{
			name: "Valid worksheet",
			worksheet: Worksheet{
				Subject: Subject{EffectiveDate: "2024-06-01", Condition: "Good", SiteSizeUnit: "sf"},
				Comparables: []Comparable{
					{Included: &included, SalePrice: "300000", Weight: weight(0.5)},
					{Included: &included, SalePrice: "310000", Weight: weight(0.5)},
				},
			},
		},
		{
			name:        "Bad effective date",
			worksheet:   Worksheet{Subject: Subject{EffectiveDate: "06/01/2024"}},
			wantWarning: "effective date",
		},
		{
			name:        "Unknown subject condition",
			worksheet:   Worksheet{Subject: Subject{Condition: "Pristine"}},
			wantWarning: "unknown condition",
		},
		{
			name:        "Unknown site size unit",
			worksheet:   Worksheet{Subject: Subject{SiteSizeUnit: "hectares"}},
			wantWarning: "site size unit",
		},
		{
			name: "Included comp without sale price",
			worksheet: Worksheet{
				Comparables: []Comparable{
					{Included: &included, Weight: weight(1.0)},
				},
			},
			wantWarning: "no sale price",
		},
		{
			name: "Weights drift from one",
			worksheet: Worksheet{
				Comparables: []Comparable{
					{Included: &included, SalePrice: "300000", Weight: weight(0.5)},
					{Included: &included, SalePrice: "310000", Weight: weight(0.3)},
				},
			},
			wantWarning: "weights sum",
		},
		{
			name: "Excluded comp weight ignored",
			worksheet: Worksheet{
				Comparables: []Comparable{
					{Included: &included, SalePrice: "300000", Weight: weight(1.0)},
					{Included: func() *bool { b := false; return &b }(), Weight: weight(5.0)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.worksheet.Validate()
			if tt.wantWarning == "" {
				if len(warnings) != 0 {
					t.Errorf("Validate() = %v, expected no warnings", warnings)
				}
				return
			}
			for _, w := range warnings {
				if strings.Contains(w, tt.wantWarning) {
					return
				}
			}
			t.Errorf("Validate() = %v, expected a warning containing %q", warnings, tt.wantWarning)
		})
	}
}
