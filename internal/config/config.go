// Package config defines the worksheet data structures and includes
// functions for loading, defaulting, and validating the worksheet.
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DateLayout is the format expected for dates in worksheet files and is
// also the output date format.
const DateLayout = constants.DateLayout

// Worksheet holds all configuration for one appraisal worksheet.
type Worksheet struct {
	Subject      Subject
	Comparables  []Comparable
	Coefficients Coefficients  `yaml:"coefficients,omitempty"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Subject describes the property being appraised. Numeric fields are
// strings so a blank cell stays distinguishable from zero.
type Subject struct {
	EffectiveDate          string
	SalesPrice             string
	SiteSize               string
	SiteSizeUnit           string // "sf" or "acres"
	YearBuilt              string
	Bedrooms               string
	FullBaths              string
	GLA                    string
	BasementFinishedArea   string
	BasementUnfinishedArea string
	BasementBaths          string
	Garage                 string
	Carport                string
	Condition              string
	DesignStyle            string
	Stories                string
	Pool                   bool
}

// Comparable is one comparable sale as entered in the worksheet.
// Included and Weight are pointers so an omitted entry is told apart
// from an explicit false or zero; omitted means included with the
// position-default weight.
type Comparable struct {
	Included  *bool
	MLSNumber string
	Address   string

	SalePrice    string
	ListPrice    string
	ContractDate string
	CloseDate    string
	DaysOnMarket string
	Concessions  string

	GLA                    string
	YearBuilt              string
	Bedrooms               string
	FullBaths              string
	BasementFinishedArea   string
	BasementUnfinishedArea string
	BasementBaths          string
	Garage                 string
	Carport                string
	SiteSize               string
	SiteSizeUnit           string
	Stories                string
	Condition              string
	DesignStyle            string
	Pool                   bool

	Weight      *float64
	Adjustments Adjustments
}

// Adjustments holds the manual adjustment grid entries for one
// comparable, one per fixed line item. Blank means no adjustment.
type Adjustments struct {
	SaleType             string
	FinancingConcessions string
	DateOfSale           string
	Location             string
	Ownership            string
	LotSize              string
	View                 string
	DesignStyle          string
	Quality              string
	Age                  string
	Condition            string
	Rooms                string
	Bedrooms             string
	Baths                string
	GLA                  string
	BasementFinished     string
	BasementUnfinished   string
	Functional           string
	HeatingCooling       string
	EnergyEfficiency     string
	VehicleStorage       string
	PatioDeck            string
}

// Coefficients holds the advisory adjustment rates used only to suggest
// line-item values; a blank rate disables that suggestion.
type Coefficients struct {
	GLAPerSquareFoot      string `yaml:"glaPerSquareFoot,omitempty"`
	BasementFinishedPct   string `yaml:"basementFinishedPct,omitempty"`
	BasementUnfinishedPct string `yaml:"basementUnfinishedPct,omitempty"`
	BathContributionPct   string `yaml:"bathContributionPct,omitempty"`
	GaragePerUnit         string `yaml:"garagePerUnit,omitempty"`
	CarportPerUnit        string `yaml:"carportPerUnit,omitempty"`
	AgePerYear            string `yaml:"agePerYear,omitempty"`
	BedroomPerUnit        string `yaml:"bedroomPerUnit,omitempty"`
	LotPerSquareFoot      string `yaml:"lotPerSquareFoot,omitempty"`
}

// LoadWorksheet takes a file path as input and loads the YAML-formatted
// worksheet there.
func LoadWorksheet(path string) (*Worksheet, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading worksheet file, %s", err)
	}

	var worksheet Worksheet
	err := viper.Unmarshal(&worksheet, viper.DecodeHook(dateToStringHook()))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &worksheet, nil
}

// dateToStringHook converts dates the YAML parser already turned into
// time.Time back into layout strings. Unquoted ISO dates like
// 2024-06-01 otherwise fail to decode into the string-typed worksheet
// fields.
func dateToStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == reflect.TypeOf(time.Time{}) && to.Kind() == reflect.String {
			return data.(time.Time).Format(DateLayout), nil
		}
		return data, nil
	}
}

// DefaultComparable returns a fresh comparable for the given 0-based
// position with the position-default weight applied.
func DefaultComparable(position int) Comparable {
	included := true
	weight := defaultWeight(position)
	return Comparable{
		Included:     &included,
		Condition:    "Good",
		SiteSizeUnit: "sf",
		Weight:       &weight,
	}
}

// defaultWeight is the weight a comparable receives when the worksheet
// leaves it unset.
func defaultWeight(position int) float64 {
	if position < constants.PrimaryCompCount {
		return constants.PrimaryCompWeight
	}
	return constants.SecondaryCompWeight
}

// IsIncluded reports whether the comparable participates in aggregate
// statistics. An omitted flag means included.
func (c *Comparable) IsIncluded() bool {
	return c.Included == nil || *c.Included
}

// EffectiveWeight is the comparable's weight with the position default
// applied when the worksheet leaves it unset.
func (c *Comparable) EffectiveWeight(position int) float64 {
	if c.Weight != nil {
		return *c.Weight
	}
	return defaultWeight(position)
}

// Validate performs general validation of the worksheet and returns
// warnings. Warnings never block report generation.
func (w *Worksheet) Validate() []string {
	var warnings []string

	if w.Subject.EffectiveDate != "" {
		if _, err := time.Parse(DateLayout, w.Subject.EffectiveDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("subject effective date %q does not match layout %s", w.Subject.EffectiveDate, DateLayout))
		}
	}
	warnings = append(warnings, validateCondition("subject", w.Subject.Condition)...)
	warnings = append(warnings, validateSiteSizeUnit("subject", w.Subject.SiteSizeUnit)...)

	weightSum := 0.0
	includedCount := 0
	for i := range w.Comparables {
		comp := &w.Comparables[i]
		label := fmt.Sprintf("comp %d", i+1)

		if comp.IsIncluded() {
			includedCount++
			weightSum += comp.EffectiveWeight(i)
			if comp.SalePrice == "" {
				warnings = append(warnings, fmt.Sprintf("%s is included but has no sale price", label))
			}
		}
		warnings = append(warnings, validateCondition(label, comp.Condition)...)
		warnings = append(warnings, validateSiteSizeUnit(label, comp.SiteSizeUnit)...)
	}

	if includedCount > 0 {
		drift := weightSum - 1.0
		if drift < 0 {
			drift = -drift
		}
		if drift > constants.WeightSumTolerance {
			warnings = append(warnings, fmt.Sprintf("included comparable weights sum to %.2f, expected 1.00", weightSum))
		}
	}

	return warnings
}

func validateCondition(label, condition string) []string {
	if condition == "" || comps.KnownCondition(condition) {
		return nil
	}
	return []string{fmt.Sprintf("%s has unknown condition rating %q", label, condition)}
}

func validateSiteSizeUnit(label, unit string) []string {
	switch unit {
	case "", "sf", "acres":
		return nil
	}
	return []string{fmt.Sprintf("%s has unknown site size unit %q, expected sf or acres", label, unit)}
}
