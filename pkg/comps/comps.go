// Package comps provides the per-comparable adjustment arithmetic: net
// and gross adjustment totals, adjusted sale prices, and the derived
// ratios reviewers use to sanity-check a sales grid.
package comps

import (
	"time"

	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// LineItem identifies one of the fixed adjustment categories applied to
// every comparable, in grid display order.
type LineItem int

const (
	SaleType LineItem = iota
	FinancingConcessions
	DateOfSale
	Location
	Ownership
	LotSize
	View
	DesignStyle
	Quality
	Age
	Condition
	Rooms
	Bedrooms
	Baths
	GrossLivingArea
	BasementFinished
	BasementUnfinished
	Functional
	HeatingCooling
	EnergyEfficiency
	VehicleStorage
	PatioDeck

	// NumLineItems is the fixed size of the adjustment grid.
	NumLineItems
)

var lineItemLabels = [NumLineItems]string{
	SaleType:             "Sale Type",
	FinancingConcessions: "Financing / Concessions",
	DateOfSale:           "Date of Sale",
	Location:             "Location",
	Ownership:            "Ownership",
	LotSize:              "Lot Size",
	View:                 "View",
	DesignStyle:          "Design / Style",
	Quality:              "Quality",
	Age:                  "Age",
	Condition:            "Condition",
	Rooms:                "Rooms",
	Bedrooms:             "Bedrooms",
	Baths:                "Baths",
	GrossLivingArea:      "GLA",
	BasementFinished:     "Basement (Fin)",
	BasementUnfinished:   "Basement (Unfin)",
	Functional:           "Functional",
	HeatingCooling:       "Heating / Cooling",
	EnergyEfficiency:     "Energy Efficiency",
	VehicleStorage:       "Vehicle Storage",
	PatioDeck:            "Patio / Deck",
}

// Label returns the grid display label for the line item.
func (li LineItem) Label() string {
	if li < 0 || li >= NumLineItems {
		return ""
	}
	return lineItemLabels[li]
}

// Advisory reports whether the line item has a coefficient-backed
// suggested value. Suggested values are entry aids only; totals always
// sum whatever occupies the grid cell.
func (li LineItem) Advisory() bool {
	switch li {
	case LotSize, Age, Bedrooms, Baths, GrossLivingArea, VehicleStorage:
		return true
	}
	return false
}

// ConditionScale is the fixed ordered condition rating scale, best
// first, with the effective age each rating implies.
var ConditionScale = []struct {
	Label        string
	EffectiveAge int
}{
	{"Excellent", 0},
	{"Good +", 5},
	{"Good", 15},
	{"Moderate +", 22},
	{"Moderate", 30},
	{"Fair +", 37},
	{"Fair", 45},
	{"Poor +", 50},
	{"Poor", 55},
}

// KnownCondition reports whether label is on the condition scale.
func KnownCondition(label string) bool {
	for _, c := range ConditionScale {
		if c.Label == label {
			return true
		}
	}
	return false
}

// SquareFeetPerAcre converts acreage site sizes to square feet.
const SquareFeetPerAcre = 43560.0

// Subject describes the property being appraised.
type Subject struct {
	EffectiveDate          time.Time
	SalesPrice             numeric.Value
	SiteSize               numeric.Value
	SiteSizeUnit           string // "sf" or "acres"
	YearBuilt              numeric.Value
	Bedrooms               numeric.Value
	FullBaths              numeric.Value
	GLA                    numeric.Value
	BasementFinishedArea   numeric.Value
	BasementUnfinishedArea numeric.Value
	BasementBaths          numeric.Value
	Garage                 numeric.Value
	Carport                numeric.Value
	Condition              string
	DesignStyle            string
	Stories                numeric.Value
	Pool                   bool
}

// Comparable is one comparable sale with its adjustment grid. Every
// comparable carries the full field set regardless of inclusion state;
// excluded comparables keep their position and derived values but are
// skipped by aggregate statistics.
type Comparable struct {
	Included  bool
	MLSNumber string
	Address   string

	SalePrice    numeric.Value
	ListPrice    numeric.Value
	ContractDate string
	CloseDate    string
	DaysOnMarket numeric.Value
	Concessions  numeric.Value

	GLA                    numeric.Value
	YearBuilt              numeric.Value
	Bedrooms               numeric.Value
	FullBaths              numeric.Value
	BasementFinishedArea   numeric.Value
	BasementUnfinishedArea numeric.Value
	BasementBaths          numeric.Value
	Garage                 numeric.Value
	Carport                numeric.Value
	SiteSize               numeric.Value
	SiteSizeUnit           string
	Stories                numeric.Value
	Condition              string
	DesignStyle            string
	Pool                   bool

	Weight      numeric.Value
	Adjustments [NumLineItems]numeric.Value
}

// NetAdjustment is the signed sum of all adjustment line items. A blank
// line item means "no adjustment" and counts as zero; an adjustment
// total always resolves to a number.
func (c *Comparable) NetAdjustment() float64 {
	total := 0.0
	for _, adj := range c.Adjustments {
		total += adj.Or(0)
	}
	return total
}

// GrossAdjustment is the sum of absolute values of all line items,
// computed independently of the net total.
func (c *Comparable) GrossAdjustment() float64 {
	total := 0.0
	for _, adj := range c.Adjustments {
		v := adj.Or(0)
		if v < 0 {
			v = -v
		}
		total += v
	}
	return total
}

// AdjustedPrice is the sale price (blank counts as zero) plus the net
// adjustment.
func (c *Comparable) AdjustedPrice() float64 {
	return c.SalePrice.Or(0) + c.NetAdjustment()
}

// AdjustedPricePerArea is the adjusted price divided by GLA;
// unavailable when GLA is blank or zero.
func (c *Comparable) AdjustedPricePerArea() numeric.Value {
	return numeric.SafeDivide(numeric.Some(c.AdjustedPrice()), c.GLA)
}

// NetAdjustmentPercent is the net adjustment as a fraction of the sale
// price; unavailable when the sale price is blank or zero.
func (c *Comparable) NetAdjustmentPercent() numeric.Value {
	return numeric.SafeDivide(numeric.Some(c.NetAdjustment()), c.SalePrice)
}

// GrossAdjustmentPercent is the gross adjustment as a fraction of the
// sale price; unavailable when the sale price is blank or zero. Always
// at least the magnitude of NetAdjustmentPercent.
func (c *Comparable) GrossAdjustmentPercent() numeric.Value {
	return numeric.SafeDivide(numeric.Some(c.GrossAdjustment()), c.SalePrice)
}

// Derived bundles the computed values for one comparable, independent
// of its inclusion state.
type Derived struct {
	NetAdjustment          float64
	GrossAdjustment        float64
	AdjustedPrice          float64
	AdjustedPricePerArea   numeric.Value
	NetAdjustmentPercent   numeric.Value
	GrossAdjustmentPercent numeric.Value
}

// Derive computes all derived values for the comparable.
func (c *Comparable) Derive() Derived {
	return Derived{
		NetAdjustment:          c.NetAdjustment(),
		GrossAdjustment:        c.GrossAdjustment(),
		AdjustedPrice:          c.AdjustedPrice(),
		AdjustedPricePerArea:   c.AdjustedPricePerArea(),
		NetAdjustmentPercent:   c.NetAdjustmentPercent(),
		GrossAdjustmentPercent: c.GrossAdjustmentPercent(),
	}
}

// siteSizeSquareFeet normalizes a site size to square feet.
func siteSizeSquareFeet(size numeric.Value, unit string) numeric.Value {
	if !size.Valid {
		return size
	}
	if unit == "acres" {
		return numeric.Some(size.Float64 * SquareFeetPerAcre)
	}
	return size
}
