// Package config defines conversion utilities from worksheet entries to
// engine types.
package config

import (
	"time"

	"github.com/iwvelando/trendsheet/pkg/comps"
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// ToCompsSubject converts the worksheet subject to an engine subject.
// An unparseable effective date converts to the zero time; Validate
// reports it as a warning.
func (s *Subject) ToCompsSubject() comps.Subject {
	effectiveDate, _ := time.Parse(DateLayout, s.EffectiveDate)
	return comps.Subject{
		EffectiveDate:          effectiveDate,
		SalesPrice:             numeric.Parse(s.SalesPrice),
		SiteSize:               numeric.Parse(s.SiteSize),
		SiteSizeUnit:           s.SiteSizeUnit,
		YearBuilt:              numeric.Parse(s.YearBuilt),
		Bedrooms:               numeric.Parse(s.Bedrooms),
		FullBaths:              numeric.Parse(s.FullBaths),
		GLA:                    numeric.Parse(s.GLA),
		BasementFinishedArea:   numeric.Parse(s.BasementFinishedArea),
		BasementUnfinishedArea: numeric.Parse(s.BasementUnfinishedArea),
		BasementBaths:          numeric.Parse(s.BasementBaths),
		Garage:                 numeric.Parse(s.Garage),
		Carport:                numeric.Parse(s.Carport),
		Condition:              s.Condition,
		DesignStyle:            s.DesignStyle,
		Stories:                numeric.Parse(s.Stories),
		Pool:                   s.Pool,
	}
}

// ToCompsComparable converts one worksheet comparable at the given
// 0-based position to an engine comparable.
func (c *Comparable) ToCompsComparable(position int) comps.Comparable {
	return comps.Comparable{
		Included:  c.IsIncluded(),
		MLSNumber: c.MLSNumber,
		Address:   c.Address,

		SalePrice:    numeric.Parse(c.SalePrice),
		ListPrice:    numeric.Parse(c.ListPrice),
		ContractDate: c.ContractDate,
		CloseDate:    c.CloseDate,
		DaysOnMarket: numeric.Parse(c.DaysOnMarket),
		Concessions:  numeric.Parse(c.Concessions),

		GLA:                    numeric.Parse(c.GLA),
		YearBuilt:              numeric.Parse(c.YearBuilt),
		Bedrooms:               numeric.Parse(c.Bedrooms),
		FullBaths:              numeric.Parse(c.FullBaths),
		BasementFinishedArea:   numeric.Parse(c.BasementFinishedArea),
		BasementUnfinishedArea: numeric.Parse(c.BasementUnfinishedArea),
		BasementBaths:          numeric.Parse(c.BasementBaths),
		Garage:                 numeric.Parse(c.Garage),
		Carport:                numeric.Parse(c.Carport),
		SiteSize:               numeric.Parse(c.SiteSize),
		SiteSizeUnit:           c.SiteSizeUnit,
		Stories:                numeric.Parse(c.Stories),
		Condition:              c.Condition,
		DesignStyle:            c.DesignStyle,
		Pool:                   c.Pool,

		Weight:      numeric.Some(c.EffectiveWeight(position)),
		Adjustments: c.Adjustments.toGrid(),
	}
}

// toGrid parses the named adjustment entries into the fixed line-item
// grid.
func (a *Adjustments) toGrid() [comps.NumLineItems]numeric.Value {
	var grid [comps.NumLineItems]numeric.Value
	grid[comps.SaleType] = numeric.Parse(a.SaleType)
	grid[comps.FinancingConcessions] = numeric.Parse(a.FinancingConcessions)
	grid[comps.DateOfSale] = numeric.Parse(a.DateOfSale)
	grid[comps.Location] = numeric.Parse(a.Location)
	grid[comps.Ownership] = numeric.Parse(a.Ownership)
	grid[comps.LotSize] = numeric.Parse(a.LotSize)
	grid[comps.View] = numeric.Parse(a.View)
	grid[comps.DesignStyle] = numeric.Parse(a.DesignStyle)
	grid[comps.Quality] = numeric.Parse(a.Quality)
	grid[comps.Age] = numeric.Parse(a.Age)
	grid[comps.Condition] = numeric.Parse(a.Condition)
	grid[comps.Rooms] = numeric.Parse(a.Rooms)
	grid[comps.Bedrooms] = numeric.Parse(a.Bedrooms)
	grid[comps.Baths] = numeric.Parse(a.Baths)
	grid[comps.GrossLivingArea] = numeric.Parse(a.GLA)
	grid[comps.BasementFinished] = numeric.Parse(a.BasementFinished)
	grid[comps.BasementUnfinished] = numeric.Parse(a.BasementUnfinished)
	grid[comps.Functional] = numeric.Parse(a.Functional)
	grid[comps.HeatingCooling] = numeric.Parse(a.HeatingCooling)
	grid[comps.EnergyEfficiency] = numeric.Parse(a.EnergyEfficiency)
	grid[comps.VehicleStorage] = numeric.Parse(a.VehicleStorage)
	grid[comps.PatioDeck] = numeric.Parse(a.PatioDeck)
	return grid
}

// ToCompsCoefficients converts the worksheet coefficient table to
// engine coefficients.
func (co *Coefficients) ToCompsCoefficients() comps.Coefficients {
	return comps.Coefficients{
		GLAPerSquareFoot:      numeric.Parse(co.GLAPerSquareFoot),
		BasementFinishedPct:   numeric.Parse(co.BasementFinishedPct),
		BasementUnfinishedPct: numeric.Parse(co.BasementUnfinishedPct),
		BathContributionPct:   numeric.Parse(co.BathContributionPct),
		GaragePerUnit:         numeric.Parse(co.GaragePerUnit),
		CarportPerUnit:        numeric.Parse(co.CarportPerUnit),
		AgePerYear:            numeric.Parse(co.AgePerYear),
		BedroomPerUnit:        numeric.Parse(co.BedroomPerUnit),
		LotPerSquareFoot:      numeric.Parse(co.LotPerSquareFoot),
	}
}

// EngineComparables converts every worksheet comparable in order,
// preserving positions regardless of inclusion state.
func (w *Worksheet) EngineComparables() []comps.Comparable {
	converted := make([]comps.Comparable, len(w.Comparables))
	for i := range w.Comparables {
		converted[i] = w.Comparables[i].ToCompsComparable(i)
	}
	return converted
}
