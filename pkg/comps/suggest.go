package comps

import (
	"github.com/iwvelando/trendsheet/pkg/numeric"
)

// Coefficients are the advisory adjustment multipliers shown alongside
// manual entry. The engine never sums these into adjustment totals.
type Coefficients struct {
	GLAPerSquareFoot      numeric.Value // $/sf of living area
	BasementFinishedPct   numeric.Value // % of GLA rate for finished below-grade area
	BasementUnfinishedPct numeric.Value // % of GLA rate for unfinished below-grade area
	BathContributionPct   numeric.Value // % of sale price per full bath
	GaragePerUnit         numeric.Value // $ per garage bay
	CarportPerUnit        numeric.Value // $ per carport bay
	AgePerYear            numeric.Value // $ per year of age difference
	BedroomPerUnit        numeric.Value // $ per bedroom
	LotPerSquareFoot      numeric.Value // $/sf of site area
}

// SuggestedAdjustment computes the display-only hint for an advisory
// line item from the coefficient table and the subject/comparable
// difference. Unavailable when the item carries no suggestion or any
// required input is missing.
func SuggestedAdjustment(item LineItem, coef Coefficients, subject Subject, comp *Comparable) numeric.Value {
	switch item {
	case GrossLivingArea:
		return scaledDifference(subject.GLA, comp.GLA, coef.GLAPerSquareFoot)
	case Age:
		// An older comparable warrants a positive adjustment, so the
		// year-built difference runs subject minus comp.
		return scaledDifference(subject.YearBuilt, comp.YearBuilt, coef.AgePerYear)
	case Bedrooms:
		return scaledDifference(subject.Bedrooms, comp.Bedrooms, coef.BedroomPerUnit)
	case Baths:
		pct := numeric.SafeDivide(coef.BathContributionPct, numeric.Some(100))
		perBath := multiply(pct, comp.SalePrice)
		return scaledDifference(subject.FullBaths, comp.FullBaths, perBath)
	case LotSize:
		subjectSF := siteSizeSquareFeet(subject.SiteSize, subject.SiteSizeUnit)
		compSF := siteSizeSquareFeet(comp.SiteSize, comp.SiteSizeUnit)
		return scaledDifference(subjectSF, compSF, coef.LotPerSquareFoot)
	case VehicleStorage:
		garage := scaledDifference(subject.Garage, comp.Garage, coef.GaragePerUnit)
		carport := scaledDifference(subject.Carport, comp.Carport, coef.CarportPerUnit)
		return add(garage, carport)
	}
	return numeric.None()
}

// scaledDifference returns (a - b) * rate, unavailable if any input is.
func scaledDifference(a, b, rate numeric.Value) numeric.Value {
	if !a.Valid || !b.Valid || !rate.Valid {
		return numeric.None()
	}
	return numeric.Some((a.Float64 - b.Float64) * rate.Float64)
}

func multiply(a, b numeric.Value) numeric.Value {
	if !a.Valid || !b.Valid {
		return numeric.None()
	}
	return numeric.Some(a.Float64 * b.Float64)
}

func add(a, b numeric.Value) numeric.Value {
	if !a.Valid || !b.Valid {
		return numeric.None()
	}
	return numeric.Some(a.Float64 + b.Float64)
}
