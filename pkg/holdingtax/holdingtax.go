// Package holdingtax calculates the annual holding taxes on a property:
// property tax plus comprehensive real estate tax.
package holdingtax

import (
	"github.com/krfincalc/krfincalc/pkg/mathutil"
	"go.uber.org/zap"
)

// PropertyType is the holding-tax property category.
type PropertyType string

const (
	House    PropertyType = "house"
	Land     PropertyType = "land"
	Building PropertyType = "building"
)

// Result holds the annual holding tax figures.
type Result struct {
	PropertyTax      float64
	ComprehensiveTax float64
	TotalTax         float64
}

// RateBracket is one value tier of a rate schedule. UpperBound is
// inclusive; zero means open-ended. Rate is a decimal.
type RateBracket struct {
	UpperBound float64
	Rate       float64
}

// Property tax schedules (2024, on assessed value).
var (
	HousePropertyBrackets = []RateBracket{
		{UpperBound: 60_000_000, Rate: 0.001},
		{UpperBound: 150_000_000, Rate: 0.0015},
		{UpperBound: 300_000_000, Rate: 0.0025},
		{Rate: 0.004},
	}
	LandPropertyBrackets = []RateBracket{
		{UpperBound: 50_000_000, Rate: 0.002},
		{UpperBound: 100_000_000, Rate: 0.003},
		{Rate: 0.005},
	}
	BuildingPropertyRate = 0.0025
)

// Comprehensive tax schedules. These are applied as a cumulative piecewise
// sum across the tier thresholds, not as marginal-rate-minus-deduction.
var (
	SingleHomeComprehensiveBrackets = []RateBracket{
		{UpperBound: 300_000_000, Rate: 0.005},
		{UpperBound: 600_000_000, Rate: 0.007},
		{Rate: 0.01},
	}
	MultiHomeComprehensiveBrackets = []RateBracket{
		{UpperBound: 300_000_000, Rate: 0.012},
		{UpperBound: 600_000_000, Rate: 0.016},
		{UpperBound: 1_200_000_000, Rate: 0.025},
		{Rate: 0.03},
	}
)

// Comprehensive tax deduction thresholds on house value.
const (
	singleHomeDeduction = 1_200_000_000
	multiHomeDeduction  = 600_000_000
)

// Calculator computes holding taxes. A nil logger is tolerated.
type Calculator struct {
	logger *zap.Logger
}

// New creates a holding tax calculator.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// HoldingTax computes the combined annual holding tax. age is the building
// age in years and drives the depreciation deduction; homesCount drives the
// single-home relief and multi-home surcharge.
func (c *Calculator) HoldingTax(propertyValue float64, propertyType PropertyType, age, homesCount int) Result {
	if !mathutil.Valid(propertyValue) || propertyValue <= 0 {
		c.logger.Warn("invalid property value",
			zap.String("op", "holdingtax.HoldingTax"),
			zap.Float64("propertyValue", propertyValue),
		)
		return Result{}
	}

	if homesCount < 1 {
		homesCount = 1
	}
	if age < 0 {
		age = 0
	}

	propertyTax := PropertyTax(propertyValue, propertyType, age, homesCount)
	comprehensiveTax := ComprehensiveTax(propertyValue, propertyType, homesCount)

	return Result{
		PropertyTax:      propertyTax,
		ComprehensiveTax: comprehensiveTax,
		TotalTax:         propertyTax + comprehensiveTax,
	}
}

// PropertyTax computes the local property tax. Reliefs and surcharges
// adjust the rate (single-home relief first, then the multi-home
// surcharge); the age-based depreciation deduction reduces the taxable
// value instead.
func PropertyTax(propertyValue float64, propertyType PropertyType, age, homesCount int) float64 {
	var baseRate, deductionRate float64

	switch propertyType {
	case House:
		baseRate = bracketRate(HousePropertyBrackets, propertyValue)

		// Single-home relief on modest values.
		if homesCount == 1 && propertyValue <= 600_000_000 {
			baseRate *= 0.5
		}

		if age >= 10 {
			deductionRate = mathutil.Min(0.2, float64(age)*0.01)
		}

		if homesCount >= 3 {
			baseRate *= 2.0
		} else if homesCount == 2 {
			baseRate *= 1.5
		}

	case Land:
		baseRate = bracketRate(LandPropertyBrackets, propertyValue)

	case Building:
		baseRate = BuildingPropertyRate
		if age >= 5 {
			deductionRate = mathutil.Min(0.15, float64(age)*0.015)
		}
	}

	taxableValue := propertyValue * (1 - deductionRate)
	return taxableValue * baseRate
}

// ComprehensiveTax computes the national comprehensive real estate tax.
// Only houses are liable; the deduction threshold depends on home count and
// the remainder is taxed on a cumulative piecewise schedule.
func ComprehensiveTax(propertyValue float64, propertyType PropertyType, homesCount int) float64 {
	if propertyType != House {
		return 0
	}

	deduction := float64(multiHomeDeduction)
	brackets := MultiHomeComprehensiveBrackets
	if homesCount == 1 {
		deduction = singleHomeDeduction
		brackets = SingleHomeComprehensiveBrackets
	}

	taxableValue := mathutil.Max(0, propertyValue-deduction)
	if taxableValue == 0 {
		return 0
	}

	return cumulativeTax(brackets, taxableValue)
}

// bracketRate returns the rate of the first bracket whose inclusive upper
// bound covers the value.
func bracketRate(brackets []RateBracket, value float64) float64 {
	for _, bracket := range brackets {
		if bracket.UpperBound == 0 || value <= bracket.UpperBound {
			return bracket.Rate
		}
	}
	return 0
}

// cumulativeTax sums tax tier by tier: each bracket's rate applies to the
// slice of value falling inside that bracket.
func cumulativeTax(brackets []RateBracket, value float64) float64 {
	tax := 0.0
	lower := 0.0
	for _, bracket := range brackets {
		if bracket.UpperBound == 0 || value <= bracket.UpperBound {
			tax += (value - lower) * bracket.Rate
			return tax
		}
		tax += (bracket.UpperBound - lower) * bracket.Rate
		lower = bracket.UpperBound
	}
	return tax
}
