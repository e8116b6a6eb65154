// Package leaseconv converts between jeonse (lump-sum deposit) and monthly
// rent leases and compares which is cheaper at a given market rate.
package leaseconv

import (
	"math"

	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// Recommendation labels for the cheaper lease structure.
const (
	JeonseFavorable  = "jeonse favorable"
	MonthlyFavorable = "monthly favorable"
	Equivalent       = "equivalent"
)

// ConversionResult holds the jeonse-to-monthly comparison. ConversionRate
// is the implied annual rate of the rent against the deposit gap, in
// percent; YearlyDifference is the absolute annual cost gap between the two
// structures.
type ConversionResult struct {
	ConversionRate   float64
	BetterChoice     string
	YearlyDifference float64
}

// ConversionRate compares paying monthly rent on top of a smaller deposit
// against parking the full jeonse amount. The market rate prices the
// opportunity cost of the extra deposit. A non-positive deposit gap or rent
// means there is nothing to convert, which reads as jeonse favorable.
func ConversionRate(deposit, monthlyRent, jeonseAmount, marketRatePercent float64) ConversionResult {
	priceDifference := jeonseAmount - deposit
	yearlyRent := monthlyRent * constants.MonthsPerYear
	marketCost := mathutil.ApplyPercentage(priceDifference, marketRatePercent)

	if priceDifference <= 0 || monthlyRent <= 0 {
		return ConversionResult{
			ConversionRate:   0,
			BetterChoice:     JeonseFavorable,
			YearlyDifference: math.Abs(yearlyRent - marketCost),
		}
	}

	rate := yearlyRent / priceDifference * constants.PercentageMultiplier

	var choice string
	switch {
	case yearlyRent > marketCost:
		choice = JeonseFavorable
	case yearlyRent < marketCost:
		choice = MonthlyFavorable
	default:
		choice = Equivalent
	}

	return ConversionResult{
		ConversionRate:   rate,
		BetterChoice:     choice,
		YearlyDifference: math.Abs(yearlyRent - marketCost),
	}
}

// DirectionResult holds a single-direction conversion: the converted lease
// figure, the opportunity cost of the parked deposit over the contract, the
// total rent paid over the contract, and the cheaper choice.
type DirectionResult struct {
	Converted       float64
	OpportunityCost float64
	TotalRent       float64
	Recommendation  string
}

// JeonseToMonthly converts a jeonse lease into its equivalent monthly rent
// at the statutory conversion rate and weighs it against the deposit's
// expected savings yield over the contract.
func JeonseToMonthly(jeonseAmount, conversionRatePercent float64, contractMonths int, savingsRatePercent float64) DirectionResult {
	monthlyRent := mathutil.ApplyPercentage(jeonseAmount, conversionRatePercent) / constants.MonthsPerYear
	opportunityCost := mathutil.ApplyPercentage(jeonseAmount, savingsRatePercent) / constants.MonthsPerYear * float64(contractMonths)
	totalRent := monthlyRent * float64(contractMonths)

	recommendation := JeonseFavorable
	if opportunityCost > totalRent {
		recommendation = MonthlyFavorable
	}

	return DirectionResult{
		Converted:       monthlyRent,
		OpportunityCost: opportunityCost,
		TotalRent:       totalRent,
		Recommendation:  recommendation,
	}
}

// MonthlyToJeonse converts a deposit-plus-rent lease into its equivalent
// jeonse amount at the statutory conversion rate.
func MonthlyToJeonse(deposit, monthlyRent, conversionRatePercent float64, contractMonths int, savingsRatePercent float64) DirectionResult {
	equivalentJeonse := deposit + monthlyRent*constants.MonthsPerYear/(conversionRatePercent/constants.PercentageMultiplier)
	totalRent := monthlyRent * float64(contractMonths)
	opportunityCost := mathutil.ApplyPercentage(equivalentJeonse, savingsRatePercent) / constants.MonthsPerYear * float64(contractMonths)

	recommendation := MonthlyFavorable
	if opportunityCost < totalRent {
		recommendation = JeonseFavorable
	}

	return DirectionResult{
		Converted:       equivalentJeonse,
		OpportunityCost: opportunityCost,
		TotalRent:       totalRent,
		Recommendation:  recommendation,
	}
}
