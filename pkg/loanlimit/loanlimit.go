// Package loanlimit calculates DSR- and LTV-based borrowing limits.
package loanlimit

import (
	"github.com/krfincalc/krfincalc/pkg/annuity"
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// Limits holds the borrowing limits and the monthly payment the final
// limit implies.
type Limits struct {
	DSRLimit       float64
	LTVLimit       float64
	FinalLimit     float64
	MonthlyPayment float64
}

// DSRLimit returns the maximum principal whose monthly payment fits inside
// the borrower's remaining debt-service capacity. A borrower already at or
// over the DSR cap gets zero.
func DSRLimit(monthlyIncome, existingMonthlyDebt float64, loanTermYears int, annualRatePercent, dsrLimitRatePercent float64) float64 {
	availablePayment := mathutil.ApplyPercentage(monthlyIncome, dsrLimitRatePercent) - existingMonthlyDebt
	if availablePayment <= 0 {
		return 0
	}

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := loanTermYears * constants.MonthsPerYear
	return annuity.MaxPrincipal(availablePayment, monthlyRate, numPayments)
}

// LTVLimit returns the maximum loan against the collateral value.
func LTVLimit(propertyValue, ltvLimitRatePercent float64) float64 {
	return mathutil.ApplyPercentage(propertyValue, ltvLimitRatePercent)
}

// FinalLimit is the binding limit: the smaller of the DSR and LTV limits.
func FinalLimit(dsrLimit, ltvLimit float64) float64 {
	return mathutil.Min(dsrLimit, ltvLimit)
}

// MortgageLimit calculates the borrowing limits for a collateralized loan,
// where both the DSR and LTV constraints apply.
func MortgageLimit(monthlyIncome, existingMonthlyDebt, propertyValue, annualRatePercent float64, loanTermYears int, dsrLimitRatePercent, ltvLimitRatePercent float64) Limits {
	dsrLimit := DSRLimit(monthlyIncome, existingMonthlyDebt, loanTermYears, annualRatePercent, dsrLimitRatePercent)
	ltvLimit := LTVLimit(propertyValue, ltvLimitRatePercent)
	finalLimit := FinalLimit(dsrLimit, ltvLimit)

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := loanTermYears * constants.MonthsPerYear

	return Limits{
		DSRLimit:       dsrLimit,
		LTVLimit:       ltvLimit,
		FinalLimit:     finalLimit,
		MonthlyPayment: annuity.MonthlyPayment(finalLimit, monthlyRate, numPayments),
	}
}

// CreditLimit calculates the borrowing limits for an unsecured loan. With
// no collateral there is no LTV leg; the DSR limit is the final limit.
func CreditLimit(monthlyIncome, existingMonthlyDebt, annualRatePercent float64, loanTermYears int, dsrLimitRatePercent float64) Limits {
	dsrLimit := DSRLimit(monthlyIncome, existingMonthlyDebt, loanTermYears, annualRatePercent, dsrLimitRatePercent)

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := loanTermYears * constants.MonthsPerYear

	return Limits{
		DSRLimit:       dsrLimit,
		LTVLimit:       0,
		FinalLimit:     dsrLimit,
		MonthlyPayment: annuity.MonthlyPayment(dsrLimit, monthlyRate, numPayments),
	}
}
