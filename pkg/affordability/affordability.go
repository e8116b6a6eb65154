// Package affordability solves the maximum affordable purchase price for a
// household under the joint DSR and LTV constraints.
package affordability

import (
	"github.com/krfincalc/krfincalc/pkg/annuity"
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// Result holds the affordability figures.
type Result struct {
	MaxLoanAmount   float64
	TotalBudget     float64
	AffordablePrice float64
	MonthlyPayment  float64
}

// Calculate finds the largest purchase the household can finance.
//
// The loan is bounded by two constraints that interact: the DSR ceiling
// (monthly capacity inverted through the annuity formula) and the LTV
// ceiling, which depends on the purchase price, which in turn depends on
// the loan. Substituting price = (loan + ownFunds) / costRatio into
// loan = price × ltvRatio and solving for the loan gives
//
//	loanFromLTV = ownFunds × ltvRatio / (costRatio − ltvRatio)
//
// valid only while costRatio > ltvRatio; in the degenerate case (LTV at or
// above 100% of the net price) only the DSR ceiling binds.
//
// additionalCostRatePercent covers acquisition-side costs (taxes, fees) as
// a percentage of the price, so totalBudget = price × (1 + costRate/100).
func Calculate(monthlyIncome, existingMonthlyDebt, ownFunds, annualRatePercent float64, loanTermYears int, dsrLimitRatePercent, ltvRatePercent, additionalCostRatePercent float64) Result {
	costRatio := 1 + additionalCostRatePercent/constants.PercentageMultiplier
	maxMonthlyPayment := mathutil.ApplyPercentage(monthlyIncome, dsrLimitRatePercent) - existingMonthlyDebt

	if maxMonthlyPayment <= 0 {
		// No remaining debt-service capacity; the household buys with own
		// funds only.
		return Result{
			MaxLoanAmount:   0,
			TotalBudget:     ownFunds,
			AffordablePrice: ownFunds / costRatio,
			MonthlyPayment:  existingMonthlyDebt,
		}
	}

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := loanTermYears * constants.MonthsPerYear
	dsrCeiling := annuity.MaxPrincipal(maxMonthlyPayment, monthlyRate, numPayments)

	ltvRatio := ltvRatePercent / constants.PercentageMultiplier
	loanFromLTV := dsrCeiling
	if costRatio > ltvRatio {
		loanFromLTV = ownFunds * ltvRatio / (costRatio - ltvRatio)
	}

	loanAmount := mathutil.Min(dsrCeiling, loanFromLTV)
	totalBudget := loanAmount + ownFunds

	return Result{
		MaxLoanAmount:   loanAmount,
		TotalBudget:     totalBudget,
		AffordablePrice: totalBudget / costRatio,
		MonthlyPayment:  annuity.MonthlyPayment(loanAmount, monthlyRate, numPayments) + existingMonthlyDebt,
	}
}
