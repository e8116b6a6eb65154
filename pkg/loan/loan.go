// Package loan provides repayment summaries for equal-payment and
// equal-principal loans.
package loan

import (
	"github.com/krfincalc/krfincalc/pkg/annuity"
	"github.com/krfincalc/krfincalc/pkg/constants"
)

// Summary holds the repayment figures for a loan.
type Summary struct {
	MonthlyPayment      float64
	TotalPayment        float64
	TotalInterest       float64
	FirstMonthPrincipal float64
	FirstMonthInterest  float64
}

// EqualPayment calculates the repayment summary for a fixed-installment
// loan. MonthlyPayment is constant over the whole term.
func EqualPayment(principal, annualRatePercent float64, years int) Summary {
	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := years * constants.MonthsPerYear

	if monthlyRate == 0 {
		monthlyPayment := principal / float64(numPayments)
		return Summary{
			MonthlyPayment:      monthlyPayment,
			TotalPayment:        principal,
			TotalInterest:       0,
			FirstMonthPrincipal: monthlyPayment,
			FirstMonthInterest:  0,
		}
	}

	monthlyPayment := annuity.MonthlyPayment(principal, monthlyRate, numPayments)
	totalPayment := monthlyPayment * float64(numPayments)
	firstMonthInterest := principal * monthlyRate

	return Summary{
		MonthlyPayment:      monthlyPayment,
		TotalPayment:        totalPayment,
		TotalInterest:       totalPayment - principal,
		FirstMonthPrincipal: monthlyPayment - firstMonthInterest,
		FirstMonthInterest:  firstMonthInterest,
	}
}

// EqualPrincipal calculates the repayment summary for a loan that repays a
// constant principal portion every month. Interest accrues on the declining
// balance, so the first month's payment is the highest; MonthlyPayment
// reports that first payment.
func EqualPrincipal(principal, annualRatePercent float64, years int) Summary {
	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	numPayments := years * constants.MonthsPerYear
	principalPayment := principal / float64(numPayments)

	totalPayment := 0.0
	remaining := principal
	for i := 0; i < numPayments; i++ {
		totalPayment += principalPayment + remaining*monthlyRate
		remaining -= principalPayment
	}

	firstMonthInterest := principal * monthlyRate

	return Summary{
		MonthlyPayment:      principalPayment + firstMonthInterest,
		TotalPayment:        totalPayment,
		TotalInterest:       totalPayment - principal,
		FirstMonthPrincipal: principalPayment,
		FirstMonthInterest:  firstMonthInterest,
	}
}
