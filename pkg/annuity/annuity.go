// Package annuity provides the shared amortization math used by the loan,
// loan-limit, affordability, and prepayment calculators.
package annuity

import (
	"iter"
	"math"

	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// MonthlyRate converts an annual percentage rate into a periodic monthly
// rate, e.g. 4.5 -> 0.00375.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// MonthlyPayment calculates the fixed monthly payment for an
// equal-installment loan using the standard amortization formula.
func MonthlyPayment(principal, monthlyRate float64, numPayments int) float64 {
	if numPayments <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(numPayments)
	}

	power := math.Pow(1.00+monthlyRate, float64(numPayments))
	return principal * monthlyRate * power / (power - 1.00)
}

// MaxPrincipal inverts the amortization formula: it returns the largest
// principal whose fixed monthly payment does not exceed monthlyPayment.
func MaxPrincipal(monthlyPayment, monthlyRate float64, numPayments int) float64 {
	if numPayments <= 0 || monthlyPayment <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return monthlyPayment * float64(numPayments)
	}

	power := math.Pow(1.00+monthlyRate, float64(numPayments))
	return monthlyPayment * (power - 1.00) / (monthlyRate * power)
}

// TotalInterest returns the interest paid over the full remaining term of
// an equal-installment loan on the given balance.
func TotalInterest(balance, monthlyRate float64, numPayments int) float64 {
	if balance <= 0 {
		return 0
	}
	payment := MonthlyPayment(balance, monthlyRate, numPayments)
	return mathutil.Max(0, payment*float64(numPayments)-balance)
}

// Entry holds the values for a single month of an amortization schedule.
type Entry struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Schedule returns a restartable lazy sequence of monthly schedule entries
// for an equal-installment loan. The sequence is finite: it ends after
// numPayments entries or as soon as the balance reaches zero. The principal
// portion of the final entry is capped at the remaining balance so the
// balance never goes negative.
func Schedule(principal, monthlyRate float64, numPayments int) iter.Seq[Entry] {
	payment := MonthlyPayment(principal, monthlyRate, numPayments)
	return func(yield func(Entry) bool) {
		balance := principal
		for month := 1; month <= numPayments && balance > 0; month++ {
			interest := balance * monthlyRate
			principalPortion := mathutil.Min(payment-interest, balance)
			balance -= principalPortion
			if mathutil.IsZero(balance) {
				balance = 0
			}
			entry := Entry{
				Month:     month,
				Payment:   principalPortion + interest,
				Principal: principalPortion,
				Interest:  interest,
				Balance:   balance,
			}
			if !yield(entry) {
				return
			}
		}
	}
}
