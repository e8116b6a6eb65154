// Package savings calculates deposit and installment savings maturity
// values with interest-income tax withholding.
package savings

import (
	"math"

	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// InterestType selects the accrual method.
type InterestType string

const (
	Simple   InterestType = "simple"
	Compound InterestType = "compound"
)

// Result holds the maturity figures for a savings product.
type Result struct {
	Principal         float64
	BeforeTaxInterest float64
	Tax               float64
	AfterTaxInterest  float64
	MaturityAmount    float64
}

// Deposit calculates the maturity of a lump-sum deposit with simple
// interest at the statutory withholding rate.
func Deposit(principal, annualRatePercent float64, months int) Result {
	return DepositWithOptions(principal, annualRatePercent, months, Simple, constants.WithholdingTaxRate)
}

// DepositWithOptions calculates a lump-sum deposit maturity. Simple
// interest accrues monthly on the principal; compound interest compounds
// annually. taxRatePercent replaces the statutory withholding rate.
func DepositWithOptions(principal, annualRatePercent float64, months int, interestType InterestType, taxRatePercent float64) Result {
	annualRate := annualRatePercent / constants.PercentageMultiplier

	var interest float64
	if interestType == Compound {
		years := float64(months) / constants.MonthsPerYear
		interest = principal * (math.Pow(1+annualRate, years) - 1)
	} else {
		interest = principal * annualRate / constants.MonthsPerYear * float64(months)
	}

	return withTax(principal, interest, taxRatePercent)
}

// Installment calculates the maturity of monthly installment savings with
// simple interest at the statutory withholding rate.
func Installment(monthlyAmount, annualRatePercent float64, months int) Result {
	return InstallmentWithOptions(monthlyAmount, annualRatePercent, months, Simple, constants.WithholdingTaxRate)
}

// InstallmentWithOptions calculates installment savings maturity. With
// simple interest each deposit earns monthly interest for its remaining
// months; with compound interest the deposits compound monthly.
func InstallmentWithOptions(monthlyAmount, annualRatePercent float64, months int, interestType InterestType, taxRatePercent float64) Result {
	principal := monthlyAmount * float64(months)
	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)

	var interest float64
	if interestType == Compound && monthlyRate > 0 {
		futureValue := monthlyAmount * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
		interest = futureValue - principal
	} else {
		// The i-th deposit earns interest for the months remaining after it
		// is made.
		for i := 1; i <= months; i++ {
			interest += monthlyAmount * monthlyRate * float64(months-i+1)
		}
	}

	return withTax(principal, interest, taxRatePercent)
}

func withTax(principal, interest, taxRatePercent float64) Result {
	tax := mathutil.ApplyPercentage(interest, taxRatePercent)
	afterTax := interest - tax
	return Result{
		Principal:         principal,
		BeforeTaxInterest: interest,
		Tax:               tax,
		AfterTaxInterest:  afterTax,
		MaturityAmount:    principal + afterTax,
	}
}
