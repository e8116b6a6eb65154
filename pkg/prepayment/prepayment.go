// Package prepayment calculates prepayment fees and the interest saved by
// repaying an equal-installment loan ahead of schedule.
package prepayment

import (
	"iter"
	"math"

	"github.com/krfincalc/krfincalc/pkg/annuity"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
	"go.uber.org/zap"
)

// Result holds the prepayment figures. All monetary fields are rounded to
// whole won. NetSavings may be negative when the fee exceeds the interest
// saved. BreakEvenMonths is the number of months of interest savings needed
// to recover the fee, zero when prepaying never pays off.
type Result struct {
	PrepaymentFee     float64
	SavedInterest     float64
	NetSavings        float64
	NewMonthlyPayment float64
	BreakEvenMonths   int
}

// Calculator computes prepayment outcomes. The logger receives structured
// warnings for rejected inputs; a nil logger is tolerated.
type Calculator struct {
	logger *zap.Logger
}

// New creates a prepayment calculator.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Partial calculates the outcome of repaying prepayAmount of the remaining
// balance while keeping the remaining term. The monthly payment is
// recomputed on the reduced balance over the same number of months.
func (c *Calculator) Partial(remainingBalance, prepayAmount, annualRatePercent float64, remainingMonths int, feeRatePercent float64) Result {
	if !c.validate(remainingBalance, prepayAmount, annualRatePercent, remainingMonths) {
		return Result{}
	}

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	fee := mathutil.ApplyPercentage(prepayAmount, feeRatePercent)

	interestBefore := annuity.TotalInterest(remainingBalance, monthlyRate, remainingMonths)
	newBalance := remainingBalance - prepayAmount
	interestAfter := annuity.TotalInterest(newBalance, monthlyRate, remainingMonths)

	savedInterest := interestBefore - interestAfter

	return Result{
		PrepaymentFee:     mathutil.RoundWon(fee),
		SavedInterest:     mathutil.RoundWon(savedInterest),
		NetSavings:        mathutil.RoundWon(savedInterest - fee),
		NewMonthlyPayment: mathutil.RoundWon(annuity.MonthlyPayment(newBalance, monthlyRate, remainingMonths)),
		BreakEvenMonths:   breakEvenMonths(fee, savedInterest, remainingMonths),
	}
}

// Full calculates the outcome of repaying the entire remaining balance. The
// fee is charged on the whole balance and the saved interest equals the
// full remaining-term interest.
func (c *Calculator) Full(remainingBalance, annualRatePercent float64, remainingMonths int, feeRatePercent float64) Result {
	if !c.validate(remainingBalance, remainingBalance, annualRatePercent, remainingMonths) {
		return Result{}
	}

	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	fee := mathutil.ApplyPercentage(remainingBalance, feeRatePercent)
	savedInterest := annuity.TotalInterest(remainingBalance, monthlyRate, remainingMonths)

	return Result{
		PrepaymentFee:     mathutil.RoundWon(fee),
		SavedInterest:     mathutil.RoundWon(savedInterest),
		NetSavings:        mathutil.RoundWon(savedInterest - fee),
		NewMonthlyPayment: 0,
		BreakEvenMonths:   breakEvenMonths(fee, savedInterest, remainingMonths),
	}
}

// Schedule returns a restartable lazy sequence of monthly entries for an
// equal-installment loan, applying an optional lump-sum prepayment at
// prepayMonth (1-based; zero disables it). The monthly payment is not
// recomputed after the lump sum, so the schedule terminates early once the
// balance reaches zero.
func (c *Calculator) Schedule(principal, annualRatePercent float64, months int, prepayMonth int, prepayAmount float64) iter.Seq[annuity.Entry] {
	monthlyRate := annuity.MonthlyRate(annualRatePercent)
	payment := annuity.MonthlyPayment(principal, monthlyRate, months)

	return func(yield func(annuity.Entry) bool) {
		balance := principal
		for month := 1; month <= months && balance > 0; month++ {
			interest := balance * monthlyRate
			principalPortion := payment - interest
			if prepayMonth > 0 && month == prepayMonth {
				principalPortion += prepayAmount
			}
			// Cap at the remaining balance so the balance never goes negative.
			principalPortion = mathutil.Min(principalPortion, balance)
			balance -= principalPortion
			if mathutil.IsZero(balance) {
				balance = 0
			}
			entry := annuity.Entry{
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

func (c *Calculator) validate(remainingBalance, prepayAmount, annualRatePercent float64, remainingMonths int) bool {
	switch {
	case !mathutil.Valid(remainingBalance) || remainingBalance <= 0:
		c.logger.Warn("invalid remaining balance",
			zap.String("op", "prepayment.validate"),
			zap.Float64("remainingBalance", remainingBalance),
		)
	case !mathutil.Valid(prepayAmount) || prepayAmount <= 0:
		c.logger.Warn("invalid prepayment amount",
			zap.String("op", "prepayment.validate"),
			zap.Float64("prepayAmount", prepayAmount),
		)
	case prepayAmount > remainingBalance:
		c.logger.Warn("prepayment amount exceeds remaining balance",
			zap.String("op", "prepayment.validate"),
			zap.Float64("prepayAmount", prepayAmount),
			zap.Float64("remainingBalance", remainingBalance),
		)
	case !mathutil.Valid(annualRatePercent) || annualRatePercent <= 0:
		c.logger.Warn("invalid interest rate",
			zap.String("op", "prepayment.validate"),
			zap.Float64("annualRatePercent", annualRatePercent),
		)
	case remainingMonths <= 0:
		c.logger.Warn("invalid remaining months",
			zap.String("op", "prepayment.validate"),
			zap.Int("remainingMonths", remainingMonths),
		)
	default:
		return true
	}
	return false
}

// breakEvenMonths returns how many months of average interest savings are
// needed to offset the fee.
func breakEvenMonths(fee, savedInterest float64, remainingMonths int) int {
	if savedInterest-fee <= 0 || savedInterest <= 0 || remainingMonths <= 0 {
		return 0
	}
	monthlySaving := savedInterest / float64(remainingMonths)
	return int(math.Ceil(fee / monthlySaving))
}
