package realestatetax

import (
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/datetime"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
	"go.uber.org/zap"
)

// TransferResult holds the capital gains tax figures. TaxRate is the
// applied marginal rate as a decimal; OwnershipRatio echoes the share used
// for joint-ownership scaling, in percent.
type TransferResult struct {
	TransferTax       float64
	TotalTax          float64
	CapitalGain       float64
	LongTermDeduction float64
	TaxRate           float64
	OwnershipRatio    float64
}

// ProgressiveBracket is one tier of the general capital gains schedule.
// UpperBound is inclusive; zero means open-ended. Deduction is the
// precomputed cumulative offset so tax = income×rate − deduction.
type ProgressiveBracket struct {
	UpperBound float64
	Rate       float64
	Deduction  float64
}

// DefaultProgressiveBrackets is the 2024 general capital gains schedule.
var DefaultProgressiveBrackets = []ProgressiveBracket{
	{UpperBound: 14_000_000, Rate: 0.06},
	{UpperBound: 50_000_000, Rate: 0.15, Deduction: 1_260_000},
	{UpperBound: 88_000_000, Rate: 0.24, Deduction: 5_760_000},
	{UpperBound: 150_000_000, Rate: 0.35, Deduction: 15_440_000},
	{UpperBound: 300_000_000, Rate: 0.38, Deduction: 19_940_000},
	{UpperBound: 500_000_000, Rate: 0.40, Deduction: 25_940_000},
	{UpperBound: 1_000_000_000, Rate: 0.42, Deduction: 35_940_000},
	{Rate: 0.45, Deduction: 65_940_000},
}

// Short-holding flat rates and the multi-home surcharge cap.
const (
	underOneYearRate  = 0.70
	underTwoYearsRate = 0.60
	surchargeRateCap  = 0.75
)

// TransferTaxSimple estimates the transfer tax on the raw capital gain at a
// flat 10% rate plus the 10% local surtax. No holding period or deductions
// are considered.
func (c *Calculator) TransferTaxSimple(salePrice, purchasePrice float64) TransferResult {
	if !c.validPrices(salePrice, purchasePrice, "realestatetax.TransferTaxSimple") {
		return TransferResult{}
	}

	capitalGain := salePrice - purchasePrice
	if capitalGain <= 0 {
		return TransferResult{CapitalGain: capitalGain}
	}

	const taxRate = 0.1
	transferTax := capitalGain * taxRate

	return TransferResult{
		TransferTax: transferTax,
		TotalTax:    transferTax + transferTax*constants.TransferLocalSurtaxRate,
		CapitalGain: capitalGain,
		TaxRate:     taxRate,
	}
}

// TransferTaxDetailed computes the transfer tax with holding-period rates,
// the long-term special deduction, the basic annual deduction, the
// multi-home adjustment-area surcharge, and joint-ownership scaling.
// Dates are ISO calendar dates; an unparseable pair or a transfer before
// acquisition yields a zero result. ownershipRatio is in percent; zero
// means sole ownership.
func (c *Calculator) TransferTaxDetailed(salePrice, purchasePrice float64, acquisitionDateStr, transferDateStr string, expense float64, multipleHomes int, adjustmentArea bool, ownershipRatio float64) TransferResult {
	op := "realestatetax.TransferTaxDetailed"
	if !c.validPrices(salePrice, purchasePrice, op) {
		return TransferResult{}
	}

	acquisitionDate, err := datetime.ParseDate(acquisitionDateStr)
	if err != nil {
		c.logger.Warn("invalid acquisition date",
			zap.String("op", op),
			zap.String("acquisitionDate", acquisitionDateStr),
			zap.Error(err),
		)
		return TransferResult{}
	}
	transferDate, err := datetime.ParseDate(transferDateStr)
	if err != nil {
		c.logger.Warn("invalid transfer date",
			zap.String("op", op),
			zap.String("transferDate", transferDateStr),
			zap.Error(err),
		)
		return TransferResult{}
	}
	if transferDate.Before(acquisitionDate) {
		c.logger.Warn("transfer date precedes acquisition date",
			zap.String("op", op),
			zap.String("acquisitionDate", acquisitionDateStr),
			zap.String("transferDate", transferDateStr),
		)
		return TransferResult{}
	}

	if !mathutil.Valid(expense) || expense < 0 {
		expense = 0
	}
	capitalGain := salePrice - purchasePrice - expense
	if capitalGain <= 0 {
		return TransferResult{CapitalGain: capitalGain}
	}

	holdingYears := datetime.HoldingYears(acquisitionDate, transferDate)

	// Long-term special deduction: 2% per year held from the third year,
	// capped at 30%.
	var longTermDeductionRate float64
	if holdingYears >= 3 {
		longTermDeductionRate = mathutil.Min(0.30, float64(holdingYears)*0.02)
	}
	longTermDeduction := capitalGain * longTermDeductionRate

	taxableIncome := capitalGain - longTermDeduction - constants.BasicTransferDeduction
	if taxableIncome <= 0 {
		return TransferResult{CapitalGain: capitalGain, LongTermDeduction: longTermDeduction}
	}

	var taxRate, progressiveDeduction float64
	switch {
	case holdingYears < 1:
		taxRate = underOneYearRate
	case holdingYears < 2:
		taxRate = underTwoYearsRate
	default:
		for _, bracket := range c.progressive {
			if bracket.UpperBound == 0 || taxableIncome <= bracket.UpperBound {
				taxRate = bracket.Rate
				progressiveDeduction = bracket.Deduction
				break
			}
		}
		// Multi-home surcharge in adjustment areas, progressive rates only.
		if adjustmentArea && multipleHomes > 1 && holdingYears >= 2 {
			if multipleHomes == 2 {
				taxRate += 0.20
			} else {
				taxRate += 0.30
			}
			taxRate = mathutil.Min(taxRate, surchargeRateCap)
		}
	}

	transferTax := taxableIncome*taxRate - progressiveDeduction
	localSurtax := transferTax * constants.TransferLocalSurtaxRate

	if ownershipRatio == 0 {
		ownershipRatio = 100
	}
	share := mathutil.Clamp(ownershipRatio/constants.PercentageMultiplier, 0.01, 1.0)

	return TransferResult{
		TransferTax:       transferTax * share,
		TotalTax:          (transferTax + localSurtax) * share,
		CapitalGain:       capitalGain,
		LongTermDeduction: longTermDeduction,
		TaxRate:           taxRate,
		OwnershipRatio:    share * constants.PercentageMultiplier,
	}
}

func (c *Calculator) validPrices(salePrice, purchasePrice float64, op string) bool {
	if !mathutil.Valid(salePrice) || salePrice <= 0 || !mathutil.Valid(purchasePrice) || purchasePrice < 0 {
		c.logger.Warn("invalid sale or purchase price",
			zap.String("op", op),
			zap.Float64("salePrice", salePrice),
			zap.Float64("purchasePrice", purchasePrice),
		)
		return false
	}
	return true
}
