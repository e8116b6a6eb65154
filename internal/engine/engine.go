// Package engine maps configured calculation requests onto the calculator
// packages and renders their results as named-field records.
package engine

import (
	"fmt"

	"github.com/krfincalc/krfincalc/internal/config"
	"github.com/krfincalc/krfincalc/pkg/affordability"
	"github.com/krfincalc/krfincalc/pkg/brokerage"
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/holdingtax"
	"github.com/krfincalc/krfincalc/pkg/leaseconv"
	"github.com/krfincalc/krfincalc/pkg/loan"
	"github.com/krfincalc/krfincalc/pkg/loanlimit"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
	"github.com/krfincalc/krfincalc/pkg/output"
	"github.com/krfincalc/krfincalc/pkg/prepayment"
	"github.com/krfincalc/krfincalc/pkg/realestatetax"
	"github.com/krfincalc/krfincalc/pkg/savings"
	"go.uber.org/zap"
)

// Request type identifiers accepted by Run.
const (
	TypeLoanEqualPayment    = "loan-equal-payment"
	TypeLoanEqualPrincipal  = "loan-equal-principal"
	TypeMortgageLimit       = "mortgage-limit"
	TypeCreditLimit         = "credit-limit"
	TypeAffordability       = "affordability"
	TypePrepaymentPartial   = "prepayment-partial"
	TypePrepaymentFull      = "prepayment-full"
	TypeBrokerageSale       = "brokerage-sale"
	TypeBrokerageRental     = "brokerage-rental"
	TypeBrokerageLease      = "brokerage-lease"
	TypeBrokerageCustom     = "brokerage-custom"
	TypeAcquisitionTax      = "acquisition-tax"
	TypeTransferTaxSimple   = "transfer-tax-simple"
	TypeTransferTaxDetailed = "transfer-tax-detailed"
	TypeHoldingTax          = "holding-tax"
	TypeLeaseConversion     = "lease-conversion"
	TypeJeonseToMonthly     = "jeonse-to-monthly"
	TypeMonthlyToJeonse     = "monthly-to-jeonse"
	TypeSavingsDeposit      = "savings-deposit"
	TypeSavingsInstallment  = "savings-installment"
)

// Engine evaluates calculation requests against the configured regulatory
// defaults and bracket tables.
type Engine struct {
	logger      *zap.Logger
	defaults    config.Defaults
	saleTable   brokerage.Table
	rentalTable brokerage.Table
	taxCalc     *realestatetax.Calculator
	holdingCalc *holdingtax.Calculator
	prepayCalc  *prepayment.Calculator
}

// New creates an engine from the loaded configuration, installing any
// bracket-table overrides.
func New(logger *zap.Logger, conf *config.Configuration) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	saleTable := brokerage.DefaultSaleTable
	if len(conf.Tables.BrokerageSaleResidential) > 0 {
		saleTable.Residential = feeBrackets(conf.Tables.BrokerageSaleResidential)
	}
	rentalTable := brokerage.DefaultRentalTable
	if len(conf.Tables.BrokerageRentalResidential) > 0 {
		rentalTable.Residential = feeBrackets(conf.Tables.BrokerageRentalResidential)
	}

	return &Engine{
		logger:      logger,
		defaults:    conf.Defaults,
		saleTable:   saleTable,
		rentalTable: rentalTable,
		taxCalc:     realestatetax.NewWithBrackets(logger, taxBrackets(conf.Tables.TransferProgressive)),
		holdingCalc: holdingtax.New(logger),
		prepayCalc:  prepayment.New(logger),
	}
}

// RunAll evaluates every request in order. A request that fails to
// dispatch contributes a result carrying only a warning, so one bad entry
// does not abort a scenario.
func (e *Engine) RunAll(requests []config.Request) []output.Result {
	results := make([]output.Result, 0, len(requests))
	for i, request := range requests {
		result, err := e.Run(request)
		if err != nil {
			e.logger.Warn("request skipped",
				zap.String("op", "engine.RunAll"),
				zap.Int("index", i),
				zap.String("type", request.Type),
				zap.Error(err),
			)
			result = output.Result{
				Type:     request.Type,
				Warnings: []string{err.Error()},
			}
		}
		result.Name = requestName(request, i)
		results = append(results, result)
	}
	return results
}

// Run evaluates a single request.
func (e *Engine) Run(request config.Request) (output.Result, error) {
	result := output.Result{Name: requestName(request, 0), Type: request.Type}

	switch request.Type {
	case TypeLoanEqualPayment:
		result.Fields = loanFields(loan.EqualPayment(request.Principal, request.AnnualRate, e.years(request)))
	case TypeLoanEqualPrincipal:
		result.Fields = loanFields(loan.EqualPrincipal(request.Principal, request.AnnualRate, e.years(request)))

	case TypeMortgageLimit:
		limits := loanlimit.MortgageLimit(request.MonthlyIncome, request.ExistingMonthlyDebt,
			request.PropertyValue, request.AnnualRate, e.years(request), e.dsrRate(request), e.ltvRate(request))
		result.Fields = limitFields(limits)
	case TypeCreditLimit:
		limits := loanlimit.CreditLimit(request.MonthlyIncome, request.ExistingMonthlyDebt,
			request.AnnualRate, e.years(request), e.dsrRate(request))
		result.Fields = limitFields(limits)

	case TypeAffordability:
		afford := affordability.Calculate(request.MonthlyIncome, request.ExistingMonthlyDebt,
			request.OwnFunds, request.AnnualRate, e.years(request),
			e.dsrRate(request), e.ltvRate(request), request.AdditionalCostRate)
		result.Fields = []output.Field{
			{Label: "max loan amount", Value: afford.MaxLoanAmount},
			{Label: "total budget", Value: afford.TotalBudget},
			{Label: "affordable price", Value: afford.AffordablePrice},
			{Label: "monthly payment", Value: afford.MonthlyPayment},
		}

	case TypePrepaymentPartial:
		prepaid := e.prepayCalc.Partial(request.RemainingBalance, request.PrepaymentAmount,
			request.AnnualRate, request.RemainingMonths, e.feeRate(request))
		result.Fields = prepaymentFields(prepaid)
	case TypePrepaymentFull:
		prepaid := e.prepayCalc.Full(request.RemainingBalance, request.AnnualRate,
			request.RemainingMonths, e.feeRate(request))
		result.Fields = prepaymentFields(prepaid)

	case TypeBrokerageSale:
		result.Fields = brokerageFields(e.saleTable.Fee(request.Amount, brokerage.PropertyType(request.PropertyType)))
	case TypeBrokerageRental:
		result.Fields = brokerageFields(e.rentalTable.Fee(request.Amount, brokerage.PropertyType(request.PropertyType)))
	case TypeBrokerageLease:
		result.Fields = brokerageFields(e.rentalTable.LeaseFee(request.Deposit, request.MonthlyRent, brokerage.PropertyType(request.PropertyType)))
	case TypeBrokerageCustom:
		result.Fields = brokerageFields(brokerage.CustomFee(request.Amount, request.CustomRate))

	case TypeAcquisitionTax:
		tax := e.taxCalc.AcquisitionTax(request.Price, realestatetax.PropertyType(request.PropertyType),
			request.HomeCount, realestatetax.AcquisitionMethod(request.AcquisitionMethod),
			request.AdjustmentArea, request.ExclusiveArea)
		result.Fields = []output.Field{
			{Label: "acquisition tax", Value: mathutil.RoundWon(tax.AcquisitionTax)},
			{Label: "acquisition tax rate", Value: tax.AcquisitionTaxRate * 100, Unit: output.Percent},
			{Label: "local education tax", Value: mathutil.RoundWon(tax.LocalEducationTax)},
			{Label: "rural special tax", Value: mathutil.RoundWon(tax.RuralSpecialTax)},
			{Label: "total tax", Value: mathutil.RoundWon(tax.TotalTax)},
		}

	case TypeTransferTaxSimple:
		result.Fields = transferFields(e.taxCalc.TransferTaxSimple(request.SalePrice, request.PurchasePrice))
	case TypeTransferTaxDetailed:
		transfer := e.taxCalc.TransferTaxDetailed(request.SalePrice, request.PurchasePrice,
			request.AcquisitionDate, request.TransferDate, request.Expense,
			request.HomeCount, request.AdjustmentArea, request.OwnershipRatio)
		result.Fields = transferFields(transfer)

	case TypeHoldingTax:
		held := e.holdingCalc.HoldingTax(request.PropertyValue, holdingtax.PropertyType(request.PropertyType),
			request.Age, request.HomeCount)
		result.Fields = []output.Field{
			{Label: "property tax", Value: mathutil.RoundWon(held.PropertyTax)},
			{Label: "comprehensive tax", Value: mathutil.RoundWon(held.ComprehensiveTax)},
			{Label: "total tax", Value: mathutil.RoundWon(held.TotalTax)},
		}

	case TypeLeaseConversion:
		conv := leaseconv.ConversionRate(request.Deposit, request.MonthlyRent, request.JeonseAmount, request.MarketRate)
		result.Fields = []output.Field{
			{Label: "conversion rate", Value: conv.ConversionRate, Unit: output.Percent},
			{Label: "better choice", Text: conv.BetterChoice, Unit: output.Text},
			{Label: "yearly difference", Value: mathutil.RoundWon(conv.YearlyDifference)},
		}
	case TypeJeonseToMonthly:
		direction := leaseconv.JeonseToMonthly(request.JeonseAmount, request.ConversionRate,
			request.ContractMonths, request.SavingsRate)
		result.Fields = directionFields("monthly rent", direction)
	case TypeMonthlyToJeonse:
		direction := leaseconv.MonthlyToJeonse(request.Deposit, request.MonthlyRent,
			request.ConversionRate, request.ContractMonths, request.SavingsRate)
		result.Fields = directionFields("jeonse amount", direction)

	case TypeSavingsDeposit:
		result.Fields = savingsFields(savings.DepositWithOptions(request.Principal, request.AnnualRate,
			request.Months, interestType(request), taxRate(request)))
	case TypeSavingsInstallment:
		result.Fields = savingsFields(savings.InstallmentWithOptions(request.MonthlyAmount, request.AnnualRate,
			request.Months, interestType(request), taxRate(request)))

	default:
		return output.Result{}, fmt.Errorf("unknown request type %q", request.Type)
	}

	return result, nil
}

func (e *Engine) years(request config.Request) int {
	if request.Years > 0 {
		return request.Years
	}
	return e.defaults.LoanTermYears
}

func (e *Engine) dsrRate(request config.Request) float64 {
	if request.DSRLimitRate > 0 {
		return request.DSRLimitRate
	}
	return e.defaults.DSRLimitRate
}

func (e *Engine) ltvRate(request config.Request) float64 {
	if request.LTVLimitRate > 0 {
		return request.LTVLimitRate
	}
	return e.defaults.LTVLimitRate
}

func (e *Engine) feeRate(request config.Request) float64 {
	if request.FeeRate > 0 {
		return request.FeeRate
	}
	return e.defaults.PrepaymentFeeRate
}

func interestType(request config.Request) savings.InterestType {
	if request.InterestType == string(savings.Compound) {
		return savings.Compound
	}
	return savings.Simple
}

func taxRate(request config.Request) float64 {
	if request.TaxRate > 0 {
		return request.TaxRate
	}
	return constants.WithholdingTaxRate
}

func requestName(request config.Request, index int) string {
	if request.Name != "" {
		return request.Name
	}
	return fmt.Sprintf("request-%d", index)
}

func feeBrackets(brackets []config.FeeBracket) []brokerage.Bracket {
	converted := make([]brokerage.Bracket, len(brackets))
	for i, bracket := range brackets {
		converted[i] = brokerage.Bracket{UpperBound: bracket.UpperBound, Rate: bracket.Rate, Cap: bracket.Cap}
	}
	return converted
}

func taxBrackets(brackets []config.TaxBracket) []realestatetax.ProgressiveBracket {
	converted := make([]realestatetax.ProgressiveBracket, len(brackets))
	for i, bracket := range brackets {
		converted[i] = realestatetax.ProgressiveBracket{UpperBound: bracket.UpperBound, Rate: bracket.Rate, Deduction: bracket.Deduction}
	}
	return converted
}

func loanFields(summary loan.Summary) []output.Field {
	return []output.Field{
		{Label: "monthly payment", Value: mathutil.RoundWon(summary.MonthlyPayment)},
		{Label: "total payment", Value: mathutil.RoundWon(summary.TotalPayment)},
		{Label: "total interest", Value: mathutil.RoundWon(summary.TotalInterest)},
		{Label: "first month principal", Value: mathutil.RoundWon(summary.FirstMonthPrincipal)},
		{Label: "first month interest", Value: mathutil.RoundWon(summary.FirstMonthInterest)},
	}
}

func limitFields(limits loanlimit.Limits) []output.Field {
	return []output.Field{
		{Label: "dsr limit", Value: mathutil.RoundWon(limits.DSRLimit)},
		{Label: "ltv limit", Value: mathutil.RoundWon(limits.LTVLimit)},
		{Label: "final limit", Value: mathutil.RoundWon(limits.FinalLimit)},
		{Label: "monthly payment", Value: mathutil.RoundWon(limits.MonthlyPayment)},
	}
}

func prepaymentFields(result prepayment.Result) []output.Field {
	return []output.Field{
		{Label: "prepayment fee", Value: result.PrepaymentFee},
		{Label: "saved interest", Value: result.SavedInterest},
		{Label: "net savings", Value: result.NetSavings},
		{Label: "new monthly payment", Value: result.NewMonthlyPayment},
		{Label: "break even", Value: float64(result.BreakEvenMonths), Unit: output.Months},
	}
}

func brokerageFields(result brokerage.Result) []output.Field {
	return []output.Field{
		{Label: "rate", Value: result.Rate, Unit: output.Percent},
		{Label: "fee", Value: result.Fee},
		{Label: "vat", Value: result.VAT},
		{Label: "total", Value: result.Total},
	}
}

func transferFields(result realestatetax.TransferResult) []output.Field {
	return []output.Field{
		{Label: "transfer tax", Value: mathutil.RoundWon(result.TransferTax)},
		{Label: "total tax", Value: mathutil.RoundWon(result.TotalTax)},
		{Label: "capital gain", Value: mathutil.RoundWon(result.CapitalGain)},
		{Label: "long term deduction", Value: mathutil.RoundWon(result.LongTermDeduction)},
		{Label: "tax rate", Value: result.TaxRate * 100, Unit: output.Percent},
	}
}

func directionFields(label string, result leaseconv.DirectionResult) []output.Field {
	return []output.Field{
		{Label: label, Value: mathutil.RoundWon(result.Converted)},
		{Label: "opportunity cost", Value: mathutil.RoundWon(result.OpportunityCost)},
		{Label: "total rent", Value: mathutil.RoundWon(result.TotalRent)},
		{Label: "recommendation", Text: result.Recommendation, Unit: output.Text},
	}
}

func savingsFields(result savings.Result) []output.Field {
	return []output.Field{
		{Label: "principal", Value: mathutil.RoundWon(result.Principal)},
		{Label: "before tax interest", Value: mathutil.RoundWon(result.BeforeTaxInterest)},
		{Label: "tax", Value: mathutil.RoundWon(result.Tax)},
		{Label: "after tax interest", Value: mathutil.RoundWon(result.AfterTaxInterest)},
		{Label: "maturity amount", Value: mathutil.RoundWon(result.MaturityAmount)},
	}
}
