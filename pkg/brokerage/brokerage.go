// Package brokerage calculates statutory brokerage fee caps for property
// sales and rentals. The legal fee schedules are plain data values so a
// regulation change is a table edit rather than a code edit.
package brokerage

import (
	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/krfincalc/krfincalc/pkg/mathutil"
)

// PropertyType is the brokerage-law property category. Residential
// categories (apartment, house, residential) share one tiered schedule.
type PropertyType string

const (
	Apartment   PropertyType = "apartment"
	House       PropertyType = "house"
	Residential PropertyType = "residential"
	Officetel   PropertyType = "officetel"
	Commercial  PropertyType = "commercial"
	Land        PropertyType = "land"
)

// Bracket is one price tier of a residential fee schedule. UpperBound is
// exclusive; zero means the bracket is open-ended. Cap is an absolute fee
// ceiling in won; zero means the bracket is uncapped. Rates are decimals
// (0.004 = 0.4%).
//
// The statutory schedule is not monotonic in either rate or cap; the tiers
// below reproduce the legal table as-is.
type Bracket struct {
	UpperBound float64
	Rate       float64
	Cap        float64
}

// Table is a complete fee schedule for one transaction kind.
type Table struct {
	Residential    []Bracket
	OfficetelRate  float64
	CommercialRate float64
}

// DefaultSaleTable is the statutory schedule for sale and exchange
// transactions.
var DefaultSaleTable = Table{
	Residential: []Bracket{
		{UpperBound: 50_000_000, Rate: 0.006, Cap: 250_000},
		{UpperBound: 200_000_000, Rate: 0.005, Cap: 800_000},
		{UpperBound: 900_000_000, Rate: 0.004},
		{UpperBound: 1_200_000_000, Rate: 0.005},
		{UpperBound: 1_500_000_000, Rate: 0.006},
		{Rate: 0.007},
	},
	OfficetelRate:  0.004,
	CommercialRate: 0.009,
}

// DefaultRentalTable is the statutory schedule for lease transactions.
var DefaultRentalTable = Table{
	Residential: []Bracket{
		{UpperBound: 50_000_000, Rate: 0.005, Cap: 200_000},
		{UpperBound: 100_000_000, Rate: 0.004, Cap: 300_000},
		{UpperBound: 600_000_000, Rate: 0.003},
		{UpperBound: 1_200_000_000, Rate: 0.004},
		{UpperBound: 1_500_000_000, Rate: 0.005},
		{Rate: 0.006},
	},
	OfficetelRate:  0.004,
	CommercialRate: 0.009,
}

// Result holds a fee quote. Rate is in percent; Fee, VAT, and Total are
// each independently rounded to whole won.
type Result struct {
	Rate  float64
	Fee   float64
	VAT   float64
	Total float64
}

// Fee applies the table to a transaction amount.
func (t Table) Fee(amount float64, propertyType PropertyType) Result {
	var rate, cap float64

	switch propertyType {
	case Apartment, House, Residential:
		for _, bracket := range t.Residential {
			if bracket.UpperBound == 0 || amount < bracket.UpperBound {
				rate = bracket.Rate
				cap = bracket.Cap
				break
			}
		}
	case Officetel:
		rate = t.OfficetelRate
	default:
		rate = t.CommercialRate
	}

	fee := amount * rate
	if cap > 0 {
		fee = mathutil.Min(fee, cap)
	}

	return newResult(rate*constants.PercentageMultiplier, fee)
}

// SaleFee quotes the fee cap for a sale at the default schedule.
func SaleFee(amount float64, propertyType PropertyType) Result {
	return DefaultSaleTable.Fee(amount, propertyType)
}

// RentalFee quotes the fee cap for a rental at the default schedule.
func RentalFee(amount float64, propertyType PropertyType) Result {
	return DefaultRentalTable.Fee(amount, propertyType)
}

// LeaseFee quotes the fee for a deposit-plus-monthly-rent lease. The lease
// is first converted to a deemed transaction amount of deposit + rent×100;
// below the 50M won threshold the law substitutes a ×70 multiplier.
func (t Table) LeaseFee(deposit, monthlyRent float64, propertyType PropertyType) Result {
	amount := deposit + monthlyRent*constants.LeaseDepositMultiplier
	if amount < constants.LeaseSmallThreshold {
		amount = deposit + monthlyRent*constants.LeaseDepositMultiplierSmall
	}
	return t.Fee(amount, propertyType)
}

// LeaseFee quotes a lease fee at the default rental schedule.
func LeaseFee(deposit, monthlyRent float64, propertyType PropertyType) Result {
	return DefaultRentalTable.LeaseFee(deposit, monthlyRent, propertyType)
}

// CustomFee bypasses the statutory tables with a negotiated rate, given in
// percent.
func CustomFee(amount, customRatePercent float64) Result {
	return newResult(customRatePercent, mathutil.ApplyPercentage(amount, customRatePercent))
}

func newResult(ratePercent, fee float64) Result {
	roundedFee := mathutil.RoundWon(fee)
	vat := mathutil.RoundWon(roundedFee * constants.VATRate)
	return Result{
		Rate:  ratePercent,
		Fee:   roundedFee,
		VAT:   vat,
		Total: roundedFee + vat,
	}
}
