// Package realestatetax calculates Korean acquisition tax and capital
// gains (transfer) tax.
package realestatetax

import (
	"github.com/krfincalc/krfincalc/pkg/mathutil"
	"go.uber.org/zap"
)

// PropertyType is the acquisition-tax property category.
type PropertyType string

const (
	House    PropertyType = "house"
	Farmland PropertyType = "farmland"
	Land     PropertyType = "land"
	Other    PropertyType = "other"
)

// AcquisitionMethod selects the rate schedule for an acquisition.
type AcquisitionMethod string

const (
	Purchase    AcquisitionMethod = "purchase"
	Gift        AcquisitionMethod = "gift"
	Inheritance AcquisitionMethod = "inheritance"
	// Original is original acquisition, i.e. new construction.
	Original AcquisitionMethod = "original"
)

// AcquisitionResult itemizes the acquisition tax. Rates are decimals of the
// price.
type AcquisitionResult struct {
	AcquisitionTax     float64
	AcquisitionTaxRate float64
	LocalEducationTax  float64
	RuralSpecialTax    float64
	TotalTax           float64
}

// rateSet bundles the three component rates of an acquisition.
type rateSet struct {
	base           float64
	localEducation float64
	ruralSpecial   float64
}

// Calculator computes real-estate taxes. A nil logger is tolerated.
type Calculator struct {
	logger      *zap.Logger
	progressive []ProgressiveBracket
}

// New creates a real-estate tax calculator using the built-in progressive
// transfer-tax schedule.
func New(logger *zap.Logger) *Calculator {
	return NewWithBrackets(logger, DefaultProgressiveBrackets)
}

// NewWithBrackets creates a calculator with a replacement progressive
// schedule, e.g. loaded from configuration after a regulation change.
func NewWithBrackets(logger *zap.Logger, progressive []ProgressiveBracket) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(progressive) == 0 {
		progressive = DefaultProgressiveBrackets
	}
	return &Calculator{logger: logger, progressive: progressive}
}

// AcquisitionTax itemizes the one-time tax on acquiring a property.
// adjustmentArea marks government-designated speculation zones, which carry
// punitive multi-home rates. exclusiveArea is in square meters; houses over
// 85㎡ additionally owe rural special tax.
func (c *Calculator) AcquisitionTax(price float64, propertyType PropertyType, homeCount int, method AcquisitionMethod, adjustmentArea bool, exclusiveArea float64) AcquisitionResult {
	if !mathutil.Valid(price) || price <= 0 {
		c.logger.Warn("invalid property price",
			zap.String("op", "realestatetax.AcquisitionTax"),
			zap.Float64("price", price),
		)
		return AcquisitionResult{}
	}

	var rates rateSet
	switch method {
	case Purchase:
		rates = purchaseRates(price, propertyType, homeCount, adjustmentArea, exclusiveArea)
	case Gift:
		rates = rateSet{base: 0.035, localEducation: 0.003}
	case Inheritance:
		rates = inheritanceRates(propertyType)
	case Original:
		// New construction: standard 2.8% with (rate-2%)×20% education tax.
		rates = rateSet{base: 0.028, localEducation: 0.0016}
	default:
		c.logger.Warn("unknown acquisition method",
			zap.String("op", "realestatetax.AcquisitionTax"),
			zap.String("method", string(method)),
		)
	}

	acquisitionTax := price * rates.base
	localEducationTax := price * rates.localEducation
	ruralSpecialTax := price * rates.ruralSpecial

	return AcquisitionResult{
		AcquisitionTax:     acquisitionTax,
		AcquisitionTaxRate: rates.base,
		LocalEducationTax:  localEducationTax,
		RuralSpecialTax:    ruralSpecialTax,
		TotalTax:           acquisitionTax + localEducationTax + ruralSpecialTax,
	}
}

func purchaseRates(price float64, propertyType PropertyType, homeCount int, adjustmentArea bool, exclusiveArea float64) rateSet {
	if homeCount < 1 {
		homeCount = 1
	}

	if propertyType == House {
		return housePurchaseRates(price, homeCount, adjustmentArea, exclusiveArea)
	}

	var rates rateSet
	switch propertyType {
	case Farmland:
		rates.base = 0.03
		rates.ruralSpecial = 0.002
	default:
		// Land and other: flat 4%.
		rates.base = 0.04
	}
	rates.localEducation = rates.base * 0.1
	return rates
}

// housePurchaseRates implements the 2024 house purchase schedule: tiered on
// price, home count, and adjustment-area designation, with a continuously
// variable rate between 600M and 900M won for single-home buyers.
func housePurchaseRates(price float64, homeCount int, adjustmentArea bool, exclusiveArea float64) rateSet {
	multiAdjusted := homeCount > 1 && adjustmentArea

	var base float64
	switch {
	case price <= 600_000_000:
		if multiAdjusted {
			base = 0.08
		} else {
			base = 0.01
		}
	case price <= 900_000_000:
		switch {
		case homeCount == 1:
			// Linear interpolation from 1% at 600M to 3% at 900M.
			base = (price*2/300_000_000 - 3) / 100
		case adjustmentArea:
			base = 0.08
		default:
			base = 0.03
		}
	default:
		if multiAdjusted {
			base = 0.12
		} else {
			base = 0.03
		}
	}

	rates := rateSet{base: base, localEducation: base * 0.1}
	// Houses up to 85㎡ are exempt from rural special tax.
	if exclusiveArea > 85 {
		rates.ruralSpecial = 0.002
	}
	return rates
}

func inheritanceRates(propertyType PropertyType) rateSet {
	if propertyType == Farmland {
		return rateSet{base: 0.023, localEducation: 0.0016, ruralSpecial: 0.002}
	}
	return rateSet{base: 0.028, localEducation: 0.0016}
}
