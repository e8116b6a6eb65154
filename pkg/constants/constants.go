// Package constants provides shared constants for the krfincalc calculators.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DaysPerYear is the average-year divisor used for holding-period
	// calculations (leap years accounted for)
	DaysPerYear = 365.25

	// CurrencyTolerance is the tolerance for won comparisons (half a won)
	CurrencyTolerance = 0.5
)

// Statutory rates and deductions (2024 schedules)
const (
	// WithholdingTaxRate is the statutory withholding on interest income, in percent
	WithholdingTaxRate = 15.4

	// VATRate is the value-added tax applied to brokerage fees
	VATRate = 0.1

	// BasicTransferDeduction is the annual basic deduction for capital gains, in won
	BasicTransferDeduction = 2_500_000

	// TransferLocalSurtaxRate is the local income tax applied on top of transfer tax
	TransferLocalSurtaxRate = 0.1

	// LeaseDepositMultiplier converts monthly rent into a deemed transaction
	// amount for brokerage fee purposes
	LeaseDepositMultiplier = 100

	// LeaseDepositMultiplierSmall replaces LeaseDepositMultiplier when the
	// deemed transaction amount falls below LeaseSmallThreshold
	LeaseDepositMultiplierSmall = 70

	// LeaseSmallThreshold is the deemed-amount threshold for the small-lease
	// multiplier switch, in won
	LeaseSmallThreshold = 50_000_000
)

// Default regulatory ratios used when the caller does not supply one
const (
	// DefaultDSRLimitRate is the default debt service ratio cap, in percent
	DefaultDSRLimitRate = 40.0

	// DefaultLTVLimitRate is the default loan-to-value cap, in percent
	DefaultLTVLimitRate = 70.0

	// DefaultLoanTermYears is the default amortization term for limit checks
	DefaultLoanTermYears = 30

	// DefaultPrepaymentFeeRate is the customary prepayment fee, in percent
	DefaultPrepaymentFeeRate = 1.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML
	// scenario files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
