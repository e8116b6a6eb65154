// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/krfincalc/krfincalc/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for krfincalc: the ambient
// logging/output/server options, regulatory defaults and table overrides,
// and the list of calculation requests to evaluate.
type Configuration struct {
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
	Server   ServerConfig  `yaml:"server,omitempty"`
	Defaults Defaults      `yaml:"defaults,omitempty"`
	Tables   Tables        `yaml:"tables,omitempty"`
	Requests []Request     `yaml:"requests,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ServerConfig holds the HTTP API options.
type ServerConfig struct {
	Address            string `yaml:"address,omitempty"`
	MaxUploadSizeBytes int64  `yaml:"maxUploadSizeBytes,omitempty"`
}

// Defaults holds the regulatory ratios applied when a request omits them.
type Defaults struct {
	DSRLimitRate      float64 `yaml:"dsrLimitRate,omitempty"`
	LTVLimitRate      float64 `yaml:"ltvLimitRate,omitempty"`
	LoanTermYears     int     `yaml:"loanTermYears,omitempty"`
	PrepaymentFeeRate float64 `yaml:"prepaymentFeeRate,omitempty"`
}

// Tables holds optional overrides for the statutory bracket schedules so a
// regulation change is a config edit rather than a code change. Empty
// slices keep the built-in schedules.
type Tables struct {
	BrokerageSaleResidential   []FeeBracket `yaml:"brokerageSaleResidential,omitempty"`
	BrokerageRentalResidential []FeeBracket `yaml:"brokerageRentalResidential,omitempty"`
	TransferProgressive        []TaxBracket `yaml:"transferProgressive,omitempty"`
}

// FeeBracket mirrors one brokerage fee tier. Rates are decimals; a zero
// UpperBound is open-ended and a zero Cap means uncapped.
type FeeBracket struct {
	UpperBound float64 `yaml:"upperBound,omitempty"`
	Rate       float64 `yaml:"rate"`
	Cap        float64 `yaml:"cap,omitempty"`
}

// TaxBracket mirrors one progressive tax tier with its cumulative
// deduction.
type TaxBracket struct {
	UpperBound float64 `yaml:"upperBound,omitempty"`
	Rate       float64 `yaml:"rate"`
	Deduction  float64 `yaml:"deduction,omitempty"`
}

// Request is one calculation to evaluate. Type selects the calculator and
// determines which of the remaining fields are read; unset fields fall back
// to Defaults where one exists.
type Request struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Type string `yaml:"type" json:"type"`

	// Loans and amortization
	Principal  float64 `yaml:"principal,omitempty" json:"principal,omitempty"`
	AnnualRate float64 `yaml:"annualRate,omitempty" json:"annualRate,omitempty"`
	Years      int     `yaml:"years,omitempty" json:"years,omitempty"`
	Months     int     `yaml:"months,omitempty" json:"months,omitempty"`

	// Borrowing limits and affordability
	MonthlyIncome       float64 `yaml:"monthlyIncome,omitempty" json:"monthlyIncome,omitempty"`
	ExistingMonthlyDebt float64 `yaml:"existingMonthlyDebt,omitempty" json:"existingMonthlyDebt,omitempty"`
	PropertyValue       float64 `yaml:"propertyValue,omitempty" json:"propertyValue,omitempty"`
	DSRLimitRate        float64 `yaml:"dsrLimitRate,omitempty" json:"dsrLimitRate,omitempty"`
	LTVLimitRate        float64 `yaml:"ltvLimitRate,omitempty" json:"ltvLimitRate,omitempty"`
	OwnFunds            float64 `yaml:"ownFunds,omitempty" json:"ownFunds,omitempty"`
	AdditionalCostRate  float64 `yaml:"additionalCostRate,omitempty" json:"additionalCostRate,omitempty"`

	// Prepayment
	RemainingBalance float64 `yaml:"remainingBalance,omitempty" json:"remainingBalance,omitempty"`
	PrepaymentAmount float64 `yaml:"prepaymentAmount,omitempty" json:"prepaymentAmount,omitempty"`
	RemainingMonths  int     `yaml:"remainingMonths,omitempty" json:"remainingMonths,omitempty"`
	FeeRate          float64 `yaml:"feeRate,omitempty" json:"feeRate,omitempty"`

	// Brokerage
	Amount       float64 `yaml:"amount,omitempty" json:"amount,omitempty"`
	PropertyType string  `yaml:"propertyType,omitempty" json:"propertyType,omitempty"`
	Deposit      float64 `yaml:"deposit,omitempty" json:"deposit,omitempty"`
	MonthlyRent  float64 `yaml:"monthlyRent,omitempty" json:"monthlyRent,omitempty"`
	CustomRate   float64 `yaml:"customRate,omitempty" json:"customRate,omitempty"`

	// Real estate taxes
	Price             float64 `yaml:"price,omitempty" json:"price,omitempty"`
	HomeCount         int     `yaml:"homeCount,omitempty" json:"homeCount,omitempty"`
	AcquisitionMethod string  `yaml:"acquisitionMethod,omitempty" json:"acquisitionMethod,omitempty"`
	AdjustmentArea    bool    `yaml:"adjustmentArea,omitempty" json:"adjustmentArea,omitempty"`
	ExclusiveArea     float64 `yaml:"exclusiveArea,omitempty" json:"exclusiveArea,omitempty"`
	SalePrice         float64 `yaml:"salePrice,omitempty" json:"salePrice,omitempty"`
	PurchasePrice     float64 `yaml:"purchasePrice,omitempty" json:"purchasePrice,omitempty"`
	AcquisitionDate   string  `yaml:"acquisitionDate,omitempty" json:"acquisitionDate,omitempty"`
	TransferDate      string  `yaml:"transferDate,omitempty" json:"transferDate,omitempty"`
	Expense           float64 `yaml:"expense,omitempty" json:"expense,omitempty"`
	OwnershipRatio    float64 `yaml:"ownershipRatio,omitempty" json:"ownershipRatio,omitempty"`

	// Holding tax
	Age int `yaml:"age,omitempty" json:"age,omitempty"`

	// Lease conversion
	JeonseAmount   float64 `yaml:"jeonseAmount,omitempty" json:"jeonseAmount,omitempty"`
	MarketRate     float64 `yaml:"marketRate,omitempty" json:"marketRate,omitempty"`
	ConversionRate float64 `yaml:"conversionRate,omitempty" json:"conversionRate,omitempty"`
	ContractMonths int     `yaml:"contractMonths,omitempty" json:"contractMonths,omitempty"`
	SavingsRate    float64 `yaml:"savingsRate,omitempty" json:"savingsRate,omitempty"`

	// Savings
	MonthlyAmount float64 `yaml:"monthlyAmount,omitempty" json:"monthlyAmount,omitempty"`
	InterestType  string  `yaml:"interestType,omitempty" json:"interestType,omitempty"`
	TaxRate       float64 `yaml:"taxRate,omitempty" json:"taxRate,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset regulatory and server options with the
// built-in defaults.
func (conf *Configuration) ApplyDefaults() {
	if conf.Defaults.DSRLimitRate == 0 {
		conf.Defaults.DSRLimitRate = constants.DefaultDSRLimitRate
	}
	if conf.Defaults.LTVLimitRate == 0 {
		conf.Defaults.LTVLimitRate = constants.DefaultLTVLimitRate
	}
	if conf.Defaults.LoanTermYears == 0 {
		conf.Defaults.LoanTermYears = constants.DefaultLoanTermYears
	}
	if conf.Defaults.PrepaymentFeeRate == 0 {
		conf.Defaults.PrepaymentFeeRate = constants.DefaultPrepaymentFeeRate
	}
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Server.MaxUploadSizeBytes == 0 {
		conf.Server.MaxUploadSizeBytes = constants.DefaultMaxUploadSizeBytes
	}
}

// ValidateConfiguration checks the loaded configuration for conditions
// worth surfacing before any calculation runs. It returns warnings rather
// than errors; an engine run with warnings proceeds on the valid requests.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	for i, request := range conf.Requests {
		if request.Type == "" {
			warnings = append(warnings, fmt.Sprintf("request %d (%s) has no type and will be skipped", i, request.Name))
		}
	}
	if conf.Output.Format != "" &&
		conf.Output.Format != constants.OutputFormatPretty &&
		conf.Output.Format != constants.OutputFormatCSV &&
		conf.Output.Format != constants.OutputFormatJSON {
		warnings = append(warnings, fmt.Sprintf("unknown output format %q, falling back to %s", conf.Output.Format, constants.OutputFormatPretty))
	}
	return warnings
}
