package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/krfincalc/krfincalc/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	content := `---
logging:
  level: debug
  format: console
output:
  format: json
defaults:
  dsrLimitRate: 35
tables:
  brokerageSaleResidential:
    - upperBound: 100000000
      rate: 0.005
      cap: 400000
    - rate: 0.004
requests:
  - name: my-loan
    type: loan-equal-payment
    principal: 100000000
    annualRate: 3.6
    years: 10
  - name: my-fee
    type: brokerage-sale
    amount: 45000000
    propertyType: apartment
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want debug/console", conf.Logging)
	}
	if conf.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", conf.Output.Format)
	}

	// Explicit values survive; the rest fall back to the built-ins.
	if conf.Defaults.DSRLimitRate != 35 {
		t.Errorf("Defaults.DSRLimitRate = %v, want 35", conf.Defaults.DSRLimitRate)
	}
	if conf.Defaults.LTVLimitRate != constants.DefaultLTVLimitRate {
		t.Errorf("Defaults.LTVLimitRate = %v, want %v", conf.Defaults.LTVLimitRate, constants.DefaultLTVLimitRate)
	}
	if conf.Defaults.LoanTermYears != constants.DefaultLoanTermYears {
		t.Errorf("Defaults.LoanTermYears = %v, want %v", conf.Defaults.LoanTermYears, constants.DefaultLoanTermYears)
	}
	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("Server.Address = %q, want %q", conf.Server.Address, constants.DefaultServerAddress)
	}

	if len(conf.Tables.BrokerageSaleResidential) != 2 {
		t.Fatalf("BrokerageSaleResidential has %d brackets, want 2", len(conf.Tables.BrokerageSaleResidential))
	}
	if conf.Tables.BrokerageSaleResidential[0].Cap != 400_000 {
		t.Errorf("bracket cap = %v, want 400000", conf.Tables.BrokerageSaleResidential[0].Cap)
	}

	if len(conf.Requests) != 2 {
		t.Fatalf("parsed %d requests, want 2", len(conf.Requests))
	}
	if conf.Requests[0].Name != "my-loan" || conf.Requests[0].Principal != 100_000_000 {
		t.Errorf("request 0 = %+v", conf.Requests[0])
	}
	if conf.Requests[1].Type != "brokerage-sale" || conf.Requests[1].PropertyType != "apartment" {
		t.Errorf("request 1 = %+v", conf.Requests[1])
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfiguration() on a missing file returned nil error")
	}
}

func TestApplyDefaults(t *testing.T) {
	var conf Configuration
	conf.ApplyDefaults()

	if conf.Defaults.DSRLimitRate != constants.DefaultDSRLimitRate {
		t.Errorf("DSRLimitRate = %v, want %v", conf.Defaults.DSRLimitRate, constants.DefaultDSRLimitRate)
	}
	if conf.Defaults.PrepaymentFeeRate != constants.DefaultPrepaymentFeeRate {
		t.Errorf("PrepaymentFeeRate = %v, want %v", conf.Defaults.PrepaymentFeeRate, constants.DefaultPrepaymentFeeRate)
	}
	if conf.Server.MaxUploadSizeBytes != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("MaxUploadSizeBytes = %v, want %v", conf.Server.MaxUploadSizeBytes, constants.DefaultMaxUploadSizeBytes)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := Configuration{
		Output: OutputConfig{Format: "xml"},
		Requests: []Request{
			{Name: "ok", Type: "loan-equal-payment"},
			{Name: "typeless"},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{
		Output:   OutputConfig{Format: "pretty"},
		Requests: []Request{{Type: "holding-tax"}},
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
