package realestatetax

import (
	"math"
	"testing"
)

func TestTransferTaxSimple(t *testing.T) {
	calc := New(nil)

	result := calc.TransferTaxSimple(500_000_000, 400_000_000)

	if result.CapitalGain != 100_000_000 {
		t.Errorf("CapitalGain = %.2f, want 100000000", result.CapitalGain)
	}
	if result.TransferTax != 10_000_000 {
		t.Errorf("TransferTax = %.2f, want 10000000", result.TransferTax)
	}
	if math.Abs(result.TotalTax-11_000_000) > 0.01 {
		t.Errorf("TotalTax = %.2f, want 11000000", result.TotalTax)
	}
	if result.TaxRate != 0.1 {
		t.Errorf("TaxRate = %v, want 0.1", result.TaxRate)
	}
}

func TestTransferTaxSimpleLoss(t *testing.T) {
	calc := New(nil)

	result := calc.TransferTaxSimple(400_000_000, 500_000_000)

	if result.CapitalGain != -100_000_000 {
		t.Errorf("CapitalGain = %.2f, want -100000000", result.CapitalGain)
	}
	if result.TransferTax != 0 || result.TotalTax != 0 {
		t.Errorf("loss produced tax: %+v", result)
	}
}

func TestTransferTaxDetailed(t *testing.T) {
	calc := New(nil)

	// Nine calendar years minus a day gives 8 full holding years: 16%
	// long-term deduction on a 380M gain, landing in the 40% bracket.
	result := calc.TransferTaxDetailed(1_200_000_000, 800_000_000, "2015-03-10", "2024-03-10", 20_000_000, 1, false, 100)

	if result.CapitalGain != 380_000_000 {
		t.Errorf("CapitalGain = %.2f, want 380000000", result.CapitalGain)
	}
	if math.Abs(result.LongTermDeduction-60_800_000) > 1.0 {
		t.Errorf("LongTermDeduction = %.2f, want 60800000", result.LongTermDeduction)
	}
	if result.TaxRate != 0.40 {
		t.Errorf("TaxRate = %v, want 0.40", result.TaxRate)
	}
	if math.Abs(result.TransferTax-100_740_000) > 1.0 {
		t.Errorf("TransferTax = %.2f, want 100740000", result.TransferTax)
	}
	if math.Abs(result.TotalTax-110_814_000) > 1.0 {
		t.Errorf("TotalTax = %.2f, want 110814000", result.TotalTax)
	}
	if result.OwnershipRatio != 100 {
		t.Errorf("OwnershipRatio = %.2f, want 100", result.OwnershipRatio)
	}
}

func TestTransferTaxDetailedShortHolding(t *testing.T) {
	calc := New(nil)

	underOneYear := calc.TransferTaxDetailed(550_000_000, 500_000_000, "2023-06-01", "2023-12-01", 0, 1, false, 0)
	if underOneYear.TaxRate != 0.70 {
		t.Errorf("under-one-year TaxRate = %v, want 0.70", underOneYear.TaxRate)
	}
	// Taxable 47.5M at the flat rate, no long-term deduction.
	if math.Abs(underOneYear.TransferTax-33_250_000) > 1.0 {
		t.Errorf("under-one-year TransferTax = %.2f, want 33250000", underOneYear.TransferTax)
	}

	underTwoYears := calc.TransferTaxDetailed(550_000_000, 500_000_000, "2022-01-01", "2023-06-01", 0, 1, false, 0)
	if underTwoYears.TaxRate != 0.60 {
		t.Errorf("one-to-two-year TaxRate = %v, want 0.60", underTwoYears.TaxRate)
	}
	if math.Abs(underTwoYears.TransferTax-28_500_000) > 1.0 {
		t.Errorf("one-to-two-year TransferTax = %.2f, want 28500000", underTwoYears.TransferTax)
	}
}

func TestTransferTaxDetailedMultiHomeSurcharge(t *testing.T) {
	calc := New(nil)

	// Six holding years, 150M gain, 12% deduction, taxable 129.5M in the 35%
	// bracket; three homes in an adjustment area add 30 points.
	result := calc.TransferTaxDetailed(700_000_000, 550_000_000, "2018-01-01", "2024-01-05", 0, 3, true, 0)

	if result.TaxRate != 0.65 {
		t.Errorf("TaxRate = %v, want 0.65", result.TaxRate)
	}
	if math.Abs(result.TransferTax-68_735_000) > 1.0 {
		t.Errorf("TransferTax = %.2f, want 68735000", result.TransferTax)
	}
}

func TestTransferTaxDetailedSurchargeCap(t *testing.T) {
	calc := New(nil)

	// Top bracket 45% plus 30 points would be 75%; the cap keeps it there.
	result := calc.TransferTaxDetailed(3_000_000_000, 1_000_000_000, "2015-01-01", "2024-01-05", 0, 3, true, 0)

	if result.TaxRate != 0.75 {
		t.Errorf("TaxRate = %v, want the 0.75 cap", result.TaxRate)
	}
}

func TestTransferTaxDetailedJointOwnership(t *testing.T) {
	calc := New(nil)

	whole := calc.TransferTaxDetailed(1_200_000_000, 800_000_000, "2015-03-10", "2024-03-10", 20_000_000, 1, false, 100)
	half := calc.TransferTaxDetailed(1_200_000_000, 800_000_000, "2015-03-10", "2024-03-10", 20_000_000, 1, false, 50)

	if math.Abs(half.TransferTax-whole.TransferTax/2) > 1.0 {
		t.Errorf("half-share TransferTax = %.2f, want %.2f", half.TransferTax, whole.TransferTax/2)
	}
	if half.OwnershipRatio != 50 {
		t.Errorf("OwnershipRatio = %.2f, want 50", half.OwnershipRatio)
	}
	// The capital gain itself is reported whole.
	if half.CapitalGain != whole.CapitalGain {
		t.Errorf("CapitalGain = %.2f, want %.2f", half.CapitalGain, whole.CapitalGain)
	}
}

func TestTransferTaxDetailedDeductionsAbsorbGain(t *testing.T) {
	calc := New(nil)

	// A 2M gain falls entirely under the 2.5M basic deduction.
	result := calc.TransferTaxDetailed(102_000_000, 100_000_000, "2015-03-10", "2024-03-10", 0, 1, false, 0)

	if result.TransferTax != 0 || result.TotalTax != 0 {
		t.Errorf("deductions should absorb the gain, got %+v", result)
	}
	if result.CapitalGain != 2_000_000 {
		t.Errorf("CapitalGain = %.2f, want 2000000", result.CapitalGain)
	}
}

func TestTransferTaxDetailedRejectsBadDates(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		name            string
		acquisitionDate string
		transferDate    string
	}{
		{"Malformed acquisition date", "2020/01/01", "2024-01-01"},
		{"Malformed transfer date", "2020-01-01", "yesterday"},
		{"Transfer precedes acquisition", "2024-01-01", "2020-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.TransferTaxDetailed(500_000_000, 400_000_000, tt.acquisitionDate, tt.transferDate, 0, 1, false, 0)
			if result != (TransferResult{}) {
				t.Errorf("TransferTaxDetailed() = %+v, want zero result", result)
			}
		})
	}
}

func TestTransferTaxCustomBrackets(t *testing.T) {
	// A replacement schedule, e.g. after a regulation change.
	calc := NewWithBrackets(nil, []ProgressiveBracket{
		{UpperBound: 100_000_000, Rate: 0.10},
		{Rate: 0.20, Deduction: 10_000_000},
	})

	result := calc.TransferTaxDetailed(550_000_000, 500_000_000, "2015-03-10", "2024-03-10", 0, 1, false, 0)

	if result.TaxRate != 0.10 {
		t.Errorf("TaxRate = %v, want 0.10 from the custom schedule", result.TaxRate)
	}
}
