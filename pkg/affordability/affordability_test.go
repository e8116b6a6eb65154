package affordability

import (
	"math"
	"testing"
)

func TestCalculateWithZeroRate(t *testing.T) {
	// Zero interest keeps the arithmetic exact: capacity 2M/month over 360
	// months gives a 720M DSR ceiling, but the LTV-derived ceiling
	// 200M x 0.7 / (1.1 - 0.7) = 350M binds first.
	result := Calculate(5_000_000, 0, 200_000_000, 0, 30, 40, 70, 10)

	if result.MaxLoanAmount != 350_000_000 {
		t.Errorf("MaxLoanAmount = %.2f, want 350000000", result.MaxLoanAmount)
	}
	if result.TotalBudget != 550_000_000 {
		t.Errorf("TotalBudget = %.2f, want 550000000", result.TotalBudget)
	}
	if math.Abs(result.AffordablePrice-500_000_000) > 0.01 {
		t.Errorf("AffordablePrice = %.2f, want 500000000", result.AffordablePrice)
	}

	// At the solution the LTV constraint is exactly met.
	ltvCeiling := result.AffordablePrice * 0.7
	if math.Abs(result.MaxLoanAmount-ltvCeiling) > 1.0 {
		t.Errorf("loan %.2f does not meet the LTV ceiling %.2f", result.MaxLoanAmount, ltvCeiling)
	}

	expectedPayment := 350_000_000.0 / 360
	if math.Abs(result.MonthlyPayment-expectedPayment) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, want %.2f", result.MonthlyPayment, expectedPayment)
	}
}

func TestCalculateDSRBound(t *testing.T) {
	// Large own funds push the LTV-derived ceiling far above the DSR
	// ceiling, so the DSR ceiling binds.
	result := Calculate(3_000_000, 0, 2_000_000_000, 0, 30, 40, 70, 10)

	dsrCeiling := 1_200_000.0 * 360
	if math.Abs(result.MaxLoanAmount-dsrCeiling) > 1.0 {
		t.Errorf("MaxLoanAmount = %.2f, want DSR ceiling %.2f", result.MaxLoanAmount, dsrCeiling)
	}
}

func TestCalculateNoCapacity(t *testing.T) {
	result := Calculate(1_000_000, 1_000_000, 100_000_000, 4.0, 30, 40, 70, 5)

	if result.MaxLoanAmount != 0 {
		t.Errorf("MaxLoanAmount = %.2f, want 0", result.MaxLoanAmount)
	}
	if result.TotalBudget != 100_000_000 {
		t.Errorf("TotalBudget = %.2f, want own funds", result.TotalBudget)
	}
	expectedPrice := 100_000_000 / 1.05
	if math.Abs(result.AffordablePrice-expectedPrice) > 0.01 {
		t.Errorf("AffordablePrice = %.2f, want %.2f", result.AffordablePrice, expectedPrice)
	}
	// With no new loan the monthly payment is just the existing debt.
	if result.MonthlyPayment != 1_000_000 {
		t.Errorf("MonthlyPayment = %.2f, want 1000000", result.MonthlyPayment)
	}
}

func TestCalculateDegenerateLTV(t *testing.T) {
	// LTV at 100% with no additional costs makes the algebraic solution
	// blow up; the DSR ceiling alone must apply.
	result := Calculate(5_000_000, 0, 100_000_000, 0, 30, 40, 100, 0)

	dsrCeiling := 2_000_000.0 * 360
	if math.Abs(result.MaxLoanAmount-dsrCeiling) > 1.0 {
		t.Errorf("MaxLoanAmount = %.2f, want DSR ceiling %.2f", result.MaxLoanAmount, dsrCeiling)
	}
}

func TestCalculateIdempotence(t *testing.T) {
	first := Calculate(4_500_000, 300_000, 150_000_000, 4.1, 25, 40, 70, 7)
	second := Calculate(4_500_000, 300_000, 150_000_000, 4.1, 25, 40, 70, 7)
	if first != second {
		t.Errorf("identical inputs produced different results: %+v vs %+v", first, second)
	}
}
