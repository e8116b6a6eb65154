package loan

import (
	"math"
	"testing"
)

func TestEqualPayment(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		years      int
		check      func(t *testing.T, s Summary)
	}{
		{
			name:       "Zero interest",
			principal:  12_000_000,
			annualRate: 0,
			years:      5,
			check: func(t *testing.T, s Summary) {
				if s.MonthlyPayment != 200_000 {
					t.Errorf("MonthlyPayment = %.2f, want 200000", s.MonthlyPayment)
				}
				if s.TotalPayment != 12_000_000 {
					t.Errorf("TotalPayment = %.2f, want 12000000", s.TotalPayment)
				}
				if s.TotalInterest != 0 {
					t.Errorf("TotalInterest = %.2f, want 0", s.TotalInterest)
				}
				if s.FirstMonthInterest != 0 {
					t.Errorf("FirstMonthInterest = %.2f, want 0", s.FirstMonthInterest)
				}
				if s.FirstMonthPrincipal != 200_000 {
					t.Errorf("FirstMonthPrincipal = %.2f, want 200000", s.FirstMonthPrincipal)
				}
			},
		},
		{
			name:       "Ten year loan at 3.6 percent",
			principal:  100_000_000,
			annualRate: 3.6,
			years:      10,
			check: func(t *testing.T, s Summary) {
				if s.MonthlyPayment < 990_000 || s.MonthlyPayment > 997_000 {
					t.Errorf("MonthlyPayment = %.2f, expected range [990000, 997000]", s.MonthlyPayment)
				}
				// First month's interest is exactly principal x monthly rate.
				if math.Abs(s.FirstMonthInterest-300_000) > 0.01 {
					t.Errorf("FirstMonthInterest = %.2f, want 300000", s.FirstMonthInterest)
				}
				if math.Abs(s.FirstMonthPrincipal-(s.MonthlyPayment-300_000)) > 0.01 {
					t.Errorf("FirstMonthPrincipal = %.2f, want payment minus first interest", s.FirstMonthPrincipal)
				}
				if math.Abs(s.TotalPayment-s.MonthlyPayment*120) > 0.01 {
					t.Errorf("TotalPayment = %.2f, want payment x 120", s.TotalPayment)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, EqualPayment(tt.principal, tt.annualRate, tt.years))
		})
	}
}

func TestEqualPrincipal(t *testing.T) {
	principal := 100_000_000.0
	summary := EqualPrincipal(principal, 3.6, 10)

	// Declining-balance interest sums to P x r x (n+1)/2.
	expectedInterest := 100_000_000 * 0.003 * 121 / 2
	if math.Abs(summary.TotalInterest-expectedInterest) > 1.0 {
		t.Errorf("TotalInterest = %.2f, want %.2f", summary.TotalInterest, expectedInterest)
	}
	if math.Abs(summary.TotalPayment-(principal+expectedInterest)) > 1.0 {
		t.Errorf("TotalPayment = %.2f, want %.2f", summary.TotalPayment, principal+expectedInterest)
	}

	// The constant principal portion plus first month's interest.
	expectedFirstPayment := principal/120 + principal*0.003
	if math.Abs(summary.MonthlyPayment-expectedFirstPayment) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, want %.2f", summary.MonthlyPayment, expectedFirstPayment)
	}
	if math.Abs(summary.FirstMonthPrincipal-principal/120) > 0.01 {
		t.Errorf("FirstMonthPrincipal = %.2f, want %.2f", summary.FirstMonthPrincipal, principal/120)
	}
}

func TestEqualPrincipalZeroRate(t *testing.T) {
	summary := EqualPrincipal(12_000_000, 0, 5)

	if summary.TotalInterest != 0 {
		t.Errorf("TotalInterest = %.2f, want 0", summary.TotalInterest)
	}
	if summary.TotalPayment != 12_000_000 {
		t.Errorf("TotalPayment = %.2f, want 12000000", summary.TotalPayment)
	}
	if summary.MonthlyPayment != 200_000 {
		t.Errorf("MonthlyPayment = %.2f, want 200000", summary.MonthlyPayment)
	}
}

func TestRepaymentProperties(t *testing.T) {
	// For identical inputs both methods must repay at least the principal,
	// and equal-principal must accrue no more interest than equal-payment.
	cases := []struct {
		principal  float64
		annualRate float64
		years      int
	}{
		{100_000_000, 3.6, 10},
		{300_000_000, 4.5, 30},
		{50_000_000, 0, 5},
		{10_000_000, 12.0, 3},
	}

	for _, c := range cases {
		equalPayment := EqualPayment(c.principal, c.annualRate, c.years)
		equalPrincipal := EqualPrincipal(c.principal, c.annualRate, c.years)

		if equalPayment.TotalPayment < c.principal-0.01 {
			t.Errorf("equal payment total %.2f < principal %.2f (rate %.1f)", equalPayment.TotalPayment, c.principal, c.annualRate)
		}
		if equalPrincipal.TotalPayment < c.principal-0.01 {
			t.Errorf("equal principal total %.2f < principal %.2f (rate %.1f)", equalPrincipal.TotalPayment, c.principal, c.annualRate)
		}
		if equalPayment.TotalInterest < -0.01 || equalPrincipal.TotalInterest < -0.01 {
			t.Errorf("negative interest for rate %.1f", c.annualRate)
		}
		if equalPrincipal.TotalInterest > equalPayment.TotalInterest+0.01 {
			t.Errorf("equal principal interest %.2f > equal payment interest %.2f (rate %.1f)",
				equalPrincipal.TotalInterest, equalPayment.TotalInterest, c.annualRate)
		}
	}
}

func TestIdempotence(t *testing.T) {
	first := EqualPayment(123_456_789, 4.32, 17)
	second := EqualPayment(123_456_789, 4.32, 17)
	if first != second {
		t.Errorf("identical inputs produced different results: %+v vs %+v", first, second)
	}
}
