package datetime

import "testing"

func TestHoldingYears(t *testing.T) {
	tests := []struct {
		name        string
		acquisition string
		transfer    string
		expected    int
	}{
		// Four calendar years land just under the 365.25-day divisor
		// because the count starts the day after acquisition.
		{"Four calendar years", "2020-01-01", "2024-01-01", 3},
		{"Four calendar years plus slack", "2020-01-01", "2024-01-03", 4},
		{"Same day", "2024-01-01", "2024-01-01", 0},
		{"Under a year", "2023-06-01", "2023-12-01", 0},
		{"Just over a year", "2022-01-01", "2023-06-01", 1},
		{"Transfer before acquisition clamps to zero", "2024-01-01", "2020-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoldingYears(MustParseDate(tt.acquisition), MustParseDate(tt.transfer))
			if got != tt.expected {
				t.Errorf("HoldingYears(%s, %s) = %d, want %d", tt.acquisition, tt.transfer, got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Errorf("ParseDate(leap day) returned error: %v", err)
	}
	if _, err := ParseDate("2024/02/29"); err == nil {
		t.Error("ParseDate accepted a slash-separated date")
	}
	if _, err := ParseDate("not a date"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
}
