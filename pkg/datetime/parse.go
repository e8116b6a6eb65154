// Package datetime provides date utility functions for tax calculations.
package datetime

import (
	"time"

	"github.com/krfincalc/krfincalc/pkg/constants"
)

// DateLayout is the calendar date format accepted for acquisition and
// transfer dates.
const DateLayout = "2006-01-02"

// MustParseDate parses a date string and panics on error. This is intended
// for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses an ISO calendar date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// HoldingYears returns the whole years held between acquisition and
// transfer. The count starts the day after acquisition, divides elapsed
// days by the average-year length and floors, clamped to a minimum of zero.
func HoldingYears(acquisition, transfer time.Time) int {
	start := acquisition.AddDate(0, 0, 1)
	days := transfer.Sub(start).Hours() / 24
	years := int(days / constants.DaysPerYear)
	if years < 0 {
		return 0
	}
	return years
}
