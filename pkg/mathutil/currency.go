// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/krfincalc/krfincalc/pkg/constants"
)

// RoundWon rounds a value to the nearest whole won. The won has no
// fractional sub-unit so this is the presentation-boundary rounding for
// every monetary output.
func RoundWon(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts a value to the inclusive range [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ApplyPercentage applies a percentage to a value, e.g. (1000, 4.5) = 45.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// Valid reports whether a value is a usable number (not NaN or infinite).
func Valid(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
