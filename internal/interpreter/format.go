package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with the shortest digits that round-trip. Very large
// and very small magnitudes switch to exponent form, and non-finite values
// map to the sentinel strings.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return NotANumber
	case math.IsInf(v, 1):
		return Infinity
	case math.IsInf(v, -1):
		return "-" + Infinity
	case v == 0:
		// also folds negative zero
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFixed renders v with exactly six decimals.
func formatFixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatNumber(v)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// formatWhole prints integral results plainly and everything else with six
// decimals.
func formatWhole(v float64) string {
	if !math.IsInf(v, 0) && v == math.Trunc(v) {
		return FormatNumber(v)
	}
	return formatFixed(v)
}

// formatClean strips floating-point noise from trigonometric results.
func formatClean(v float64) string {
	if math.Abs(v) < 1e-10 {
		return "0"
	}
	rounded := math.Round(v*1e6) / 1e6
	if math.Abs(v-rounded) < 1e-10 {
		return FormatNumber(rounded)
	}
	return formatFixed(v)
}

func joinNumbers(nums []float64, sep string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = FormatNumber(n)
	}
	return strings.Join(parts, sep)
}
