// Package analysis computes financial ratios, the creditworthiness score and
// the health tier for a single business record.
package analysis

import (
	"math"
	"strconv"
)

// round rounds the exact binary value at the given number of places,
// half-to-even on true ties. Non-finite inputs round to zero.
func round(v float64, places int) float64 {
	if !finite(v) {
		return 0
	}
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return f
}

// roundInt rounds to the nearest whole number, half-to-even.
func roundInt(v float64) int {
	return int(round(v, 0))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// divide returns num/den, or ok=false when den is zero or the result is not finite.
func divide(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	q := num / den
	if !finite(q) {
		return 0, false
	}
	return q, true
}

// truncate converts to an integer the way int() does: toward zero.
func truncate(v float64) int64 {
	if !finite(v) {
		return 0
	}
	return int64(v)
}
