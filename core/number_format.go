package core

import "math"

// valueFormat picks the display format for a numeric body value: fractions
// in [0, 1) as percentages, whole numbers from 1 up as integers, and
// anything else with two decimals. The second result is false for values
// that are not numeric.
func valueFormat(v interface{}) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	switch {
	case f >= 0 && f < 1:
		return NumFmtPercent2, true
	case f >= 1 && isIntegral(f):
		return NumFmtInteger, true
	default:
		return NumFmtDecimal2, true
	}
}

// isIntegral guards the whole-number check; NaN and Inf are not integral.
func isIntegral(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f
}

// isBlank reports values that render as an empty cell.
func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}
