// Package format holds the text formatting shared by every card renderer.
package format

import (
	"strconv"
)

// Number abbreviates counts for display: 1500 -> "1.5K", 2500000 -> "2.5M",
// 999 -> "999". Every renderer goes through this so values read the same on
// stat cards, the footer and the view counter.
func Number(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(round1(float64(n)/1_000_000), 'f', 1, 64) + "M"
	case n >= 1000:
		return strconv.FormatFloat(round1(float64(n)/1000), 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// round1 rounds half away from zero to one decimal, so 1.25 -> 1.3 rather
// than the banker's rounding FormatFloat would apply to the raw value.
func round1(f float64) float64 {
	scaled := f * 10
	if scaled < 0 {
		return -float64(int64(-scaled+0.5)) / 10
	}
	return float64(int64(scaled+0.5)) / 10
}

// Truncate cuts s to at most n characters and appends "..." when anything
// was removed.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Decimal1 renders f with exactly one fractional digit.
func Decimal1(f float64) string {
	return strconv.FormatFloat(round1(f), 'f', 1, 64)
}
