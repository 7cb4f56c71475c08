package common

import (
	"github.com/muesli/reflow/truncate"
)

// Layout units are converted to terminal cells at a fixed ratio.
const (
	UnitsPerColumn = 8
	UnitsPerRow    = 20
)

// TruncateString is a convenient wrapper around truncate.TruncateString.
func TruncateString(s string, max int) string { //nolint:revive
	if max < 0 {
		max = 0 //nolint:revive
	}
	return truncate.StringWithTail(s, uint(max), "…") //nolint:gosec
}

// Columns converts horizontal layout units to terminal columns, rounding up.
func Columns(units int) int {
	return ceilDiv(units, UnitsPerColumn)
}

// Rows converts vertical layout units to terminal rows, rounding up.
func Rows(units int) int {
	return ceilDiv(units, UnitsPerRow)
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
