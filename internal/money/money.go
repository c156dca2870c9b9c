// Package money formats and divides whole rupiah amounts. Amounts are int64 whole
// currency units; there are no minor units.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Group renders n with Indonesian thousands separators: 1234567 -> "1.234.567".
func Group(n int64) string {
	return printer.Sprintf("%d", n)
}

// Format renders n as "Rp 12.345".
func Format(n int64) string {
	return "Rp " + Group(n)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// Percent returns floor(n * pct / 100).
func Percent(n, pct int64) int64 {
	return FloorDiv(n*pct, 100)
}
