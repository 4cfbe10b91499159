package services

import (
	"fmt"
	"math"
)

// FormatINR formats a paise amount into Indian Rupee notation with the
// currency symbol. It uses the Indian numbering system where, after the
// rightmost 3 digits, digits are grouped in pairs (e.g., ₹1,23,45,678.90).
func FormatINR(p Paise) string {
	return sign(p) + "₹" + groupedAmount(p)
}

// FormatAmount formats a paise amount like FormatINR but without the
// currency symbol, for spreadsheet cells (e.g., 1,23,456.78).
func FormatAmount(p Paise) string {
	return sign(p) + groupedAmount(p)
}

// FormatQty returns a string representation of a quantity. Whole numbers
// are formatted without decimals; fractional values get 2 decimal places.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

func sign(p Paise) string {
	if p < 0 {
		return "-"
	}
	return ""
}

func groupedAmount(p Paise) string {
	if p < 0 {
		p = -p
	}
	intPart := fmt.Sprintf("%d", p/100)
	decPart := fmt.Sprintf("%02d", p%100)
	return applyIndianGrouping(intPart) + "." + decPart
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
