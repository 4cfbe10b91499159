package services

import (
	"math"
	"strconv"
	"strings"
)

// Paise is an INR amount in hundredths of a rupee. All currency arithmetic
// happens on this fixed-point representation; rupee floats exist only at
// the edges (form input, the interchange blob).
type Paise int64

// PaiseFromRupees converts a rupee amount, rounding half away from zero.
func PaiseFromRupees(r float64) Paise {
	return Paise(math.Round(r * 100))
}

// Rupees converts back to a rupee float.
func (p Paise) Rupees() float64 {
	return float64(p) / 100
}

// ItemAmount derives a line amount from quantity and unit rate, rounding
// half away from zero.
func ItemAmount(qty float64, rate Paise) Paise {
	return Paise(math.Round(qty * float64(rate)))
}

// ParsePaise parses a rupee string from a form field. Empty or unparseable
// input yields zero, which the entry validation then rejects.
func ParsePaise(s string) Paise {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return PaiseFromRupees(r)
}
