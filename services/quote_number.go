package services

import (
	"fmt"
	"regexp"
	"strconv"
)

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// NextQuoteNumber derives the follow-up quotation number from the current
// one: the trailing run of decimal digits is incremented by one, keeping
// its zero padding ("QT-2024-007" → "QT-2024-008", "42" → "43"). A number
// with no trailing digits gets a "-1" suffix ("ABC" → "ABC-1").
func NextQuoteNumber(current string) string {
	loc := trailingDigits.FindStringIndex(current)
	if loc == nil {
		return current + "-1"
	}

	prefix := current[:loc[0]]
	digits := current[loc[0]:]

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Digit run too long to parse; treat like the no-digit case.
		return current + "-1"
	}

	return prefix + fmt.Sprintf("%0*d", len(digits), n+1)
}
