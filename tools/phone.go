package tools

import (
	"strings"
	"unicode"
)

// NormalizePhone strips a phone number down to its digits so that numbers
// typed with spaces, dashes or a leading "+" still match what intake
// stored. Returns "" when there are no digits at all.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}
