package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an accounting amount from source data. It tolerates the
// formatting Tally and spreadsheet exports produce: digit-group commas,
// currency markers, surrounding whitespace, and parentheses for negatives.
// An empty string is zero. The boolean reports whether the value parsed; a
// malformed value returns zero so the caller can record a diagnostic instead
// of dropping the row.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', '₹', '$', ' ':
			return -1
		}
		return r
	}, s)

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		v = v.Neg()
	}
	return v, true
}
