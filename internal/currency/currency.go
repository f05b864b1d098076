// Package currency renders rupee amounts for statement output. Amounts are
// scaled to a reporting unit and grouped in the Indian style, with the last
// three digits grouped together and pairs before that (12,34,56,789).
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the reporting unit for statement amounts.
type Scale string

const (
	ScaleRupees    Scale = "rupees"
	ScaleHundreds  Scale = "hundreds"
	ScaleThousands Scale = "thousands"
	ScaleLakhs     Scale = "lakhs"
	ScaleMillions  Scale = "millions"
	ScaleCrores    Scale = "crores"
	// ScaleAuto picks a unit from the magnitude of the amounts.
	ScaleAuto Scale = "auto"
)

// ParseScale validates a scale name from configuration.
func ParseScale(s string) (Scale, error) {
	switch Scale(strings.ToLower(strings.TrimSpace(s))) {
	case ScaleRupees, "":
		return ScaleRupees, nil
	case ScaleHundreds:
		return ScaleHundreds, nil
	case ScaleThousands:
		return ScaleThousands, nil
	case ScaleLakhs:
		return ScaleLakhs, nil
	case ScaleMillions:
		return ScaleMillions, nil
	case ScaleCrores:
		return ScaleCrores, nil
	case ScaleAuto:
		return ScaleAuto, nil
	}
	return "", fmt.Errorf("unknown amount scale %q", s)
}

// Divisor returns the rupee value of one reporting unit.
func (s Scale) Divisor() decimal.Decimal {
	switch s {
	case ScaleHundreds:
		return decimal.NewFromInt(100)
	case ScaleThousands:
		return decimal.NewFromInt(1_000)
	case ScaleLakhs:
		return decimal.NewFromInt(100_000)
	case ScaleMillions:
		return decimal.NewFromInt(1_000_000)
	case ScaleCrores:
		return decimal.NewFromInt(10_000_000)
	default:
		return decimal.NewFromInt(1)
	}
}

// Label returns the statement header for a scale.
func (s Scale) Label() string {
	switch s {
	case ScaleHundreds:
		return "(Amount in ₹ Hundreds)"
	case ScaleThousands:
		return "(Amount in ₹ Thousands)"
	case ScaleLakhs:
		return "(Amount in ₹ Lakhs)"
	case ScaleMillions:
		return "(Amount in ₹ Millions)"
	case ScaleCrores:
		return "(Amount in ₹ Crores)"
	default:
		return "(Amount in ₹)"
	}
}

// Resolve replaces ScaleAuto with a concrete unit chosen from the largest
// magnitude among the values. Any other scale passes through unchanged.
func Resolve(s Scale, values ...decimal.Decimal) Scale {
	if s != ScaleAuto {
		return s
	}
	max := decimal.Zero
	for _, v := range values {
		if a := v.Abs(); a.GreaterThan(max) {
			max = a
		}
	}
	switch {
	case max.GreaterThanOrEqual(decimal.NewFromInt(10_000_000)):
		return ScaleCrores
	case max.GreaterThanOrEqual(decimal.NewFromInt(100_000)):
		return ScaleLakhs
	case max.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return ScaleThousands
	default:
		return ScaleRupees
	}
}

// Format renders an amount in the given scale with two decimal places and
// Indian digit grouping. Negative amounts are parenthesised.
func Format(v decimal.Decimal, s Scale) string {
	scaled := v.DivRound(s.Divisor(), 2)
	negative := scaled.IsNegative()
	fixed := scaled.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupIndian(intPart) + "." + fracPart
	if negative {
		return "(" + grouped + ")"
	}
	return grouped
}

// groupIndian inserts Indian-style separators into a digit string.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
