package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScale(t *testing.T) {
	s, err := ParseScale("lakhs")
	require.NoError(t, err)
	assert.Equal(t, ScaleLakhs, s)

	s, err = ParseScale("  Crores ")
	require.NoError(t, err)
	assert.Equal(t, ScaleCrores, s)

	// Empty defaults to rupees.
	s, err = ParseScale("")
	require.NoError(t, err)
	assert.Equal(t, ScaleRupees, s)

	_, err = ParseScale("bazillions")
	assert.Error(t, err)
}

func TestFormatIndianGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"100000", "1,00,000.00"},
		{"12345678.9", "1,23,45,678.90"},
		{"1234567890", "1,23,45,67,890.00"},
		{"-2500", "(2,500.00)"},
	}

	for _, tt := range tests {
		v := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.want, Format(v, ScaleRupees), tt.in)
	}
}

func TestFormatScaled(t *testing.T) {
	v := decimal.NewFromInt(12_500_000)
	assert.Equal(t, "125.00", Format(v, ScaleLakhs))
	assert.Equal(t, "1.25", Format(v, ScaleCrores))
	assert.Equal(t, "12,500.00", Format(v, ScaleThousands))
}

func TestResolveAuto(t *testing.T) {
	crore := decimal.NewFromInt(25_000_000)
	lakh := decimal.NewFromInt(400_000)
	small := decimal.NewFromInt(500)

	assert.Equal(t, ScaleCrores, Resolve(ScaleAuto, crore, lakh))
	assert.Equal(t, ScaleLakhs, Resolve(ScaleAuto, lakh, small))
	assert.Equal(t, ScaleRupees, Resolve(ScaleAuto, small))
	assert.Equal(t, ScaleRupees, Resolve(ScaleAuto))

	// Concrete scales pass through untouched.
	assert.Equal(t, ScaleThousands, Resolve(ScaleThousands, crore))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "(Amount in ₹)", ScaleRupees.Label())
	assert.Equal(t, "(Amount in ₹ Lakhs)", ScaleLakhs.Label())
}
