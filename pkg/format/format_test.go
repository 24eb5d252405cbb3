package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "millions with two decimals", value: 1_234_000, expected: "1,23 Mio. €"},
		{name: "negative millions", value: -2_500_000, expected: "-2,50 Mio. €"},
		{name: "thousands with one decimal", value: 456_700, expected: "456,7 T€"},
		{name: "small amount without abbreviation", value: 890, expected: "890 €"},
		{name: "zero", value: 0, expected: "0 €"},
		{name: "NaN renders placeholder", value: math.NaN(), expected: Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12,3 %", Percent(12.34))
	assert.Equal(t, "-5,0 %", Percent(-5))
	assert.Equal(t, Missing, Percent(math.Inf(1)))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1.234.567", Number(1234567))
	assert.Equal(t, "-9.800", Number(-9800))
	assert.Equal(t, "42", Number(42.4))
}

func TestMultiple(t *testing.T) {
	assert.Equal(t, "0,45×", Multiple(0.45))
}

func TestMonth(t *testing.T) {
	assert.Equal(t, "Sep 25", Month("2025-09"))
	assert.Equal(t, "Jan 2024", MonthFull("2024-01"))
	assert.Equal(t, "Mär 2025", MonthFull("2025-03"))

	// Malformed periods pass through untouched.
	assert.Equal(t, "garbage", Month("garbage"))
	assert.Equal(t, "2025-13", MonthFull("2025-13"))
}
