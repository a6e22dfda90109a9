package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountToMinor(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int64
		wantOK bool
	}{
		{"whole number string", "12", 1200, true},
		{"one fractional digit is padded", "5.1", 510, true},
		{"two fractional digits", "10.10", 1010, true},
		{"zero", "0", 0, true},
		{"leading fraction", ".5", 50, true},
		{"leading fraction two digits", ".05", 5, true},
		{"surrounding whitespace", "  7.25 ", 725, true},
		{"leading zeros", "007.01", 701, true},
		{"float input", 10.01, 1001, true},
		{"float that is inexact in binary", 0.29, 29, true},
		{"int input", 42, 4200, true},
		{"int64 input", int64(3), 300, true},
		{"uint input", uint(9), 900, true},
		{"json number", json.Number("19.99"), 1999, true},
		{"decimal input", decimal.RequireFromString("1.5"), 150, true},

		{"nil", nil, 0, false},
		{"empty string", "", 0, false},
		{"only a dot", ".", 0, false},
		{"trailing dot", "5.", 0, false},
		{"three fractional digits", "1.234", 0, false},
		{"negative sign", "-5", 0, false},
		{"plus sign", "+5", 0, false},
		{"letters", "abc", 0, false},
		{"thousands separator", "1,000", 0, false},
		{"scientific notation", "1e3", 0, false},
		{"negative float", -1.5, 0, false},
		{"negative int", -1, 0, false},
		{"float with too much precision", 1.005, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"overflow", strings.Repeat("9", 30), 0, false},
		{"just above max", "92233720368547758.08", 0, false},
		{"unsupported type", []byte("12"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmountToMinor(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAmountToMinor_MaxValue(t *testing.T) {
	got, ok := ParseAmountToMinor("92233720368547758.07")
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "0.00", FormatMinor(0))
	assert.Equal(t, "5.10", FormatMinor(510))
	assert.Equal(t, "0.05", FormatMinor(5))
	assert.Equal(t, "1234.56", FormatMinor(123456))
}

// Every two-decimal amount must survive parse -> format unchanged.
func TestParseFormatRoundTrip(t *testing.T) {
	for whole := 0; whole < 250; whole += 7 {
		for cents := 0; cents < 100; cents++ {
			text := fmt.Sprintf("%d.%02d", whole, cents)
			minor, ok := ParseAmountToMinor(text)
			require.True(t, ok, text)
			assert.Equal(t, int64(whole*100+cents), minor)
			assert.Equal(t, text, FormatMinor(minor))
		}
	}
}

func TestParseAmountToMinor_NormalizesShortForms(t *testing.T) {
	for input, want := range map[string]string{
		"5":    "5.00",
		"5.1":  "5.10",
		".7":   "0.70",
		"0010": "10.00",
	} {
		minor, ok := ParseAmountToMinor(input)
		require.True(t, ok, input)
		assert.Equal(t, want, FormatMinor(minor), input)
	}
}
