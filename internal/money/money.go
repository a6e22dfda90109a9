// Package money converts between decimal display amounts and integer minor
// units (cents). All arithmetic on amounts elsewhere in the codebase happens
// on the int64 minor-unit values produced here.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits in a display amount.
const Scale = 2

// amountPattern matches "12", "12.3", "12.34", ".5" and ".50".
var amountPattern = regexp.MustCompile(`^(\d*)(?:\.(\d{1,2}))?$`)

// ParseAmountToMinor converts a non-negative decimal amount with at most two
// fractional digits into minor units. It returns ok=false for nil input, for
// anything that is not a plain digit string (signs, separators, exponents,
// three or more fractional digits) and for values that overflow int64.
//
// The conversion works on the digit string, so "10.10" is always 1010.
func ParseAmountToMinor(input any) (int64, bool) {
	text, ok := amountText(input)
	if !ok {
		return 0, false
	}
	text = strings.TrimSpace(text)

	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	whole, fraction := m[1], m[2]
	if whole == "" && fraction == "" {
		return 0, false
	}

	var wholeValue int64
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, false
		}
		wholeValue = v
	}
	if wholeValue > math.MaxInt64/100 {
		return 0, false
	}

	fraction = (fraction + "00")[:Scale]
	fractionValue, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, false
	}

	minor := wholeValue*100 + fractionValue
	if minor < 0 {
		return 0, false
	}
	return minor, true
}

// FormatMinor renders minor units as a decimal string with two fractional
// digits, e.g. 510 -> "5.10".
func FormatMinor(minor int64) string {
	return decimal.New(minor, -Scale).StringFixed(Scale)
}

// amountText turns a supported input value into the text that is matched
// against amountPattern.
func amountText(input any) (string, bool) {
	switch v := input.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case decimal.Decimal:
		return v.String(), true
	case *decimal.Decimal:
		if v == nil {
			return "", false
		}
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
