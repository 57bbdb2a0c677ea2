package sqsutil

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultDisplayDecimals is the number of fractional digits shown for human amounts.
	DefaultDisplayDecimals = 6
	percentDisplayDecimals = 2
)

var hundred = decimal.NewFromInt(100)

// Percent formats a fraction as a percentage string with two decimals.
// For example, "0.015" becomes "1.50%". Unparsable input formats as "0.00%".
func Percent(fraction string) string {
	value, err := decimal.NewFromString(fraction)
	if err != nil {
		value = decimal.Zero
	}
	return value.Mul(hundred).StringFixed(percentDisplayDecimals) + "%"
}

// DecimalN truncates the value to at most n fractional digits.
// Returns "0" for unparsable input.
func DecimalN(value string, n int32) string {
	result, err := decimal.NewFromString(value)
	if err != nil {
		return zeroStr
	}
	return result.Truncate(n).String()
}

// FormatAmount converts a raw integer amount into human units for display,
// rounded down to DefaultDisplayDecimals fractional digits.
func FormatAmount(amount string, decimals int) string {
	raw, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero.StringFixed(DefaultDisplayDecimals)
	}

	return raw.Shift(int32(-decimals)).RoundDown(DefaultDisplayDecimals).StringFixed(DefaultDisplayDecimals)
}

// FormatDecimal rounds a human unit value down to DefaultDisplayDecimals fractional digits.
func FormatDecimal(value string) string {
	result, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero.StringFixed(DefaultDisplayDecimals)
	}
	return result.RoundDown(DefaultDisplayDecimals).StringFixed(DefaultDisplayDecimals)
}
