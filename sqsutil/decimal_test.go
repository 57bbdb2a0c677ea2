package sqsutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/sqsutil"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(a, b string) string
		a        string
		b        string
		expected string
	}{
		{name: "plus integers", fn: sqsutil.Plus, a: "1", b: "2", expected: "3"},
		{name: "plus fractions", fn: sqsutil.Plus, a: "0.1", b: "0.2", expected: "0.3"},
		{name: "minus to negative", fn: sqsutil.Minus, a: "1", b: "2.5", expected: "-1.5"},
		{name: "minus to zero", fn: sqsutil.Minus, a: "2000", b: "2000", expected: "0"},
		{name: "times slippage multiplier", fn: sqsutil.Times, a: "100", b: "0.99", expected: "99"},
		{name: "times large integers", fn: sqsutil.Times, a: "123456789123456789", b: "1000", expected: "123456789123456789000"},
		{name: "div exact", fn: sqsutil.Div, a: "100", b: "10", expected: "10"},
		{name: "div keeps 36 digits", fn: sqsutil.Div, a: "1", b: "3", expected: "0.333333333333333333333333333333333333"},
		{name: "div by zero", fn: sqsutil.Div, a: "1", b: "0", expected: "0"},
		{name: "div non numeric", fn: sqsutil.Div, a: "abc", b: "2", expected: "0"},
		{name: "plus non numeric", fn: sqsutil.Plus, a: "", b: "2", expected: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.fn(tt.a, tt.b))
		})
	}
}

func TestComparisons(t *testing.T) {
	require.True(t, sqsutil.Gt("100", "95"))
	require.False(t, sqsutil.Gt("95", "95"))
	require.True(t, sqsutil.Gte("95", "95"))
	require.True(t, sqsutil.Lte("0.000001", "0.00001"))
	require.True(t, sqsutil.Lt("-1", "0"))
	require.True(t, sqsutil.Equal("1.50", "1.5"))

	// non-numeric input compares as zero
	require.False(t, sqsutil.Gt("abc", "0"))
	require.True(t, sqsutil.Gte("abc", "0"))
}

func TestRounding(t *testing.T) {
	require.Equal(t, "99", sqsutil.Floor("99.999"))
	require.Equal(t, "-2", sqsutil.Floor("-1.5"))
	require.Equal(t, "5", sqsutil.Floor("5"))
	require.Equal(t, "100", sqsutil.Ceil("99.001"))
	require.Equal(t, "0", sqsutil.Floor("not a number"))
}

func TestMaxMin(t *testing.T) {
	require.Equal(t, "998000", sqsutil.Max("998000", "0"))
	require.Equal(t, "0", sqsutil.Max("-5", "0"))
	require.Equal(t, "0", sqsutil.Max())
	require.Equal(t, "-5", sqsutil.Min("-5", "0", "3"))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		value     string
		isFinite  bool
		isInteger bool
		decPlaces int
	}{
		{value: "1", isFinite: true, isInteger: true, decPlaces: 0},
		{value: "1.0", isFinite: true, isInteger: true, decPlaces: 0},
		{value: "1.25", isFinite: true, isInteger: false, decPlaces: 2},
		{value: " 0.5 ", isFinite: true, isInteger: false, decPlaces: 1},
		{value: "", isFinite: false, isInteger: false, decPlaces: 0},
		{value: "abc", isFinite: false, isInteger: false, decPlaces: 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.isFinite, sqsutil.IsFinite(tt.value))
			require.Equal(t, tt.isInteger, sqsutil.IsInteger(tt.value))
			require.Equal(t, tt.decPlaces, sqsutil.DecimalPlaces(tt.value))
		})
	}
}

func TestAmountConversion(t *testing.T) {
	require.Equal(t, "1500000", sqsutil.ToAmount("1.5", 6))
	require.Equal(t, "0", sqsutil.ToAmount("0.0000001", 6))
	require.Equal(t, "1000000000000000000", sqsutil.ToAmount("1", 18))
	require.Equal(t, "0", sqsutil.ToAmount("abc", 6))
	require.Equal(t, "1.5", sqsutil.ToInput("1500000", 6))
	require.Equal(t, "100", sqsutil.Pow10(2))
	require.Equal(t, "0.01", sqsutil.Pow10(-2))
}

func TestDisplay(t *testing.T) {
	require.Equal(t, "1.50%", sqsutil.Percent("0.015"))
	require.Equal(t, "0.00%", sqsutil.Percent("bad"))
	require.Equal(t, "1.1234", sqsutil.DecimalN("1.123456789", 4))
	require.Equal(t, "1.234567", sqsutil.FormatAmount("1234567", 6))
	require.Equal(t, "0.000099", sqsutil.FormatAmount("99", 6))
	require.Equal(t, "0.333333", sqsutil.FormatDecimal("0.3333339"))
}
