package sqsutil

import (
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// Decimal helpers operate on canonical decimal strings ("12", "0.5", "-3.25").
// All arithmetic is done with osmomath.BigDec (36 fractional digits) so that no value
// ever round-trips through a binary float.
//
// Unparsable input and division by zero yield "0" rather than an error. Callers that
// must reject such input validate it first with IsFinite.

const zeroStr = "0"

var (
	oneBigDec = osmomath.OneBigDec()
	tenBigDec = osmomath.NewBigDec(10)
)

// ParseBigDec parses a decimal string into a BigDec.
// Returns false if the string is not a finite decimal.
func ParseBigDec(value string) (osmomath.BigDec, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return osmomath.BigDec{}, false
	}

	result, err := osmomath.NewBigDecFromStr(value)
	if err != nil {
		return osmomath.BigDec{}, false
	}

	return result, true
}

// parseOrZero parses the value, falling back to zero.
func parseOrZero(value string) osmomath.BigDec {
	result, ok := ParseBigDec(value)
	if !ok {
		return osmomath.ZeroBigDec()
	}
	return result
}

// FormatBigDec converts a BigDec into its canonical string form,
// stripping trailing fractional zeros.
func FormatBigDec(value osmomath.BigDec) string {
	str := value.String()
	if !strings.Contains(str, ".") {
		return str
	}

	str = strings.TrimRight(str, "0")
	str = strings.TrimSuffix(str, ".")

	if str == "" || str == "-" || str == "-0" {
		return zeroStr
	}
	return str
}

// IsFinite returns true if the value parses as a decimal number.
func IsFinite(value string) bool {
	_, ok := ParseBigDec(value)
	return ok
}

// IsInteger returns true if the value parses and has no fractional part.
func IsInteger(value string) bool {
	result, ok := ParseBigDec(value)
	return ok && result.IsInteger()
}

// Gt returns a > b.
func Gt(a, b string) bool {
	return parseOrZero(a).GT(parseOrZero(b))
}

// Gte returns a >= b.
func Gte(a, b string) bool {
	return parseOrZero(a).GTE(parseOrZero(b))
}

// Lt returns a < b.
func Lt(a, b string) bool {
	return parseOrZero(a).LT(parseOrZero(b))
}

// Lte returns a <= b.
func Lte(a, b string) bool {
	return parseOrZero(a).LTE(parseOrZero(b))
}

// Equal returns a == b numerically.
func Equal(a, b string) bool {
	return parseOrZero(a).Equal(parseOrZero(b))
}

// Plus returns a + b.
func Plus(a, b string) string {
	return FormatBigDec(parseOrZero(a).Add(parseOrZero(b)))
}

// Minus returns a - b.
func Minus(a, b string) string {
	return FormatBigDec(parseOrZero(a).Sub(parseOrZero(b)))
}

// Times returns a * b.
func Times(a, b string) string {
	return FormatBigDec(parseOrZero(a).Mul(parseOrZero(b)))
}

// Div returns a / b, or "0" if b is zero.
func Div(a, b string) string {
	divisor := parseOrZero(b)
	if divisor.IsZero() {
		return zeroStr
	}
	return FormatBigDec(parseOrZero(a).Quo(divisor))
}

// Floor rounds towards negative infinity.
func Floor(value string) string {
	return FormatBigDec(floorBigDec(parseOrZero(value)))
}

// Ceil rounds towards positive infinity.
func Ceil(value string) string {
	return FormatBigDec(parseOrZero(value).Ceil())
}

// Max returns the largest of the given values.
// Returns "0" for an empty input.
func Max(values ...string) string {
	if len(values) == 0 {
		return zeroStr
	}

	result := parseOrZero(values[0])
	for _, value := range values[1:] {
		if current := parseOrZero(value); current.GT(result) {
			result = current
		}
	}
	return FormatBigDec(result)
}

// Min returns the smallest of the given values.
// Returns "0" for an empty input.
func Min(values ...string) string {
	if len(values) == 0 {
		return zeroStr
	}

	result := parseOrZero(values[0])
	for _, value := range values[1:] {
		if current := parseOrZero(value); current.LT(result) {
			result = current
		}
	}
	return FormatBigDec(result)
}

// Pow10 returns 10^exponent. Negative exponents produce fractions.
func Pow10(exponent int) string {
	return FormatBigDec(pow10BigDec(exponent))
}

// ToAmount converts a human readable input ("1.5") to a raw integer amount
// given the asset decimals ("1500000" for 6 decimals). Extra precision is truncated.
func ToAmount(input string, decimals int) string {
	if !IsFinite(input) {
		return zeroStr
	}
	return FormatBigDec(floorBigDec(parseOrZero(input).Mul(pow10BigDec(decimals))))
}

// ToInput converts a raw integer amount to human readable units given the asset decimals.
func ToInput(amount string, decimals int) string {
	return FormatBigDec(parseOrZero(amount).Quo(pow10BigDec(decimals)))
}

// DecimalPlaces returns the number of fractional digits written in value.
// Returns 0 for integers and unparsable input.
func DecimalPlaces(value string) int {
	value = strings.TrimSpace(value)
	if !IsFinite(value) {
		return 0
	}

	dotIndex := strings.Index(value, ".")
	if dotIndex < 0 {
		return 0
	}
	return len(strings.TrimRight(value[dotIndex+1:], "0"))
}

func floorBigDec(value osmomath.BigDec) osmomath.BigDec {
	truncated := value.TruncateDec()
	if value.IsNegative() && !truncated.Equal(value) {
		return truncated.Sub(oneBigDec)
	}
	return truncated
}

func pow10BigDec(exponent int) osmomath.BigDec {
	if exponent >= 0 {
		return tenBigDec.PowerInteger(uint64(exponent))
	}
	return oneBigDec.Quo(tenBigDec.PowerInteger(uint64(-exponent)))
}
