package usecase

import (
	"fmt"
	"strings"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

const (
	zero = "0"
	one  = "1"

	// defaultSlippageFraction applies when the tolerance is not a number.
	defaultSlippageFraction = "0.01"

	beliefPriceDecimals = 18

	routePathSeparator = " > "
)

// SlippageFraction converts a tolerance in percent into a fraction clamped to [0, 1].
func SlippageFraction(slippagePercent string) string {
	if !sqsutil.IsFinite(slippagePercent) {
		return defaultSlippageFraction
	}

	fraction := sqsutil.Div(slippagePercent, "100")
	return sqsutil.Min(sqsutil.Max(fraction, zero), one)
}

// MinimumReceive returns floor(output x (1 - slippagePercent/100)).
// Never exceeds output for a non-negative output.
func MinimumReceive(output, slippagePercent string) string {
	if !sqsutil.Gt(output, zero) {
		return zero
	}

	multiplier := sqsutil.Minus(one, SlippageFraction(slippagePercent))
	return sqsutil.Floor(sqsutil.Times(output, multiplier))
}

// BeliefPrice is the raw input paid per raw output received, truncated to 18 decimals.
func BeliefPrice(amount, output string) string {
	return sqsutil.DecimalN(sqsutil.Div(amount, output), beliefPriceDecimals)
}

// ExpectedUnitPrice returns the unit price in human units in both directions.
// Returns nil if either amount is not positive.
func ExpectedUnitPrice(amount, output string, from, to domain.Asset) *domain.ExpectedPrice {
	if !sqsutil.Gt(amount, zero) || !sqsutil.Gt(output, zero) {
		return nil
	}

	rawPrice := sqsutil.Div(amount, output)

	fromPerTo := sqsutil.Times(rawPrice, sqsutil.Pow10(to.Decimals-from.Decimals))
	toPerFrom := sqsutil.Times(sqsutil.Div(one, rawPrice), sqsutil.Pow10(from.Decimals-to.Decimals))

	// Quote in the direction where the unit price is at least one raw unit.
	var text string
	if sqsutil.Gt(rawPrice, one) {
		text = fmt.Sprintf("1 %s = %s %s", to.Symbol, sqsutil.FormatDecimal(fromPerTo), from.Symbol)
	} else {
		text = fmt.Sprintf("1 %s = %s %s", from.Symbol, sqsutil.FormatDecimal(toPerFrom), to.Symbol)
	}

	return &domain.ExpectedPrice{
		ToPerFrom: toPerFrom,
		FromPerTo: fromPerTo,
		Text:      text,
	}
}

// Spread returns the oracle spread cost of a direct quote, principal minus output, floored at zero.
// The tooltip parameters are taken from params for the destination asset.
func Spread(quote domain.Quote, to domain.Asset, params *domain.SwapParameters) *domain.SpreadInfo {
	value := sqsutil.Max(sqsutil.Minus(quote.Principal, quote.OutputAmount), zero)

	spread := &domain.SpreadInfo{
		Value: sqsutil.FormatAmount(value, to.Decimals),
		Unit:  to.Symbol,
	}

	if params != nil {
		spread.MinSpread = sqsutil.Percent(params.MinSpread)
		spread.TobinTax = sqsutil.Percent(params.TobinTaxes[to.ID])
	}

	return spread
}

// FormatRoutePath joins the path for display, for example "LUNA > UST > MIR".
func FormatRoutePath(path []string) string {
	return strings.Join(path, routePathSeparator)
}
