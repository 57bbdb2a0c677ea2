package usecase

import (
	"fmt"
	"regexp"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

const (
	// swapEventIndex is the position of the swap event in the first message log.
	swapEventIndex = 1

	// paid and received attribute keys for the direct venue.
	directOfferKey   = "offer"
	directReceiveKey = "swap_coin"

	// paid and received attribute keys for the pool and routed venues.
	contractOfferKey   = "offer_amount"
	contractReceiveKey = "return_amount"
)

// tokenTextRegex splits a coin string such as "1000uluna" into amount and denom.
var tokenTextRegex = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(\S*)\s*$`)

// resultParser decodes the settlement logs of one built settlement.
type resultParser struct {
	venue domain.Venue
	from  domain.Asset
	to    domain.Asset

	amount string
	// referencePrice is the pre-trade oracle unit rate, empty when unknown.
	referencePrice string
}

// Parse extracts paid and received amounts from the swap event and reports the realized price.
// Slippage against the reference price is skipped for routed settlements and when the
// reference price is unknown.
func (p resultParser) Parse(logs sdk.ABCIMessageLogs) (domain.SettlementReport, error) {
	if len(logs) == 0 {
		return domain.SettlementReport{}, fmt.Errorf("settlement logs are empty: %w", domain.ErrBadParamInput)
	}

	events := logs[0].Events
	if len(events) <= swapEventIndex {
		return domain.SettlementReport{}, fmt.Errorf("settlement log has %d events, swap event is missing: %w", len(events), domain.ErrBadParamInput)
	}

	attributes := events[swapEventIndex].Attributes

	paid, _ := SplitTokenText(findAttribute(attributes, directOfferKey, contractOfferKey))
	received, _ := SplitTokenText(findAttribute(attributes, directReceiveKey, contractReceiveKey))

	executedPrice := sqsutil.Div(received, paid)

	report := domain.SettlementReport{
		Paid:          paid,
		Received:      received,
		ExecutedPrice: executedPrice,
		Message: fmt.Sprintf("Swapped %s %s to %s",
			sqsutil.FormatAmount(p.amount, p.from.Decimals), p.from.Symbol, p.to.Symbol),
	}

	if p.venue != domain.VenueRouted && sqsutil.Gt(p.referencePrice, zero) {
		slippage := sqsutil.Max(sqsutil.Minus(sqsutil.Div(executedPrice, p.referencePrice), one), zero)
		report.Slippage = sqsutil.Percent(slippage)
		report.Message = fmt.Sprintf("%s (Slippage: %s)", report.Message, report.Slippage)
	}

	return report, nil
}

// findAttribute returns the value of the first attribute matching any of keys.
func findAttribute(attributes []sdk.Attribute, keys ...string) string {
	for _, attribute := range attributes {
		for _, key := range keys {
			if attribute.Key == key {
				return attribute.Value
			}
		}
	}
	return ""
}

// SplitTokenText splits a coin string into its amount and denom.
// A bare number has an empty denom. Unparsable text yields "0".
func SplitTokenText(text string) (amount string, denom string) {
	matches := tokenTextRegex.FindStringSubmatch(text)
	if matches == nil {
		return zero, ""
	}
	return matches[1], matches[2]
}
