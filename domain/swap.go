package domain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
)

// DefaultSlippageTolerancePercent is the slippage a fresh intent starts with.
const DefaultSlippageTolerancePercent = "1"

// QuoteKey is the exact input triple a quote is valid for.
type QuoteKey struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Quote is the memoized result of simulating one venue for one QuoteKey.
// Quotes are never mutated once recorded.
type Quote struct {
	QuoteKey
	Venue Venue `json:"venue"`
	// OutputAmount is the raw amount of the destination asset.
	OutputAmount string `json:"output_amount"`
	// AuxFee is the commission charged by the pool venue.
	AuxFee string `json:"aux_fee,omitempty"`
	// Rate is the oracle unit rate for the direct venue.
	Rate string `json:"rate,omitempty"`
	// Principal is Amount x Rate, the pre-spread reference value for the direct venue.
	Principal string `json:"principal,omitempty"`
	// Operations is the simulated path for the routed venue.
	Operations []cosmwasmdomain.SwapOperation `json:"operations,omitempty"`
}

// ZeroQuote returns the quote reported for a triple that was never simulated.
func ZeroQuote(key QuoteKey, venue Venue) Quote {
	return Quote{QuoteKey: key, Venue: venue, OutputAmount: "0"}
}

// TradeIntent is the user driven state of a swap form.
type TradeIntent struct {
	Venue Venue `json:"venue"`
	// SlippageTolerancePercent is in percent, "1" means 1%.
	SlippageTolerancePercent string `json:"slippage"`
	From                     string `json:"from"`
	To                       string `json:"to"`
	// Input is the amount in human units of the from asset.
	Input string `json:"input"`
}

// NewTradeIntent returns an empty intent with the default slippage.
func NewTradeIntent() TradeIntent {
	return TradeIntent{SlippageTolerancePercent: DefaultSlippageTolerancePercent}
}

// DirectSimulation is the oracle transport response.
type DirectSimulation struct {
	OutputAmount string
	Rate         string
}

// PoolSimulation is the pool transport response.
type PoolSimulation struct {
	OutputAmount string
	Commission   string
}

// RouteSimulation is the route transport response.
type RouteSimulation struct {
	OutputAmount string
	// Contract is the router contract that executes Operations.
	Contract   string
	Operations []cosmwasmdomain.SwapOperation
}

// SwapParameters are the oracle-side parameters shown next to the spread.
type SwapParameters struct {
	MinSpread string `json:"min_spread"`
	// TobinTaxes maps a denom to its tax rate.
	TobinTaxes map[string]string `json:"tobin_taxes"`
}

// SimulationResult is returned by one simulation batch.
type SimulationResult struct {
	Key QuoteKey `json:"key"`
	// Quotes holds one quote per successfully simulated venue.
	Quotes     map[Venue]Quote `json:"quotes"`
	Generation uint64          `json:"generation"`
	// Stale is true if a newer batch superseded this one before it completed.
	Stale bool `json:"stale"`
}

// ExpectedPrice is the unit price in human units in both directions.
type ExpectedPrice struct {
	// ToPerFrom is the amount of to received per unit of from.
	ToPerFrom string `json:"to_per_from"`
	// FromPerTo is the amount of from paid per unit of to.
	FromPerTo string `json:"from_per_to"`
	Text      string `json:"text"`
}

// SpreadInfo describes the direct venue spread cost.
type SpreadInfo struct {
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	MinSpread string `json:"min_spread,omitempty"`
	TobinTax  string `json:"tobin_tax,omitempty"`
}

// SwapSnapshot is an immutable view of an engine after one evaluation.
type SwapSnapshot struct {
	Intent TradeIntent `json:"intent"`
	// Amount is the raw input amount derived from Intent.Input.
	Amount          string  `json:"amount"`
	AvailableVenues []Venue `json:"available_venues"`
	Simulating      bool    `json:"simulating"`
	// Simulated is the output of the selected venue for the current triple.
	Simulated string `json:"simulated"`
	// DisplayReceive is Simulated in human units.
	DisplayReceive          string         `json:"display_receive,omitempty"`
	RequiresManualSelection bool           `json:"requires_manual_selection"`
	MinimumReceive          string         `json:"minimum_receive"`
	ExpectedPrice           *ExpectedPrice `json:"expected_price,omitempty"`
	Spread                  *SpreadInfo    `json:"spread,omitempty"`
	TradingFee              string         `json:"trading_fee,omitempty"`
	RoutePath               []string       `json:"route_path,omitempty"`
	MaxInputAmount          string         `json:"max_input_amount,omitempty"`
	// ValidationErrors maps an intent field to its error message.
	ValidationErrors map[string]string `json:"validation_errors,omitempty"`
	SimulationError  string            `json:"simulation_error,omitempty"`
	Disabled         bool              `json:"disabled"`
}

// ConfirmContent is one line of the settlement confirmation summary.
type ConfirmContent struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Settlement is the unsigned set of instructions for the selected venue.
type Settlement struct {
	Venue          Venue            `json:"venue"`
	Instructions   []sdk.Msg        `json:"instructions"`
	MinimumReceive string           `json:"minimum_receive"`
	Contents       []ConfirmContent `json:"contents"`
	Warning        string           `json:"warning"`
}

// SettlementReport is the outcome decoded from the settlement logs.
type SettlementReport struct {
	Paid          string `json:"paid"`
	Received      string `json:"received"`
	ExecutedPrice string `json:"executed_price"`
	// Slippage is a percentage string, empty when not reported.
	Slippage string `json:"slippage,omitempty"`
	Message  string `json:"message"`
}

// IntentUpdate is a partial change of a TradeIntent. Nil fields are left unchanged.
type IntentUpdate struct {
	Venue                    *Venue  `json:"venue,omitempty"`
	SlippageTolerancePercent *string `json:"slippage,omitempty"`
	From                     *string `json:"from,omitempty"`
	To                       *string `json:"to,omitempty"`
	Input                    *string `json:"input,omitempty"`
}

// Apply returns current with the update applied.
// Changing from starts over from an intent holding only from and the current slippage,
// so values chosen for the previous source asset are dropped.
func (u IntentUpdate) Apply(current TradeIntent) TradeIntent {
	next := current

	if u.From != nil && *u.From != current.From {
		next = TradeIntent{
			From:                     *u.From,
			SlippageTolerancePercent: current.SlippageTolerancePercent,
		}
	}

	if u.To != nil {
		next.To = *u.To
	}
	if u.Input != nil {
		next.Input = *u.Input
	}
	if u.SlippageTolerancePercent != nil {
		next.SlippageTolerancePercent = *u.SlippageTolerancePercent
	}
	if u.Venue != nil {
		next.Venue = *u.Venue
	}

	return next
}

// ChainStatus is the sync status reported by the node.
type ChainStatus struct {
	LatestHeight uint64 `json:"latest_height"`
	CatchingUp   bool   `json:"catching_up"`
}
