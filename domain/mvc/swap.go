package mvc

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
)

// QuoteTransport performs the network calls that quote a venue.
type QuoteTransport interface {
	// SimulateDirect quotes amount of from swapped to to on the exchange rate oracle.
	// Also returns the prevailing unit rate from -> to.
	SimulateDirect(ctx context.Context, from, to, amount string) (domain.DirectSimulation, error)
	// SimulatePool quotes offerAmount of offerAsset swapped on the pool of pair.
	// Also returns the commission charged by the pool.
	SimulatePool(ctx context.Context, pair domain.Pair, offerAsset domain.Asset, offerAmount string) (domain.PoolSimulation, error)
	// SimulateRoute quotes a two hop swap through the bridge asset on network.
	// The slippage floor over the whole path is set when the route is executed.
	SimulateRoute(ctx context.Context, from, to domain.Asset, amount, network string) (domain.RouteSimulation, error)
	// GetSwapRate returns the oracle unit rate from -> to.
	GetSwapRate(ctx context.Context, from, to string) (string, error)
	// GetSwapParameters returns the oracle min spread and per denom tobin taxes.
	GetSwapParameters(ctx context.Context) (domain.SwapParameters, error)
}

// BalanceProvider exposes account holdings.
type BalanceProvider interface {
	// CurrentBalances returns the last known balances of address, loading them on first use.
	CurrentBalances(ctx context.Context, address string) (sdk.Coins, error)
	// Refresh reloads the balances of address.
	Refresh(ctx context.Context, address string) error
}

// FeeEstimator computes transaction fees.
type FeeEstimator interface {
	// EstimateFee returns the raw fee amount in feeDenom for the given gas.
	EstimateFee(ctx context.Context, gas uint64, feeDenom string) (string, error)
}

// AssetRegistry is a read-only registry of tradable assets.
type AssetRegistry interface {
	// GetAsset returns the asset with the given id.
	// Returns AssetNotFoundError if missing.
	GetAsset(assetID string) (domain.Asset, error)
	// GetAssets returns every asset, native first, sorted by id within each group.
	GetAssets() []domain.Asset
	// GetDecimals returns the asset decimals, or domain.DefaultAssetDecimals if unknown.
	GetDecimals(assetID string) int
	// GetSymbol returns the display symbol, or the id if unknown.
	GetSymbol(assetID string) string
}

// PairRegistry is a read-only registry of pool pairs.
type PairRegistry interface {
	// FindPair returns the pool trading from and to in either order.
	FindPair(from, to string) (domain.Pair, bool)
	// GetPairs returns every pair.
	GetPairs() []domain.Pair
}

// SwapUsecase represent the swap's usecases
type SwapUsecase interface {
	// ResolveVenues returns the venues able to execute from -> to, in resolution order.
	ResolveVenues(from, to string) []domain.Venue
	// DestinationOptions returns every asset that from can be swapped to.
	DestinationOptions(from string) []domain.Asset
	// NewEngine creates the engine for one user session.
	NewEngine() SwapEngine
	// GetConfig returns the swap config.
	GetConfig() domain.SwapConfig
}

// SwapEngine owns the trade intent and the quote cache of one user session.
type SwapEngine interface {
	// ResolveVenues returns the venues able to execute from -> to.
	ResolveVenues(from, to string) []domain.Venue
	// SetIntent applies a new intent and returns it normalised.
	// Changing from resets the rest of the intent, from == to resets it to {from}.
	SetIntent(intent domain.TradeIntent) domain.TradeIntent
	// ApplyIntent applies a partial update to the current intent atomically, with the
	// same normalisation as SetIntent.
	ApplyIntent(update domain.IntentUpdate) domain.TradeIntent
	// Intent returns the current intent.
	Intent() domain.TradeIntent
	// Simulate runs one simulation batch for the current intent.
	// The error, if any, is the first venue failure; successful quotes are still recorded.
	Simulate(ctx context.Context) (domain.SimulationResult, error)
	// RecordQuote stores a quote, replacing the entry for the same triple and venue.
	RecordQuote(quote domain.Quote)
	// LookupQuote returns the recorded quote or a zero quote.
	LookupQuote(key domain.QuoteKey, venue domain.Venue) domain.Quote
	// SelectVenue picks the venue for the given quotes of the current intent.
	// Returns false if the user must choose.
	SelectVenue(quotes map[domain.Venue]domain.Quote) (domain.Venue, bool)
	// SpendableMax computes the spendable maximum of the from asset for address.
	SpendableMax(ctx context.Context, address string) (string, error)
	// Snapshot returns an immutable view of the engine.
	Snapshot() domain.SwapSnapshot
	// BuildSettlement builds the unsigned instructions for trader.
	// Returns ErrSettlementDisabled if the intent is not ready.
	BuildSettlement(ctx context.Context, trader string) (domain.Settlement, error)
	// ParseResult decodes the settlement logs of the last built settlement.
	ParseResult(logs sdk.ABCIMessageLogs) (domain.SettlementReport, error)
	// Reset resets the intent to its defaults and refreshes the balances of address.
	Reset(ctx context.Context, address string) error
}
