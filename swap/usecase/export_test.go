package usecase

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
)

type (
	VenueResolver = venueResolver
	QuoteCache    = quoteCache
)

func NewVenueResolver(assets mvc.AssetRegistry, pairs mvc.PairRegistry, nativeDenom, bridgeDenom string) *VenueResolver {
	return newVenueResolver(assets, pairs, nativeDenom, bridgeDenom)
}

func NewQuoteCache() *QuoteCache {
	return newQuoteCache()
}

func SpendableMax(ctx context.Context, fees mvc.FeeEstimator, assets mvc.AssetRegistry, referenceGas uint64, balances sdk.Coins, from string) (string, error) {
	return newSpendableGuard(fees, assets, referenceGas, &log.NoOpLogger{}).SpendableMax(ctx, balances, from)
}

func Simulate(ctx context.Context, transport mvc.QuoteTransport, assets mvc.AssetRegistry, pairs mvc.PairRegistry, key domain.QuoteKey, venues []domain.Venue) (map[domain.Venue]domain.Quote, error) {
	return newSimulator(transport, assets, pairs, "mainnet", &log.NoOpLogger{}).simulate(ctx, simulationRequest{key: key, venues: venues})
}

func ParseSettlementResult(venue domain.Venue, from, to domain.Asset, amount, referencePrice string, logs sdk.ABCIMessageLogs) (domain.SettlementReport, error) {
	return resultParser{venue: venue, from: from, to: to, amount: amount, referencePrice: referencePrice}.Parse(logs)
}
