package client

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/cache"
	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

const exchangeRatesCacheKey = "exchange_rates"

type quoteTransport struct {
	market    MarketClient
	contracts ContractClient
	assets    mvc.AssetRegistry

	nativeDenom     string
	bridgeDenom     string
	routerContracts map[string]string

	rates    *cache.Cache
	ratesTTL time.Duration
}

var _ mvc.QuoteTransport = &quoteTransport{}

// NewQuoteTransport creates the quote transport over the market and contract clients.
// Exchange rates are reused for the configured number of seconds.
func NewQuoteTransport(market MarketClient, contracts ContractClient, assets mvc.AssetRegistry, config domain.SwapConfig) mvc.QuoteTransport {
	return &quoteTransport{
		market:    market,
		contracts: contracts,
		assets:    assets,

		nativeDenom:     config.NativeDenom,
		bridgeDenom:     config.BridgeDenom,
		routerContracts: config.RouterContracts,

		rates:    cache.New(),
		ratesTTL: time.Duration(config.SwapRateCacheSeconds) * time.Second,
	}
}

// SimulateDirect implements mvc.QuoteTransport.
func (t *quoteTransport) SimulateDirect(ctx context.Context, from, to, amount string) (domain.DirectSimulation, error) {
	offerAmount, ok := math.NewIntFromString(amount)
	if !ok {
		return domain.DirectSimulation{}, fmt.Errorf("invalid offer amount (%s): %w", amount, domain.ErrBadParamInput)
	}

	output, err := t.market.SimulateSwap(ctx, sdk.Coin{Denom: from, Amount: offerAmount}, to)
	if err != nil {
		return domain.DirectSimulation{}, err
	}

	rate, err := t.GetSwapRate(ctx, from, to)
	if err != nil {
		return domain.DirectSimulation{}, err
	}

	return domain.DirectSimulation{
		OutputAmount: sqsutil.Floor(output),
		Rate:         rate,
	}, nil
}

// SimulatePool implements mvc.QuoteTransport.
func (t *quoteTransport) SimulatePool(ctx context.Context, pair domain.Pair, offerAsset domain.Asset, offerAmount string) (domain.PoolSimulation, error) {
	response, err := t.contracts.SimulatePool(ctx, pair.PoolID, cosmwasmdomain.ContractAsset{
		Info:   cosmwasmdomain.NewAssetInfo(offerAsset.ID, offerAsset.IsNative),
		Amount: offerAmount,
	})
	if err != nil {
		return domain.PoolSimulation{}, err
	}

	return domain.PoolSimulation{
		OutputAmount: response.ReturnAmount,
		Commission:   response.CommissionAmount,
	}, nil
}

// SimulateRoute implements mvc.QuoteTransport.
// The router simulation has no floor, the minimum receive is attached by the settlement builder.
func (t *quoteTransport) SimulateRoute(ctx context.Context, from, to domain.Asset, amount, network string) (domain.RouteSimulation, error) {
	router, ok := t.routerContracts[network]
	if !ok || router == "" {
		return domain.RouteSimulation{}, fmt.Errorf("no router contract configured for network (%s)", network)
	}

	operations := t.routeOperations(from, to)

	output, err := t.contracts.SimulateSwapOperations(ctx, router, amount, operations)
	if err != nil {
		return domain.RouteSimulation{}, err
	}

	return domain.RouteSimulation{
		OutputAmount: output,
		Contract:     router,
		Operations:   operations,
	}, nil
}

// GetSwapRate implements mvc.QuoteTransport.
// The rate is the amount of to per unit of from, derived from the oracle prices of both denoms.
func (t *quoteTransport) GetSwapRate(ctx context.Context, from, to string) (string, error) {
	rates, err := t.exchangeRates(ctx)
	if err != nil {
		return "", err
	}

	fromRate, err := t.nativeRate(rates, from)
	if err != nil {
		return "", err
	}

	toRate, err := t.nativeRate(rates, to)
	if err != nil {
		return "", err
	}

	return sqsutil.Div(toRate, fromRate), nil
}

// GetSwapParameters implements mvc.QuoteTransport.
func (t *quoteTransport) GetSwapParameters(ctx context.Context) (domain.SwapParameters, error) {
	marketParams, err := t.market.GetMarketParams(ctx)
	if err != nil {
		return domain.SwapParameters{}, err
	}

	oracleParams, err := t.market.GetOracleParams(ctx)
	if err != nil {
		return domain.SwapParameters{}, err
	}

	tobinTaxes := make(map[string]string, len(oracleParams.Whitelist))
	for _, denom := range oracleParams.Whitelist {
		tobinTaxes[denom.Name] = denom.TobinTax
	}

	return domain.SwapParameters{
		MinSpread:  marketParams.MinStabilitySpread,
		TobinTaxes: tobinTaxes,
	}, nil
}

// exchangeRates returns the cached oracle prices, refetching them once expired.
func (t *quoteTransport) exchangeRates(ctx context.Context) (map[string]string, error) {
	if cached, ok := t.rates.Get(exchangeRatesCacheKey); ok {
		if rates, ok := cached.(map[string]string); ok {
			return rates, nil
		}
	}

	rates, err := t.market.GetExchangeRates(ctx)
	if err != nil {
		return nil, err
	}

	if t.ratesTTL > 0 {
		t.rates.Set(exchangeRatesCacheKey, rates, t.ratesTTL)
	}

	return rates, nil
}

// nativeRate returns the oracle price of denom in units of the native asset.
func (t *quoteTransport) nativeRate(rates map[string]string, denom string) (string, error) {
	if denom == t.nativeDenom {
		return "1", nil
	}

	rate, ok := rates[denom]
	if !ok || !sqsutil.Gt(rate, "0") {
		return "", fmt.Errorf("no exchange rate for denom (%s): %w", denom, domain.ErrNotFound)
	}
	return rate, nil
}

// routeOperations builds the two hops through the bridge asset.
func (t *quoteTransport) routeOperations(from, to domain.Asset) []cosmwasmdomain.SwapOperation {
	bridge := t.asset(t.bridgeDenom)

	return []cosmwasmdomain.SwapOperation{
		t.operation(from, bridge),
		t.operation(bridge, to),
	}
}

// operation settles a hop on the oracle when both sides are quoted by it, on a pool otherwise.
func (t *quoteTransport) operation(offer, ask domain.Asset) cosmwasmdomain.SwapOperation {
	if t.isOracleEligible(offer) && t.isOracleEligible(ask) {
		return cosmwasmdomain.SwapOperation{
			NativeSwap: &cosmwasmdomain.NativeSwapOperation{
				OfferDenom: offer.ID,
				AskDenom:   ask.ID,
			},
		}
	}

	return cosmwasmdomain.SwapOperation{
		PoolSwap: &cosmwasmdomain.PoolSwapOperation{
			OfferAssetInfo: cosmwasmdomain.NewAssetInfo(offer.ID, offer.IsNative),
			AskAssetInfo:   cosmwasmdomain.NewAssetInfo(ask.ID, ask.IsNative),
		},
	}
}

func (t *quoteTransport) isOracleEligible(asset domain.Asset) bool {
	return asset.ID == t.nativeDenom || (asset.IsNative && asset.OracleListed)
}

// asset returns the registry asset, falling back to a native oracle-listed denom.
func (t *quoteTransport) asset(assetID string) domain.Asset {
	asset, err := t.assets.GetAsset(assetID)
	if err != nil {
		return domain.Asset{ID: assetID, IsNative: true, OracleListed: true, Decimals: domain.DefaultAssetDecimals}
	}
	return asset
}
