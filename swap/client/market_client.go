package client

import (
	"context"
	"net/url"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	deliveryhttp "github.com/osmosis-labs/swapquery/delivery/http"
)

const (
	marketSwapPath    = "/terra/market/v1beta1/swap"
	marketParamsPath  = "/terra/market/v1beta1/params"
	exchangeRatesPath = "/terra/oracle/v1beta1/denoms/exchange_rates"
	activeDenomsPath  = "/terra/oracle/v1beta1/denoms/actives"
	oracleParamsPath  = "/terra/oracle/v1beta1/params"
	offerCoinQueryKey = "offer_coin"
	askDenomQueryKey  = "ask_denom"
)

// MarketClient queries the market and oracle modules.
type MarketClient interface {
	// SimulateSwap returns the amount of askDenom received for offerCoin at the oracle rate after spread.
	SimulateSwap(ctx context.Context, offerCoin sdk.Coin, askDenom string) (string, error)
	// GetExchangeRates returns the price of one unit of the native asset by denom.
	GetExchangeRates(ctx context.Context) (map[string]string, error)
	GetActiveDenoms(ctx context.Context) ([]string, error)
	GetMarketParams(ctx context.Context) (MarketParams, error)
	GetOracleParams(ctx context.Context) (OracleParams, error)
}

// DecCoin is a coin with a decimal amount as rendered by the LCD.
type DecCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// MarketParams are the market module parameters.
type MarketParams struct {
	BasePool           string `json:"base_pool"`
	PoolRecoveryPeriod string `json:"pool_recovery_period"`
	MinStabilitySpread string `json:"min_stability_spread"`
}

// OracleParams are the oracle module parameters.
type OracleParams struct {
	VotePeriod string             `json:"vote_period"`
	Whitelist  []WhitelistedDenom `json:"whitelist"`
}

// WhitelistedDenom is a denom quoted by the oracle with its tobin tax.
type WhitelistedDenom struct {
	Name     string `json:"name"`
	TobinTax string `json:"tobin_tax"`
}

type marketClient struct {
	lcdEndpoint string
}

var _ MarketClient = &marketClient{}

// NewMarketClient creates a market client over the LCD endpoint.
func NewMarketClient(lcdEndpoint string) MarketClient {
	return &marketClient{
		lcdEndpoint: strings.TrimSuffix(lcdEndpoint, "/"),
	}
}

// SimulateSwap implements MarketClient.
func (c *marketClient) SimulateSwap(ctx context.Context, offerCoin sdk.Coin, askDenom string) (string, error) {
	query := url.Values{}
	query.Set(offerCoinQueryKey, offerCoin.String())
	query.Set(askDenomQueryKey, askDenom)

	var response struct {
		ReturnCoin DecCoin `json:"return_coin"`
	}
	if err := c.get(ctx, marketSwapPath+"?"+query.Encode(), &response); err != nil {
		return "", err
	}

	return response.ReturnCoin.Amount, nil
}

// GetExchangeRates implements MarketClient.
func (c *marketClient) GetExchangeRates(ctx context.Context) (map[string]string, error) {
	var response struct {
		ExchangeRates []DecCoin `json:"exchange_rates"`
	}
	if err := c.get(ctx, exchangeRatesPath, &response); err != nil {
		return nil, err
	}

	rates := make(map[string]string, len(response.ExchangeRates))
	for _, rate := range response.ExchangeRates {
		rates[rate.Denom] = rate.Amount
	}
	return rates, nil
}

// GetActiveDenoms implements MarketClient.
func (c *marketClient) GetActiveDenoms(ctx context.Context) ([]string, error) {
	var response struct {
		Actives []string `json:"actives"`
	}
	if err := c.get(ctx, activeDenomsPath, &response); err != nil {
		return nil, err
	}
	return response.Actives, nil
}

// GetMarketParams implements MarketClient.
func (c *marketClient) GetMarketParams(ctx context.Context) (MarketParams, error) {
	var response struct {
		Params MarketParams `json:"params"`
	}
	if err := c.get(ctx, marketParamsPath, &response); err != nil {
		return MarketParams{}, err
	}
	return response.Params, nil
}

// GetOracleParams implements MarketClient.
func (c *marketClient) GetOracleParams(ctx context.Context) (OracleParams, error) {
	var response struct {
		Params OracleParams `json:"params"`
	}
	if err := c.get(ctx, oracleParamsPath, &response); err != nil {
		return OracleParams{}, err
	}
	return response.Params, nil
}

func (c *marketClient) get(ctx context.Context, path string, response any) error {
	return deliveryhttp.GetJSON(ctx, c.lcdEndpoint+path, response)
}
