package client_test

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
	"github.com/osmosis-labs/swapquery/swap/client"
)

type marketClientMock struct {
	SimulateSwapFunc     func(ctx context.Context, offerCoin sdk.Coin, askDenom string) (string, error)
	GetExchangeRatesFunc func(ctx context.Context) (map[string]string, error)
	GetActiveDenomsFunc  func(ctx context.Context) ([]string, error)
	GetMarketParamsFunc  func(ctx context.Context) (client.MarketParams, error)
	GetOracleParamsFunc  func(ctx context.Context) (client.OracleParams, error)
}

var _ client.MarketClient = &marketClientMock{}

func (m *marketClientMock) SimulateSwap(ctx context.Context, offerCoin sdk.Coin, askDenom string) (string, error) {
	if m.SimulateSwapFunc != nil {
		return m.SimulateSwapFunc(ctx, offerCoin, askDenom)
	}
	panic("unimplemented")
}

func (m *marketClientMock) GetExchangeRates(ctx context.Context) (map[string]string, error) {
	if m.GetExchangeRatesFunc != nil {
		return m.GetExchangeRatesFunc(ctx)
	}
	panic("unimplemented")
}

func (m *marketClientMock) GetActiveDenoms(ctx context.Context) ([]string, error) {
	if m.GetActiveDenomsFunc != nil {
		return m.GetActiveDenomsFunc(ctx)
	}
	panic("unimplemented")
}

func (m *marketClientMock) GetMarketParams(ctx context.Context) (client.MarketParams, error) {
	if m.GetMarketParamsFunc != nil {
		return m.GetMarketParamsFunc(ctx)
	}
	panic("unimplemented")
}

func (m *marketClientMock) GetOracleParams(ctx context.Context) (client.OracleParams, error) {
	if m.GetOracleParamsFunc != nil {
		return m.GetOracleParamsFunc(ctx)
	}
	panic("unimplemented")
}

type contractClientMock struct {
	SimulatePoolFunc           func(ctx context.Context, poolID string, offerAsset cosmwasmdomain.ContractAsset) (cosmwasmdomain.PoolSimulationResponse, error)
	SimulateSwapOperationsFunc func(ctx context.Context, router string, offerAmount string, operations []cosmwasmdomain.SwapOperation) (string, error)
	GetTokenBalanceFunc        func(ctx context.Context, token string, address string) (string, error)
}

var _ client.ContractClient = &contractClientMock{}

func (m *contractClientMock) SimulatePool(ctx context.Context, poolID string, offerAsset cosmwasmdomain.ContractAsset) (cosmwasmdomain.PoolSimulationResponse, error) {
	if m.SimulatePoolFunc != nil {
		return m.SimulatePoolFunc(ctx, poolID, offerAsset)
	}
	panic("unimplemented")
}

func (m *contractClientMock) SimulateSwapOperations(ctx context.Context, router string, offerAmount string, operations []cosmwasmdomain.SwapOperation) (string, error) {
	if m.SimulateSwapOperationsFunc != nil {
		return m.SimulateSwapOperationsFunc(ctx, router, offerAmount, operations)
	}
	panic("unimplemented")
}

func (m *contractClientMock) GetTokenBalance(ctx context.Context, token string, address string) (string, error) {
	if m.GetTokenBalanceFunc != nil {
		return m.GetTokenBalanceFunc(ctx, token, address)
	}
	panic("unimplemented")
}

type bankClientMock struct {
	GetBalanceFunc func(ctx context.Context, address string) (sdk.Coins, error)
}

var _ client.BankClient = &bankClientMock{}

func (m *bankClientMock) GetBalance(ctx context.Context, address string) (sdk.Coins, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, address)
	}
	panic("unimplemented")
}
