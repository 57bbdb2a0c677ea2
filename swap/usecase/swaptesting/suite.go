package swaptesting

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/swapquery/domain"
	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
	"github.com/osmosis-labs/swapquery/domain/mocks"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/swap/repository"
	swapusecase "github.com/osmosis-labs/swapquery/swap/usecase"
)

const (
	Luna = "uluna"
	UST  = "uusd"
	KRT  = "ukrw"

	// MIR and ANC are tokens with a pool against UST only.
	MIR = "terra15gwkyepfc6xgca5t5zefzwy42uts8l2m4g40k6"
	ANC = "terra14z56l0fp2lsf86zy3hty2z47ezkhnthtr9yq76"
	// Orphan is a token without any pool.
	Orphan = "terra1orphan0000000000000000000000000000000"

	LunaUSTPool = "terra1tndcaqxkpc5ce9qee5ggqf430mr2z3pefe5wj6"
	MIRUSTPool  = "terra1amv303y8kzxuegvurh0gug2xe9wkgj65enq2ux"
	ANCUSTPool  = "terra1gm5p3ner9x9xpwugn9sp6gvhd0lwrtkyrecdn3"

	Network = "mainnet"
	Trader  = "terra1x46rqay4d3cssq8gxxvqz8xt6nwlz4td20k38v"

	DefaultSwapRate = "10"
)

// SwapTestSuite is the base suite of the swap engine tests.
type SwapTestSuite struct {
	suite.Suite
}

// Assets returns the registry fixture.
func (s *SwapTestSuite) Assets() mvc.AssetRegistry {
	natives := repository.NewNativeAssets([]string{Luna, UST, KRT})
	tokens := []domain.Asset{
		{ID: MIR, Symbol: "MIR", Decimals: 6},
		{ID: ANC, Symbol: "ANC", Decimals: 6},
		{ID: Orphan, Symbol: "ORP", Decimals: 8},
	}
	return repository.NewAssetRegistry(append(natives, tokens...))
}

// Pairs returns the pair registry fixture.
func (s *SwapTestSuite) Pairs() mvc.PairRegistry {
	return repository.NewPairRegistry([]domain.Pair{
		{Asset0: Luna, Asset1: UST, PoolID: LunaUSTPool},
		{Asset0: MIR, Asset1: UST, PoolID: MIRUSTPool},
		{Asset0: UST, Asset1: ANC, PoolID: ANCUSTPool},
	})
}

// NewTransport returns a transport quoting fixed outputs.
// The direct rate is DefaultSwapRate.
func (s *SwapTestSuite) NewTransport(directOutput, poolOutput, routeOutput string) *mocks.QuoteTransportMock {
	return &mocks.QuoteTransportMock{
		SimulateDirectFunc: func(ctx context.Context, from, to, amount string) (domain.DirectSimulation, error) {
			return domain.DirectSimulation{OutputAmount: directOutput, Rate: DefaultSwapRate}, nil
		},
		SimulatePoolFunc: func(ctx context.Context, pair domain.Pair, offerAsset domain.Asset, offerAmount string) (domain.PoolSimulation, error) {
			return domain.PoolSimulation{OutputAmount: poolOutput, Commission: "3"}, nil
		},
		SimulateRouteFunc: func(ctx context.Context, from, to domain.Asset, amount, network string) (domain.RouteSimulation, error) {
			return domain.RouteSimulation{
				OutputAmount: routeOutput,
				Operations:   RouteOperations(from, to),
			}, nil
		},
		GetSwapRateFunc: func(ctx context.Context, from, to string) (string, error) {
			return DefaultSwapRate, nil
		},
		GetSwapParametersFunc: func(ctx context.Context) (domain.SwapParameters, error) {
			return domain.SwapParameters{
				MinSpread:  "0.02",
				TobinTaxes: map[string]string{UST: "0.0035", KRT: "0.0035"},
			}, nil
		},
	}
}

// RouteOperations returns the two pool hops through UST.
func RouteOperations(from, to domain.Asset) []cosmwasmdomain.SwapOperation {
	bridge := cosmwasmdomain.NewAssetInfo(UST, true)
	return []cosmwasmdomain.SwapOperation{
		{PoolSwap: &cosmwasmdomain.PoolSwapOperation{OfferAssetInfo: cosmwasmdomain.NewAssetInfo(from.ID, from.IsNative), AskAssetInfo: bridge}},
		{PoolSwap: &cosmwasmdomain.PoolSwapOperation{OfferAssetInfo: bridge, AskAssetInfo: cosmwasmdomain.NewAssetInfo(to.ID, to.IsNative)}},
	}
}

// NewFeeEstimator returns an estimator charging fee for any gas in any denom.
func (s *SwapTestSuite) NewFeeEstimator(fee string) *mocks.FeeEstimatorMock {
	return &mocks.FeeEstimatorMock{
		EstimateFeeFunc: func(ctx context.Context, gas uint64, feeDenom string) (string, error) {
			return fee, nil
		},
	}
}

// NewUsecase wires the swap usecase over the fixtures.
func (s *SwapTestSuite) NewUsecase(transport mvc.QuoteTransport, balances mvc.BalanceProvider, fees mvc.FeeEstimator) mvc.SwapUsecase {
	return swapusecase.NewSwapUsecase(domain.DefaultSwapConfig, Network, transport, balances, fees, s.Assets(), s.Pairs(), &log.NoOpLogger{})
}

// Balances returns a wallet holding plenty of every fixture asset.
func (s *SwapTestSuite) Balances() sdk.Coins {
	const amount = 1_000_000_000_000
	return sdk.NewCoins(
		sdk.NewInt64Coin(Luna, amount),
		sdk.NewInt64Coin(UST, amount),
		sdk.NewInt64Coin(KRT, amount),
		sdk.NewInt64Coin(MIR, amount),
		sdk.NewInt64Coin(ANC, amount),
	)
}

// NewEngine creates an engine with the intent already set.
// The trader holds Balances.
func (s *SwapTestSuite) NewEngine(transport mvc.QuoteTransport, intent domain.TradeIntent) mvc.SwapEngine {
	engine := s.NewUsecase(transport, mocks.WithBalances(s.Balances()), s.NewFeeEstimator("0")).NewEngine()
	engine.SetIntent(intent)
	return engine
}
