package client_test

import (
	"context"
	"sync/atomic"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/swapquery/domain"
	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/swap/client"
	"github.com/osmosis-labs/swapquery/swap/usecase/swaptesting"
)

type QuoteTransportTestSuite struct {
	swaptesting.SwapTestSuite
}

func TestQuoteTransportTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteTransportTestSuite))
}

var exchangeRates = map[string]string{
	swaptesting.UST: "10",
	swaptesting.KRT: "12000",
}

func (s *QuoteTransportTestSuite) newTransport(market client.MarketClient, contracts client.ContractClient) mvc.QuoteTransport {
	return client.NewQuoteTransport(market, contracts, s.Assets(), domain.DefaultSwapConfig)
}

func (s *QuoteTransportTestSuite) TestSimulateDirect() {
	market := &marketClientMock{
		SimulateSwapFunc: func(ctx context.Context, offerCoin sdk.Coin, askDenom string) (string, error) {
			s.Require().Equal("10uluna", offerCoin.String())
			s.Require().Equal(swaptesting.UST, askDenom)
			return "99.7", nil
		},
		GetExchangeRatesFunc: func(ctx context.Context) (map[string]string, error) {
			return exchangeRates, nil
		},
	}

	transport := s.newTransport(market, &contractClientMock{})

	result, err := transport.SimulateDirect(context.Background(), swaptesting.Luna, swaptesting.UST, "10")
	s.Require().NoError(err)
	s.Require().Equal(domain.DirectSimulation{OutputAmount: "99", Rate: "10"}, result)

	_, err = transport.SimulateDirect(context.Background(), swaptesting.Luna, swaptesting.UST, "abc")
	s.Require().ErrorIs(err, domain.ErrBadParamInput)
}

func (s *QuoteTransportTestSuite) TestGetSwapRate() {
	var calls atomic.Int32
	market := &marketClientMock{
		GetExchangeRatesFunc: func(ctx context.Context) (map[string]string, error) {
			calls.Add(1)
			return exchangeRates, nil
		},
	}

	transport := s.newTransport(market, &contractClientMock{})
	ctx := context.Background()

	tests := []struct {
		from     string
		to       string
		expected string
	}{
		{swaptesting.Luna, swaptesting.UST, "10"},
		{swaptesting.UST, swaptesting.Luna, "0.1"},
		{swaptesting.UST, swaptesting.KRT, "1200"},
	}

	for _, tc := range tests {
		rate, err := transport.GetSwapRate(ctx, tc.from, tc.to)
		s.Require().NoError(err)
		s.Require().Equal(tc.expected, rate, "%s -> %s", tc.from, tc.to)
	}

	// The exchange rates are cached.
	s.Require().Equal(int32(1), calls.Load())

	_, err := transport.GetSwapRate(ctx, swaptesting.Luna, swaptesting.MIR)
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *QuoteTransportTestSuite) TestSimulatePool() {
	contracts := &contractClientMock{
		SimulatePoolFunc: func(ctx context.Context, poolID string, offerAsset cosmwasmdomain.ContractAsset) (cosmwasmdomain.PoolSimulationResponse, error) {
			s.Require().Equal(swaptesting.MIRUSTPool, poolID)
			s.Require().Equal(cosmwasmdomain.NewAssetInfo(swaptesting.MIR, false), offerAsset.Info)
			s.Require().Equal("1000000", offerAsset.Amount)

			return cosmwasmdomain.PoolSimulationResponse{ReturnAmount: "2500000", SpreadAmount: "10", CommissionAmount: "7500"}, nil
		},
	}

	transport := s.newTransport(&marketClientMock{}, contracts)

	pair, ok := s.Pairs().FindPair(swaptesting.MIR, swaptesting.UST)
	s.Require().True(ok)
	offerAsset, err := s.Assets().GetAsset(swaptesting.MIR)
	s.Require().NoError(err)

	result, err := transport.SimulatePool(context.Background(), pair, offerAsset, "1000000")
	s.Require().NoError(err)
	s.Require().Equal(domain.PoolSimulation{OutputAmount: "2500000", Commission: "7500"}, result)
}

func (s *QuoteTransportTestSuite) TestSimulateRoute() {
	router := domain.DefaultSwapConfig.RouterContracts[swaptesting.Network]
	bridge := cosmwasmdomain.NewAssetInfo(swaptesting.UST, true)

	tests := []struct {
		name               string
		from               string
		to                 string
		expectedOperations []cosmwasmdomain.SwapOperation
	}{
		{
			name: "token to token over two pools",
			from: swaptesting.MIR, to: swaptesting.ANC,
			expectedOperations: []cosmwasmdomain.SwapOperation{
				{PoolSwap: &cosmwasmdomain.PoolSwapOperation{OfferAssetInfo: cosmwasmdomain.NewAssetInfo(swaptesting.MIR, false), AskAssetInfo: bridge}},
				{PoolSwap: &cosmwasmdomain.PoolSwapOperation{OfferAssetInfo: bridge, AskAssetInfo: cosmwasmdomain.NewAssetInfo(swaptesting.ANC, false)}},
			},
		},
		{
			name: "native leg settles on the oracle",
			from: swaptesting.Luna, to: swaptesting.MIR,
			expectedOperations: []cosmwasmdomain.SwapOperation{
				{NativeSwap: &cosmwasmdomain.NativeSwapOperation{OfferDenom: swaptesting.Luna, AskDenom: swaptesting.UST}},
				{PoolSwap: &cosmwasmdomain.PoolSwapOperation{OfferAssetInfo: bridge, AskAssetInfo: cosmwasmdomain.NewAssetInfo(swaptesting.MIR, false)}},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		s.Run(tc.name, func() {
			contracts := &contractClientMock{
				SimulateSwapOperationsFunc: func(ctx context.Context, actualRouter string, offerAmount string, operations []cosmwasmdomain.SwapOperation) (string, error) {
					s.Require().Equal(router, actualRouter)
					s.Require().Equal("1000000", offerAmount)
					s.Require().Equal(tc.expectedOperations, operations)
					return "42", nil
				},
			}

			transport := s.newTransport(&marketClientMock{}, contracts)

			from, err := s.Assets().GetAsset(tc.from)
			s.Require().NoError(err)
			to, err := s.Assets().GetAsset(tc.to)
			s.Require().NoError(err)

			result, err := transport.SimulateRoute(context.Background(), from, to, "1000000", swaptesting.Network)
			s.Require().NoError(err)
			s.Require().Equal(domain.RouteSimulation{OutputAmount: "42", Contract: router, Operations: tc.expectedOperations}, result)
		})
	}

	s.Run("unknown network", func() {
		transport := s.newTransport(&marketClientMock{}, &contractClientMock{})

		from, _ := s.Assets().GetAsset(swaptesting.MIR)
		to, _ := s.Assets().GetAsset(swaptesting.ANC)

		_, err := transport.SimulateRoute(context.Background(), from, to, "1000000", "localnet")
		s.Require().Error(err)
	})
}

func (s *QuoteTransportTestSuite) TestGetSwapParameters() {
	market := &marketClientMock{
		GetMarketParamsFunc: func(ctx context.Context) (client.MarketParams, error) {
			return client.MarketParams{MinStabilitySpread: "0.02"}, nil
		},
		GetOracleParamsFunc: func(ctx context.Context) (client.OracleParams, error) {
			return client.OracleParams{
				Whitelist: []client.WhitelistedDenom{{Name: swaptesting.KRT, TobinTax: "0.0035"}},
			}, nil
		},
	}

	params, err := s.newTransport(market, &contractClientMock{}).GetSwapParameters(context.Background())
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapParameters{
		MinSpread:  "0.02",
		TobinTaxes: map[string]string{swaptesting.KRT: "0.0035"},
	}, params)
}
