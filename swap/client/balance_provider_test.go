package client_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/swap/client"
	"github.com/osmosis-labs/swapquery/swap/usecase/swaptesting"
)

type BalanceProviderTestSuite struct {
	swaptesting.SwapTestSuite
}

func TestBalanceProviderTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceProviderTestSuite))
}

func (s *BalanceProviderTestSuite) config() domain.SwapConfig {
	config := domain.DefaultSwapConfig
	config.BalanceWorkers = 2
	return config
}

func (s *BalanceProviderTestSuite) newContracts() *contractClientMock {
	return &contractClientMock{
		GetTokenBalanceFunc: func(ctx context.Context, token string, address string) (string, error) {
			s.Require().Equal(swaptesting.Trader, address)

			switch token {
			case swaptesting.MIR:
				return "300", nil
			case swaptesting.ANC:
				return "", errors.New("contract unavailable")
			default:
				return "0", nil
			}
		},
	}
}

func (s *BalanceProviderTestSuite) TestCurrentBalances() {
	var bankCalls atomic.Int32
	bank := &bankClientMock{
		GetBalanceFunc: func(ctx context.Context, address string) (sdk.Coins, error) {
			bankCalls.Add(1)
			return sdk.NewCoins(sdk.NewInt64Coin(swaptesting.Luna, 1000000)), nil
		},
	}

	provider := client.NewBalanceProvider(bank, s.newContracts(), s.Assets(), s.config(), &log.NoOpLogger{})
	ctx := context.Background()

	balances, err := provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)

	// The failing token and the empty token are skipped.
	expected := sdk.NewCoins(sdk.NewInt64Coin(swaptesting.Luna, 1000000), sdk.NewInt64Coin(swaptesting.MIR, 300))
	s.Require().Equal(expected.String(), balances.String())

	// Balances are reused until refreshed.
	_, err = provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)
	s.Require().Equal(int32(1), bankCalls.Load())

	s.Require().NoError(provider.Refresh(ctx, swaptesting.Trader))
	s.Require().Equal(int32(2), bankCalls.Load())

	_, err = provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)
	s.Require().Equal(int32(2), bankCalls.Load())
}

func (s *BalanceProviderTestSuite) TestCurrentBalances_Expired() {
	var bankCalls atomic.Int32
	bank := &bankClientMock{
		GetBalanceFunc: func(ctx context.Context, address string) (sdk.Coins, error) {
			bankCalls.Add(1)
			return sdk.NewCoins(sdk.NewInt64Coin(swaptesting.Luna, int64(bankCalls.Load()))), nil
		},
	}

	config := s.config()
	config.BalanceCacheSeconds = 1

	provider := client.NewBalanceProvider(bank, s.newContracts(), s.Assets(), config, &log.NoOpLogger{})
	ctx := context.Background()

	balances, err := provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)
	s.Require().Equal("1", balances.AmountOf(swaptesting.Luna).String())

	_, err = provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)
	s.Require().Equal(int32(1), bankCalls.Load())

	// Once expired, the balance is queried again without an explicit refresh.
	time.Sleep(1500 * time.Millisecond)

	balances, err = provider.CurrentBalances(ctx, swaptesting.Trader)
	s.Require().NoError(err)
	s.Require().Equal(int32(2), bankCalls.Load())
	s.Require().Equal("2", balances.AmountOf(swaptesting.Luna).String())
}

func (s *BalanceProviderTestSuite) TestCurrentBalances_BankError() {
	bankErr := errors.New("node unavailable")
	bank := &bankClientMock{
		GetBalanceFunc: func(ctx context.Context, address string) (sdk.Coins, error) {
			return nil, bankErr
		},
	}

	provider := client.NewBalanceProvider(bank, s.newContracts(), s.Assets(), s.config(), &log.NoOpLogger{})

	_, err := provider.CurrentBalances(context.Background(), swaptesting.Trader)
	s.Require().ErrorIs(err, bankErr)

	s.Require().ErrorIs(provider.Refresh(context.Background(), swaptesting.Trader), bankErr)
}
