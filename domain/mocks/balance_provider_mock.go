package mocks

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type BalanceProviderMock struct {
	CurrentBalancesFunc func(ctx context.Context, address string) (sdk.Coins, error)
	RefreshFunc         func(ctx context.Context, address string) error
}

var _ mvc.BalanceProvider = &BalanceProviderMock{}

// WithBalances returns a mock reporting the given coins for every address.
func WithBalances(coins sdk.Coins) *BalanceProviderMock {
	return &BalanceProviderMock{
		CurrentBalancesFunc: func(ctx context.Context, address string) (sdk.Coins, error) {
			return coins, nil
		},
		RefreshFunc: func(ctx context.Context, address string) error {
			return nil
		},
	}
}

// CurrentBalances implements mvc.BalanceProvider.
func (m *BalanceProviderMock) CurrentBalances(ctx context.Context, address string) (sdk.Coins, error) {
	if m.CurrentBalancesFunc != nil {
		return m.CurrentBalancesFunc(ctx, address)
	}
	panic("unimplemented")
}

// Refresh implements mvc.BalanceProvider.
func (m *BalanceProviderMock) Refresh(ctx context.Context, address string) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, address)
	}
	panic("unimplemented")
}
