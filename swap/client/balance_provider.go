package client

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/domain/workerpool"
	"github.com/osmosis-labs/swapquery/log"
)

// BankClient reads bank balances.
type BankClient interface {
	GetBalance(ctx context.Context, address string) (sdk.Coins, error)
}

type balanceProvider struct {
	bank      BankClient
	contracts ContractClient
	assets    mvc.AssetRegistry

	balances   *expirable.LRU[string, sdk.Coins]
	dispatcher *workerpool.Dispatcher[sdk.Coin]

	logger log.Logger
}

var _ mvc.BalanceProvider = &balanceProvider{}

// NewBalanceProvider creates a balance provider returning bank coins together with
// the token balances of every token in the asset registry.
// Balances are kept per address until refreshed or for config.BalanceCacheSeconds,
// for at most config.MaxSessions addresses.
func NewBalanceProvider(bank BankClient, contracts ContractClient, assets mvc.AssetRegistry, config domain.SwapConfig, logger log.Logger) mvc.BalanceProvider {
	config = config.WithDefaults()
	ttl := time.Duration(config.BalanceCacheSeconds) * time.Second

	return &balanceProvider{
		bank:      bank,
		contracts: contracts,
		assets:    assets,

		balances:   expirable.NewLRU[string, sdk.Coins](config.MaxSessions, nil, ttl),
		dispatcher: workerpool.NewDispatcher[sdk.Coin](config.BalanceWorkers),

		logger: logger,
	}
}

// CurrentBalances implements mvc.BalanceProvider.
func (p *balanceProvider) CurrentBalances(ctx context.Context, address string) (sdk.Coins, error) {
	if coins, ok := p.balances.Get(address); ok {
		return coins, nil
	}

	return p.fetch(ctx, address)
}

// Refresh implements mvc.BalanceProvider.
func (p *balanceProvider) Refresh(ctx context.Context, address string) error {
	p.balances.Remove(address)

	_, err := p.fetch(ctx, address)
	return err
}

func (p *balanceProvider) fetch(ctx context.Context, address string) (sdk.Coins, error) {
	bankCoins, err := p.bank.GetBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank balance of (%s): %w", address, err)
	}

	coins := make([]sdk.Coin, 0, len(bankCoins))
	coins = append(coins, bankCoins...)
	coins = append(coins, p.tokenBalances(ctx, address)...)

	balances := sdk.NewCoins(coins...)
	p.balances.Add(address, balances)

	return balances, nil
}

// tokenBalances queries every registry token concurrently.
// Failed queries are logged and skipped so that one broken token does not hide the rest.
func (p *balanceProvider) tokenBalances(ctx context.Context, address string) []sdk.Coin {
	jobs := make([]workerpool.Job[sdk.Coin], 0)
	for _, asset := range p.assets.GetAssets() {
		if asset.IsNative {
			continue
		}

		if err := sdk.ValidateDenom(asset.ID); err != nil {
			p.logger.Debug("skipping token with invalid denom", zap.String("token", asset.ID), zap.Error(err))
			continue
		}

		token := asset.ID
		jobs = append(jobs, workerpool.Job[sdk.Coin]{
			Task: func(ctx context.Context) (sdk.Coin, error) {
				balance, err := p.contracts.GetTokenBalance(ctx, token, address)
				if err != nil {
					return sdk.Coin{Denom: token}, err
				}

				amount, ok := math.NewIntFromString(balance)
				if !ok {
					return sdk.Coin{Denom: token}, fmt.Errorf("invalid balance (%s): %w", balance, domain.ErrBadParamInput)
				}

				return sdk.Coin{Denom: token, Amount: amount}, nil
			},
		})
	}

	coins := make([]sdk.Coin, 0, len(jobs))
	for _, result := range p.dispatcher.Run(ctx, jobs) {
		if result.Err != nil {
			p.logger.Warn("failed to get token balance", zap.String("token", result.Result.Denom), zap.String("address", address), zap.Error(result.Err))
			continue
		}

		if result.Result.Amount.IsPositive() {
			coins = append(coins, result.Result)
		}
	}

	return coins
}
