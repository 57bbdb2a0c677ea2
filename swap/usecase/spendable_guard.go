package usecase

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

// spendableGuard computes the maximum input amount of an asset.
type spendableGuard struct {
	fees   mvc.FeeEstimator
	assets mvc.AssetRegistry

	referenceGas uint64
	logger       log.Logger
}

func newSpendableGuard(fees mvc.FeeEstimator, assets mvc.AssetRegistry, referenceGas uint64, logger log.Logger) *spendableGuard {
	return &spendableGuard{
		fees:         fees,
		assets:       assets,
		referenceGas: referenceGas,
		logger:       logger,
	}
}

// SpendableMax returns the spendable maximum of from.
// If from is the only native asset the account holds, the fee for the reference gas is reserved
// from the balance. Otherwise the fee is paid from another asset and the raw balance is returned.
func (g *spendableGuard) SpendableMax(ctx context.Context, balances sdk.Coins, from string) (string, error) {
	balance := balances.AmountOfNoDenomValidation(from).String()

	natives := g.nativeDenoms(balances)
	if len(natives) != 1 || natives[0] != from {
		return balance, nil
	}

	fee, err := g.fees.EstimateFee(ctx, g.referenceGas, from)
	if err != nil {
		var gasPriceErr domain.GasPriceNotFoundError
		if !errors.As(err, &gasPriceErr) {
			return "", err
		}

		// The fee cannot be paid in from, nothing to reserve.
		g.logger.Debug("no gas price for spendable asset", zap.String("denom", from))
		fee = zero
	}

	return ApplySpendableGuard(balance, fee, true), nil
}

// nativeDenoms returns the bank denoms with a positive balance.
// Token balances cannot pay fees and are skipped.
func (g *spendableGuard) nativeDenoms(balances sdk.Coins) []string {
	denoms := make([]string, 0, len(balances))
	for _, coin := range balances {
		if !coin.Amount.IsPositive() {
			continue
		}

		asset, err := g.assets.GetAsset(coin.Denom)
		if err == nil && !asset.IsNative {
			continue
		}
		denoms = append(denoms, coin.Denom)
	}
	return denoms
}

// ApplySpendableGuard returns max(balance - fee, 0) for a single asset account, or balance otherwise.
func ApplySpendableGuard(balance, fee string, isSingleAsset bool) string {
	if !isSingleAsset {
		return balance
	}
	return sqsutil.Max(sqsutil.Minus(balance, fee), zero)
}
