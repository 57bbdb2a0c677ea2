package client

import (
	"context"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
	txfeestypes "github.com/osmosis-labs/osmosis/v25/x/txfees/types"
	"google.golang.org/grpc"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

// NewFeeEstimator returns the fee estimator selected by config.FeeSource.
// The txfees estimator falls back to the static gas prices for denoms the chain does not price.
func NewFeeEstimator(config domain.SwapConfig, grpcConn grpc.ClientConnInterface) (mvc.FeeEstimator, error) {
	static, err := NewStaticFeeEstimator(config.GasPrices)
	if err != nil {
		return nil, err
	}

	switch config.FeeSource {
	case domain.FeeSourceStatic:
		return static, nil
	case domain.FeeSourceTxFees:
		return NewTxFeesEstimator(txfeestypes.NewQueryClient(grpcConn), static), nil
	default:
		return nil, fmt.Errorf("unknown fee source (%s)", config.FeeSource)
	}
}

type staticFeeEstimator struct {
	gasPrices map[string]osmomath.Dec
}

var _ mvc.FeeEstimator = &staticFeeEstimator{}

// NewStaticFeeEstimator creates a fee estimator over fixed gas prices by denom.
func NewStaticFeeEstimator(gasPrices map[string]string) (mvc.FeeEstimator, error) {
	parsed := make(map[string]osmomath.Dec, len(gasPrices))
	for denom, price := range gasPrices {
		dec, err := osmomath.NewDecFromStr(price)
		if err != nil {
			return nil, fmt.Errorf("invalid gas price (%s) for denom (%s): %w", price, denom, err)
		}
		parsed[denom] = dec
	}

	return &staticFeeEstimator{gasPrices: parsed}, nil
}

// EstimateFee implements mvc.FeeEstimator.
func (e *staticFeeEstimator) EstimateFee(ctx context.Context, gas uint64, feeDenom string) (string, error) {
	gasPrice, ok := e.gasPrices[feeDenom]
	if !ok {
		return "", domain.GasPriceNotFoundError{Denom: feeDenom}
	}

	return CalculateFeeAmount(gasPrice, gas).String(), nil
}

type txFeesEstimator struct {
	client   txfeestypes.QueryClient
	fallback mvc.FeeEstimator
}

var _ mvc.FeeEstimator = &txFeesEstimator{}

// NewTxFeesEstimator creates a fee estimator pricing gas with the chain's EIP base fee.
func NewTxFeesEstimator(client txfeestypes.QueryClient, fallback mvc.FeeEstimator) mvc.FeeEstimator {
	return &txFeesEstimator{
		client:   client,
		fallback: fallback,
	}
}

// EstimateFee implements mvc.FeeEstimator.
// The base fee is quoted in the base denom. Other fee denoms are converted with their spot price
// against the base denom.
func (e *txFeesEstimator) EstimateFee(ctx context.Context, gas uint64, feeDenom string) (string, error) {
	baseDenomResponse, err := e.client.BaseDenom(ctx, &txfeestypes.QueryBaseDenomRequest{})
	if err != nil {
		return "", err
	}

	baseFeeResponse, err := e.client.GetEipBaseFee(ctx, &txfeestypes.QueryEipBaseFeeRequest{})
	if err != nil {
		return "", err
	}

	if feeDenom == baseDenomResponse.BaseDenom {
		return CalculateFeeAmount(baseFeeResponse.BaseFee, gas).String(), nil
	}

	spotPriceResponse, err := e.client.DenomSpotPrice(ctx, &txfeestypes.QueryDenomSpotPriceRequest{Denom: feeDenom})
	if err != nil || !spotPriceResponse.SpotPrice.IsPositive() {
		return e.fallback.EstimateFee(ctx, gas, feeDenom)
	}

	gasPrice := baseFeeResponse.BaseFee.Quo(spotPriceResponse.SpotPrice)

	return CalculateFeeAmount(gasPrice, gas).String(), nil
}

// CalculateFeeAmount calculates the fee based on gas and gas price
func CalculateFeeAmount(gasPrice osmomath.Dec, gas uint64) osmomath.Int {
	return gasPrice.MulInt64(int64(gas)).Ceil().TruncateInt()
}
