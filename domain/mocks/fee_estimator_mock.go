package mocks

import (
	"context"

	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type FeeEstimatorMock struct {
	EstimateFeeFunc func(ctx context.Context, gas uint64, feeDenom string) (string, error)
}

var _ mvc.FeeEstimator = &FeeEstimatorMock{}

// EstimateFee implements mvc.FeeEstimator.
func (m *FeeEstimatorMock) EstimateFee(ctx context.Context, gas uint64, feeDenom string) (string, error) {
	if m.EstimateFeeFunc != nil {
		return m.EstimateFeeFunc(ctx, gas, feeDenom)
	}
	panic("unimplemented")
}
