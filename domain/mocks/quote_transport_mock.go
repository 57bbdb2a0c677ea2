package mocks

import (
	"context"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type QuoteTransportMock struct {
	SimulateDirectFunc    func(ctx context.Context, from, to, amount string) (domain.DirectSimulation, error)
	SimulatePoolFunc      func(ctx context.Context, pair domain.Pair, offerAsset domain.Asset, offerAmount string) (domain.PoolSimulation, error)
	SimulateRouteFunc     func(ctx context.Context, from, to domain.Asset, amount, network string) (domain.RouteSimulation, error)
	GetSwapRateFunc       func(ctx context.Context, from, to string) (string, error)
	GetSwapParametersFunc func(ctx context.Context) (domain.SwapParameters, error)
}

var _ mvc.QuoteTransport = &QuoteTransportMock{}

// SimulateDirect implements mvc.QuoteTransport.
func (m *QuoteTransportMock) SimulateDirect(ctx context.Context, from, to, amount string) (domain.DirectSimulation, error) {
	if m.SimulateDirectFunc != nil {
		return m.SimulateDirectFunc(ctx, from, to, amount)
	}
	panic("unimplemented")
}

// SimulatePool implements mvc.QuoteTransport.
func (m *QuoteTransportMock) SimulatePool(ctx context.Context, pair domain.Pair, offerAsset domain.Asset, offerAmount string) (domain.PoolSimulation, error) {
	if m.SimulatePoolFunc != nil {
		return m.SimulatePoolFunc(ctx, pair, offerAsset, offerAmount)
	}
	panic("unimplemented")
}

// SimulateRoute implements mvc.QuoteTransport.
func (m *QuoteTransportMock) SimulateRoute(ctx context.Context, from, to domain.Asset, amount, network string) (domain.RouteSimulation, error) {
	if m.SimulateRouteFunc != nil {
		return m.SimulateRouteFunc(ctx, from, to, amount, network)
	}
	panic("unimplemented")
}

// GetSwapRate implements mvc.QuoteTransport.
func (m *QuoteTransportMock) GetSwapRate(ctx context.Context, from, to string) (string, error) {
	if m.GetSwapRateFunc != nil {
		return m.GetSwapRateFunc(ctx, from, to)
	}
	panic("unimplemented")
}

// GetSwapParameters implements mvc.QuoteTransport.
func (m *QuoteTransportMock) GetSwapParameters(ctx context.Context) (domain.SwapParameters, error) {
	if m.GetSwapParametersFunc != nil {
		return m.GetSwapParametersFunc(ctx)
	}
	panic("unimplemented")
}
