package mocks

import (
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type SwapUsecaseMock struct {
	ResolveVenuesFunc      func(from, to string) []domain.Venue
	DestinationOptionsFunc func(from string) []domain.Asset
	NewEngineFunc          func() mvc.SwapEngine
	GetConfigFunc          func() domain.SwapConfig
}

var _ mvc.SwapUsecase = &SwapUsecaseMock{}

// ResolveVenues implements mvc.SwapUsecase.
func (m *SwapUsecaseMock) ResolveVenues(from, to string) []domain.Venue {
	if m.ResolveVenuesFunc != nil {
		return m.ResolveVenuesFunc(from, to)
	}
	panic("unimplemented")
}

// DestinationOptions implements mvc.SwapUsecase.
func (m *SwapUsecaseMock) DestinationOptions(from string) []domain.Asset {
	if m.DestinationOptionsFunc != nil {
		return m.DestinationOptionsFunc(from)
	}
	panic("unimplemented")
}

// NewEngine implements mvc.SwapUsecase.
func (m *SwapUsecaseMock) NewEngine() mvc.SwapEngine {
	if m.NewEngineFunc != nil {
		return m.NewEngineFunc()
	}
	panic("unimplemented")
}

// GetConfig implements mvc.SwapUsecase.
func (m *SwapUsecaseMock) GetConfig() domain.SwapConfig {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}
	panic("unimplemented")
}
