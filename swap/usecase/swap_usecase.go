package usecase

import (
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
)

type swapUseCase struct {
	config  domain.SwapConfig
	network string

	transport mvc.QuoteTransport
	balances  mvc.BalanceProvider
	fees      mvc.FeeEstimator
	assets    mvc.AssetRegistry
	pairs     mvc.PairRegistry

	resolver *venueResolver

	logger log.Logger
}

var _ mvc.SwapUsecase = &swapUseCase{}

// NewSwapUsecase will create a new swap use case object.
// Missing config fields take their defaults.
func NewSwapUsecase(config domain.SwapConfig, network string, transport mvc.QuoteTransport, balances mvc.BalanceProvider, fees mvc.FeeEstimator, assets mvc.AssetRegistry, pairs mvc.PairRegistry, logger log.Logger) mvc.SwapUsecase {
	config = config.WithDefaults()

	return &swapUseCase{
		config:  config,
		network: network,

		transport: transport,
		balances:  balances,
		fees:      fees,
		assets:    assets,
		pairs:     pairs,

		resolver: newVenueResolver(assets, pairs, config.NativeDenom, config.BridgeDenom),

		logger: logger,
	}
}

// ResolveVenues implements mvc.SwapUsecase.
func (s *swapUseCase) ResolveVenues(from, to string) []domain.Venue {
	return s.resolver.ResolveVenues(from, to)
}

// DestinationOptions implements mvc.SwapUsecase.
func (s *swapUseCase) DestinationOptions(from string) []domain.Asset {
	return s.resolver.DestinationOptions(from)
}

// NewEngine implements mvc.SwapUsecase.
func (s *swapUseCase) NewEngine() mvc.SwapEngine {
	return newSwapEngine(s)
}

// GetConfig implements mvc.SwapUsecase.
func (s *swapUseCase) GetConfig() domain.SwapConfig {
	return s.config
}
