package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

// simulator quotes every available venue of a triple concurrently.
type simulator struct {
	transport mvc.QuoteTransport
	assets    mvc.AssetRegistry
	pairs     mvc.PairRegistry

	network string
	logger  log.Logger
}

// simulationRequest is one batch of venue simulations for a single triple.
type simulationRequest struct {
	key    domain.QuoteKey
	venues []domain.Venue
}

// venueResult holds the outcome of a single venue simulation.
type venueResult struct {
	venue domain.Venue
	quote domain.Quote
	err   error
}

func newSimulator(transport mvc.QuoteTransport, assets mvc.AssetRegistry, pairs mvc.PairRegistry, network string, logger log.Logger) *simulator {
	return &simulator{
		transport: transport,
		assets:    assets,
		pairs:     pairs,
		network:   network,
		logger:    logger,
	}
}

// simulate fires one simulation per venue and waits for all of them.
// A failing venue does not abort the others. Returns the successful quotes by venue
// and the first error observed, wrapped in domain.SimulationError.
func (s *simulator) simulate(ctx context.Context, req simulationRequest) (map[domain.Venue]domain.Quote, error) {
	// Create a channel to communicate the results
	resultsChan := make(chan venueResult, len(req.venues))

	var wg sync.WaitGroup

	for _, venue := range req.venues {
		wg.Add(1)
		go func(venue domain.Venue) {
			defer wg.Done()

			start := time.Now()
			quote, err := s.simulateVenue(ctx, req, venue)

			domain.SwapSimulationsCounter.WithLabelValues(venue.String()).Inc()
			domain.SwapSimulationDurationHistogram.WithLabelValues(venue.String()).Observe(time.Since(start).Seconds())

			resultsChan <- venueResult{venue: venue, quote: quote, err: err}
		}(venue)
	}

	// Close the results channel once all goroutines have finished
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	quotes := make(map[domain.Venue]domain.Quote, len(req.venues))
	var firstErr error

	for result := range resultsChan {
		if result.err != nil {
			domain.SwapSimulationErrorsCounter.WithLabelValues(result.venue.String()).Inc()
			s.logger.Warn("venue simulation failed", zap.Stringer("venue", result.venue), zap.Any("key", req.key), zap.Error(result.err))

			if firstErr == nil {
				firstErr = domain.SimulationError{Venue: result.venue, Err: result.err}
			}
			continue
		}

		quotes[result.venue] = result.quote
	}

	return quotes, firstErr
}

// simulateVenue dispatches the transport call for a single venue.
func (s *simulator) simulateVenue(ctx context.Context, req simulationRequest, venue domain.Venue) (domain.Quote, error) {
	key := req.key

	switch venue {
	case domain.VenueDirect:
		result, err := s.transport.SimulateDirect(ctx, key.From, key.To, key.Amount)
		if err != nil {
			return domain.Quote{}, err
		}

		return domain.Quote{
			QuoteKey:     key,
			Venue:        venue,
			OutputAmount: result.OutputAmount,
			Rate:         result.Rate,
			Principal:    sqsutil.Times(key.Amount, result.Rate),
		}, nil
	case domain.VenuePool:
		pair, ok := s.pairs.FindPair(key.From, key.To)
		if !ok {
			return domain.Quote{}, domain.PairNotFoundError{From: key.From, To: key.To}
		}

		offerAsset, err := s.assets.GetAsset(key.From)
		if err != nil {
			return domain.Quote{}, err
		}

		result, err := s.transport.SimulatePool(ctx, pair, offerAsset, key.Amount)
		if err != nil {
			return domain.Quote{}, err
		}

		return domain.Quote{
			QuoteKey:     key,
			Venue:        venue,
			OutputAmount: result.OutputAmount,
			AuxFee:       result.Commission,
		}, nil
	case domain.VenueRouted:
		from, err := s.assets.GetAsset(key.From)
		if err != nil {
			return domain.Quote{}, err
		}

		to, err := s.assets.GetAsset(key.To)
		if err != nil {
			return domain.Quote{}, err
		}

		result, err := s.transport.SimulateRoute(ctx, from, to, key.Amount, s.network)
		if err != nil {
			return domain.Quote{}, err
		}

		return domain.Quote{
			QuoteKey:     key,
			Venue:        venue,
			OutputAmount: result.OutputAmount,
			Operations:   result.Operations,
		}, nil
	default:
		return domain.Quote{}, fmt.Errorf("unsupported venue (%d)", venue)
	}
}
