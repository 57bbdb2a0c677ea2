package usecase

import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

// swapEngine owns the trade intent and the quote cache of one session.
// All state is guarded by mu, which is never held across transport calls.
type swapEngine struct {
	mu sync.Mutex

	config domain.SwapConfig

	transport mvc.QuoteTransport
	balances  mvc.BalanceProvider
	assets    mvc.AssetRegistry
	pairs     mvc.PairRegistry

	resolver  *venueResolver
	simulator *simulator
	guard     *spendableGuard
	builder   *settlementBuilder
	cache     *quoteCache

	logger log.Logger

	intent domain.TradeIntent

	// generation increases with every simulation batch and every change of the input triple.
	// Batches completing with an older generation are discarded.
	generation       uint64
	simulating       bool
	cancelSimulation context.CancelFunc
	inFlightKey      domain.QuoteKey
	simulationErr    error

	// referencePrices holds the oracle unit rate by pair, used to report realized slippage.
	referencePrices map[pairKey]string
	swapParameters  *domain.SwapParameters

	maxInput        string
	maxInputFrom    string
	maxInputAddress string

	lastSettlement *resultParser
}

type pairKey struct {
	from string
	to   string
}

var _ mvc.SwapEngine = &swapEngine{}

func newSwapEngine(s *swapUseCase) *swapEngine {
	intent := domain.NewTradeIntent()
	intent.SlippageTolerancePercent = s.config.DefaultSlippage

	return &swapEngine{
		config: s.config,

		transport: s.transport,
		balances:  s.balances,
		assets:    s.assets,
		pairs:     s.pairs,

		resolver:  s.resolver,
		simulator: newSimulator(s.transport, s.assets, s.pairs, s.network, s.logger),
		guard:     newSpendableGuard(s.fees, s.assets, s.config.ReferenceGas, s.logger),
		builder:   newSettlementBuilder(s.network, s.config.RouterContracts, s.config.AssertLimitOrderContracts),
		cache:     newQuoteCache(),

		logger: s.logger,

		intent: intent,

		referencePrices: make(map[pairKey]string),
	}
}

// ResolveVenues implements mvc.SwapEngine.
func (e *swapEngine) ResolveVenues(from, to string) []domain.Venue {
	return e.resolver.ResolveVenues(from, to)
}

// SetIntent implements mvc.SwapEngine.
func (e *swapEngine) SetIntent(intent domain.TradeIntent) domain.TradeIntent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setIntentLocked(intent)
}

// ApplyIntent implements mvc.SwapEngine.
func (e *swapEngine) ApplyIntent(update domain.IntentUpdate) domain.TradeIntent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setIntentLocked(update.Apply(e.intent))
}

// setIntentLocked normalises and stores intent. Requires mu to be held.
func (e *swapEngine) setIntentLocked(intent domain.TradeIntent) domain.TradeIntent {
	prev := e.intent
	next := intent

	if next.SlippageTolerancePercent == "" {
		next.SlippageTolerancePercent = e.config.DefaultSlippage
	}

	switch {
	case next.From != "" && next.From == next.To:
		next = domain.TradeIntent{
			From:                     next.From,
			SlippageTolerancePercent: e.config.DefaultSlippage,
		}
	case next.From != prev.From, next.To != prev.To:
		// A new pair needs to be resolved again.
		next.Venue = domain.VenueNone
	}

	if next.Venue.IsSelected() && !domain.ContainsVenue(e.resolver.ResolveVenues(next.From, next.To), next.Venue) {
		next.Venue = domain.VenueNone
	}

	if e.quoteKey(prev) != e.quoteKey(next) {
		e.invalidateSimulationLocked()
	}

	e.intent = next
	return next
}

// Intent implements mvc.SwapEngine.
func (e *swapEngine) Intent() domain.TradeIntent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.intent
}

// Simulate implements mvc.SwapEngine.
func (e *swapEngine) Simulate(ctx context.Context) (domain.SimulationResult, error) {
	e.mu.Lock()

	intent := e.intent
	key := e.quoteKey(intent)
	result := domain.SimulationResult{Key: key, Quotes: map[domain.Venue]domain.Quote{}}

	if intent.From == "" || intent.To == "" {
		e.mu.Unlock()
		return result, domain.ValidationError{Field: "to", Reason: "source and destination assets are required"}
	}

	if intent.From == intent.To {
		e.intent = domain.TradeIntent{From: intent.From, SlippageTolerancePercent: e.config.DefaultSlippage}
		e.invalidateSimulationLocked()
		e.mu.Unlock()
		return result, nil
	}

	if !sqsutil.Gt(key.Amount, zero) {
		e.mu.Unlock()
		return result, domain.ValidationError{Field: "input", Reason: "must be greater than 0"}
	}

	venues := e.resolver.ResolveVenues(intent.From, intent.To)
	if len(venues) == 0 {
		e.mu.Unlock()
		return result, domain.NoVenueAvailableError{From: intent.From, To: intent.To}
	}

	e.generation++
	generation := e.generation

	if e.cancelSimulation != nil && e.inFlightKey != key {
		e.cancelSimulation()
	}
	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.cancelSimulation = cancel
	e.inFlightKey = key
	e.simulating = true

	req := simulationRequest{
		key:    key,
		venues: venues,
	}

	pk := pairKey{from: intent.From, to: intent.To}
	_, hasReferencePrice := e.referencePrices[pk]
	shouldFetchReferencePrice := !hasReferencePrice && e.isNative(intent.From)
	shouldFetchParameters := e.swapParameters == nil && domain.ContainsVenue(venues, domain.VenueDirect)

	e.mu.Unlock()

	var (
		wg             sync.WaitGroup
		referencePrice string
		parameters     *domain.SwapParameters
	)

	if shouldFetchReferencePrice {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rate, err := e.transport.GetSwapRate(batchCtx, intent.From, intent.To)
			if err != nil {
				e.logger.Warn("failed to fetch swap rate", zap.String("from", intent.From), zap.String("to", intent.To), zap.Error(err))
				return
			}
			referencePrice = rate
		}()
	}

	if shouldFetchParameters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			params, err := e.transport.GetSwapParameters(batchCtx)
			if err != nil {
				e.logger.Warn("failed to fetch swap parameters", zap.Error(err))
				return
			}
			parameters = &params
		}()
	}

	quotes, simulationErr := e.simulator.simulate(batchCtx, req)
	wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()

	if sqsutil.Gt(referencePrice, zero) {
		e.referencePrices[pk] = referencePrice
	}
	if parameters != nil {
		e.swapParameters = parameters
	}

	result.Quotes = quotes
	result.Generation = generation

	if generation != e.generation {
		domain.SwapStaleSimulationsCounter.Inc()
		e.logger.Debug("discarding stale simulation", zap.Uint64("generation", generation), zap.Uint64("current", e.generation))

		result.Stale = true
		return result, nil
	}

	e.simulating = false
	e.cancelSimulation = nil
	e.simulationErr = simulationErr

	for _, quote := range quotes {
		e.cache.Record(quote)
	}

	if venue, ok := SelectVenue(venues, e.cache.LookupAll(key)); ok {
		e.intent.Venue = venue
	}

	return result, simulationErr
}

// RecordQuote implements mvc.SwapEngine.
func (e *swapEngine) RecordQuote(quote domain.Quote) {
	e.cache.Record(quote)
}

// LookupQuote implements mvc.SwapEngine.
func (e *swapEngine) LookupQuote(key domain.QuoteKey, venue domain.Venue) domain.Quote {
	return e.cache.Lookup(key, venue)
}

// SelectVenue implements mvc.SwapEngine.
func (e *swapEngine) SelectVenue(quotes map[domain.Venue]domain.Quote) (domain.Venue, bool) {
	intent := e.Intent()
	return SelectVenue(e.resolver.ResolveVenues(intent.From, intent.To), quotes)
}

// SpendableMax implements mvc.SwapEngine.
func (e *swapEngine) SpendableMax(ctx context.Context, address string) (string, error) {
	from := e.Intent().From
	if from == "" {
		return "", domain.ValidationError{Field: "from", Reason: "source asset is required"}
	}

	balances, err := e.balances.CurrentBalances(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get balances of (%s): %w", address, err)
	}

	maxInput, err := e.guard.SpendableMax(ctx, balances, from)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Only keep the result if from did not change meanwhile.
	if e.intent.From == from {
		e.maxInput = maxInput
		e.maxInputFrom = from
		e.maxInputAddress = address
	}

	return maxInput, nil
}

// Snapshot implements mvc.SwapEngine.
func (e *swapEngine) Snapshot() domain.SwapSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// BuildSettlement implements mvc.SwapEngine.
func (e *swapEngine) BuildSettlement(ctx context.Context, trader string) (domain.Settlement, error) {
	if trader == "" {
		return domain.Settlement{}, domain.ValidationError{Field: "trader", Reason: "trader address is required"}
	}

	// The input is always checked against what trader can spend.
	if err := e.ensureSpendableMax(ctx, trader); err != nil {
		return domain.Settlement{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.snapshotLocked()
	if err := firstValidationError(snapshot.ValidationErrors); err != nil {
		return domain.Settlement{}, err
	}
	if snapshot.Disabled {
		return domain.Settlement{}, domain.ErrSettlementDisabled
	}

	intent := snapshot.Intent
	from := e.assetOrDefault(intent.From)
	to := e.assetOrDefault(intent.To)

	params := settlementParams{
		venue:           intent.Venue,
		trader:          trader,
		from:            from,
		to:              to,
		amount:          snapshot.Amount,
		output:          snapshot.Simulated,
		minimumReceive:  snapshot.MinimumReceive,
		slippagePercent: intent.SlippageTolerancePercent,
	}

	switch intent.Venue {
	case domain.VenuePool:
		pair, ok := e.pairs.FindPair(intent.From, intent.To)
		if !ok {
			return domain.Settlement{}, domain.PairNotFoundError{From: intent.From, To: intent.To}
		}
		params.pair = pair
	case domain.VenueRouted:
		params.operations = e.cache.Lookup(e.quoteKey(intent), domain.VenueRouted).Operations
	}

	settlement, err := e.builder.Build(params)
	if err != nil {
		return domain.Settlement{}, err
	}

	e.lastSettlement = &resultParser{
		venue:          intent.Venue,
		from:           from,
		to:             to,
		amount:         snapshot.Amount,
		referencePrice: e.referencePrices[pairKey{from: intent.From, to: intent.To}],
	}

	return settlement, nil
}

// ParseResult implements mvc.SwapEngine.
func (e *swapEngine) ParseResult(logs sdk.ABCIMessageLogs) (domain.SettlementReport, error) {
	e.mu.Lock()
	parser := e.lastSettlement
	e.mu.Unlock()

	if parser == nil {
		return domain.SettlementReport{}, fmt.Errorf("no settlement was built in this session: %w", domain.ErrNotFound)
	}

	return parser.Parse(logs)
}

// Reset implements mvc.SwapEngine.
func (e *swapEngine) Reset(ctx context.Context, address string) error {
	e.mu.Lock()
	e.intent = domain.TradeIntent{SlippageTolerancePercent: e.config.DefaultSlippage}
	e.invalidateSimulationLocked()
	e.maxInput = ""
	e.maxInputFrom = ""
	e.maxInputAddress = ""
	e.mu.Unlock()

	if address == "" {
		return nil
	}

	return e.balances.Refresh(ctx, address)
}

// ensureSpendableMax computes the spendable maximum of the current from asset for address
// unless it is already known for both.
func (e *swapEngine) ensureSpendableMax(ctx context.Context, address string) error {
	e.mu.Lock()
	from := e.intent.From
	known := e.maxInputFrom == from && e.maxInputAddress == address
	e.mu.Unlock()

	if from == "" || known {
		return nil
	}

	_, err := e.SpendableMax(ctx, address)
	return err
}

// validatedFields is the order in which intent field errors are reported.
var validatedFields = []string{"input", "slippage"}

// firstValidationError returns the error of the first invalid intent field, nil if there is none.
func firstValidationError(errs map[string]string) error {
	for _, field := range validatedFields {
		if reason, ok := errs[field]; ok {
			return domain.ValidationError{Field: field, Reason: reason}
		}
	}
	return nil
}

// snapshotLocked evaluates the engine. Requires mu to be held.
func (e *swapEngine) snapshotLocked() domain.SwapSnapshot {
	intent := e.intent
	key := e.quoteKey(intent)

	from := e.assetOrDefault(intent.From)
	to := e.assetOrDefault(intent.To)

	available := e.resolver.ResolveVenues(intent.From, intent.To)

	snapshot := domain.SwapSnapshot{
		Intent:           intent,
		Amount:           key.Amount,
		AvailableVenues:  available,
		Simulating:       e.simulating,
		Simulated:        zero,
		MinimumReceive:   zero,
		ValidationErrors: e.validateLocked(intent, from, key.Amount),
	}

	if intent.From != "" && e.maxInputFrom == intent.From {
		snapshot.MaxInputAmount = e.maxInput
	}

	if e.simulationErr != nil {
		snapshot.SimulationError = e.simulationErr.Error()
	}

	snapshot.RequiresManualSelection = !intent.Venue.IsSelected() && len(available) > 1 && !e.simulating

	if intent.Venue.IsSelected() {
		quote := e.cache.Lookup(key, intent.Venue)
		snapshot.Simulated = quote.OutputAmount

		if sqsutil.Gt(quote.OutputAmount, zero) {
			snapshot.DisplayReceive = sqsutil.FormatAmount(quote.OutputAmount, to.Decimals)
			snapshot.MinimumReceive = MinimumReceive(quote.OutputAmount, intent.SlippageTolerancePercent)
			snapshot.ExpectedPrice = ExpectedUnitPrice(key.Amount, quote.OutputAmount, from, to)

			switch intent.Venue {
			case domain.VenueDirect:
				snapshot.Spread = Spread(quote, to, e.swapParameters)
			case domain.VenuePool:
				snapshot.TradingFee = sqsutil.FormatAmount(quote.AuxFee, to.Decimals)
			case domain.VenueRouted:
				bridge := e.assetOrDefault(e.config.BridgeDenom)
				snapshot.RoutePath = []string{from.Symbol, bridge.Symbol, to.Symbol}
			}
		}
	}

	isValidInput := len(snapshot.ValidationErrors) == 0 && intent.From != "" && intent.To != "" && sqsutil.Gt(key.Amount, zero)
	isValidSimulation := sqsutil.Gt(snapshot.Simulated, zero)

	snapshot.Disabled = !isValidInput || !isValidSimulation || e.simulating || e.simulationErr != nil || !intent.Venue.IsSelected()

	return snapshot
}

// validateLocked returns the intent field errors, nil if there are none.
func (e *swapEngine) validateLocked(intent domain.TradeIntent, from domain.Asset, amount string) map[string]string {
	errs := make(map[string]string)

	slippage := intent.SlippageTolerancePercent
	switch {
	case !sqsutil.IsFinite(slippage) || !sqsutil.IsInteger(sqsutil.Times(slippage, "100")):
		errs["slippage"] = "Slippage must be within 2 decimal points"
	case sqsutil.Lt(slippage, zero) || sqsutil.Gte(slippage, "100"):
		errs["slippage"] = "Slippage must be between 0 and 100"
	}

	if intent.Input != "" {
		switch {
		case !sqsutil.IsFinite(intent.Input):
			errs["input"] = "Input must be a number"
		case !sqsutil.Gt(intent.Input, zero):
			errs["input"] = "Input must be greater than 0"
		case sqsutil.DecimalPlaces(intent.Input) > from.Decimals:
			errs["input"] = fmt.Sprintf("Input must be within %d decimal points", from.Decimals)
		case intent.From != "" && e.maxInputFrom == intent.From && sqsutil.Gt(amount, e.maxInput):
			errs["input"] = "Insufficient balance"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// invalidateSimulationLocked supersedes the in-flight batch. Requires mu to be held.
func (e *swapEngine) invalidateSimulationLocked() {
	e.generation++

	if e.cancelSimulation != nil {
		e.cancelSimulation()
		e.cancelSimulation = nil
	}

	e.simulating = false
	e.simulationErr = nil
}

// quoteKey derives the exact input triple of intent.
func (e *swapEngine) quoteKey(intent domain.TradeIntent) domain.QuoteKey {
	amount := zero
	if intent.From != "" && intent.Input != "" {
		amount = sqsutil.ToAmount(intent.Input, e.assets.GetDecimals(intent.From))
	}

	return domain.QuoteKey{From: intent.From, To: intent.To, Amount: amount}
}

// assetOrDefault returns the registry asset, or a native asset with default decimals.
func (e *swapEngine) assetOrDefault(assetID string) domain.Asset {
	asset, err := e.assets.GetAsset(assetID)
	if err != nil {
		return domain.Asset{
			ID:       assetID,
			Symbol:   e.assets.GetSymbol(assetID),
			Decimals: e.assets.GetDecimals(assetID),
			IsNative: true,
		}
	}
	return asset
}

func (e *swapEngine) isNative(assetID string) bool {
	return assetID == e.config.NativeDenom || e.assetOrDefault(assetID).IsNative
}
