package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	deliveryhttp "github.com/osmosis-labs/swapquery/delivery/http"
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/sqsutil"
	"github.com/osmosis-labs/swapquery/swap/types"
)

// SwapHandler represent the httphandler for swap sessions
type SwapHandler struct {
	SUsecase mvc.SwapUsecase
	Assets   mvc.AssetRegistry

	sessions *sessionStore
	logger   log.Logger
}

const swapResource = "/swap"

func formatSwapResource(resource string) string {
	return swapResource + resource
}

// NewSwapHandler will initialize the swap/ resources endpoint
func NewSwapHandler(e *echo.Echo, us mvc.SwapUsecase, assets mvc.AssetRegistry, logger log.Logger) error {
	handler, err := newSwapHandler(us, assets, logger)
	if err != nil {
		return err
	}

	e.GET(formatSwapResource("/venues"), handler.GetVenues)
	e.GET(formatSwapResource("/destinations"), handler.GetDestinations)
	e.POST(formatSwapResource("/sessions"), handler.CreateSession)
	e.GET(formatSwapResource("/sessions/:id"), handler.GetSnapshot)
	e.DELETE(formatSwapResource("/sessions/:id"), handler.DeleteSession)
	e.PUT(formatSwapResource("/sessions/:id/intent"), handler.SetIntent)
	e.POST(formatSwapResource("/sessions/:id/simulate"), handler.Simulate)
	e.GET(formatSwapResource("/sessions/:id/max"), handler.GetSpendableMax)
	e.POST(formatSwapResource("/sessions/:id/settlement"), handler.BuildSettlement)
	e.POST(formatSwapResource("/sessions/:id/result"), handler.ParseResult)
	e.POST(formatSwapResource("/sessions/:id/reset"), handler.Reset)

	return nil
}

func newSwapHandler(us mvc.SwapUsecase, assets mvc.AssetRegistry, logger log.Logger) (*SwapHandler, error) {
	sessions, err := newSessionStore(us, us.GetConfig().MaxSessions)
	if err != nil {
		return nil, err
	}

	return &SwapHandler{
		SUsecase: us,
		Assets:   assets,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// @Summary Swap venues
// @Description returns the venues able to execute a swap from -> to, in resolution order.
// @ID get-swap-venues
// @Produce  json
// @Param  from  query  string  true  "Source asset id"
// @Param  to  query  string  true  "Destination asset id"
// @Success 200  {array}  string  "Venue names"
// @Router /swap/venues [get]
func (h *SwapHandler) GetVenues(c echo.Context) error {
	var req types.GetVenuesRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	venues := h.SUsecase.ResolveVenues(req.From, req.To)
	if venues == nil {
		venues = []domain.Venue{}
	}

	return c.JSON(http.StatusOK, venues)
}

// @Summary Swap destinations
// @Description returns every asset the source asset can be swapped to.
// @ID get-swap-destinations
// @Produce  json
// @Param  from  query  string  true  "Source asset id"
// @Success 200  {array}  domain.Asset  "Destination assets"
// @Router /swap/destinations [get]
func (h *SwapHandler) GetDestinations(c echo.Context) error {
	var req types.GetDestinationsRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	destinations := h.SUsecase.DestinationOptions(req.From)
	if destinations == nil {
		destinations = []domain.Asset{}
	}

	return c.JSON(http.StatusOK, destinations)
}

// @Summary Create swap session
// @Description starts a swap session with an empty intent.
// @ID create-swap-session
// @Produce  json
// @Success 201  {object}  types.CreateSessionResponse  "Session id and initial snapshot"
// @Router /swap/sessions [post]
func (h *SwapHandler) CreateSession(c echo.Context) error {
	id, engine := h.sessions.Create()

	h.logger.Debug("created swap session", zap.String("session_id", id), zap.Int("sessions", h.sessions.Len()))

	return c.JSON(http.StatusCreated, types.CreateSessionResponse{
		ID:       id,
		Snapshot: engine.Snapshot(),
	})
}

// GetSnapshot returns the current snapshot of the session.
func (h *SwapHandler) GetSnapshot(c echo.Context) error {
	engine, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, engine.Snapshot())
}

// DeleteSession ends the session.
func (h *SwapHandler) DeleteSession(c echo.Context) error {
	id := c.Param("id")
	if !h.sessions.Delete(id) {
		err := domain.SessionNotFoundError{SessionID: id}
		return deliveryhttp.RespondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// @Summary Set swap intent
// @Description applies a partial intent to the session and returns the refreshed snapshot.
// Changing the source asset resets the rest of the intent.
// @ID set-swap-intent
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  intent  body  domain.IntentUpdate  true  "Intent fields to change"
// @Success 200  {object}  domain.SwapSnapshot  "Refreshed snapshot"
// @Router /swap/sessions/{id}/intent [put]
func (h *SwapHandler) SetIntent(c echo.Context) error {
	var req types.SetIntentRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	engine, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	engine.ApplyIntent(req.Update)

	return c.JSON(http.StatusOK, engine.Snapshot())
}

// @Summary Simulate swap
// @Description runs one simulation batch for the session intent.
// Venue failures are reported in the snapshot, the successful quotes are kept.
// @ID simulate-swap
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200  {object}  types.SimulateResponse  "Batch result and refreshed snapshot"
// @Router /swap/sessions/{id}/simulate [post]
func (h *SwapHandler) Simulate(c echo.Context) error {
	ctx, span := deliveryhttp.Span(c)

	engine, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	deliveryhttp.SetSpanIntent(span, engine.Intent())

	result, err := engine.Simulate(ctx)
	if err != nil {
		deliveryhttp.RecordSpanError(span, err)

		var simulationErr domain.SimulationError
		if !errors.As(err, &simulationErr) {
			return deliveryhttp.RespondError(c, err)
		}

		h.logger.Info("venue simulation failed", zap.Stringer("venue", simulationErr.Venue), zap.Error(simulationErr.Err))
	}

	return c.JSON(http.StatusOK, types.SimulateResponse{
		Result:   result,
		Snapshot: engine.Snapshot(),
	})
}

// @Summary Spendable maximum
// @Description returns the largest amount of the source asset the address can swap,
// keeping enough native balance for the fee.
// @ID get-swap-spendable-max
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  address  query  string  true  "Account address"
// @Success 200  {object}  types.SpendableMaxResponse  "Spendable maximum"
// @Router /swap/sessions/{id}/max [get]
func (h *SwapHandler) GetSpendableMax(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.AddressRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	engine, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	amount, err := engine.SpendableMax(ctx, req.Address)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	from := engine.Intent().From

	return c.JSON(http.StatusOK, types.SpendableMaxResponse{
		From:          from,
		Amount:        amount,
		DisplayAmount: sqsutil.FormatAmount(amount, h.Assets.GetDecimals(from)),
	})
}

// @Summary Build settlement
// @Description returns the unsigned instructions executing the session intent on the selected venue.
// @ID build-swap-settlement
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  trader  query  string  true  "Trader address"
// @Success 200  {object}  types.SettlementResponse  "Unsigned instructions"
// @Router /swap/sessions/{id}/settlement [post]
func (h *SwapHandler) BuildSettlement(c echo.Context) error {
	ctx, span := deliveryhttp.Span(c)

	var req types.AddressRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	engine, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	deliveryhttp.SetSpanIntent(span, engine.Intent())

	settlement, err := engine.BuildSettlement(ctx, req.Address)
	if err != nil {
		deliveryhttp.RecordSpanError(span, err)
		return deliveryhttp.RespondError(c, err)
	}

	response, err := types.NewSettlementResponse(settlement)
	if err != nil {
		h.logger.Error("failed to render settlement", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, response)
}

// @Summary Parse settlement result
// @Description decodes the logs of the executed settlement into paid, received and slippage.
// @ID parse-swap-result
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200  {object}  domain.SettlementReport  "Settlement outcome"
// @Router /swap/sessions/{id}/result [post]
func (h *SwapHandler) ParseResult(c echo.Context) error {
	var req types.ParseResultRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	engine, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	report, err := engine.ParseResult(req.Logs)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// Reset clears the session intent and refreshes the balances of the optional address.
func (h *SwapHandler) Reset(c echo.Context) error {
	ctx := c.Request().Context()

	req := types.AddressRequest{AllowEmpty: true}
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return deliveryhttp.RespondBadRequest(c, err)
	}

	engine, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	if err := engine.Reset(ctx, req.Address); err != nil {
		return deliveryhttp.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, engine.Snapshot())
}
