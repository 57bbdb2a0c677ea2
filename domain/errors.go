package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrSettlementDisabled is returned when settlement is requested before the intent is ready.
	ErrSettlementDisabled = errors.New("settlement is disabled: intent is incomplete, invalid or still simulating")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validationErr ValidationError
		sameDenomErr  SameDenomError
		noVenueErr    NoVenueAvailableError
		simulationErr SimulationError
		sessionErr    SessionNotFoundError
		unknownAsset  AssetNotFoundError
	)

	switch {
	case errors.Is(err, ErrNotFound), errors.As(err, &sessionErr), errors.As(err, &unknownAsset):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParamInput), errors.As(err, &validationErr), errors.As(err, &sameDenomErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrSettlementDisabled), errors.As(err, &noVenueErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &simulationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ValidationError is returned when a trade intent field is invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SimulationError wraps a failed transport call for one venue.
type SimulationError struct {
	Venue Venue
	Err   error
}

func (e SimulationError) Error() string {
	return fmt.Sprintf("failed to simulate swap on venue (%s): %v", e.Venue, e.Err)
}

func (e SimulationError) Unwrap() error {
	return e.Err
}

// NoVenueAvailableError is returned when no venue can execute the pair.
type NoVenueAvailableError struct {
	From string
	To   string
}

func (e NoVenueAvailableError) Error() string {
	return fmt.Sprintf("no venue available to swap (%s) to (%s)", e.From, e.To)
}

// SameDenomError is returned when the source and destination assets are equal.
type SameDenomError struct {
	DenomA string
	DenomB string
}

func (e SameDenomError) Error() string {
	return fmt.Sprintf("denom A (%s) must not equal denom B (%s)", e.DenomA, e.DenomB)
}

// AssetNotFoundError is returned when the asset registry has no entry for an id.
type AssetNotFoundError struct {
	AssetID string
}

func (e AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset (%s) is not found in the registry", e.AssetID)
}

// PairNotFoundError is returned when the pair registry has no pool for the assets.
type PairNotFoundError struct {
	From string
	To   string
}

func (e PairNotFoundError) Error() string {
	return fmt.Sprintf("pair (%s, %s) is not found in the registry", e.From, e.To)
}

// SessionNotFoundError is returned when a swap session has expired or never existed.
type SessionNotFoundError struct {
	SessionID string
}

func (e SessionNotFoundError) Error() string {
	return fmt.Sprintf("swap session (%s) is not found", e.SessionID)
}

// GasPriceNotFoundError is returned when no gas price is known for a fee denom.
type GasPriceNotFoundError struct {
	Denom string
}

func (e GasPriceNotFoundError) Error() string {
	return fmt.Sprintf("gas price for denom (%s) is not found", e.Denom)
}

// StaleHeightError is returned when the chain height has not advanced within the allowed time.
type StaleHeightError struct {
	StoredHeight            uint64
	TimeSinceLastUpdate     int
	MaxAllowedTimeDeltaSecs int
}

func (e StaleHeightError) Error() string {
	return fmt.Sprintf("chain height (%d) has not been updated for (%d) seconds, max allowed (%d) seconds", e.StoredHeight, e.TimeSinceLastUpdate, e.MaxAllowedTimeDeltaSecs)
}
