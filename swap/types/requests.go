package types

import (
	"errors"
	"fmt"
	"io"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/labstack/echo/v4"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/json"
	"github.com/osmosis-labs/swapquery/validator"
)

// AccountAddressPrefix is the bech32 prefix of trader accounts.
const AccountAddressPrefix = "terra"

var (
	ErrFromNotSpecified      = errors.New("from asset is not specified")
	ErrToNotSpecified        = errors.New("to asset is not specified")
	ErrAddressInvalid        = fmt.Errorf("address is not a valid %s address", AccountAddressPrefix)
	ErrSessionIDNotSpecified = errors.New("session id is not specified")
	ErrLogsNotSpecified      = errors.New("settlement logs are not specified")
)

// GetVenuesRequest is the request of /swap/venues.
type GetVenuesRequest struct {
	From string
	To   string
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *GetVenuesRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.From = c.QueryParam("from")
	r.To = c.QueryParam("to")
	return nil
}

// Validate implements validator.Validator.
func (r *GetVenuesRequest) Validate() error {
	return validator.First(required(r.From, ErrFromNotSpecified), required(r.To, ErrToNotSpecified))
}

// GetDestinationsRequest is the request of /swap/destinations.
type GetDestinationsRequest struct {
	From string
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *GetDestinationsRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.From = c.QueryParam("from")
	return nil
}

// Validate implements validator.Validator.
func (r *GetDestinationsRequest) Validate() error {
	return validator.Validate(required(r.From, ErrFromNotSpecified))
}

// SetIntentRequest is the request of PUT /swap/sessions/:id/intent.
// The body is a partial intent, omitted fields are kept.
type SetIntentRequest struct {
	SessionID string
	Update    domain.IntentUpdate
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *SetIntentRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.SessionID = c.Param("id")
	return unmarshalBody(c, &r.Update)
}

// Validate implements validator.Validator.
func (r *SetIntentRequest) Validate() error {
	return validator.Validate(required(r.SessionID, ErrSessionIDNotSpecified))
}

// AddressRequest is a session request carrying an account address.
// Used by the spendable maximum, settlement and reset endpoints.
type AddressRequest struct {
	SessionID string
	Address   string
	// AllowEmpty accepts a missing address.
	AllowEmpty bool
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
// The address is read from the "address" query parameter, falling back to "trader".
func (r *AddressRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.SessionID = c.Param("id")
	r.Address = c.QueryParam("address")
	if r.Address == "" {
		r.Address = c.QueryParam("trader")
	}
	return nil
}

// Validate implements validator.Validator.
func (r *AddressRequest) Validate() error {
	return validator.First(
		required(r.SessionID, ErrSessionIDNotSpecified),
		validator.Func(func() error {
			if r.Address == "" && r.AllowEmpty {
				return nil
			}
			return ValidateAddress(r.Address)
		}),
	)
}

// ParseResultRequest is the request of POST /swap/sessions/:id/result.
type ParseResultRequest struct {
	SessionID string              `json:"-"`
	Logs      sdk.ABCIMessageLogs `json:"logs"`
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *ParseResultRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.SessionID = c.Param("id")
	return unmarshalBody(c, r)
}

// Validate implements validator.Validator.
func (r *ParseResultRequest) Validate() error {
	return validator.First(
		required(r.SessionID, ErrSessionIDNotSpecified),
		validator.Func(func() error {
			if len(r.Logs) == 0 {
				return ErrLogsNotSpecified
			}
			return nil
		}),
	)
}

// ValidateAddress returns ErrAddressInvalid unless address is a bech32 account address
// with AccountAddressPrefix.
func ValidateAddress(address string) error {
	prefix, bz, err := bech32.DecodeAndConvert(address)
	if err != nil || prefix != AccountAddressPrefix {
		return ErrAddressInvalid
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return ErrAddressInvalid
	}
	return nil
}

// required fails with err if value is empty.
func required(value string, err error) validator.Func {
	return func() error {
		if value == "" {
			return err
		}
		return nil
	}
}

func unmarshalBody(c echo.Context, v any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrBadParamInput, err)
	}
	return nil
}
