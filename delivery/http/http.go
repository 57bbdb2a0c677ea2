package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/validator"
)

// DefaultClient represents default HTTP client for issuing outgoing HTTP requests.
var DefaultClient = &http.Client{
	Timeout:   5 * time.Second,
	Transport: otelhttp.NewTransport(http.DefaultTransport),
}

// RequestUnmarshaler is any type capable to unmarshal data from HTTP request to itself.
type RequestUnmarshaler interface {
	UnmarshalHTTPRequest(c echo.Context) error
}

// ParseRequest unmarshals the request and validates it if the request implements the Validator interface.
func ParseRequest(c echo.Context, req RequestUnmarshaler) error {
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return err
	}

	v, ok := req.(validator.Validator)
	if !ok {
		return nil
	}
	return validator.Validate(v)
}

// RespondError writes err with the status code GetStatusCode maps it to.
func RespondError(c echo.Context, err error) error {
	return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
}

// RespondBadRequest writes err with http.StatusBadRequest.
func RespondBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
}
