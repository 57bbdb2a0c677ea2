package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/osmosis-labs/swapquery/domain"
)

// GoMiddleware holds the echo middlewares of the server.
type GoMiddleware struct {
	corsConfig domain.CORSConfig
}

// unmatchedRoute labels requests that did not match any registered route.
const unmatchedRoute = "unmatched"

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapquery_requests_total",
			Help: "Total number of requests by route and status.",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swapquery_request_duration_seconds",
			Help:    "Request latencies by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

// CORS sets the configured CORS headers on every response.
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", m.corsConfig.AllowedOrigin)
		c.Response().Header().Set("Access-Control-Allow-Headers", m.corsConfig.AllowedHeaders)
		c.Response().Header().Set("Access-Control-Allow-Methods", m.corsConfig.AllowedMethods)
		return next(c)
	}
}

// InitMiddleware creates the middlewares. A nil config sends empty CORS headers.
func InitMiddleware(corsConfig *domain.CORSConfig) *GoMiddleware {
	m := &GoMiddleware{}
	if corsConfig != nil {
		m.corsConfig = *corsConfig
	}
	return m
}

// routePath returns the registered route of the request, such as "/swap/sessions/:id".
// Session ids are never used as labels.
func routePath(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return unmatchedRoute
}

// InstrumentMiddleware counts requests and records their latency.
func (m *GoMiddleware) InstrumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		requestMethod := c.Request().Method
		requestPath := routePath(c)

		status := c.Response().Status
		var httpErr *echo.HTTPError
		if err != nil && errors.As(err, &httpErr) {
			status = httpErr.Code
		}

		requestsTotal.WithLabelValues(requestMethod, requestPath, strconv.Itoa(status)).Inc()
		requestLatency.WithLabelValues(requestMethod, requestPath).Observe(time.Since(start).Seconds())

		return err
	}
}

// TraceWithParamsMiddleware starts a server span named by the route and
// records the session id and query parameters on it.
func (m *GoMiddleware) TraceWithParamsMiddleware(tracerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tracer := otel.Tracer(tracerName)

			parentCtx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

			ctx, span := tracer.Start(parentCtx, routePath(c), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(attribute.String("http.method", c.Request().Method))

			if sessionID := c.Param("id"); sessionID != "" {
				span.SetAttributes(attribute.String("swap.session_id", sessionID))
			}

			// first value only
			for key, values := range c.QueryParams() {
				span.SetAttributes(attribute.String(key, values[0]))
			}

			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
			}

			return err
		}
	}
}
