package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osmosis-labs/swapquery/domain"
)

// Span returns the request context and its current span.
func Span(c echo.Context) (context.Context, trace.Span) {
	ctx := c.Request().Context()
	return ctx, trace.SpanFromContext(ctx)
}

// RecordSpanError records err, if any, and marks the span as failed.
// The span is ended by the tracing middleware.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanIntent annotates the span with the trade intent it serves.
func SetSpanIntent(span trace.Span, intent domain.TradeIntent) {
	span.SetAttributes(
		attribute.String("swap.from", intent.From),
		attribute.String("swap.to", intent.To),
		attribute.String("swap.input", intent.Input),
		attribute.Stringer("swap.venue", intent.Venue),
	)
}
