package main

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	sentryotel "github.com/getsentry/sentry-go/otel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/osmosis-labs/swapquery/domain"
)

// tracedRoutes returns the sampling rate of every route whose spans are sent to sentry.
func tracedRoutes(config *domain.OTELConfig) map[string]float64 {
	return map[string]float64{
		"/swap/sessions/:id/simulate":   config.CustomSampleRate.Simulate,
		"/swap/sessions/:id/intent":     config.CustomSampleRate.Other,
		"/swap/sessions/:id/settlement": config.CustomSampleRate.Other,
		"/swap/sessions/:id/result":     config.CustomSampleRate.Other,
		"/swap/venues":                  config.CustomSampleRate.Other,
	}
}

// newTraceSampler samples only the spans of routes listed in rates.
func newTraceSampler(rates map[string]float64) sentry.TracesSampler {
	return func(ctx sentry.SamplingContext) float64 {
		if ctx.Span == nil {
			return 0
		}

		if rate, ok := rates[ctx.Span.Name]; ok {
			return rate
		}

		return 0
	}
}

// initSentry configures the sentry client and the OTEL tracer exporting to it.
func initSentry(config *domain.OTELConfig, hostName string, isDebug bool) error {
	err := sentry.Init(sentry.ClientOptions{
		ServerName:         hostName,
		Dsn:                config.DSN,
		SampleRate:         config.SampleRate,
		EnableTracing:      config.EnableTracing,
		Debug:              isDebug,
		TracesSampler:      newTraceSampler(tracedRoutes(config)),
		ProfilesSampleRate: config.ProfilesSampleRate,
		Environment:        config.Environment,
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}

	return initOTELTracer(hostName)
}

// initOTELTracer installs a tracer provider that hands spans to sentry.
func initOTELTracer(hostName string) error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("stdouttrace.New: %w", err)
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(hostName),
		),
	)
	if err != nil {
		return fmt.Errorf("resource.New: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sentryotel.NewSentrySpanProcessor()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(sentryotel.NewSentryPropagator())

	return nil
}
