// Package otel installs the process-wide OpenTelemetry tracer provider.
package otel

import (
	"context"
	"strings"

	"github.com/cscmnu/lmfdb/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Env selects the OTLP exporter. Tracing stays off unless Endpoint is set.
type Env struct {
	Endpoint string `env:"LMFDB_OTEL_ENDPOINT"`
	Enabled  string `env:"LMFDB_OTEL_ENABLED"`
}

// Active reports whether the environment asks for an exporter.
func (e Env) Active() bool {
	if strings.EqualFold(strings.TrimSpace(e.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(e.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// When LMFDB_OTEL_ENDPOINT is empty or LMFDB_OTEL_ENABLED is "false", Setup
// returns a no-op shutdown function and leaves the global provider alone.
// The returned shutdown function flushes pending spans and should be deferred.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var env Env
	if err := config.ParseEnv(&env); err != nil {
		return noop, err
	}
	return SetupWithEnv(ctx, serviceName, env)
}

// SetupWithEnv is Setup with an explicit exporter environment.
func SetupWithEnv(ctx context.Context, serviceName string, env Env) (func(context.Context) error, error) {
	if !env.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(env.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
