package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// OTLPRecorder bundles a Recorder with the provider that backs it, so the
// owner can flush on shutdown.
type OTLPRecorder struct {
	*Recorder
	provider *sdktrace.TracerProvider
}

// NewOTLPRecorder creates a recorder exporting to the OTLP endpoint named
// by OTEL_EXPORTER_OTLP_ENDPOINT. Returns (nil, nil) when the endpoint is
// not configured: tracing is opt-in and its absence is not an error.
func NewOTLPRecorder(ctx context.Context) (*OTLPRecorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "navstack"
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	return &OTLPRecorder{
		Recorder: NewRecorder(provider.Tracer("navstack/nav")),
		provider: provider,
	}, nil
}

// Shutdown flushes pending spans. Must run before process exit or the last
// transitions are lost.
func (o *OTLPRecorder) Shutdown(ctx context.Context) error {
	if o == nil {
		return nil
	}
	return o.provider.Shutdown(ctx)
}
