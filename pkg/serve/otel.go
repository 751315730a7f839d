package serve

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for seam handlers.
const defaultTracerName = "seam"

// traceConfig configures the OpenTelemetry tracing.
type traceConfig struct {
	// tracerName is the name of the tracer (default: "seam").
	tracerName string

	// filter determines which requests to trace.
	// Return true to trace the request, false to skip.
	// If nil, all requests are traced.
	filter func(r *http.Request) bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry tracing.
type TraceOption func(*traceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *traceConfig) {
		c.tracerName = name
	}
}

// WithTraceFilter sets a predicate deciding which requests get a span.
func WithTraceFilter(filter func(r *http.Request) bool) TraceOption {
	return func(c *traceConfig) {
		c.filter = filter
	}
}

// WithTracing enables an OpenTelemetry span per rendered page.
func WithTracing(opts ...TraceOption) Option {
	tc := &traceConfig{tracerName: defaultTracerName}
	for _, opt := range opts {
		opt(tc)
	}
	tc.tracer = otel.Tracer(tc.tracerName)

	return func(c *config) {
		c.tracing = tc
	}
}

// startSpan opens a render span for the request, if tracing is enabled
// and the filter admits it.
func (c *config) startSpan(r *http.Request) (context.Context, trace.Span) {
	if c.tracing == nil {
		return r.Context(), nil
	}
	if c.tracing.filter != nil && !c.tracing.filter(r) {
		return r.Context(), nil
	}

	return c.tracing.tracer.Start(r.Context(), "seam.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		),
	)
}

func spanOK(span trace.Span, bytes int) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int("seam.bytes_written", bytes))
	span.SetStatus(codes.Ok, "")
}

func spanError(span trace.Span, err error) {
	if span == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func endSpan(span trace.Span) {
	if span != nil {
		span.End()
	}
}
