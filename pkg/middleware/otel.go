package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/forge/pkg/forge"
)

const defaultTracerName = "forge"

// OTelConfig configures the tracing decorator.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "forge").
	TracerName string

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider
}

// OTelOption configures the tracing decorator.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// Tracing wraps host so that each creation and attachment is recorded as a
// span under the span in ctx.
//
// The tracer uses the global OpenTelemetry tracer provider unless
// WithTracerProvider is given.
func Tracing(ctx context.Context, host forge.TreeHost, opts ...OTelOption) forge.TreeHost {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return Observe(host, &tracer{ctx: ctx, tracer: tp.Tracer(config.TracerName)})
}

type tracer struct {
	ctx    context.Context
	tracer trace.Tracer
}

func (t *tracer) CreateElement(tag string) func(error) {
	_, span := t.tracer.Start(t.ctx, "forge.create",
		trace.WithAttributes(attribute.String("forge.tag", tag)))
	return func(err error) { endSpan(span, err) }
}

func (t *tracer) AppendChild(parent, child string) func(error) {
	_, span := t.tracer.Start(t.ctx, "forge.append",
		trace.WithAttributes(
			attribute.String("forge.parent", parent),
			attribute.String("forge.child", child),
		))
	return func(err error) { endSpan(span, err) }
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
