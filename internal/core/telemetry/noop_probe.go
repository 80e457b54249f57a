package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NoOpProbe emits nothing. Used in tests and wherever telemetry is disabled.
type NoOpProbe struct {
	tracer trace.Tracer
}

func NewNoOpProbe() *NoOpProbe {
	return &NoOpProbe{tracer: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (p *NoOpProbe) StartServiceSpan(ctx context.Context, service string, operation string, userId int, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, service+"."+operation)
}

func (p *NoOpProbe) RecordCacheHit(ctx context.Context, key string)  {}
func (p *NoOpProbe) RecordCacheMiss(ctx context.Context, key string) {}

func (p *NoOpProbe) RecordError(ctx context.Context, operation string, err error) {}
