package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apptelemetry "todoapi/pkg/telemetry"
)

// OtelProbe bridges the core's telemetry port onto OpenTelemetry spans
// and the Prometheus app metrics.
type OtelProbe struct {
	tracer  trace.Tracer
	metrics *apptelemetry.AppMetrics
}

func NewOtelProbe(serviceName string, metrics *apptelemetry.AppMetrics) *OtelProbe {
	return &OtelProbe{
		tracer:  otel.Tracer(serviceName),
		metrics: metrics,
	}
}

func (p *OtelProbe) StartServiceSpan(ctx context.Context, service string, operation string, userId int, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	spanAttrs := append([]attribute.KeyValue{
		attribute.String("service.name", service),
		attribute.String("service.operation", operation),
		attribute.Int("user.id", userId),
	}, attrs...)

	return p.tracer.Start(ctx, "service."+service+"."+operation, trace.WithAttributes(spanAttrs...))
}

func (p *OtelProbe) RecordCacheHit(ctx context.Context, key string) {
	if p.metrics != nil {
		// Keys are per-user; collapse them to keep label cardinality flat.
		p.metrics.RecordCacheHit(ctx, "todo_list")
	}
}

func (p *OtelProbe) RecordCacheMiss(ctx context.Context, key string) {
	if p.metrics != nil {
		p.metrics.RecordCacheMiss(ctx, "todo_list")
	}
}

func (p *OtelProbe) RecordError(ctx context.Context, operation string, err error) {
	span := trace.SpanFromContext(ctx)

	if span.SpanContext().IsValid() {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
