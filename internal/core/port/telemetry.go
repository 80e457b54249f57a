package port

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry lets the core emit spans and counters without knowing the
// backing implementation. Tests use the no-op probe.
type Telemetry interface {
	StartServiceSpan(ctx context.Context, service string, operation string, userId int, attrs []attribute.KeyValue) (context.Context, trace.Span)

	RecordCacheHit(ctx context.Context, key string)
	RecordCacheMiss(ctx context.Context, key string)

	RecordError(ctx context.Context, operation string, err error)
}
