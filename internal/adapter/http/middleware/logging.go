package middleware

import (
	"time"

	"todoapi/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// LoggingMiddleware emits one structured line per request, carrying the
// trace id when a span is recording.
func LoggingMiddleware(logger *otelzap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}

		if c.Writer.Status() >= 500 {
			logger.Ctx(ctx).Error("request", fields...)
		} else {
			logger.Ctx(ctx).Info("request", fields...)
		}
	}
}
