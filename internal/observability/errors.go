package observability

import (
	"context"
	"net/http"

	"calc-engine/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response.
//
// attrs (e.g. an error kind) are added to the span, the counter, the log line
// and the response body. The body also carries the request ID when one is set.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter, attrs ...attribute.KeyValue) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attrs...)

	metricAttrs := append([]attribute.KeyValue{attribute.String("operation", opName)}, attrs...)
	counter.Add(ctx, 1, metric.WithAttributes(metricAttrs...))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
		zap.Int("status", status),
	}
	extra := make(map[string]string, len(attrs)+1)
	if id := RequestIDFromContext(ctx); id != "" {
		extra["request_id"] = id
	}
	for _, a := range attrs {
		fields = append(fields, zap.String(string(a.Key), a.Value.Emit()))
		extra[string(a.Key)] = a.Value.Emit()
	}
	logger.Error(msg, fields...)

	handlers.WriteError(w, status, msg, extra)
}
