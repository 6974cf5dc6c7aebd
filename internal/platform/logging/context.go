package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the logger carried by ctx, or the default logger
// when ctx is nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID returns a context whose logger carries the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("request_id", requestID)))
}

// WithTraceID returns a context whose logger carries the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("trace_id", traceID)))
}

// WithCorrelationID returns a context whose logger carries the
// correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("correlation_id", correlationID)))
}

// SetDefault sets the fallback logger returned when a context carries
// none. It also updates slog's process-wide default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
