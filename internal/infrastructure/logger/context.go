package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// CartSessionKey is the context key for the cart session token
	CartSessionKey contextKey = "cart_session"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns a no-op logger if not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enrichedLogger := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithCartSession adds the cart session token to context and returns enriched logger
func WithCartSession(ctx context.Context, logger *zap.Logger, session string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, CartSessionKey, session)
	enrichedLogger := logger.With(zap.String("cart_session", session))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetCartSession retrieves the cart session token from context
func GetCartSession(ctx context.Context) string {
	if session, ok := ctx.Value(CartSessionKey).(string); ok {
		return session
	}
	return ""
}

// GetTraceID extracts the trace ID from the context's span.
// Returns an empty string if no active span exists or trace is invalid.
func GetTraceID(ctx context.Context) string {
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// WithTraceContext adds trace_id and span_id to the logger from the context's span.
// If no valid span exists, returns the original logger unchanged.
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}

// L returns the context's logger enriched with trace correlation fields.
// Usage: logger.L(ctx).Info("message", zap.String("key", "value"))
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}
	return WithTraceContext(ctx, l)
}
