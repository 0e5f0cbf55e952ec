package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing returns OpenTelemetry tracing middleware. Spans are named after the
// route pattern.
func Tracing(serviceName string, enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(serviceName)
}

// TraceEnrichment adds the request id and cart session token to the current
// span and marks server errors. It must run after Tracing, RequestID and
// CartSession in the chain.
func TraceEnrichment() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if requestID := GetRequestID(c); requestID != "" {
				span.SetAttributes(attribute.String("request_id", requestID))
			}
			if session := GetCartSession(c); session != "" {
				span.SetAttributes(attribute.String("cart_session", session))
			}
		}

		c.Next()

		if span.IsRecording() {
			if status := c.Writer.Status(); status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		}
	}
}
