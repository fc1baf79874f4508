// Package context carries per-request values (request id, scoped logger) across the
// echo handler chain and into usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

type scopeKey struct{}

// scope is stored once per request; enriching the logger replaces the whole value.
type scope struct {
	requestID string
	logger    *slog.Logger
}

const echoRequestIDKey = "request_id"

// GetRequestID returns the request id stored on c, or a fresh UUID outside the middleware chain.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id on the echo context for response metadata.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequest returns ctx carrying the request id and a logger already tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{
		requestID: requestID,
		logger:    logger.With(slog.String("request_id", requestID)),
	})
}

// WithLogAttrs adds attributes to the request logger. Without a request scope ctx is returned unchanged.
func WithLogAttrs(ctx context.Context, attrs ...any) context.Context {
	s, ok := ctx.Value(scopeKey{}).(scope)
	if !ok || s.logger == nil {
		return ctx
	}
	s.logger = s.logger.With(attrs...)

	return context.WithValue(ctx, scopeKey{}, s)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.requestID
}

// GetLoggerOrDefault returns the request logger, falling back when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}
