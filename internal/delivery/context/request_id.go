package context

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySession is the key for storing the authenticated session in context.
	KeySession ContextKey = "session"

	// KeyClientIP is the key for storing the caller's IP address in context.
	KeyClientIP ContextKey = "client_ip"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}
	if fallback != nil {
		return fallback
	}

	return slog.Default()
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithSession returns a new context carrying the authenticated session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSession extracts the authenticated session from context.Context.
// Returns nil for anonymous requests.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// WithClientIP returns a new context carrying the caller's IP address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, KeyClientIP, ip)
}

// GetClientIP extracts the caller's IP address from context.Context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(KeyClientIP).(string); ok {
		return ip
	}

	return ""
}
