// Package context carries request-scoped values (request id, logger and the
// authenticated session) from the delivery layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"agrifarma/internal/domain/entity"

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

	// KeySession is the key for the authenticated session.
	KeySession ContextKey = "session"

	// KeyCartCount is the number of cart lines shown in the page header.
	KeyCartCount ContextKey = "cart_count"

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

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithSession stores the authenticated session in both contexts and tags
// the request logger with the user id.
func WithSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)

	ctx := context.WithValue(c.Request().Context(), KeySession, session)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", session.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetSession returns the authenticated session, if any.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(*entity.Session)

	return session, ok && session != nil
}

// SetCartCount records the header cart count for the current request.
func SetCartCount(c echo.Context, count int) {
	c.Set(string(KeyCartCount), count)
}

// GetCartCount returns the header cart count, zero when unknown.
func GetCartCount(c echo.Context) int {
	count, _ := c.Get(string(KeyCartCount)).(int)

	return count
}
