package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionCookieName holds the opaque session token.
const SessionCookieName = "session"

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CartUC    usecase.CartUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionMiddleware resolves the session cookie into an entity.Session.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
	secure    bool
	logger    *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		cartUC:    params.CartUC,
		secure:    params.Config.Auth != nil && params.Config.Auth.SecureCookie,
		logger:    params.Logger,
	}
}

// Load authenticates the cookie, if any, and records the session and the
// header cart count. Anonymous requests pass through untouched.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		session, err := m.sessionUC.Authenticate(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionInvalid) {
				ClearSessionCookie(c, m.secure)

				return next(c)
			}

			return errors.Wrap(err, "failed to authenticate session")
		}

		deliverycontext.WithSession(c, session)
		// Authenticate slid ExpiresAt forward; the browser copy has to follow.
		SetSessionCookie(c, cookie.Value, session.ExpiresAt, m.secure)

		count, err := m.cartUC.CountItems(c.Request().Context(), session.UserID)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Failed to count cart items", slog.Any("error", err))
		}
		deliverycontext.SetCartCount(c, count)

		return next(c)
	}
}

// RequireLogin redirects anonymous visitors to the login page with message,
// remembering where they were going.
func (m *SessionMiddleware) RequireLogin(message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetSession(c); ok {
				return next(c)
			}

			target := "/login"
			if c.Request().Method == http.MethodGet {
				target += "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
			}

			return response.FlashRedirect(c, flash.Warning, message, target)
		}
	}
}

// RequireLoginJSON answers 401 for anonymous JSON callers.
func (m *SessionMiddleware) RequireLoginJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetSession(c); ok {
			return next(c)
		}

		return response.JSONError(c, http.StatusUnauthorized, domainerrors.ErrSessionInvalid.ErrorCode(), domainerrors.ErrSessionInvalid.Message())
	}
}

// SetSessionCookie stores the raw token in an HttpOnly cookie.
func SetSessionCookie(c echo.Context, token string, expires time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SafeNext returns next when it is a path on this site, otherwise fallback.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return fallback
	}

	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return fallback
	}

	return next
}
