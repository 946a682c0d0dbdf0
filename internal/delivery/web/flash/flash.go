// Package flash implements one-shot messages carried across a redirect in a
// signed cookie.
package flash

import (
	"log/slog"
	"net/http"
	"time"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "flash"
	contextKey = "flash"
	audience   = "flash"
	cookieTTL  = 10 * time.Minute
)

// Message categories understood by the layout.
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Message is a single flash entry.
type Message struct {
	Category string `json:"c"`
	Text     string `json:"m"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Manager signs the flash cookie with the session secret.
type Manager struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewManager builds a Manager from the session secret.
func NewManager(cfg *config.Config) *Manager {
	secure := cfg.Auth != nil && cfg.Auth.SecureCookie

	return &Manager{secret: []byte(cfg.SecretKey.Session), secure: secure, now: time.Now}
}

type bag struct {
	manager  *Manager
	messages []Message
}

// Middleware loads pending messages into the request. Tampered or expired
// cookies are dropped.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		b := &bag{manager: m}
		if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
			messages, err := m.decode(cookie.Value)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
					Debug("Discarding flash cookie", slog.Any("error", err))
				m.writeCookie(c, "", -1)
			}
			b.messages = messages
		}
		c.Set(contextKey, b)

		return next(c)
	}
}

// Add queues a message for the next rendered page.
func Add(c echo.Context, category, text string) {
	b, ok := c.Get(contextKey).(*bag)
	if !ok {
		return
	}

	b.messages = append(b.messages, Message{Category: category, Text: text})
	b.persist(c)
}

// Consume returns all pending messages and clears them.
func Consume(c echo.Context) []Message {
	b, ok := c.Get(contextKey).(*bag)
	if !ok || len(b.messages) == 0 {
		return nil
	}

	messages := b.messages
	b.messages = nil
	b.persist(c)

	return messages
}

func (b *bag) persist(c echo.Context) {
	if len(b.messages) == 0 {
		b.manager.writeCookie(c, "", -1)

		return
	}

	value, err := b.manager.encode(b.messages)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
			Error("Failed to sign flash cookie", slog.Any("error", err))

		return
	}
	b.manager.writeCookie(c, value, int(cookieTTL.Seconds()))
}

func (m *Manager) encode(messages []Message) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cookieTTL)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign flash messages")
	}

	return signed, nil
}

func (m *Manager) decode(value string) ([]Message, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(value, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid flash cookie")
	}

	return parsed.Messages, nil
}

func (m *Manager) writeCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
