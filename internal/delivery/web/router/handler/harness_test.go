package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	webmiddleware "agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/delivery/web/validator"
	"agrifarma/internal/delivery/web/view"
	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func testConfig() *config.Config {
	return &config.Config{
		HTTP:      config.HTTPConfig{BaseURL: "http://farm.test"},
		SecretKey: config.SecretKeyConfig{Session: "session-secret", PasswordReset: "reset-secret"},
		Auth:      &config.AuthConfig{},
	}
}

// recordingRenderer remembers the last page instead of executing templates.
type recordingRenderer struct {
	name string
	page *view.Page
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(*view.Page)
	_, err := io.WriteString(w, name)

	return err
}

type webHarness struct {
	t        *testing.T
	e        *echo.Echo
	renderer *recordingRenderer
	session  *entity.Session
}

func newWebHarness(t *testing.T) *webHarness {
	h := &webHarness{t: t, e: echo.New(), renderer: &recordingRenderer{}}

	h.e.Renderer = h.renderer
	h.e.Validator = validator.New()
	h.e.HTTPErrorHandler = webmiddleware.NewErrorMiddleware(discardLogger).HandleHTTPError
	h.e.Use(flash.NewManager(testConfig()).Middleware)
	h.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if h.session != nil {
				deliverycontext.WithSession(c, h.session)
			}

			return next(c)
		}
	})
	h.e.GET("/_flashes", func(c echo.Context) error {
		return c.JSON(http.StatusOK, flash.Consume(c))
	})

	return h
}

// login makes every following request belong to a fresh member.
func (h *webHarness) login() uuid.UUID {
	h.session = &entity.Session{ID: uuid.New(), UserID: uuid.New(), Username: "farmer"}

	return h.session.UserID
}

func (h *webHarness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	return rec
}

func (h *webHarness) get(target string) *httptest.ResponseRecorder {
	return h.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (h *webHarness) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return h.do(req)
}

// flashes follows a response's cookies and returns the queued messages.
func (h *webHarness) flashes(rec *httptest.ResponseRecorder) []flash.Message {
	// A handler may rewrite a cookie several times; the browser keeps the last.
	latest := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		latest[cookie.Name] = cookie
	}

	req := httptest.NewRequest(http.MethodGet, "/_flashes", nil)
	for _, cookie := range latest {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}

	out := h.do(req)
	require.Equal(h.t, http.StatusOK, out.Code)

	var messages []flash.Message
	require.NoError(h.t, json.Unmarshal(out.Body.Bytes(), &messages))

	return messages
}

func (h *webHarness) requireRedirect(rec *httptest.ResponseRecorder, location, category, text string) {
	h.t.Helper()

	require.Equal(h.t, http.StatusFound, rec.Code)
	require.Equal(h.t, location, rec.Header().Get(echo.HeaderLocation))
	require.Contains(h.t, h.flashes(rec), flash.Message{Category: category, Text: text})
}
