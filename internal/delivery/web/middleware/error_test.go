package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrifarma/internal/delivery/web/response"
	"agrifarma/internal/delivery/web/view"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageRecorder struct {
	name string
	data any
	fail bool
}

func (r *pageRecorder) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if r.fail {
		return errors.New("template exploded")
	}
	r.name = name
	if page, ok := data.(*view.Page); ok {
		r.data = page.Data
	}
	_, err := io.WriteString(w, name)

	return err
}

func serveError(t *testing.T, renderer *pageRecorder, err error, accept string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandleHTTPError_Pages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantPage string
		wantData any
	}{
		{name: "domain not found", err: domainerrors.ErrProductNotFound, wantCode: http.StatusNotFound, wantPage: "404"},
		{name: "echo not found", err: echo.ErrNotFound, wantCode: http.StatusNotFound, wantPage: "404"},
		{name: "unexpected", err: errors.New("nil pointer"), wantCode: http.StatusInternalServerError, wantPage: "500"},
		{
			name:     "throttled",
			err:      echo.NewHTTPError(http.StatusTooManyRequests, "Too many attempts."),
			wantCode: http.StatusTooManyRequests,
			wantPage: "error",
			wantData: response.ErrorView{Status: http.StatusTooManyRequests, Message: "Too many attempts."},
		},
		{
			name:     "wrapped auth",
			err:      errors.Wrap(domainerrors.ErrSessionInvalid, "lookup"),
			wantCode: http.StatusUnauthorized,
			wantPage: "error",
			wantData: response.ErrorView{Status: http.StatusUnauthorized, Message: "Please login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &pageRecorder{}

			rec := serveError(t, renderer, tt.err, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantPage, renderer.name)
			if tt.wantData != nil {
				assert.Equal(t, tt.wantData, renderer.data)
			}
		})
	}
}

func TestHandleHTTPError_JSONClients(t *testing.T) {
	rec := serveError(t, &pageRecorder{}, domainerrors.ErrInsufficientStock, echo.MIMEApplicationJSON)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not enough stock available.", body.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestHandleHTTPError_FallsBackToText(t *testing.T) {
	rec := serveError(t, &pageRecorder{fail: true}, echo.ErrNotFound, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}
