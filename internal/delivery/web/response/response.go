// Package response writes pages, redirects and JSON bodies in one shape.
package response

import (
	"net/http"
	"strings"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/view"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorView feeds the generic error page.
type ErrorView struct {
	Status  int
	Message string
}

// Render writes a full page for the current request.
func Render(c echo.Context, status int, name, title string, data any) error {
	return c.Render(status, name, NewPage(c, title, data))
}

// NewPage collects the per-request layout data.
func NewPage(c echo.Context, title string, data any) *view.Page {
	page := &view.Page{
		Title:     title,
		CartCount: deliverycontext.GetCartCount(c),
		Flashes:   flash.Consume(c),
		Data:      data,
	}
	if session, ok := deliverycontext.GetSession(c); ok {
		page.Session = session
	}
	if token, ok := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string); ok {
		page.CSRFToken = token
	}

	return page
}

// Redirect sends a 302 to location.
func Redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}

// FlashRedirect queues a message and redirects.
func FlashRedirect(c echo.Context, category, message, location string) error {
	flash.Add(c, category, message)

	return Redirect(c, location)
}

// FlashError queues the user-facing message of err and redirects. Stock and
// conflict problems are warnings, everything else is shown as danger.
func FlashError(c echo.Context, err error, location string) error {
	category := flash.Danger
	switch domainerrors.KindOf(err) {
	case domainerrors.KindStock, domainerrors.KindConflict:
		category = flash.Warning
	}

	return FlashRedirect(c, category, domainerrors.MessageOf(err), location)
}

// JSONError writes {"error": message}.
func JSONError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// JSONAppError maps err onto its HTTP status and user message.
func JSONAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return JSONError(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
	}

	return JSONError(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// WantsJSON reports whether the client asked for a JSON answer.
func WantsJSON(c echo.Context) bool {
	req := c.Request()

	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) ||
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}
