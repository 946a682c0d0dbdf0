package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Browsers get the
// 404, 500 or generic error page; JSON clients get {"error": ...}.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)

	if response.WantsJSON(c) {
		_ = response.JSONError(c, status, code, message)

		return
	}

	var renderErr error
	switch {
	case status == http.StatusNotFound:
		renderErr = response.Render(c, status, "404", "Page not found", nil)
	case status >= http.StatusInternalServerError:
		renderErr = response.Render(c, status, "500", "Server error", nil)
	default:
		renderErr = response.Render(c, status, "error", http.StatusText(status), response.ErrorView{Status: status, Message: message})
	}

	if renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(err, c)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnexpected(err, c)
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	m.logUnexpected(err, c)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) logUnexpected(err error, c echo.Context) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
