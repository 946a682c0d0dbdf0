package handler

import (
	"net/http"
	"net/url"

	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.FileStorage
}

// UploadHandler streams stored uploads back to browsers.
type UploadHandler struct {
	storage service.FileStorage
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{storage: params.Storage}
}

// Serve streams the object named by the wildcard path.
func (h *UploadHandler) Serve(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil || key == "" {
		return echo.ErrNotFound
	}

	body, contentType, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return echo.ErrNotFound
		}

		return errors.Wrap(err, "failed to open upload")
	}
	defer body.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, body)
}
