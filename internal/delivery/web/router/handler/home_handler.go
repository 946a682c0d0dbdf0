package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HomeHandlerParams holds dependencies for HomeHandler, injected by Fx.
type HomeHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// HomeHandler serves the landing page.
type HomeHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewHomeHandler is the constructor for HomeHandler
func NewHomeHandler(params HomeHandlerParams) *HomeHandler {
	return &HomeHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Index renders the featured products and latest posts. A failed lookup
// still renders the page, empty.
func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	home, err := h.catalogUC.Home(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to load home page", slog.Any("error", err))
		flash.Add(c, flash.Danger, domainerrors.MessageOf(err))
		home = &usecase.HomeOutput{}
	}

	return response.Render(c, http.StatusOK, "index", "", home)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		RequestID: deliverycontext.GetRequestID(c),
	})
}
