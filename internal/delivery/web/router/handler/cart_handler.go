package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart page and its mutations.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateQuantityRequest is the JSON body of /cart/update/:id. A missing
// quantity means one.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantityResponse reports the cart after the change.
type UpdateQuantityResponse struct {
	Success   bool        `json:"success"`
	Total     json.Number `json:"total"`
	ItemCount int         `json:"item_count"`
}

// ShowCart renders the member's cart.
func (h *CartHandler) ShowCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.Wrap(err, "failed to load cart")
	}

	return response.Render(c, http.StatusOK, "cart", "Cart", cart)
}

// AddToCart adds one unit and returns to the product page.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productPath := "/product/" + productID.String()

	product, err := h.cartUC.AddToCart(c.Request().Context(), userID, productID)
	switch {
	case err == nil:
		return response.FlashRedirect(c, flash.Success, fmt.Sprintf("%s added to cart!", product.Name), productPath)
	case errors.Is(err, domainerrors.ErrProductNotFound):
		return err
	case isKind(err, domainerrors.KindStock):
		return response.FlashError(c, err, productPath)
	default:
		h.logError(c, "Failed to add to cart", err)

		return response.FlashError(c, err, "/products")
	}
}

// UpdateQuantity is the JSON endpoint behind the quantity inputs.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.JSONAppError(c, err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.JSONError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product id")
	}

	var req UpdateQuantityRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	summary, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		if isKind(err, domainerrors.KindPersistence) {
			h.logError(c, "Failed to update cart quantity", err)
		}

		return response.JSONAppError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateQuantityResponse{
		Success:   true,
		Total:     json.Number(summary.Total.StringFixed(2)),
		ItemCount: summary.ItemCount,
	})
}

// RemoveFromCart deletes a line. A missing line is only a notice.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	removed, err := h.cartUC.RemoveFromCart(c.Request().Context(), userID, productID)
	if err != nil {
		h.logError(c, "Failed to remove cart item", err)

		return response.FlashError(c, err, "/cart")
	}
	if !removed {
		return response.FlashRedirect(c, flash.Warning, "Item not found in cart.", "/cart")
	}

	return response.FlashRedirect(c, flash.Success, "Item removed from cart.", "/cart")
}

func (h *CartHandler) logError(c echo.Context, msg string, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error(msg, slog.Any("error", err))
}
