package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler turns carts into orders and lists them.
type CheckoutHandler struct {
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		cartUC:     params.CartUC,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest is the checkout form.
type CheckoutRequest struct {
	ShippingAddress string `form:"shipping_address"`
}

// ShowCheckout renders the order summary and address form.
func (h *CheckoutHandler) ShowCheckout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.Wrap(err, "failed to load cart")
	}
	if len(cart.Items) == 0 {
		return response.FlashRedirect(c, flash.Warning, domainerrors.ErrCartEmpty.Message(), "/cart")
	}

	return response.Render(c, http.StatusOK, "checkout", "Checkout", cart)
}

// Checkout places one order per cart line.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/checkout")
	}

	_, err = h.checkoutUC.Checkout(c.Request().Context(), userID, req.ShippingAddress)
	switch {
	case err == nil:
		return response.FlashRedirect(c, flash.Success, "Order placed successfully!", "/order_confirmation")
	case errors.Is(err, domainerrors.ErrCartEmpty):
		return response.FlashRedirect(c, flash.Warning, domainerrors.MessageOf(err), "/cart")
	case isKind(err, domainerrors.KindStock):
		return response.FlashRedirect(c, flash.Danger, domainerrors.MessageOf(err), "/cart")
	case isKind(err, domainerrors.KindPersistence):
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Checkout failed", slog.Any("error", err))

		return response.FlashRedirect(c, flash.Danger, domainerrors.MessageOf(err), "/checkout")
	default:
		return response.FlashError(c, err, "/checkout")
	}
}

// OrderConfirmation shows the most recent order.
func (h *CheckoutHandler) OrderConfirmation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	order, err := h.checkoutUC.LatestOrder(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			return response.FlashRedirect(c, flash.Warning, "No recent orders found.", "/orders")
		}

		return errors.Wrap(err, "failed to load latest order")
	}

	return response.Render(c, http.StatusOK, "order_confirmation", "Order confirmed", order)
}

// Orders lists every order of the member, newest first.
func (h *CheckoutHandler) Orders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.checkoutUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.Wrap(err, "failed to list orders")
	}

	return response.Render(c, http.StatusOK, "orders", "My orders", orders)
}
