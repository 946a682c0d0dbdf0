package handler

import (
	"net/http"
	"net/url"
	"testing"

	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	mockusecase "agrifarma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	*webHarness
	cartUC     *mockusecase.MockCartUsecase
	checkoutUC *mockusecase.MockCheckoutUsecase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	f := &checkoutFixture{
		webHarness: newWebHarness(t),
		cartUC:     mockusecase.NewMockCartUsecase(t),
		checkoutUC: mockusecase.NewMockCheckoutUsecase(t),
	}

	h := NewCheckoutHandler(CheckoutHandlerParams{CartUC: f.cartUC, CheckoutUC: f.checkoutUC, Logger: discardLogger})
	f.e.GET("/checkout", h.ShowCheckout)
	f.e.POST("/checkout", h.Checkout)
	f.e.GET("/order_confirmation", h.OrderConfirmation)
	f.e.GET("/orders", h.Orders)

	return f
}

func TestCheckoutHandler_ShowCheckout(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.login()
	cart := &entity.Cart{Items: []*entity.CartItem{{ID: uuid.New(), Quantity: 1}}}
	f.cartUC.EXPECT().GetCart(mock.Anything, userID).Return(cart, nil)

	rec := f.get("/checkout")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "checkout", f.renderer.name)
	assert.Same(t, cart, f.renderer.page.Data)
}

func TestCheckoutHandler_ShowCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.login()
	f.cartUC.EXPECT().GetCart(mock.Anything, userID).Return(&entity.Cart{}, nil)

	rec := f.get("/checkout")

	f.requireRedirect(rec, "/cart", flash.Warning, "Your cart is empty.")
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		location string
		category string
		message  string
	}{
		{name: "placed", location: "/order_confirmation", category: flash.Success, message: "Order placed successfully!"},
		{name: "empty cart", err: domainerrors.ErrCartEmpty, location: "/cart", category: flash.Warning, message: "Your cart is empty."},
		{name: "missing address", err: domainerrors.ErrShippingAddressRequired, location: "/checkout", category: flash.Danger, message: "Please provide a shipping address."},
		{name: "stock gone", err: domainerrors.ErrInsufficientStock.WithMessage("Not enough stock for Urea."), location: "/cart", category: flash.Danger, message: "Not enough stock for Urea."},
		{name: "database failure", err: errors.Wrap(domainerrors.ErrCheckoutFailed, "tx"), location: "/checkout", category: flash.Danger, message: "An error occurred during checkout. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			userID := f.login()
			var orders []*entity.Order
			if tt.err == nil {
				orders = []*entity.Order{{ID: uuid.New()}}
			}
			f.checkoutUC.EXPECT().Checkout(mock.Anything, userID, "12 Canal Road").Return(orders, tt.err)

			rec := f.postForm("/checkout", url.Values{"shipping_address": {"12 Canal Road"}})

			f.requireRedirect(rec, tt.location, tt.category, tt.message)
		})
	}
}

func TestCheckoutHandler_OrderConfirmation(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.login()
	order := &entity.Order{ID: uuid.New()}
	f.checkoutUC.EXPECT().LatestOrder(mock.Anything, userID).Return(order, nil)

	rec := f.get("/order_confirmation")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "order_confirmation", f.renderer.name)
	assert.Same(t, order, f.renderer.page.Data)
}

func TestCheckoutHandler_OrderConfirmation_NoOrders(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.login()
	f.checkoutUC.EXPECT().LatestOrder(mock.Anything, userID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := f.get("/order_confirmation")

	f.requireRedirect(rec, "/orders", flash.Warning, "No recent orders found.")
}

func TestCheckoutHandler_Orders(t *testing.T) {
	f := newCheckoutFixture(t)
	userID := f.login()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	f.checkoutUC.EXPECT().ListOrders(mock.Anything, userID).Return(orders, nil)

	rec := f.get("/orders")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "orders", f.renderer.name)
	assert.Equal(t, orders, f.renderer.page.Data)
}

func TestCheckoutHandler_RequiresSession(t *testing.T) {
	f := newCheckoutFixture(t)

	rec := f.get("/orders")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", f.renderer.name)
}
