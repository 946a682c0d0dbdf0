package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	mockusecase "agrifarma/internal/mocks/usecase"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	*webHarness
	cartUC *mockusecase.MockCartUsecase
}

func newCartFixture(t *testing.T) *cartFixture {
	f := &cartFixture{
		webHarness: newWebHarness(t),
		cartUC:     mockusecase.NewMockCartUsecase(t),
	}

	h := NewCartHandler(CartHandlerParams{CartUC: f.cartUC, Logger: discardLogger})
	f.e.GET("/cart", h.ShowCart)
	f.e.POST("/add_to_cart/:id", h.AddToCart)
	f.e.POST("/cart/update/:id", h.UpdateQuantity)
	f.e.POST("/cart/remove/:id", h.RemoveFromCart)

	return f
}

func (f *cartFixture) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	return f.do(req)
}

func TestCartHandler_ShowCart(t *testing.T) {
	f := newCartFixture(t)
	userID := f.login()
	cart := &entity.Cart{}
	f.cartUC.EXPECT().GetCart(mock.Anything, userID).Return(cart, nil)

	rec := f.get("/cart")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cart", f.renderer.name)
	assert.Same(t, cart, f.renderer.page.Data)
}

func TestCartHandler_AddToCart(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name     string
		product  *entity.Product
		err      error
		location string
		category string
		message  string
		notFound bool
	}{
		{
			name:     "added",
			product:  &entity.Product{ID: productID, Name: "Wheat seed"},
			location: "/product/" + productID.String(),
			category: flash.Success,
			message:  "Wheat seed added to cart!",
		},
		{
			name:     "out of stock",
			err:      domainerrors.ErrOutOfStock,
			location: "/product/" + productID.String(),
			category: flash.Warning,
			message:  "This product is out of stock.",
		},
		{
			name:     "stock limit",
			err:      domainerrors.ErrCartLimitReached,
			location: "/product/" + productID.String(),
			category: flash.Warning,
			message:  "Cannot add more items than available in stock.",
		},
		{
			name:     "database failure",
			err:      errors.New("connection reset"),
			location: "/products",
			category: flash.Danger,
			message:  "Something went wrong. Please try again.",
		},
		{
			name:     "unknown product",
			err:      domainerrors.ErrProductNotFound,
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)
			userID := f.login()
			f.cartUC.EXPECT().AddToCart(mock.Anything, userID, productID).Return(tt.product, tt.err)

			rec := f.postForm("/add_to_cart/"+productID.String(), nil)

			if tt.notFound {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "404", f.renderer.name)

				return
			}
			f.requireRedirect(rec, tt.location, tt.category, tt.message)
		})
	}
}

func TestCartHandler_AddToCart_MalformedID(t *testing.T) {
	f := newCartFixture(t)
	f.login()

	rec := f.postForm("/add_to_cart/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	f := newCartFixture(t)
	userID := f.login()
	productID := uuid.New()
	f.cartUC.EXPECT().UpdateQuantity(mock.Anything, userID, productID, 3).
		Return(&usecase.CartSummary{Total: decimal.RequireFromString("37.5"), ItemCount: 4}, nil)

	rec := f.postJSON("/cart/update/"+productID.String(), `{"quantity": 3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "total": 37.50, "item_count": 4}`, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total":37.50`)
}

func TestCartHandler_UpdateQuantity_DefaultsToOne(t *testing.T) {
	f := newCartFixture(t)
	userID := f.login()
	productID := uuid.New()
	f.cartUC.EXPECT().UpdateQuantity(mock.Anything, userID, productID, 1).
		Return(&usecase.CartSummary{Total: decimal.NewFromInt(5), ItemCount: 1}, nil)

	rec := f.postJSON("/cart/update/"+productID.String(), `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		body     string
		ucErr    error
		wantCode int
		wantMsg  string
	}{
		{name: "bad id", id: "nope", body: `{"quantity": 1}`, wantCode: http.StatusBadRequest, wantMsg: "Invalid product id"},
		{name: "bad body", body: `{"quantity": "many"}`, wantCode: http.StatusBadRequest, wantMsg: "Invalid request body"},
		{name: "insufficient stock", body: `{"quantity": 9}`, ucErr: domainerrors.ErrInsufficientStock, wantCode: http.StatusBadRequest, wantMsg: "Not enough stock available."},
		{name: "database failure", body: `{"quantity": 2}`, ucErr: errors.New("disk full"), wantCode: http.StatusInternalServerError, wantMsg: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)
			f.login()
			id := tt.id
			if id == "" {
				id = uuid.NewString()
			}
			if tt.ucErr != nil {
				f.cartUC.EXPECT().UpdateQuantity(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := f.postJSON("/cart/update/"+id, tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestCartHandler_RemoveFromCart(t *testing.T) {
	tests := []struct {
		name     string
		removed  bool
		category string
		message  string
	}{
		{name: "removed", removed: true, category: flash.Success, message: "Item removed from cart."},
		{name: "missing", removed: false, category: flash.Warning, message: "Item not found in cart."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)
			userID := f.login()
			productID := uuid.New()
			f.cartUC.EXPECT().RemoveFromCart(mock.Anything, userID, productID).Return(tt.removed, nil)

			rec := f.postForm("/cart/remove/"+productID.String(), nil)

			f.requireRedirect(rec, "/cart", tt.category, tt.message)
		})
	}
}
