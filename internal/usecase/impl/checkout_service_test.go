package impl

import (
	"context"
	"testing"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutServiceForTest(t *testing.T) (*checkoutService, *repoMocks) {
	repos := newRepoMocks(t)
	srv := NewCheckoutService(CheckoutServiceParams{
		TxManager: repos.txManager(t),
		Logger:    newDiscardLogger(),
	}).(*checkoutService)

	return srv, repos
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Hoe", Price: decimal.RequireFromString("20"), StockQuantity: 5}

	repos.carts.EXPECT().ListByUser(ctx, userID).
		Return([]*entity.CartItem{{ID: uuid.New(), ProductID: product.ID, Quantity: 1, Product: product}}, nil)
	repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	repos.orders.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.ProductID == product.ID &&
				order.Quantity == 1 &&
				order.TotalPrice.Equal(decimal.RequireFromString("20")) &&
				order.Status == entity.OrderStatusConfirmed &&
				order.ShippingAddress == "Plot 7, Nakuru"
		})).
		Return(nil)
	repos.products.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	repos.carts.EXPECT().DeleteByUser(ctx, userID).Return(nil)

	orders, err := srv.Checkout(ctx, userID, "  Plot 7, Nakuru ")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Hoe", orders[0].ProductName)
}

func TestCheckoutService_Checkout_InsufficientStockWritesNothing(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), Name: "A", Price: decimal.NewFromInt(10), StockQuantity: 2}
	productB := &entity.Product{ID: uuid.New(), Name: "B", Price: decimal.NewFromInt(5), StockQuantity: 0}

	repos.carts.EXPECT().ListByUser(ctx, userID).Return([]*entity.CartItem{
		{ProductID: productA.ID, Quantity: 2, Product: productA},
		{ProductID: productB.ID, Quantity: 1, Product: productB},
	}, nil)
	repos.products.EXPECT().FindByID(ctx, productA.ID).Return(productA, nil)
	repos.products.EXPECT().FindByID(ctx, productB.ID).Return(productB, nil)

	orders, err := srv.Checkout(ctx, userID, "Eldoret")
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, orders)
	assert.Equal(t, "Not enough stock for B. Only 0 available.", domainerrors.MessageOf(err))

	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repos.products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	repos.carts.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()

	repos.carts.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.CartItem{}, nil)

	_, err := srv.Checkout(context.Background(), userID, "Kisumu")
	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_AddressRequired(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()

	repos.carts.EXPECT().ListByUser(mock.Anything, userID).
		Return([]*entity.CartItem{{ProductID: uuid.New(), Quantity: 1}}, nil)

	_, err := srv.Checkout(context.Background(), userID, "   ")
	require.ErrorIs(t, err, domainerrors.ErrShippingAddressRequired)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestCheckoutService_Checkout_ConcurrentDecrementLoses(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Sprayer", Price: decimal.NewFromInt(50), StockQuantity: 1}

	repos.carts.EXPECT().ListByUser(mock.Anything, userID).
		Return([]*entity.CartItem{{ProductID: product.ID, Quantity: 1}}, nil)
	repos.products.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	repos.orders.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	repos.products.EXPECT().DecrementStock(mock.Anything, product.ID, 1).Return(repository.ErrStockConflict)

	_, err := srv.Checkout(context.Background(), userID, "Thika")
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	repos.carts.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_PersistenceFailureIsGeneric(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(3), StockQuantity: 4}

	repos.carts.EXPECT().ListByUser(mock.Anything, userID).
		Return([]*entity.CartItem{{ProductID: product.ID, Quantity: 1}}, nil)
	repos.products.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	repos.orders.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create order"))

	_, err := srv.Checkout(context.Background(), userID, "Meru")
	require.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
	assert.Equal(t, domainerrors.ErrCheckoutFailed.Message(), domainerrors.MessageOf(err))
}

func TestCheckoutService_CheckoutError(t *testing.T) {
	srv, _ := newCheckoutServiceForTest(t)

	tests := []struct {
		name string
		err  error
		want *domainerrors.BaseError
	}{
		{name: "business error passes through", err: domainerrors.ErrInsufficientStock, want: domainerrors.ErrInsufficientStock},
		{
			name: "wrapped business error passes through",
			err:  errors.Wrap(domainerrors.ErrShippingAddressRequired, "checkout"),
			want: domainerrors.ErrShippingAddressRequired,
		},
		{
			name: "persistence error is hidden",
			err:  domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to decrement stock"),
			want: domainerrors.ErrCheckoutFailed,
		},
		{name: "plain error is hidden", err: errors.New("connection refused"), want: domainerrors.ErrCheckoutFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := srv.checkoutError(context.Background(), uuid.New(), tt.err)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Message(), domainerrors.MessageOf(err))
		})
	}
}

func TestCheckoutService_LatestOrder_NotFound(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()

	repos.orders.EXPECT().FindLatestByUser(mock.Anything, userID).Return(nil, repository.ErrOrderNotFound)

	_, err := srv.LatestOrder(context.Background(), userID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_ListOrders(t *testing.T) {
	srv, repos := newCheckoutServiceForTest(t)
	userID := uuid.New()
	expected := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	repos.orders.EXPECT().ListByUser(mock.Anything, userID, 0).Return(expected, nil)

	orders, err := srv.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
