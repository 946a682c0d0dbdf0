package impl

import (
	"context"
	"testing"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(t *testing.T) (*cartService, *repoMocks) {
	repos := newRepoMocks(t)
	srv := NewCartService(CartServiceParams{
		TxManager: repos.txManager(t),
		Logger:    newDiscardLogger(),
	}).(*cartService)

	return srv, repos
}

func TestCartService_AddToCart_CreatesLine(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Maize seed", StockQuantity: 3}, nil)
	repos.carts.EXPECT().Find(ctx, userID, productID).Return(nil, repository.ErrCartItemNotFound)
	repos.carts.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.UserID == userID && item.ProductID == productID && item.Quantity == 1
		})).
		Return(nil)

	product, err := srv.AddToCart(ctx, userID, productID)
	require.NoError(t, err)
	assert.Equal(t, "Maize seed", product.Name)
}

func TestCartService_AddToCart_IncrementsExistingLine(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	userID, productID, itemID := uuid.New(), uuid.New(), uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 3}, nil)
	repos.carts.EXPECT().Find(ctx, userID, productID).
		Return(&entity.CartItem{ID: itemID, Quantity: 2}, nil)
	repos.carts.EXPECT().UpdateQuantity(ctx, itemID, 3).Return(nil)

	_, err := srv.AddToCart(ctx, userID, productID)
	require.NoError(t, err)
}

func TestCartService_AddToCart_LimitReached(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 2}, nil)
	repos.carts.EXPECT().Find(ctx, userID, productID).
		Return(&entity.CartItem{ID: uuid.New(), Quantity: 2}, nil)

	_, err := srv.AddToCart(ctx, userID, productID)
	require.ErrorIs(t, err, domainerrors.ErrCartLimitReached)
	assert.Equal(t, domainerrors.KindStock, domainerrors.KindOf(err))
	repos.carts.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_OutOfStock(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	productID := uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 0}, nil)

	_, err := srv.AddToCart(ctx, uuid.New(), productID)
	require.ErrorIs(t, err, domainerrors.ErrOutOfStock)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	productID := uuid.New()

	repos.products.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := srv.AddToCart(ctx, uuid.New(), productID)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	userID, productID, itemID := uuid.New(), uuid.New(), uuid.New()
	product := &entity.Product{ID: productID, Price: decimal.RequireFromString("10"), StockQuantity: 5}

	tests := []struct {
		name      string
		quantity  int
		setup     func(repos *repoMocks)
		wantErr   error
		wantTotal string
		wantCount int
	}{
		{
			name:     "sets quantity exactly",
			quantity: 4,
			setup: func(repos *repoMocks) {
				repos.carts.EXPECT().Find(mock.Anything, userID, productID).
					Return(&entity.CartItem{ID: itemID, Quantity: 1}, nil)
				repos.products.EXPECT().FindByID(mock.Anything, productID).Return(product, nil)
				repos.carts.EXPECT().UpdateQuantity(mock.Anything, itemID, 4).Return(nil)
				repos.carts.EXPECT().ListByUser(mock.Anything, userID).
					Return([]*entity.CartItem{{Quantity: 4, Product: product}}, nil)
			},
			wantTotal: "40",
			wantCount: 1,
		},
		{
			name:     "zero removes the line",
			quantity: 0,
			setup: func(repos *repoMocks) {
				repos.carts.EXPECT().Find(mock.Anything, userID, productID).
					Return(&entity.CartItem{ID: itemID, Quantity: 2}, nil)
				repos.carts.EXPECT().Delete(mock.Anything, itemID).Return(nil)
				repos.carts.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.CartItem{}, nil)
			},
			wantTotal: "0",
			wantCount: 0,
		},
		{
			name:     "more than stock is rejected",
			quantity: 6,
			setup: func(repos *repoMocks) {
				repos.carts.EXPECT().Find(mock.Anything, userID, productID).
					Return(&entity.CartItem{ID: itemID, Quantity: 2}, nil)
				repos.products.EXPECT().FindByID(mock.Anything, productID).Return(product, nil)
			},
			wantErr: domainerrors.ErrInsufficientStock,
		},
		{
			name:     "missing line reports current cart",
			quantity: 3,
			setup: func(repos *repoMocks) {
				repos.carts.EXPECT().Find(mock.Anything, userID, productID).Return(nil, repository.ErrCartItemNotFound)
				repos.carts.EXPECT().ListByUser(mock.Anything, userID).
					Return([]*entity.CartItem{{Quantity: 1, Product: product}}, nil)
			},
			wantTotal: "10",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repos := newCartServiceForTest(t)
			tt.setup(repos)

			summary, err := srv.UpdateQuantity(context.Background(), userID, productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, summary)

				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(summary.Total), summary.Total.String())
			assert.Equal(t, tt.wantCount, summary.ItemCount)
		})
	}
}

func TestCartService_UpdateQuantity_InsufficientStockMessage(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	userID, productID := uuid.New(), uuid.New()

	repos.carts.EXPECT().Find(mock.Anything, userID, productID).
		Return(&entity.CartItem{ID: uuid.New(), Quantity: 1}, nil)
	repos.products.EXPECT().FindByID(mock.Anything, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 3}, nil)

	_, err := srv.UpdateQuantity(context.Background(), userID, productID, 9)
	require.Error(t, err)
	assert.Equal(t, "Only 3 items available", domainerrors.MessageOf(err))
}

func TestCartService_RemoveFromCart(t *testing.T) {
	t.Run("removes existing line", func(t *testing.T) {
		srv, repos := newCartServiceForTest(t)
		userID, productID, itemID := uuid.New(), uuid.New(), uuid.New()

		repos.carts.EXPECT().Find(mock.Anything, userID, productID).Return(&entity.CartItem{ID: itemID}, nil)
		repos.carts.EXPECT().Delete(mock.Anything, itemID).Return(nil)

		removed, err := srv.RemoveFromCart(context.Background(), userID, productID)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("absent line is not an error", func(t *testing.T) {
		srv, repos := newCartServiceForTest(t)
		userID, productID := uuid.New(), uuid.New()

		repos.carts.EXPECT().Find(mock.Anything, userID, productID).Return(nil, repository.ErrCartItemNotFound)

		removed, err := srv.RemoveFromCart(context.Background(), userID, productID)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestCartService_GetCartTotal_SkipsMissingProduct(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	userID := uuid.New()

	repos.carts.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.CartItem{
		{Quantity: 2, Product: &entity.Product{Price: decimal.RequireFromString("7.25")}},
		{Quantity: 1, Product: nil},
	}, nil)

	total, err := srv.GetCartTotal(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("14.50").Equal(total))
}

func TestCartService_CountItemsAndClear(t *testing.T) {
	srv, repos := newCartServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	repos.carts.EXPECT().CountByUser(ctx, userID).Return(3, nil)
	repos.carts.EXPECT().DeleteByUser(ctx, userID).Return(nil)

	count, err := srv.CountItems(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, srv.ClearCart(ctx, userID))
}
