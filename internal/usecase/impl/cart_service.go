package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart adds one unit of the product. Stock is checked against the line's
// new quantity; nothing is written when it would be exceeded.
func (srv *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		cartRepo := repoFactory.CartRepo()

		var err error
		product, err = findProduct(ctx, productRepo, productID)
		if err != nil {
			return err
		}

		if !product.InStock() {
			return domainerrors.ErrOutOfStock
		}

		item, err := cartRepo.Find(ctx, userID, productID)
		if errors.Is(err, repository.ErrCartItemNotFound) {
			if err := cartRepo.Create(ctx, &entity.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  1,
			}); err != nil {
				return errors.Wrap(err, "failed to create cart item")
			}

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart item")
		}

		if item.Quantity+1 > product.StockQuantity {
			return domainerrors.ErrCartLimitReached
		}

		return errors.Wrap(cartRepo.UpdateQuantity(ctx, item.ID, item.Quantity+1), "failed to increment cart item")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add product to cart",
			slog.Any("user_id", userID), slog.Any("product_id", productID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product added to cart", slog.Any("user_id", userID), slog.Any("product_id", productID))

	return product, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartSummary, error) {
	var summary *usecase.CartSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := cartRepo.Find(ctx, userID, productID)
		switch {
		case errors.Is(err, repository.ErrCartItemNotFound):
			// Nothing to change; report the cart as it is.
		case err != nil:
			return errors.Wrap(err, "failed to find cart item")
		case quantity <= 0:
			if err := cartRepo.Delete(ctx, item.ID); err != nil {
				return errors.Wrap(err, "failed to remove cart item")
			}
		default:
			product, err := findProduct(ctx, repoFactory.ProductRepo(), productID)
			if err != nil {
				return err
			}
			if quantity > product.StockQuantity {
				return domainerrors.ErrInsufficientStock.WithMessage(
					fmt.Sprintf("Only %d items available", product.StockQuantity))
			}
			if err := cartRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
				return errors.Wrap(err, "failed to update cart item")
			}
		}

		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}

		summary = &usecase.CartSummary{
			Total:     entity.CartTotal(items),
			ItemCount: len(items),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart quantity",
			slog.Any("user_id", userID), slog.Any("product_id", productID), slog.Int("quantity", quantity), slog.Any("error", err))

		return nil, err
	}

	return summary, nil
}

func (srv *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	removed := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := cartRepo.Find(ctx, userID, productID)
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart item")
		}

		if err := cartRepo.Delete(ctx, item.ID); err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to delete cart item")
		}
		removed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to remove cart item", slog.Any("user_id", userID), slog.Any("error", err))

		return false, err
	}

	return removed, nil
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, err := repoFactory.CartRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}

		cart = &entity.Cart{Items: items, Total: entity.CartTotal(items)}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// GetCartTotal sums price times quantity, skipping lines whose product is gone.
func (srv *cartService) GetCartTotal(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return cart.Total, nil
}

func (srv *cartService) CountItems(ctx context.Context, userID uuid.UUID) (int, error) {
	count := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		count, err = repoFactory.CartRepo().CountByUser(ctx, userID)

		return errors.Wrap(err, "failed to count cart items")
	})

	return count, err
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.CartRepo().DeleteByUser(ctx, userID), "failed to clear cart")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.Any("user_id", userID), slog.Any("error", err))

		return err
	}

	return nil
}

// findProduct maps a missing product onto the NotFound AppError.
func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
