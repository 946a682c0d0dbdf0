package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns every cart line into a confirmed order and decrements stock,
// all in one transaction. Either every line is materialized or nothing changes.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, shippingAddress string) ([]*entity.Order, error) {
	shippingAddress = strings.TrimSpace(shippingAddress)

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		if len(items) == 0 {
			return domainerrors.ErrCartEmpty
		}
		if shippingAddress == "" {
			return domainerrors.ErrShippingAddressRequired
		}

		// Validation pass: nothing is written until every line fits.
		products := make(map[uuid.UUID]*entity.Product, len(items))
		for _, item := range items {
			product, err := productRepo.FindByID(ctx, item.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrInsufficientStock.WithMessage("A product in your cart is no longer available.")
			}
			if err != nil {
				return errors.Wrap(err, "failed to load cart product")
			}
			if item.Quantity > product.StockQuantity {
				return insufficientStock(product)
			}
			products[item.ProductID] = product
		}

		orders = make([]*entity.Order, 0, len(items))
		for _, item := range items {
			product := products[item.ProductID]

			order := &entity.Order{
				UserID:          userID,
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				TotalPrice:      product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
				Status:          entity.OrderStatusConfirmed,
				ShippingAddress: shippingAddress,
				ProductName:     product.Name,
			}
			if err := orderRepo.Create(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}

			if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					return insufficientStock(product)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			orders = append(orders, order)
		}

		return errors.Wrap(cartRepo.DeleteByUser(ctx, userID), "failed to clear cart")
	})
	if err != nil {
		return nil, srv.checkoutError(ctx, userID, err)
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("user_id", userID), slog.Int("orders", len(orders)))

	return orders, nil
}

// checkoutError keeps user-correctable failures and hides everything else
// behind the generic checkout failure.
func (srv *checkoutService) checkoutError(ctx context.Context, userID uuid.UUID, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Kind() != domainerrors.KindPersistence {
		srv.log(ctx).Warn("Checkout rejected", slog.Any("user_id", userID), slog.String("reason", appErr.Message()))

		return err
	}

	srv.log(ctx).Error("Checkout failed", slog.Any("user_id", userID), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrCheckoutFailed, err.Error())
}

func (srv *checkoutService) LatestOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindLatestByUser(ctx, userID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find latest order")
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().ListByUser(ctx, userID, 0)

		return errors.Wrap(err, "failed to list orders")
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func insufficientStock(product *entity.Product) error {
	return domainerrors.ErrInsufficientStock.WithMessage(
		fmt.Sprintf("Not enough stock for %s. Only %d available.", product.Name, product.StockQuantity))
}
