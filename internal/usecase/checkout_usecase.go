package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase turns a cart into orders.
type CheckoutUsecase interface {
	// Checkout creates one confirmed order per cart line, decrements stock and
	// empties the cart in a single transaction. Nothing is written on failure.
	Checkout(ctx context.Context, userID uuid.UUID, shippingAddress string) ([]*entity.Order, error)

	LatestOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
