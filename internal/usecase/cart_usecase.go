package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartSummary is returned to the JSON quantity endpoint.
type CartSummary struct {
	Total     decimal.Decimal
	ItemCount int
}

// CartUsecase manages a member's cart lines.
type CartUsecase interface {
	// AddToCart adds one unit, creating the line if needed. It returns the product for messaging.
	AddToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error)

	// UpdateQuantity sets a line's quantity exactly; quantity <= 0 removes the line.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartSummary, error)

	// RemoveFromCart reports whether a line was removed.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	GetCartTotal(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	CountItems(ctx context.Context, userID uuid.UUID) (int, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
