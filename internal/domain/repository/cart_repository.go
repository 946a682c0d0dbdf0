package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists cart lines. There is at most one line per (user, product).
type CartRepository interface {
	// Find returns ErrCartItemNotFound when the user has no line for the product.
	Find(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// ListByUser returns the user's lines with Product loaded (nil if it no longer exists).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// Create inserts a new line. A concurrent duplicate yields ErrDuplicateKey.
	Create(ctx context.Context, item *entity.CartItem) error

	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
