package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository persists listings.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns ErrProductNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns active products matching filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// ListFeatured returns up to limit featured, active products.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// DistinctCategories returns the category labels of active products.
	DistinctCategories(ctx context.Context) ([]string, error)

	// DecrementStock subtracts quantity only while enough stock remains.
	// It returns ErrStockConflict when no row satisfied the condition.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
