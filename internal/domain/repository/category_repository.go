package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)
}
