package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's orders newest first; limit <= 0 means all.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)

	// FindLatestByUser returns ErrOrderNotFound when the user never ordered.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
}
