package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	// ListByType returns posts of one type, newest first, with author usernames.
	ListByType(ctx context.Context, postType entity.PostType) ([]*entity.Post, error)
	ListLatest(ctx context.Context, limit int) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error)
}
