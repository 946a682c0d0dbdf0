package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput mirrors the new post form. CategoryID and ProductID are raw
// form values; an unparsable category id is ignored.
type CreatePostInput struct {
	Type       entity.PostType
	Title      string
	Content    string
	Tags       string
	CategoryID string
	ProductID  string
}

// ContentUsecase manages forum threads and blog articles.
type ContentUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context, postType entity.PostType) ([]*entity.Post, error)
	ListPostCategories(ctx context.Context) ([]*entity.Category, error)
}
