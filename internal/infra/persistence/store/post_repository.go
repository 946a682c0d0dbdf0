package store

import (
	"context"

	"agrifarma/internal/domain/entity"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	ensureID(&postM.ID)
	ensureTime(&postM.CreatedDate)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return translateWriteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedDate = postM.CreatedDate

	return nil
}

func (repo *postRepository) ListByType(ctx context.Context, postType entity.PostType) ([]*entity.Post, error) {
	return repo.find(repo.db.WithContext(ctx).Where("post_type = ?", string(postType)), 0, "failed to list posts")
}

func (repo *postRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Post, error) {
	return repo.find(repo.db.WithContext(ctx), limit, "failed to list latest posts")
}

func (repo *postRepository) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID), 0, "failed to list author posts")
}

func (repo *postRepository) find(query *gorm.DB, limit int, details string) ([]*entity.Post, error) {
	query = query.Preload("User").Order("created_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var postModels []*model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, details)
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Content:     data.Content,
		Type:        entity.PostType(data.PostType),
		CategoryID:  data.CategoryID,
		ProductID:   data.ProductID,
		Tags:        data.Tags,
		CreatedDate: data.CreatedDate,
	}
	if data.User != nil {
		post.AuthorUsername = data.User.Username
	}

	return post
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Content:     data.Content,
		PostType:    string(data.Type),
		CategoryID:  data.CategoryID,
		ProductID:   data.ProductID,
		Tags:        data.Tags,
		CreatedDate: data.CreatedDate,
	}
}
