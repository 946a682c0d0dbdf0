package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errUnknownLinkedProduct = domainerrors.ErrValidationFailed.WithMessage("The linked product does not exist.")

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a forum thread or blog article. A category id that is
// not a UUID is ignored; a well-formed id must reference an existing row.
func (srv *contentService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown post type")
	}

	post := &entity.Post{
		UserID:  authorID,
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Type:    input.Type,
		Tags:    strings.TrimSpace(input.Tags),
	}
	if post.Title == "" || post.Content == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	if categoryID, err := uuid.Parse(strings.TrimSpace(input.CategoryID)); err == nil {
		post.CategoryID = &categoryID
	}
	if productID := strings.TrimSpace(input.ProductID); productID != "" {
		parsed, err := uuid.Parse(productID)
		if err != nil {
			return nil, errUnknownLinkedProduct
		}
		post.ProductID = &parsed
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if post.CategoryID != nil {
			_, err := repoFactory.CategoryRepo().FindByID(ctx, *post.CategoryID)
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}
			if err != nil {
				return errors.Wrap(err, "failed to find category")
			}
		}
		if post.ProductID != nil {
			_, err := repoFactory.ProductRepo().FindByID(ctx, *post.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return errUnknownLinkedProduct
			}
			if err != nil {
				return errors.Wrap(err, "failed to find product")
			}
		}

		err := repoFactory.PostRepo().Create(ctx, post)
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return domainerrors.ErrValidationFailed.WithMessage("The linked category or product no longer exists.")
		}

		return errors.Wrap(err, "failed to create post")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.Any("author_id", authorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Post created", slog.Any("post_id", post.ID), slog.String("type", string(post.Type)))

	return post, nil
}

// ListPosts returns posts of one type, newest first.
func (srv *contentService) ListPosts(ctx context.Context, postType entity.PostType) ([]*entity.Post, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		posts, err = repoFactory.PostRepo().ListByType(ctx, postType)

		return errors.Wrap(err, "failed to list posts")
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (srv *contentService) ListPostCategories(ctx context.Context) ([]*entity.Category, error) {
	return listCategories(ctx, srv.txManager, entity.CategoryTypePost)
}
