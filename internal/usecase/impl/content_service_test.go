package impl

import (
	"context"
	"testing"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentServiceForTest(t *testing.T) (usecase.ContentUsecase, *repoMocks) {
	repos := newRepoMocks(t)
	srv := NewContentService(ContentServiceParams{
		TxManager: repos.txManager(t),
		Logger:    newDiscardLogger(),
	})

	return srv, repos
}

func TestContentService_CreatePost(t *testing.T) {
	srv, repos := newContentServiceForTest(t)
	authorID, categoryID := uuid.New(), uuid.New()

	repos.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	repos.posts.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
			return p.UserID == authorID && p.Type == entity.PostTypeForum && *p.CategoryID == categoryID
		})).
		Return(nil)

	post, err := srv.CreatePost(context.Background(), authorID, &usecase.CreatePostInput{
		Type:       entity.PostTypeForum,
		Title:      "Best maize variety for highlands?",
		Content:    "Looking for advice.",
		CategoryID: categoryID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Best maize variety for highlands?", post.Title)
}

func TestContentService_CreatePost_IgnoresMalformedCategory(t *testing.T) {
	srv, repos := newContentServiceForTest(t)

	repos.posts.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Post) bool { return p.CategoryID == nil })).
		Return(nil)

	_, err := srv.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{
		Type: entity.PostTypeBlog, Title: "t", Content: "c", CategoryID: "42",
	})
	require.NoError(t, err)
}

func TestContentService_CreatePost_Rejections(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		srv, _ := newContentServiceForTest(t)

		_, err := srv.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{Type: entity.PostTypeForum, Content: "c"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown category", func(t *testing.T) {
		srv, repos := newContentServiceForTest(t)
		categoryID := uuid.New()
		repos.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := srv.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{
			Type: entity.PostTypeForum, Title: "t", Content: "c", CategoryID: categoryID.String(),
		})
		require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	})

	t.Run("unknown product", func(t *testing.T) {
		srv, repos := newContentServiceForTest(t)
		productID := uuid.New()
		repos.products.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

		_, err := srv.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{
			Type: entity.PostTypeBlog, Title: "t", Content: "c", ProductID: productID.String(),
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestContentService_ListPosts(t *testing.T) {
	srv, repos := newContentServiceForTest(t)
	expected := []*entity.Post{{Title: "newest"}, {Title: "older"}}

	repos.posts.EXPECT().ListByType(mock.Anything, entity.PostTypeBlog).Return(expected, nil)

	posts, err := srv.ListPosts(context.Background(), entity.PostTypeBlog)
	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}
