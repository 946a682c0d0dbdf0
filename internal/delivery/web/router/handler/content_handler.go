package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the forum and the blog. Both share templates and
// differ only by post type.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// CreatePostRequest is the new post form.
type CreatePostRequest struct {
	Title      string `form:"title" validate:"max=200" label:"Title"`
	Content    string `form:"content"`
	Tags       string `form:"tags" validate:"max=200" label:"Tags"`
	CategoryID string `form:"category_id"`
	ProductID  string `form:"product_id"`
}

// PostsView feeds the posts template.
type PostsView struct {
	Type  entity.PostType
	Posts []*entity.Post
}

// NewPostView feeds the new_post template.
type NewPostView struct {
	Type       entity.PostType
	Categories []*entity.Category
}

// List renders the posts of one type, newest first.
func (h *ContentHandler) List(postType entity.PostType) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := h.contentUC.ListPosts(c.Request().Context(), postType)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s posts", postType)
		}

		return response.Render(c, http.StatusOK, "posts", postTitle(postType), PostsView{Type: postType, Posts: posts})
	}
}

// ShowNew renders the post form for one type.
func (h *ContentHandler) ShowNew(postType entity.PostType) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := h.contentUC.ListPostCategories(c.Request().Context())
		if err != nil {
			return errors.Wrap(err, "failed to list post categories")
		}

		return response.Render(c, http.StatusOK, "new_post", "New post", NewPostView{Type: postType, Categories: categories})
	}
}

// Create publishes a post of one type.
func (h *ContentHandler) Create(postType entity.PostType) echo.HandlerFunc {
	listPath := "/" + string(postType)
	formPath := listPath + "/new"

	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		var req CreatePostRequest
		if err := bindForm(c, &req); err != nil {
			return response.FlashError(c, err, formPath)
		}

		_, err = h.contentUC.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
			Type:       postType,
			Title:      req.Title,
			Content:    req.Content,
			Tags:       req.Tags,
			CategoryID: req.CategoryID,
			ProductID:  req.ProductID,
		})
		if err != nil {
			if isKind(err, domainerrors.KindPersistence) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to create post", slog.Any("error", err))
			}

			return response.FlashError(c, err, formPath)
		}

		return response.FlashRedirect(c, flash.Success, "Post created successfully!", listPath)
	}
}

func postTitle(postType entity.PostType) string {
	if postType == entity.PostTypeBlog {
		return "Blog"
	}

	return "Forum"
}
