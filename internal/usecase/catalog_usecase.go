package usecase

import (
	"context"
	"io"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// AddProductInput mirrors the listing form. Price and stock arrive as text
// so malformed numbers can be reported with their own messages.
type AddProductInput struct {
	Name          string
	Price         string
	Description   string
	Category      string
	Subcategory   string
	StockQuantity string
	Featured      bool
	Image         *FileUpload
}

// ProductListOutput is the filtered listing plus the category picker.
type ProductListOutput struct {
	Products   []*entity.Product
	Categories []string
}

// HomeOutput is the landing page content.
type HomeOutput struct {
	FeaturedProducts []*entity.Product
	LatestPosts      []*entity.Post
}

// ImportOutput reports how many spreadsheet rows became listings.
type ImportOutput struct {
	Imported int
	Skipped  []ImportSkip
}

// ImportSkip explains why one spreadsheet row was ignored.
type ImportSkip struct {
	Line   int
	Reason string
}

// CatalogUsecase manages product listings.
type CatalogUsecase interface {
	AddProduct(ctx context.Context, ownerID uuid.UUID, input *AddProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductListOutput, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	Home(ctx context.Context) (*HomeOutput, error)
	ImportProducts(ctx context.Context, ownerID uuid.UUID, workbook io.Reader) (*ImportOutput, error)
	ProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
	ListProductCategories(ctx context.Context) ([]*entity.Category, error)
	AddCategory(ctx context.Context, category *entity.Category) error
}
