package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	homeFeaturedLimit = 4
	homePostsLimit    = 3
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	storage   service.FileStorage
	qrCode    service.QRCodeService
	sheets    service.ProductSheetParser
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Storage   service.FileStorage
	QRCode    service.QRCodeService
	Sheets    service.ProductSheetParser
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		storage:   params.Storage,
		qrCode:    params.QRCode,
		sheets:    params.Sheets,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// productFields is the validated subset shared by the form and the spreadsheet import.
type productFields struct {
	name        string
	price       decimal.Decimal
	description string
	category    string
	stock       int
}

func parseProductFields(name, price, description, category, stock string) (*productFields, error) {
	fields := &productFields{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		category:    strings.TrimSpace(category),
		stock:       entity.DefaultStockQuantity,
	}

	price = strings.TrimSpace(price)
	if fields.name == "" || price == "" || fields.description == "" || fields.category == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	parsedPrice, err := decimal.NewFromString(price)
	if err != nil || !parsedPrice.IsPositive() {
		return nil, domainerrors.ErrInvalidPrice
	}
	fields.price = parsedPrice.Round(2)

	if stock = strings.TrimSpace(stock); stock != "" {
		parsedStock, err := strconv.Atoi(stock)
		if err != nil || parsedStock < 0 {
			return nil, domainerrors.ErrInvalidStock
		}
		fields.stock = parsedStock
	}

	return fields, nil
}

func (f *productFields) toProduct(ownerID uuid.UUID) *entity.Product {
	return &entity.Product{
		UserID:        ownerID,
		Name:          f.name,
		Price:         f.price,
		Description:   f.description,
		Category:      f.category,
		StockQuantity: f.stock,
		Active:        true,
	}
}

// AddProduct lists a new product owned by ownerID.
func (srv *catalogService) AddProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.AddProductInput) (*entity.Product, error) {
	fields, err := parseProductFields(input.Name, input.Price, input.Description, input.Category, input.StockQuantity)
	if err != nil {
		return nil, err
	}

	product := fields.toProduct(ownerID)
	product.Subcategory = strings.TrimSpace(input.Subcategory)
	product.Featured = input.Featured

	if input.Image.Present() {
		key, err := srv.storage.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store product image")
		}
		product.Image = key
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ProductRepo().Create(ctx, product), "failed to create product")
	})
	if err != nil {
		if product.Image != "" {
			if delErr := srv.storage.Delete(ctx, product.Image); delErr != nil {
				srv.log(ctx).Warn("Failed to delete orphaned image", slog.String("key", product.Image), slog.Any("error", delErr))
			}
		}
		srv.log(ctx).Error("Failed to add product", slog.Any("owner_id", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product added", slog.Any("product_id", product.ID), slog.Any("owner_id", ownerID))

	return product, nil
}

// ListProducts returns active products matching the filter plus every category label in use.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductListOutput, error) {
	output := &usecase.ProductListOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		var err error
		if output.Products, err = productRepo.List(ctx, filter.Normalized()); err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		if output.Categories, err = productRepo.DistinctCategories(ctx); err != nil {
			return errors.Wrap(err, "failed to list product categories")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = findProduct(ctx, repoFactory.ProductRepo(), productID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Home returns the featured products and the newest posts.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	output := &usecase.HomeOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if output.FeaturedProducts, err = repoFactory.ProductRepo().ListFeatured(ctx, homeFeaturedLimit); err != nil {
			return errors.Wrap(err, "failed to list featured products")
		}
		if output.LatestPosts, err = repoFactory.PostRepo().ListLatest(ctx, homePostsLimit); err != nil {
			return errors.Wrap(err, "failed to list latest posts")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ImportProducts creates one product per valid spreadsheet row. Invalid rows
// are skipped and reported; valid rows are created together or not at all.
func (srv *catalogService) ImportProducts(ctx context.Context, ownerID uuid.UUID, workbook io.Reader) (*usecase.ImportOutput, error) {
	rows, err := srv.sheets.Parse(workbook)
	if err != nil {
		srv.log(ctx).Warn("Failed to parse product spreadsheet", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidSpreadsheet
	}

	output := &usecase.ImportOutput{}
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		fields, err := parseProductFields(row.Name, row.Price, row.Description, row.Category, row.Stock)
		if err != nil {
			output.Skipped = append(output.Skipped, usecase.ImportSkip{
				Line:   row.Line,
				Reason: domainerrors.MessageOf(err),
			})

			continue
		}
		products = append(products, fields.toProduct(ownerID))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		for _, product := range products {
			if err := productRepo.Create(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to import product %q", product.Name)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to import products", slog.Any("owner_id", ownerID), slog.Any("error", err))

		return nil, err
	}

	output.Imported = len(products)
	srv.log(ctx).Info("Products imported",
		slog.Any("owner_id", ownerID), slog.Int("imported", output.Imported), slog.Int("skipped", len(output.Skipped)))

	return output, nil
}

// ProductQR renders a PNG QR code pointing at the product's public page.
func (srv *catalogService) ProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (srv *catalogService) ListProductCategories(ctx context.Context) ([]*entity.Category, error) {
	return listCategories(ctx, srv.txManager, entity.CategoryTypeProduct)
}

// AddCategory creates reference data. Only the admin CLI calls it.
func (srv *catalogService) AddCategory(ctx context.Context, category *entity.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Category name is required.")
	}
	if category.Type != entity.CategoryTypePost && category.Type != entity.CategoryTypeProduct {
		return domainerrors.ErrValidationFailed.WithMessage("Category type must be post or product.")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.CategoryRepo().Create(ctx, category)
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return domainerrors.ErrCategoryNotFound.WithDetails("parent category does not exist")
		}

		return errors.Wrap(err, "failed to create category")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category added", slog.String("name", category.Name), slog.String("type", string(category.Type)))

	return nil
}

func listCategories(ctx context.Context, txManager repository.TransactionManager, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		categories, err = repoFactory.CategoryRepo().ListByType(ctx, categoryType)

		return errors.Wrap(err, "failed to list categories")
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}
