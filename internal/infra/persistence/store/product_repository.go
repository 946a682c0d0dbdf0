package store

import (
	"context"
	"strings"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	ensureID(&productM.ID)
	ensureTime(&productM.CreatedDate)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidStock
		}

		return translateWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedDate = productM.CreatedDate

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List filters active products. Search is a case-insensitive substring match
// on name or description; LOWER keeps it portable between dialects.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	filter = filter.Normalized()

	query := repo.db.WithContext(ctx).Where("active = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	return repo.find(query.Order("created_date DESC, id DESC"), "failed to list products")
}

func (repo *productRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_date DESC, id DESC"), "failed to list owner products")
}

func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("featured = ? AND active = ?", true, true).
		Order("created_date DESC, id DESC").
		Limit(limit), "failed to list featured products")
}

func (repo *productRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("active = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// DecrementStock issues a conditional update so concurrent checkouts cannot
// drive stock below zero.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

func (repo *productRepository) find(query *gorm.DB, details string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, details)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Price:         data.Price,
		Description:   data.Description,
		Image:         data.Image,
		Category:      data.Category,
		Subcategory:   data.Subcategory,
		CategoryID:    data.CategoryID,
		StockQuantity: data.StockQuantity,
		Featured:      data.Featured,
		Active:        data.Active,
		CreatedDate:   data.CreatedDate,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Price:         data.Price,
		Description:   data.Description,
		Image:         data.Image,
		Category:      data.Category,
		Subcategory:   data.Subcategory,
		CategoryID:    data.CategoryID,
		StockQuantity: data.StockQuantity,
		Featured:      data.Featured,
		Active:        data.Active,
		CreatedDate:   data.CreatedDate,
	}
}
