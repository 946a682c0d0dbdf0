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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	ensureID(&categoryM.ID)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return translateWriteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) ListByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("type = ?", string(categoryType)).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ParentID:    data.ParentID,
		Type:        entity.CategoryType(data.Type),
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ParentID:    data.ParentID,
		Type:        string(data.Type),
	}
}
