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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) Find(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// ListByUser returns lines in the order they were added.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_date ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)
	ensureID(&itemM.ID)
	ensureTime(&itemM.AddedDate)

	if err := repo.db.WithContext(ctx).Omit("User", "Product").Create(itemM).Error; err != nil {
		return translateWriteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.AddedDate = itemM.AddedDate

	return nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *cartRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return int(count), nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AddedDate: data.AddedDate,
		Product:   toProductDomain(data.Product),
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AddedDate: data.AddedDate,
	}
}
