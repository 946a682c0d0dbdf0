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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	ensureID(&orderM.ID)
	ensureTime(&orderM.CreatedDate)

	if err := repo.db.WithContext(ctx).Omit("User", "Product").Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedDate = orderM.CreatedDate

	return nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_date DESC, id DESC").
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest order")
	}

	return toOrderDomain(&orderM), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		CreatedDate:     data.CreatedDate,
	}
	if data.Product != nil {
		order.ProductName = data.Product.Name
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		TotalPrice:      data.TotalPrice,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		CreatedDate:     data.CreatedDate,
	}
}
