package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemModel mirrors the 'cart_items' table. One row per (user, product).
type CartItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;check:chk_cart_items_quantity_positive,quantity >= 1"`
	AddedDate time.Time     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	User            *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Product         *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity        int             `gorm:"not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(50);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	CreatedDate     time.Time       `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ConsultationModel mirrors the 'consultations' table. Both participants cascade.
type ConsultationModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	User            *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ConsultantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Consultant      *UserModel      `gorm:"foreignKey:ConsultantID;constraint:OnDelete:CASCADE"`
	Category        string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:text;not null"`
	Status          string          `gorm:"type:varchar(50);not null"`
	ScheduledDate   *time.Time
	ConsultationFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedDate     time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ConsultationModel) TableName() string {
	return "consultations"
}
