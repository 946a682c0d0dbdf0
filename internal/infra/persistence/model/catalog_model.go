package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	ParentID    *uuid.UUID     `gorm:"type:uuid"`
	Parent      *CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Type        string         `gorm:"type:varchar(50);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	User          *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description   string          `gorm:"type:text;not null"`
	Image         string          `gorm:"type:varchar(200)"`
	Category      string          `gorm:"type:varchar(50);not null;index"`
	Subcategory   string          `gorm:"type:varchar(50)"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid"`
	CategoryRef   *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	StockQuantity int             `gorm:"not null;check:chk_products_stock_non_negative,stock_quantity >= 0"`
	Featured      bool            `gorm:"not null;default:false"`
	Active        bool            `gorm:"not null;index"`
	CreatedDate   time.Time       `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	User        *UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Content     string         `gorm:"type:text;not null"`
	PostType    string         `gorm:"type:varchar(50);not null;index"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	ProductID   *uuid.UUID     `gorm:"type:uuid"`
	Product     *ProductModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Tags        string         `gorm:"type:varchar(200)"`
	CreatedDate time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
