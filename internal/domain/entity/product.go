package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultStockQuantity is used when a listing does not state its stock.
const DefaultStockQuantity = 1

// Product is a listing owned by a user.
type Product struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Price         decimal.Decimal
	Description   string
	Image         string // Blob key, empty when none.
	Category      string
	Subcategory   string
	CategoryID    *uuid.UUID
	StockQuantity int
	Featured      bool
	Active        bool
	CreatedDate   time.Time
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	Category string // exact match, empty for all
	Search   string // case-insensitive substring of name or description
}

// Normalized trims both fields.
func (f ProductFilter) Normalized() ProductFilter {
	return ProductFilter{
		Category: strings.TrimSpace(f.Category),
		Search:   strings.TrimSpace(f.Search),
	}
}
