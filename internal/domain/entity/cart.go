package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. Quantity is always at least 1;
// a line that would drop to zero is deleted instead.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AddedDate time.Time

	// Product is loaded alongside the line by ListByUser. It is nil when the
	// referenced product no longer exists.
	Product *Product
}

// Subtotal returns price times quantity, or zero when the product is missing.
func (c *CartItem) Subtotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}

	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// Cart is a read model of a user's cart lines and their total.
type Cart struct {
	Items []*CartItem
	Total decimal.Decimal
}

// CartTotal sums the subtotals of lines whose product is still present.
func CartTotal(items []*CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}
