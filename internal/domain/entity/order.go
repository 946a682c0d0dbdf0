package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// Order records one purchased cart line. TotalPrice is frozen at order time.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	ShippingAddress string
	CreatedDate     time.Time

	// ProductName is populated by list queries for display.
	ProductName string
}
