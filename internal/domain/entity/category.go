package entity

import "github.com/google/uuid"

// CategoryType separates post categories from product categories.
type CategoryType string

const (
	CategoryTypePost    CategoryType = "post"
	CategoryTypeProduct CategoryType = "product"
)

// Category is read-mostly reference data created by administrators.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	ParentID    *uuid.UUID
	Type        CategoryType
}
