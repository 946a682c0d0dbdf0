// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "agrifarma/internal/errors"

// Domain-specific persistence errors. Usecases translate them into AppErrors.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session has expired")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrStockConflict       = errors.New("stock changed concurrently")
)
