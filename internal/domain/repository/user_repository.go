package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether either identifier is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user. Duplicate username or email yields ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user; owned rows go with it through cascading foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListApprovedConsultants returns users that can be booked.
	ListApprovedConsultants(ctx context.Context) ([]*entity.User, error)
}
