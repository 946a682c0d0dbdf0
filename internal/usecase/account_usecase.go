package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	Mobile         string
	Location       string
	Profession     string
	Expertise      string
	ProfilePicture *FileUpload
}

// --- Output DTOs ---

// DashboardOutput is everything the member dashboard shows.
type DashboardOutput struct {
	User     *entity.User
	Products []*entity.Product
	Posts    []*entity.Post
	Orders   []*entity.Order
}

// AccountUsecase covers registration and the member's own overview.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)

	// DeleteAccount removes the user and everything they own.
	DeleteAccount(ctx context.Context, email string) error
}
