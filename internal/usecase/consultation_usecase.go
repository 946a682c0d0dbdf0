package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// BecomeConsultantInput is the consultant application form.
type BecomeConsultantInput struct {
	Category   string
	Experience string
	Expertise  string
	Summary    string
}

// BookConsultationInput is the booking form. ScheduledDate is optional and
// uses entity.ScheduleLayout.
type BookConsultationInput struct {
	Category      string
	Description   string
	ScheduledDate string
}

// ConsultationUsecase covers the consultant application and booking workflow.
type ConsultationUsecase interface {
	ListConsultants(ctx context.Context) ([]*entity.User, error)
	BecomeConsultant(ctx context.Context, userID uuid.UUID, input *BecomeConsultantInput) error

	// GetBookableConsultant returns the consultant only if they are approved.
	GetBookableConsultant(ctx context.Context, consultantID uuid.UUID) (*entity.User, error)

	BookConsultation(ctx context.Context, clientID, consultantID uuid.UUID, input *BookConsultationInput) (*entity.Consultation, error)

	// ApproveConsultant is the administrator's side of the application.
	ApproveConsultant(ctx context.Context, email string) (*entity.User, error)
}
