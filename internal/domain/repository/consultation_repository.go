package repository

import (
	"context"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Consultation, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entity.Consultation, error)
}
