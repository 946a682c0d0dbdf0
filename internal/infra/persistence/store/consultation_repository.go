package store

import (
	"context"

	"agrifarma/internal/domain/entity"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository is the constructor for consultationRepository.
func NewConsultationRepository(db *gorm.DB) repository.ConsultationRepository {
	return &consultationRepository{db: db}
}

func (repo *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	consultationM := fromConsultationDomain(consultation)
	ensureID(&consultationM.ID)
	ensureTime(&consultationM.CreatedDate)

	if err := repo.db.WithContext(ctx).Omit("User", "Consultant").Create(consultationM).Error; err != nil {
		return translateWriteError(err, "failed to create consultation")
	}

	consultation.ID = consultationM.ID
	consultation.CreatedDate = consultationM.CreatedDate

	return nil
}

func (repo *consultationRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Consultation, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", clientID))
}

func (repo *consultationRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entity.Consultation, error) {
	return repo.find(repo.db.WithContext(ctx).Where("consultant_id = ?", consultantID))
}

func (repo *consultationRepository) find(query *gorm.DB) ([]*entity.Consultation, error) {
	var consultationModels []*model.ConsultationModel
	if err := query.Order("created_date DESC, id DESC").Find(&consultationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list consultations")
	}

	consultations := make([]*entity.Consultation, 0, len(consultationModels))
	for _, consultationM := range consultationModels {
		consultations = append(consultations, toConsultationDomain(consultationM))
	}

	return consultations, nil
}

func toConsultationDomain(data *model.ConsultationModel) *entity.Consultation {
	if data == nil {
		return nil
	}

	return &entity.Consultation{
		ID:            data.ID,
		ClientID:      data.UserID,
		ConsultantID:  data.ConsultantID,
		Category:      data.Category,
		Description:   data.Description,
		Status:        entity.ConsultationStatus(data.Status),
		ScheduledDate: data.ScheduledDate,
		Fee:           data.ConsultationFee,
		CreatedDate:   data.CreatedDate,
	}
}

func fromConsultationDomain(data *entity.Consultation) *model.ConsultationModel {
	if data == nil {
		return nil
	}

	return &model.ConsultationModel{
		ID:              data.ID,
		UserID:          data.ClientID,
		ConsultantID:    data.ConsultantID,
		Category:        data.Category,
		Description:     data.Description,
		Status:          string(data.Status),
		ScheduledDate:   data.ScheduledDate,
		ConsultationFee: data.Fee,
		CreatedDate:     data.CreatedDate,
	}
}
