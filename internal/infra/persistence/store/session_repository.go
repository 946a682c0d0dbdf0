package store

import (
	"context"
	"time"

	"agrifarma/internal/domain/entity"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionRepository implements repository.SessionRepository.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)
	ensureID(&sessionM.ID)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return translateWriteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByHash loads the session together with its user's display fields.
func (repo *sessionRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	session := toSessionDomain(&sessionM)
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (repo *sessionRepository) Extend(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.SessionModel{}).
		Where("id = ?", id).
		Update("expires_at", expiresAt)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.SessionModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SessionModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	session := &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
	if data.User != nil {
		session.Username = data.User.Username
		session.IsConsultant = data.User.IsConsultant
	}

	return session
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
