package store

import (
	"context"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user uniqueness")
	}

	return count > 0, nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	ensureID(&userM.ID)
	ensureTime(&userM.JoinDate)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.JoinDate = userM.JoinDate

	return nil
}

// Update saves every column of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).
		Select("*").Omit("id", "join_date").Updates(userM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user; products, posts, cart lines, orders, consultations
// and sessions are removed by ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) ListApprovedConsultants(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("is_consultant = ? AND consultant_approved = ?", true, true).
		Order("username ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list consultants")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		PasswordHash:       data.Password,
		Mobile:             data.Mobile,
		Location:           data.Location,
		Profession:         data.Profession,
		Expertise:          data.Expertise,
		ProfilePicture:     data.ProfilePicture,
		JoinDate:           data.JoinDate,
		IsConsultant:       data.IsConsultant,
		ConsultantCategory: data.ConsultantCategory,
		ConsultantApproved: data.ConsultantApproved,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		Password:           data.PasswordHash,
		Mobile:             data.Mobile,
		Location:           data.Location,
		Profession:         data.Profession,
		Expertise:          data.Expertise,
		ProfilePicture:     data.ProfilePicture,
		JoinDate:           data.JoinDate,
		IsConsultant:       data.IsConsultant,
		ConsultantCategory: data.ConsultantCategory,
		ConsultantApproved: data.ConsultantApproved,
	}
}
