package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// consultationService implements the ConsultationUsecase interface.
type consultationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ConsultationServiceParams holds dependencies for ConsultationService, injected by Fx.
type ConsultationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewConsultationService is the constructor for consultationService.
func NewConsultationService(params ConsultationServiceParams) usecase.ConsultationUsecase {
	return &consultationService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *consultationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *consultationService) ListConsultants(ctx context.Context) ([]*entity.User, error) {
	var consultants []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		consultants, err = repoFactory.UserRepo().ListApprovedConsultants(ctx)

		return errors.Wrap(err, "failed to list consultants")
	})
	if err != nil {
		return nil, err
	}

	return consultants, nil
}

// BecomeConsultant records an application. The user stays unbookable until an
// administrator approves it; re-applying resets a previous approval.
func (srv *consultationService) BecomeConsultant(ctx context.Context, userID uuid.UUID, input *usecase.BecomeConsultantInput) error {
	category := strings.TrimSpace(input.Category)
	expertise := strings.TrimSpace(input.Expertise)
	if category == "" || strings.TrimSpace(input.Experience) == "" || expertise == "" {
		return domainerrors.ErrValidationFailed
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		user.IsConsultant = true
		user.ConsultantCategory = category
		user.Expertise = expertise
		user.ConsultantApproved = false

		return errors.Wrap(userRepo.Update(ctx, user), "failed to save consultant application")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit consultant application", slog.Any("user_id", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Consultant application submitted", slog.Any("user_id", userID), slog.String("category", category))

	return nil
}

func (srv *consultationService) GetBookableConsultant(ctx context.Context, consultantID uuid.UUID) (*entity.User, error) {
	var consultant *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		consultant, err = findBookableConsultant(ctx, repoFactory.UserRepo(), consultantID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return consultant, nil
}

// BookConsultation creates a pending request with no fee. An empty schedule
// means none was given; a malformed one fails the booking.
func (srv *consultationService) BookConsultation(ctx context.Context, clientID, consultantID uuid.UUID, input *usecase.BookConsultationInput) (*entity.Consultation, error) {
	consultation := &entity.Consultation{
		ClientID:     clientID,
		ConsultantID: consultantID,
		Category:     strings.TrimSpace(input.Category),
		Description:  strings.TrimSpace(input.Description),
		Status:       entity.ConsultationStatusPending,
		Fee:          decimal.Zero,
	}
	if consultation.Category == "" || consultation.Description == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	if scheduled := strings.TrimSpace(input.ScheduledDate); scheduled != "" {
		scheduledAt, err := time.ParseInLocation(entity.ScheduleLayout, scheduled, time.Local)
		if err != nil {
			return nil, domainerrors.ErrInvalidSchedule
		}
		consultation.ScheduledDate = &scheduledAt
	}

	if clientID == consultantID {
		return nil, domainerrors.ErrValidationFailed.WithMessage("You cannot book a consultation with yourself.")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findBookableConsultant(ctx, repoFactory.UserRepo(), consultantID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.ConsultationRepo().Create(ctx, consultation), "failed to create consultation")
	})
	if err != nil {
		srv.log(ctx).Warn("Consultation booking failed",
			slog.Any("client_id", clientID), slog.Any("consultant_id", consultantID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Consultation booked", slog.Any("consultation_id", consultation.ID))

	return consultation, nil
}

// ApproveConsultant approves a pending application identified by email.
func (srv *consultationService) ApproveConsultant(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByEmail(ctx, strings.TrimSpace(email))
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsConsultant {
			return domainerrors.ErrValidationFailed.WithMessage("This user has not applied to become a consultant.")
		}

		user.ConsultantApproved = true

		return errors.Wrap(userRepo.Update(ctx, user), "failed to approve consultant")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Consultant approved", slog.Any("user_id", user.ID))

	return user, nil
}

func findBookableConsultant(ctx context.Context, userRepo repository.UserRepository, consultantID uuid.UUID) (*entity.User, error) {
	consultant, err := userRepo.FindByID(ctx, consultantID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find consultant")
	}
	if !consultant.IsApprovedConsultant() {
		return nil, domainerrors.ErrConsultantNotApproved
	}

	return consultant, nil
}
