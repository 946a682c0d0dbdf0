// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dashboardOrdersLimit is how many recent orders the dashboard shows.
const dashboardOrdersLimit = 5

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	storage   service.FileStorage
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the form, stores the optional profile picture and creates the user.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !entity.ValidEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Mobile:       strings.TrimSpace(input.Mobile),
		Location:     strings.TrimSpace(input.Location),
		Profession:   strings.TrimSpace(input.Profession),
		Expertise:    strings.TrimSpace(input.Expertise),
	}

	if input.ProfilePicture.Present() {
		key, err := srv.storage.Save(ctx, input.ProfilePicture.Filename, input.ProfilePicture.ContentType, input.ProfilePicture.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store profile picture")
		}
		user.ProfilePicture = key
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return errors.Wrap(err, "failed to check existing user")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.discardUpload(ctx, user.ProfilePicture)
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return user, nil
}

// Dashboard gathers the user's own listings, posts and most recent orders.
func (srv *accountService) Dashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	output := &usecase.DashboardOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		output.User, err = repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if output.Products, err = repoFactory.ProductRepo().ListByOwner(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to list own products")
		}
		if output.Posts, err = repoFactory.PostRepo().ListByAuthor(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to list own posts")
		}
		if output.Orders, err = repoFactory.OrderRepo().ListByUser(ctx, userID, dashboardOrdersLimit); err != nil {
			return errors.Wrap(err, "failed to list recent orders")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// DeleteAccount removes the user. Owned rows go with it through the cascades.
func (srv *accountService) DeleteAccount(ctx context.Context, email string) error {
	var picture string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, strings.TrimSpace(email))
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		picture = user.ProfilePicture

		return errors.Wrap(userRepo.Delete(ctx, user.ID), "failed to delete user")
	})
	if err != nil {
		return err
	}

	srv.discardUpload(ctx, picture)
	srv.log(ctx).Info("Account deleted", slog.String("email", email))

	return nil
}

func (srv *accountService) discardUpload(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete upload", slog.String("key", key), slog.Any("error", err))
	}
}
