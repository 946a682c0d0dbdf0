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

	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	resetService service.ResetTokenService
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	ResetService service.ResetTokenService
	Logger       *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		resetService: params.ResetService,
		logger:       params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestPasswordReset issues a token bound to the account's current password
// hash. There is no mail delivery; the caller shows the link.
func (srv *passwordResetService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !entity.ValidEmail(email) {
		return "", domainerrors.ErrInvalidEmail
	}

	var token string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		token, err = srv.resetService.Issue(user.Email, user.PasswordHash)

		return errors.Wrap(err, "failed to issue reset token")
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset request rejected", slog.String("email", email), slog.Any("error", err))

		return "", err
	}

	srv.log(ctx).Info("Password reset token issued", slog.String("email", email))

	return token, nil
}

func (srv *passwordResetService) VerifyResetToken(_ context.Context, token string) (string, error) {
	claims, err := srv.resetService.Verify(token)
	if err != nil {
		return "", domainerrors.ErrResetTokenInvalid
	}

	return claims.Email, nil
}

// ResetPassword redeems a token. Once the hash changes the token's fingerprint
// no longer matches, so a token works at most once.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.resetService.Verify(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Invalid password reset token", slog.Any("error", err))

		return domainerrors.ErrResetTokenInvalid
	}

	if input.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Please enter a new password.")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, claims.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if srv.resetService.Fingerprint(user.PasswordHash) != claims.Fingerprint {
			return domainerrors.ErrResetTokenInvalid
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hashedPassword

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		// Every existing login ends with the old password.
		return errors.Wrap(repoFactory.SessionRepo().DeleteByUserID(ctx, user.ID), "failed to revoke sessions")
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", claims.Email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", claims.Email))

	return nil
}
