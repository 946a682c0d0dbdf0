package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	tokens     service.SessionTokenGenerator
	sessionTTL time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Tokens    service.SessionTokenGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	sessionTTL := 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	return &sessionService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		sessionTTL: sessionTTL,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and opens a server-side session. Unknown
// emails and wrong passwords fail with the same error.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	var output *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		raw, hash, err := srv.tokens.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate session token")
		}

		session := &entity.Session{
			UserID:       user.ID,
			TokenHash:    hash,
			ExpiresAt:    srv.now().Add(srv.sessionTTL),
			Username:     user.Username,
			IsConsultant: user.IsConsultant,
		}
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		output = &usecase.LoginOutput{Token: raw, Session: session, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Authenticate resolves a cookie token to its session and slides the expiry forward.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	var session *entity.Session
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		var err error
		session, err = sessionRepo.FindByHash(ctx, srv.tokens.Hash(token))
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return domainerrors.ErrSessionInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		now := srv.now()
		if session.Expired(now) {
			return domainerrors.ErrSessionInvalid
		}

		session.ExpiresAt = now.Add(srv.sessionTTL)

		return errors.Wrap(sessionRepo.Extend(ctx, session.ID, session.ExpiresAt), "failed to extend session")
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (srv *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.SessionRepo().DeleteByHash(ctx, srv.tokens.Hash(token))
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to logout", slog.Any("error", err))

		return err
	}

	return nil
}

// CleanupExpiredSessions removes every session that has already expired.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.SessionRepo().DeleteExpired(ctx, srv.now())

		return errors.Wrap(err, "failed to delete expired sessions")
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", deleted))

	return deleted, nil
}
