package usecase

import (
	"context"

	"agrifarma/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the raw cookie token; only its hash is persisted.
type LoginOutput struct {
	Token   string
	Session *entity.Session
	User    *entity.User
}

// SessionUsecase manages server-side login sessions.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a cookie token and slides its expiry forward.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)

	// Logout ends the session; unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
