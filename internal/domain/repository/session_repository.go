package repository

import (
	"context"
	"time"

	"agrifarma/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores server-side login sessions keyed by token hash.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindByHash returns ErrSessionNotFound or ErrSessionExpired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Extend moves the expiry of a session forward (sliding expiration).
	Extend(ctx context.Context, id uuid.UUID, expiresAt time.Time) error

	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID ends every session of a user, e.g. after a password reset.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes sessions expired before now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
