package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login. Only the SHA-256 hash of the opaque cookie
// token is stored.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time

	// Filled in when the session is resolved for a request.
	Username     string
	IsConsultant bool
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
