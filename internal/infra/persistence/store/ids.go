package store

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock source fails.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = newID()
	}
}

func ensureTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}
