// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"agrifarma/config"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than this.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: 6}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			hasher.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			hasher.minLength = cfg.Auth.MinPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithMessage("Password must be at most 72 bytes long.")
	}

	return nil
}
