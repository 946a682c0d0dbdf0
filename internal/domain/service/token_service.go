package service

import "time"

// ResetClaims is the verified content of a password reset token.
type ResetClaims struct {
	Email string
	// Fingerprint binds the token to the password hash current at issue time.
	Fingerprint string
	ExpiresAt   time.Time
}

// ResetTokenService issues and verifies signed, time-limited reset tokens.
type ResetTokenService interface {
	Issue(email, passwordHash string) (string, error)

	// Verify checks signature, purpose and expiry.
	Verify(token string) (*ResetClaims, error)

	// Fingerprint derives the value stored in the token from a password hash.
	Fingerprint(passwordHash string) string
}

// SessionTokenGenerator creates opaque session tokens and their storage hashes.
type SessionTokenGenerator interface {
	Generate() (raw string, hash string, err error)
	Hash(raw string) string
}
