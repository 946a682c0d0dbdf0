package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"agrifarma/config"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const resetTokenPurpose = "password-reset"

type resetClaims struct {
	Purpose     string `json:"purpose"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}

// resetTokenService signs password reset links with its own HS256 secret.
type resetTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewResetTokenService is the constructor for resetTokenService.
func NewResetTokenService(cfg *config.Config) (service.ResetTokenService, error) {
	if cfg.SecretKey.PasswordReset == "" {
		return nil, errors.New("password reset secret must be provided")
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.ResetTokenTTL > 0 {
		ttl = cfg.Auth.ResetTokenTTL
	}

	return newResetTokenService(cfg.SecretKey.PasswordReset, ttl, time.Now), nil
}

func newResetTokenService(secret string, ttl time.Duration, now func() time.Time) *resetTokenService {
	return &resetTokenService{secret: []byte(secret), ttl: ttl, now: now}
}

func (s *resetTokenService) Issue(email, passwordHash string) (string, error) {
	issuedAt := s.now()
	claims := resetClaims{
		Purpose:     resetTokenPurpose,
		Fingerprint: s.Fingerprint(passwordHash),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return signed, nil
}

func (s *resetTokenService) Verify(token string) (*service.ResetClaims, error) {
	claims := &resetClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid reset token")
	}

	if claims.Purpose != resetTokenPurpose || claims.Subject == "" {
		return nil, errors.New("reset token has wrong purpose")
	}

	return &service.ResetClaims{
		Email:       claims.Subject,
		Fingerprint: claims.Fingerprint,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Fingerprint is an HMAC of the password hash, so the token changes meaning once the password does.
func (s *resetTokenService) Fingerprint(passwordHash string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(passwordHash))

	return hex.EncodeToString(mac.Sum(nil))[:32]
}
