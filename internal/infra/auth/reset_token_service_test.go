package auth

import (
	"testing"
	"time"

	"agrifarma/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenService_IssueAndVerify(t *testing.T) {
	svc := newResetTokenService("reset-secret", time.Hour, time.Now)

	token, err := svc.Issue("alice@example.com", "$2a$hash")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, svc.Fingerprint("$2a$hash"), claims.Fingerprint)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestResetTokenService_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	issuer := newResetTokenService("reset-secret", time.Hour, func() time.Time { return issuedAt })
	verifier := newResetTokenService("reset-secret", time.Hour, time.Now)

	token, err := issuer.Issue("alice@example.com", "hash")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestResetTokenService_WrongSecret(t *testing.T) {
	issuer := newResetTokenService("reset-secret", time.Hour, time.Now)
	verifier := newResetTokenService("other-secret", time.Hour, time.Now)

	token, err := issuer.Issue("alice@example.com", "hash")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestResetTokenService_RejectsOtherPurpose(t *testing.T) {
	svc := newResetTokenService("reset-secret", time.Hour, time.Now)

	claims := resetClaims{
		Purpose: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("reset-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestResetTokenService_Tampered(t *testing.T) {
	svc := newResetTokenService("reset-secret", time.Hour, time.Now)

	token, err := svc.Issue("alice@example.com", "hash")
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.Error(t, err)
	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestResetTokenService_FingerprintTracksPassword(t *testing.T) {
	svc := newResetTokenService("reset-secret", time.Hour, time.Now)

	assert.Equal(t, svc.Fingerprint("hash-a"), svc.Fingerprint("hash-a"))
	assert.NotEqual(t, svc.Fingerprint("hash-a"), svc.Fingerprint("hash-b"))
}

func TestNewResetTokenService_RequiresSecret(t *testing.T) {
	_, err := NewResetTokenService(&config.Config{})
	assert.Error(t, err)

	svc, err := NewResetTokenService(&config.Config{SecretKey: config.SecretKeyConfig{PasswordReset: "x"}})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
