package auth

import (
	"strings"
	"testing"

	"agrifarma/config"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, MinPasswordLength: 6}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "12345", true},
		{"minimum length", "123456", false},
		{"multibyte counted as runes", "ääääää", false},
		{"too long for bcrypt", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBcryptHasher_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.Error(t, hasher.ValidatePasswordStrength("12345"))
	assert.NoError(t, hasher.ValidatePasswordStrength("123456"))
}
