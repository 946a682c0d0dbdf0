package auth

import (
	"testing"

	"agrifarma/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenGenerator_Generate(t *testing.T) {
	gen, err := NewSessionTokenGenerator(&config.Config{SecretKey: config.SecretKeyConfig{Session: "session-secret"}})
	require.NoError(t, err)

	raw1, hash1, err := gen.Generate()
	require.NoError(t, err)
	raw2, hash2, err := gen.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, raw1, raw2)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, gen.Hash(raw1))
	assert.Len(t, hash1, 64)
}

func TestSessionTokenGenerator_PepperChangesHash(t *testing.T) {
	a, err := NewSessionTokenGenerator(&config.Config{SecretKey: config.SecretKeyConfig{Session: "a"}})
	require.NoError(t, err)
	b, err := NewSessionTokenGenerator(&config.Config{SecretKey: config.SecretKeyConfig{Session: "b"}})
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash("token"), b.Hash("token"))
}

func TestNewSessionTokenGenerator_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokenGenerator(&config.Config{})
	assert.Error(t, err)
}
