package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"agrifarma/config"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"
)

const sessionTokenBytes = 32

type sessionTokenGenerator struct {
	pepper []byte
}

// NewSessionTokenGenerator peppers token hashes with the session secret.
func NewSessionTokenGenerator(cfg *config.Config) (service.SessionTokenGenerator, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionTokenGenerator{pepper: []byte(cfg.SecretKey.Session)}, nil
}

func (g *sessionTokenGenerator) Generate() (raw string, hash string, err error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)

	return raw, g.Hash(raw), nil
}

func (g *sessionTokenGenerator) Hash(raw string) string {
	sum := sha256.Sum256(append(append([]byte{}, g.pepper...), raw...))

	return hex.EncodeToString(sum[:])
}
