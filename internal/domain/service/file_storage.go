package service

import (
	"context"
	"io"

	"agrifarma/internal/errors"
)

// ErrFileNotFound is returned by FileStorage.Open for unknown keys.
var ErrFileNotFound = errors.New("upload not found")

// FileStorage stores user uploads under collision-free keys.
type FileStorage interface {
	// Save writes r under a key derived from filename and returns the key.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)

	// Open returns the stored object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes a stored object; missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
