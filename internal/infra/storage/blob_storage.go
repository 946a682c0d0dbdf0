// Package storage keeps user uploads in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"agrifarma/config"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const fallbackFilename = "upload"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Uploads.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %q", params.Config.Uploads.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing upload bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// Save stores r under "<32 hex>_<sanitized filename>".
func (s *blobStorage) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + SecureFilename(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write upload")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit upload")
	}

	return key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.Wrap(service.ErrFileNotFound, key)
		}

		return nil, "", errors.Wrap(err, "failed to open upload")
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete upload")
	}

	return nil
}

// SecureFilename reduces a client-supplied name to a safe base name.
func SecureFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")

	if name == "" {
		return fallbackFilename
	}

	return name
}
