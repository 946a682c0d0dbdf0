package storage

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my tomato photo.png", "my_tomato_photo.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\farmer\crop.jpeg`, "crop.jpeg"},
		{".hidden", "hidden"},
		{"ñandú.gif", "and.gif"},
		{"", "upload"},
		{"///", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewWithBucket(bucket)

	key, err := store.Save(ctx, "my crop.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}_my_crop\.png$`), key)

	r, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Open(ctx, key)
	assert.True(t, errors.Is(err, service.ErrFileNotFound))
}

func TestBlobStorage_KeysDoNotCollide(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewWithBucket(bucket)

	a, err := store.Save(ctx, "same.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, "same.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
