package upload

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"trustscore/config"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T, maxSize int64) *BlobStore {
	t.Helper()

	store, err := Open(context.Background(), &config.UploadConfig{BucketURL: "mem://", MaxSizeBytes: maxSize},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_PutReadRelease(t *testing.T) {
	ctx := context.Background()
	store := openMem(t, 1024)

	key, err := store.Put(ctx, "Bill.JPG", []byte("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, keyPrefix))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	data, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	require.NoError(t, store.Release(ctx, key))

	_, err = store.Read(ctx, key)
	assert.True(t, errors.Is(err, domainerrors.ErrExtractionFailed))

	// releasing twice is harmless
	assert.NoError(t, store.Release(ctx, key))
}

func TestBlobStore_PutRejectsBadInput(t *testing.T) {
	store := openMem(t, 4)

	_, err := store.Put(context.Background(), "a.png", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = store.Put(context.Background(), "a.png", []byte("too large"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), &config.UploadConfig{BucketURL: "nope://bucket"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
