// Package upload stages uploaded documents in a gocloud.dev bucket until OCR has run.
package upload

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"trustscore/config"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"
	"trustscore/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const keyPrefix = "uploads/"

// BlobStore is an UploadStore over a gocloud.dev bucket.
type BlobStore struct {
	bucket  *blob.Bucket
	maxSize int64
	logger  *slog.Logger
}

// Params defines the dependencies of the upload store
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.UploadStore, error) {
	store, err := Open(context.Background(), params.Config.Upload, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the bucket named by cfg.BucketURL (mem://, file:///dir, gs://bucket).
func Open(ctx context.Context, cfg *config.UploadConfig, logger *slog.Logger) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.ErrInternalError.Wrap(err, "open upload bucket")
	}

	return &BlobStore{
		bucket:  bucket,
		maxSize: cfg.MaxSizeBytes,
		logger:  logger,
	}, nil
}

// Put stores data under a fresh key that keeps the original file extension.
func (s *BlobStore) Put(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.ErrValidationFailed.WithDetails("uploaded file is empty")
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", errors.ErrValidationFailed.WithDetails(util.SizeLimitDetails(int64(len(data)), s.maxSize))
	}

	key := keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return "", errors.ErrInternalError.Wrap(err, "stage upload")
	}

	s.logger.Debug("Upload staged", slog.String("key", key), slog.Int("bytes", len(data)))

	return key, nil
}

// Read returns the staged bytes. A missing or unreadable upload is an extraction failure.
func (s *BlobStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.ErrExtractionFailed.WithDetails("upload not found: " + key)
		}

		return nil, errors.ErrExtractionFailed.Wrap(err, "read upload")
	}

	return data, nil
}

func (s *BlobStore) Release(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.ErrInternalError.Wrap(err, "release upload")
	}

	return nil
}

// Close closes the underlying bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
