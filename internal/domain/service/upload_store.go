package service

import "context"

// UploadStore stages uploaded documents until they are processed.
type UploadStore interface {
	// Put stores data and returns the key it was stored under.
	Put(ctx context.Context, filename string, data []byte) (key string, err error)

	// Read returns the staged bytes for key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Release deletes the staged upload. Releasing a missing key is not an error.
	Release(ctx context.Context, key string) error
}
