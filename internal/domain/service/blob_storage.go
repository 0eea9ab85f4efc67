package service

import (
	"context"

	"travelfit/internal/errors"
)

// ErrBlobNotFound is returned when a stored object does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage defines the interface for the object store holding redemption images and gym photos.
type BlobStorage interface {
	// Put stores data under key and returns the object's public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object stored under key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
