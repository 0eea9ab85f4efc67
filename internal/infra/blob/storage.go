// Package blob implements the object store on top of gocloud.dev/blob.
// The bucket URL scheme selects the driver: azblob:// in production, file:// or mem:// locally.
package blob

import (
	"context"
	"log/slog"
	"strings"

	"travelfit/config"
	"travelfit/internal/domain/lifecycle"
	"travelfit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// bucketStorage implements service.BlobStorage over a gocloud bucket.
type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the blob storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Blob

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	storage := NewBucketStorage(bucket, publicBase(cfg))

	params.Logger.Info("Blob storage opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewBucketStorage wraps an already opened bucket. Object URLs are publicBaseURL + "/" + key.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.BlobStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// publicBase falls back to the bucket URL without its query string when no CDN/base URL is configured.
func publicBase(cfg *config.BlobConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}

	base, _, _ := strings.Cut(cfg.BucketURL, "?")

	return base
}

// Put stores data under key and returns the object's public URL.
func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	return s.objectURL(key), nil
}

// Get reads the object stored under key.
func (s *bucketStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}

	return data, nil
}

// Delete removes the object stored under key. A missing object is not an error.
func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *bucketStorage) objectURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
