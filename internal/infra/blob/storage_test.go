package blob

import (
	"context"
	"testing"

	"travelfit/config"
	"travelfit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewBucketStorage(memblob.OpenBucket(nil), "https://cdn.example.com/")
	defer storage.Close()

	url, err := storage.Put(ctx, "qrcodes/pass_1_qr.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/qrcodes/pass_1_qr.png", url)

	data, err := storage.Get(ctx, "qrcodes/pass_1_qr.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, storage.Delete(ctx, "qrcodes/pass_1_qr.png"))

	_, err = storage.Get(ctx, "qrcodes/pass_1_qr.png")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestBucketStorage_DeleteMissingIsNoop(t *testing.T) {
	storage := NewBucketStorage(memblob.OpenBucket(nil), "")
	defer storage.Close()

	assert.NoError(t, storage.Delete(context.Background(), "missing"))
}

func TestBucketStorage_URLWithoutBase(t *testing.T) {
	storage := NewBucketStorage(memblob.OpenBucket(nil), "")
	defer storage.Close()

	url, err := storage.Put(context.Background(), "/gym-photos/a.jpg", []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "gym-photos/a.jpg", url)
}

func TestPublicBase(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.BlobConfig
		expected string
	}{
		{"explicit base", config.BlobConfig{BucketURL: "azblob://travelfit", PublicBaseURL: "https://cdn.example.com"}, "https://cdn.example.com"},
		{"bucket url", config.BlobConfig{BucketURL: "file:///var/lib/travelfit?metadata=skip"}, "file:///var/lib/travelfit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, publicBase(&tt.cfg))
		})
	}
}
