package storage

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	domainerrors "leadhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) (*blobImageStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := NewBlobImageStorage(bucket, "https://cdn.example.com/", 0, logger)

	return storage.(*blobImageStorage), bucket
}

func TestBlobImageStorage_UploadAndDelete(t *testing.T) {
	storage, bucket := newTestStorage(t)
	ctx := context.Background()

	payload := []byte("fake-png-bytes")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	url, err := storage.Upload(ctx, dataURL, "product-1", "products")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/product-1.png", url)

	stored, err := bucket.ReadAll(ctx, "products/product-1.png")
	require.NoError(t, err)
	assert.Equal(t, payload, stored)

	attrs, err := bucket.Attributes(ctx, "products/product-1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, url))

	exists, err := bucket.Exists(ctx, "products/product-1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStorage_UploadRejectsInvalidPayload(t *testing.T) {
	storage, _ := newTestStorage(t)

	tests := []struct {
		name    string
		dataURL string
	}{
		{name: "plain text", dataURL: "hello"},
		{name: "not an image", dataURL: "data:text/plain;base64,aGVsbG8="},
		{name: "broken base64", dataURL: "data:image/jpeg;base64,@@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.Upload(context.Background(), tt.dataURL, "key", "products")
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_IMAGE", appErr.ErrorCode())
		})
	}
}

func TestObjectKeyFromURL(t *testing.T) {
	key, err := objectKeyFromURL("https://s3.us-east-1.amazonaws.com/bucket/products/p-1.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "products/p-1.jpeg", key)

	_, err = objectKeyFromURL("p-1.jpeg")
	assert.Error(t, err)
}
