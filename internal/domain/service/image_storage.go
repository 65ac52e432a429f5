package service

import "context"

// ImageStorage stores uploaded images in an object store.
type ImageStorage interface {
	// Upload decodes a base64 data URL and stores it under folder/key.<ext>.
	// It returns the public URL of the stored object.
	Upload(ctx context.Context, dataURL, key, folder string) (string, error)

	// Delete removes the object behind a URL previously returned by Upload.
	Delete(ctx context.Context, url string) error
}
