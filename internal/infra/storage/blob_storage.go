// Package storage stores uploaded images in any bucket gocloud.dev can open.
package storage

import (
	"context"
	"encoding/base64"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"leadhub/config"
	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/service"
	"leadhub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const defaultUploadTimeout = 30 * time.Second

var dataURLPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Image storage initialized", slog.String("bucket", cfg.BucketURL))

	return NewBlobImageStorage(bucket, cfg.PublicBaseURL, cfg.UploadTimeout, params.Logger), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, uploadTimeout time.Duration, logger *slog.Logger) service.ImageStorage {
	if uploadTimeout <= 0 {
		uploadTimeout = defaultUploadTimeout
	}

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

// Upload decodes the data URL and writes it to folder/key.<subtype>.
func (s *blobImageStorage) Upload(ctx context.Context, dataURL, key, folder string) (string, error) {
	matches := dataURLPattern.FindStringSubmatch(strings.TrimSpace(dataURL))
	if matches == nil {
		return "", domainerrors.ErrInvalidImage.WrapMessage("not a base64 image data URL")
	}

	subtype, encoded := matches[1], matches[2]
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domainerrors.ErrInvalidImage.WrapMessage("invalid base64 payload")
	}

	objectKey := folder + "/" + key + "." + subtype

	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	if err := s.bucket.WriteAll(ctx, objectKey, data, &blob.WriterOptions{ContentType: "image/" + subtype}); err != nil {
		s.logger.Error("Failed to upload image", slog.String("key", objectKey), slog.Any("error", err))

		return "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	s.logger.DebugContext(ctx, "Image uploaded",
		slog.String("key", objectKey),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return s.publicBaseURL + "/" + objectKey, nil
}

// Delete removes the object addressed by the last two path segments of the URL.
func (s *blobImageStorage) Delete(ctx context.Context, url string) error {
	objectKey, err := objectKeyFromURL(url)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, objectKey); err != nil {
		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return nil
}

func objectKeyFromURL(url string) (string, error) {
	segments := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-1] == "" || segments[len(segments)-2] == "" {
		return "", domainerrors.ErrInvalidImage.WrapMessage("image URL has no folder/key suffix")
	}

	return segments[len(segments)-2] + "/" + segments[len(segments)-1], nil
}
