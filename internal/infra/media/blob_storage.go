// Package media stores uploaded product media in a blob bucket.
package media

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobStorage implements service.MediaStorage on top of a gocloud blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the media storage service.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	storage := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Upload writes one media object and returns its public URL. Only image and
// video content types are accepted; each lands under its own key prefix.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	prefix, ok := keyPrefix(contentType)
	if !ok {
		return "", domainerrors.ErrUnsupportedMediaType.WithDetails(contentType)
	}

	key := prefix + "/" + uuid.NewString() + mediaExtension(filename, contentType)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	if err := writer.Close(); err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	s.logger.Info("media object stored",
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket handle.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}

func keyPrefix(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "images", true
	case strings.HasPrefix(contentType, "video/"):
		return "videos", true
	}

	return "", false
}

// mediaExtension picks a file extension from the original name, falling back
// to one derived from the content type.
func mediaExtension(filename, contentType string) string {
	if ext := path.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
