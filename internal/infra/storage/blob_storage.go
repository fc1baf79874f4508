// Package storage persists uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"zembil/config"
	"zembil/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the configured URL scheme.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the dependencies of the blob storage.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params Params) (service.FileStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing upload bucket")

			return bucket.Close()
		},
	})

	return newBlobStorage(bucket, params.Config.Storage.PublicPrefix), nil
}

func newBlobStorage(bucket *blob.Bucket, publicPrefix string) *blobStorage {
	return &blobStorage{
		bucket:       bucket,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

// Save streams content into the bucket and returns the object's public path.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %q", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write %q", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %q", key)
	}

	return s.publicPrefix + "/" + key, nil
}

// Delete removes the object. A missing object is ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %q", key)
	}

	return nil
}
