// Package blob stores uploaded images in a gocloud bucket selected by URL.
package blob

import (
	"context"
	"io"
	"log/slog"

	"washapp/config"
	"washapp/internal/domain/service"
	"washapp/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.BlobStore, error) {
	url := defaultBucketURL
	if params.Config.Blob != nil && params.Config.Blob.URL != "" {
		url = params.Config.Blob.URL
	}

	bucket, err := blob.OpenBucket(context.Background(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob bucket %q", url)
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Blob bucket opened", slog.String("url", url))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to commit blob")
	}

	return nil
}

func (s *bucketStore) Download(ctx context.Context, key string) ([]byte, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrBlobNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open blob")
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read blob")
	}

	return data, r.ContentType(), nil
}

func (s *bucketStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrBlobNotFound
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
