package service

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned when no object is stored under the key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps uploaded images. Keys are slash-separated paths such as "profiles/<id>.png".
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	Download(ctx context.Context, key string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, key string) error
}
