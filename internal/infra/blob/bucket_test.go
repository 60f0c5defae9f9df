package blob

import (
	"context"
	"strings"
	"testing"

	"washapp/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBucketStore(bucket)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "profiles/a.png", "image/png", strings.NewReader("png-bytes")))

	data, contentType, err := store.Download(ctx, "profiles/a.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "profiles/a.png"))

	_, _, err = store.Download(ctx, "profiles/a.png")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "profiles/a.png"), service.ErrBlobNotFound)
}
