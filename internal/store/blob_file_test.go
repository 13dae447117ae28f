package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileBlobs(t *testing.T) (*FileBlobStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "media")
	blobs, err := NewFileBlobStorage(dir, "http://localhost:8080/", logger.Nop())
	require.NoError(t, err)
	return blobs, dir
}

func TestFileBlobStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	blobs, dir := newFileBlobs(t)

	require.NoError(t, blobs.Put(ctx, "ana", "image/png", []byte("first")))
	require.NoError(t, blobs.Put(ctx, "ana", "image/png", []byte("second")))

	f, err := blobs.Open(ctx, "ana")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")

	require.NoError(t, blobs.Delete(ctx, "ana"))
	require.NoError(t, blobs.Delete(ctx, "ana"))

	_, err = blobs.Open(ctx, "ana")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobStorage_KeysStayInsideDir(t *testing.T) {
	ctx := context.Background()
	blobs, dir := newFileBlobs(t)

	require.NoError(t, blobs.Put(ctx, "../escape", "image/png", []byte("x")))

	_, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape"))
	assert.True(t, os.IsNotExist(err))

	f, err := blobs.Open(ctx, "../escape")
	require.NoError(t, err)
	f.Close()
}

func TestFileBlobStorage_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	blobs, _ := newFileBlobs(t)

	for _, key := range []string{"", ".", ".."} {
		assert.ErrorIs(t, blobs.Put(ctx, key, "", []byte("x")), ErrInvalidBlobKey, key)
		_, err := blobs.Open(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidBlobKey, key)
	}
}

func TestFileBlobStorage_URL(t *testing.T) {
	blobs, _ := newFileBlobs(t)

	assert.Equal(t, "http://localhost:8080/media/ana", blobs.URL("ana"))
	assert.Equal(t, "http://localhost:8080/media/ana%20maria", blobs.URL("ana maria"))
}
