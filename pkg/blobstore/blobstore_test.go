package blobstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gerai/pkg/blobstore"

	"github.com/stretchr/testify/assert"
)

func TestDiskStoreUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.NewDiskStore(dir, "/uploads")
	assert.NoError(t, err)

	uri, err := store.Upload("photo.jpg", strings.NewReader("fake image bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "/uploads/"))
	assert.True(t, strings.HasSuffix(uri, "_photo.jpg"))

	// The blob landed on disk under the name in the URI.
	name := strings.TrimPrefix(uri, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStoreUpload_SameNameNeverCollides(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.NewDiskStore(dir, "/uploads")
	assert.NoError(t, err)

	first, err := store.Upload("photo.jpg", strings.NewReader("one"))
	assert.NoError(t, err)
	second, err := store.Upload("photo.jpg", strings.NewReader("two"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDiskStoreUpload_StripsDirectoryFromFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.NewDiskStore(dir, "/uploads")
	assert.NoError(t, err)

	uri, err := store.Upload("../../etc/passwd", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(uri, "_passwd"))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := blobstore.NewDiskStore(dir, "/uploads")
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
