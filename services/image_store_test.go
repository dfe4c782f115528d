package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/portfolio-site-backend/errs"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store := NewImageStore(t.TempDir())
	require.NoError(t, store.EnsureDir())
	return store
}

func TestStoreAcceptsPNG(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("fake png bytes")

	path, err := store.Store(bytes.NewReader(payload), "x.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"), "path %q should end in .png", path)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "project-"))

	written, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestStoreRejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store(bytes.NewReader([]byte("MZ")), "x.exe")
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedMediaTypeError(err))
}

func TestStoreExtensionCheckIsCaseSensitive(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store(bytes.NewReader([]byte("data")), "x.PNG")
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedMediaTypeError(err))
}

func TestStoreRejectsOversizedPayload(t *testing.T) {
	store := newTestStore(t)
	oversized := bytes.Repeat([]byte("a"), int(MaxUploadSize)+1)

	_, err := store.Store(bytes.NewReader(oversized), "big.jpg")
	require.Error(t, err)
	assert.True(t, errs.IsMaxBodySizeExceededError(err))
}

func TestStoreAcceptsPayloadAtLimit(t *testing.T) {
	store := newTestStore(t)
	atLimit := bytes.Repeat([]byte("a"), int(MaxUploadSize))

	path, err := store.Store(bytes.NewReader(atLimit), "full.gif")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".gif"))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Store(bytes.NewReader([]byte("one")), "same.jpeg")
	require.NoError(t, err)
	second, err := store.Store(bytes.NewReader([]byte("two")), "same.jpeg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStoreRemovesFileOnOversize(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)
	require.NoError(t, store.EnsureDir())

	oversized := bytes.Repeat([]byte("a"), int(MaxUploadSize)+1)
	_, err := store.Store(bytes.NewReader(oversized), "big.png")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload should leave nothing behind")
}
