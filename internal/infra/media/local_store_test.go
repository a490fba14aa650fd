package media

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"dentalstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*localImageStore, string) {
	t.Helper()

	root := t.TempDir()
	store := NewLocalImageStore(&config.Config{
		Media: config.MediaConfig{Root: root},
	}, slog.New(slog.DiscardHandler))

	return store.(*localImageStore), root
}

func TestLocalImageStore_Remove(t *testing.T) {
	store, root := newTestStore(t)

	path := filepath.Join("products", "brush.jpg")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "products"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, path), []byte("jpg"), 0o644))

	err := store.Remove(context.Background(), "products/brush.jpg")
	assert.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, path))
}

func TestLocalImageStore_RemoveMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	// Missing media must not break record deletion.
	err := store.Remove(context.Background(), "products/gone.jpg")
	assert.NoError(t, err)
}

func TestLocalImageStore_RemoveEmptyPath(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Remove(context.Background(), "")
	assert.NoError(t, err)
}

func TestLocalImageStore_RejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Remove(context.Background(), "../outside.jpg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "escapes media root")
}
