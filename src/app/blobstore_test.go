package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFilename(t *testing.T) {
	t.Run("KeepsExtension", func(t *testing.T) {
		name := RandomFilename("holiday.png")
		assert.True(t, strings.HasSuffix(name, ".png"))
	})

	t.Run("DefaultsToJpg", func(t *testing.T) {
		name := RandomFilename("noextension")
		assert.True(t, strings.HasSuffix(name, ".jpg"))
	})

	t.Run("Unique", func(t *testing.T) {
		assert.NotEqual(t, RandomFilename("a.png"), RandomFilename("a.png"))
	})
}

func TestLocalDiskStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalDiskStore(dir, "/uploads/images")
	require.NoError(t, err)

	t.Run("SaveDerivesURL", func(t *testing.T) {
		url, err := store.Save("pic.png", strings.NewReader("binary"), 6)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/images/pic.png", url)

		data, err := os.ReadFile(filepath.Join(dir, "pic.png"))
		require.NoError(t, err)
		assert.Equal(t, "binary", string(data))
	})

	t.Run("OwnsLocalURLsOnly", func(t *testing.T) {
		assert.True(t, store.Owns("/uploads/images/pic.png"))
		assert.False(t, store.Owns("https://example.com/pic.png"))
	})

	t.Run("DeleteRemovesBlob", func(t *testing.T) {
		url, err := store.Save("togo.png", strings.NewReader("x"), 1)
		require.NoError(t, err)

		require.NoError(t, store.Delete(url))
		_, err = os.Stat(filepath.Join(dir, "togo.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("DeleteExternalURLIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete("https://example.com/pic.png"))
	})

	t.Run("DeleteMissingBlobIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete("/uploads/images/never-existed.png"))
	})
}
