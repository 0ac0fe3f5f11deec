package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("photo", "Ma Photo.JPG")
	assert.True(t, strings.HasPrefix(name, "photo-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// Two calls never collide.
	assert.NotEqual(t, name, ObjectName("photo", "Ma Photo.JPG"))
}

func TestLocalStorage(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base)
	require.NoError(t, err)

	t.Run("save writes under the public prefix", func(t *testing.T) {
		path, err := ls.Save(strings.NewReader("contenu"), "docs", "diplome.pdf")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, "public/docs-"))

		content, err := os.ReadFile(filepath.Join(base, path))
		require.NoError(t, err)
		assert.Equal(t, "contenu", string(content))
	})

	t.Run("delete removes the stored file", func(t *testing.T) {
		path, err := ls.Save(strings.NewReader("x"), "photo", "me.png")
		require.NoError(t, err)

		require.NoError(t, ls.DeleteFile(path))
		_, err = os.Stat(filepath.Join(base, path))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, ls.DeleteFile("public/photo-0-gone.png"))
	})
}
