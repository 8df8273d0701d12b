package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asciistamp/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "App.jsx", "const a = 1;\n")

		content, info, err := fsutil.ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "const a = 1;\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, os.FileMode(0600), info.Mode.Perm())
	})

	t.Run("returns ErrNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.js"))

		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("returns ErrIsDirectory for directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())

		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadText(t *testing.T) {
	t.Parallel()

	t.Run("accepts utf-8", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "App.jsx", "// Đã thêm\nx = 1\n")

		text, info, err := fsutil.ReadText(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "// Đã thêm\nx = 1\n", text)
		assert.NotNil(t, info)
	})

	t.Run("rejects invalid utf-8", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "bin.js", "x = \xff\xfe\n")

		_, _, err := fsutil.ReadText(context.Background(), path)

		require.ErrorIs(t, err, fsutil.ErrNotUTF8)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("returns false for unmodified file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.js", "x = 1\n")
		ctx := context.Background()
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(ctx, info)

		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("returns true for content change", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.js", "x = 1\n")
		ctx := context.Background()
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("x = 2\n"), 0600))
		// Same size; force identical mod time so only the hash differs.
		require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))

		modified, err := fsutil.CheckModified(ctx, info)

		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("returns true for size change", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.js", "x = 1\n")
		ctx := context.Background()
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		later := info.ModTime.Add(time.Second)
		require.NoError(t, os.WriteFile(path, []byte("x = 100\n"), 0600))
		require.NoError(t, os.Chtimes(path, later, later))

		modified, err := fsutil.CheckModified(ctx, info)

		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("returns true for deleted file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "a.js", "x = 1\n")
		ctx := context.Background()
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(ctx, info)

		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("returns error for nil FileInfo", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(context.Background(), nil)

		require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})
}
