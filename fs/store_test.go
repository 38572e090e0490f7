package fs_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("writes and reads files", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := fs.NewFileStore(t.TempDir())

		require.NoError(t, store.WriteFile(ctx, "nested/dir/file.json", []byte(`{"a":1}`)))

		data, err := store.ReadFile(ctx, "nested/dir/file.json")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("reports existence and size", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := fs.NewFileStore(t.TempDir())

		assert.False(t, store.Exists(ctx, "file.txt"))
		require.NoError(t, store.WriteFile(ctx, "file.txt", []byte("12345")))
		assert.True(t, store.Exists(ctx, "file.txt"))

		size, err := store.Size(ctx, "file.txt")
		require.NoError(t, err)
		assert.Equal(t, int64(5), size)
	})

	t.Run("returns ENOTFOUND for missing files", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := fs.NewFileStore(t.TempDir())

		_, err := store.ReadFile(ctx, "missing")
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))

		_, err = store.Size(ctx, "missing")
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})
}
