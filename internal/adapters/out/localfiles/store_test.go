package localfiles_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"procurement/internal/adapters/out/localfiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Exists(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "invoices"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "invoices", "inv-001.pdf"), []byte("pdf"), 0o644))

	store := localfiles.NewStore(root)
	ctx := context.Background()

	t.Run("existing file is found", func(t *testing.T) {
		exists, err := store.Exists(ctx, "invoices/inv-001.pdf")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		exists, err := store.Exists(ctx, "invoices/inv-999.pdf")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("directory does not count as an attachment", func(t *testing.T) {
		exists, err := store.Exists(ctx, "invoices")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("key escaping the root is rejected", func(t *testing.T) {
		_, err := store.Exists(ctx, "../outside.pdf")
		assert.Error(t, err)
	})
}
