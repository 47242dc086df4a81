package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()

	file, err := NewFile(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	lite, err := NewSQLite(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { lite.Close() })

	return map[string]KV{
		BackendMemory: NewMemory(),
		BackendFile:   file,
		BackendSQLite: lite,
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "markdown-notes")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set(ctx, "markdown-notes", []byte(`[{"id":"1"}]`)))
			got, err := kv.Get(ctx, "markdown-notes")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"}]`, string(got))

			require.NoError(t, kv.Set(ctx, "markdown-notes", []byte(`[]`)))
			got, err = kv.Get(ctx, "markdown-notes")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestNoneStoresNothing(t *testing.T) {
	ctx := context.Background()
	var kv KV = None{}

	require.NoError(t, kv.Set(ctx, "markdown-notes", []byte(`[]`)))
	_, err := kv.Get(ctx, "markdown-notes")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(context.Background(), "markdown-notes", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "markdown-notes.json", entries[0].Name())
}

func TestFileRejectsPathKeys(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, kv.Set(context.Background(), "../escape", []byte(`x`)))
	_, err = kv.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestMemoryClosed(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Close())
	assert.ErrorIs(t, kv.Set(context.Background(), "k", nil), ErrClosed)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, Options{Backend: BackendNone})
	require.NoError(t, err)
	assert.IsType(t, None{}, kv)

	kv, err = Open(ctx, Options{Backend: BackendFile, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &File{}, kv)

	_, err = Open(ctx, Options{Backend: "redis"})
	assert.Error(t, err)
}
