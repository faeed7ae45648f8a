package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemBackend(t *testing.T) *LocalBackend {
	t.Helper()
	return NewBackend(afero.NewMemMapFs(), 0)
}

func TestLocalBackend_CRUD(t *testing.T) {
	ctx := context.Background()
	b := newMemBackend(t)

	exists, err := b.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, b.Create(ctx, "a.txt", []byte("hello")))

	exists, err = b.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := b.Read(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, b.Write(ctx, "a.txt", []byte("w")))
	data, err = b.Read(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "w", string(data), "write must replace, not merge")

	require.NoError(t, b.Delete(ctx, "a.txt"))
	_, err = b.Read(ctx, "a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBackend_CreateIsExclusive(t *testing.T) {
	ctx := context.Background()
	b := newMemBackend(t)

	require.NoError(t, b.Create(ctx, "a.txt", []byte("first")))
	assert.ErrorIs(t, b.Create(ctx, "a.txt", []byte("second")), ErrAlreadyExists)

	data, err := b.Read(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestLocalBackend_MissingFiles(t *testing.T) {
	ctx := context.Background()
	b := newMemBackend(t)

	_, err := b.Read(ctx, "nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.Delete(ctx, "nope.txt"), ErrNotFound)
}

func TestLocalBackend_ListSkipsDirectories(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	b := NewBackend(fsys, 0)

	names, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)

	require.NoError(t, fsys.Mkdir("/public", 0755))
	require.NoError(t, b.Write(ctx, "b.txt", []byte("b")))
	require.NoError(t, b.Write(ctx, "a.txt", []byte("a")))

	names, err = b.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)

	exists, err := b.Exists(ctx, "public")
	require.NoError(t, err)
	assert.False(t, exists, "directories are not files")

	_, err = b.Read(ctx, "public")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.Delete(ctx, "public"), ErrNotFound)
}

func TestLocalBackend_InvalidNames(t *testing.T) {
	ctx := context.Background()
	b := newMemBackend(t)

	for _, name := range []string{"", ".", "..", "../x", "dir/x", `dir\x`} {
		t.Run(name, func(t *testing.T) {
			_, err := b.Exists(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.ErrorIs(t, b.Write(ctx, name, []byte("x")), ErrInvalidName)
		})
	}
}

func TestLocalBackend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := newMemBackend(t)
	_, err := b.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalBackend_Usage(t *testing.T) {
	ctx := context.Background()
	b := newMemBackend(t)

	require.NoError(t, b.Ping(ctx))
	require.NoError(t, b.Write(ctx, "a.txt", []byte("hello")))
	require.NoError(t, b.Write(ctx, "b.txt", []byte("abc")))

	u, err := b.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, Usage{Files: 2, Bytes: 8}, u)
}

func TestNewLocalBackend_OnDisk(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "storage", "app")

	_, err := NewLocalBackend(root, Options{CreateRoot: false})
	assert.Error(t, err, "missing root without CreateRoot")

	b, err := NewLocalBackend(root, Options{CreateRoot: true, FileMode: 0600})
	require.NoError(t, err)
	assert.Equal(t, root, b.Root())

	require.NoError(t, b.Create(ctx, "a.txt", []byte("hello")))

	raw, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	info, err := os.Stat(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	names, err := b.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names)
}

func TestNewLocalBackend_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	_, err := NewLocalBackend(root, Options{CreateRoot: true})
	assert.Error(t, err)
}
