package local

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGet(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	key, err := store.Save(ctx, "scan_abc", "image/jpeg", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Contains(t, key, "scan_abc")
	assert.Contains(t, key, ".jpg")

	r, mimeType, err := store.Get(ctx, key)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, r.Close()) })

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestSavePreservesExtensionByMIME(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save(context.Background(), "scan_x", "image/png", bytes.NewReader([]byte{1}))
	require.NoError(t, err)
	assert.Contains(t, key, ".png")
}

func TestDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.Save(ctx, "scan_x", "image/jpeg", bytes.NewReader([]byte{1}))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Get(ctx, key)
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, key))
}

func TestGetRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "traversal")
}
