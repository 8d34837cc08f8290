package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()

	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "fintrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, "greeting", "hello"))

	value, ok, err := kv.Get(ctx, "greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", value)
}

func TestSQLiteKVOverwrite(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	require.NoError(t, kv.Put(ctx, "key", "first"))
	require.NoError(t, kv.Put(ctx, "key", "second"))

	value, ok, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestSQLiteKVPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "key", "value"))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestSQLiteKVCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "fintrack.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Close())
}
