package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/storage"
)

func exerciseKV(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, storage.TokenKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Set(ctx, storage.TokenKey, "first"))
	require.NoError(t, kv.Set(ctx, storage.TokenKey, "second"))
	got, err := kv.Get(ctx, storage.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	require.NoError(t, kv.Delete(ctx, storage.TokenKey))
	require.NoError(t, kv.Delete(ctx, storage.TokenKey))
	_, err = kv.Get(ctx, storage.TokenKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemory(t *testing.T) {
	exerciseKV(t, storage.NewMemory())
}

func TestSQLite(t *testing.T) {
	s, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseKV(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	s, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, storage.TokenKey, "tok"))
	require.NoError(t, s.Close())

	s, err = storage.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, storage.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}
