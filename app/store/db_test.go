package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pkgz/testutils/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/enum"
)

func TestNew(t *testing.T) {
	t.Run("creates sqlite database successfully", func(t *testing.T) {
		store, err := New(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		defer store.Close()
		assert.NotNil(t, store.db)
		assert.Equal(t, enum.DBTypeSQLite, store.dbType)
	})

	t.Run("fails with invalid path", func(t *testing.T) {
		_, err := New("/nonexistent/dir/test.db")
		require.Error(t, err)
	})
}

func TestStore_SetGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("set and get value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "v1/aio-theme", []byte("true")))

		value, err := store.Get(ctx, "v1/aio-theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("true"), value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "v2/aio-theme", []byte("true")))
		require.NoError(t, store.Set(ctx, "v2/aio-theme", []byte("false")))

		value, err := store.Get(ctx, "v2/aio-theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("false"), value)
	})

	t.Run("get nonexistent key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "nonexistent")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("handles empty value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "empty", []byte{}))

		value, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("canceled context fails", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Get(cctx, "v1/aio-theme")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "todelete", []byte("true")))
	require.NoError(t, store.Delete(ctx, "todelete"))

	_, err := store.Get(ctx, "todelete")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, "todelete")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "alpha/aio-theme", []byte("true")))
	time.Sleep(10 * time.Millisecond) // ensure distinct updated_at
	require.NoError(t, store.Set(ctx, "beta/aio-theme", []byte("false")))

	t.Run("all keys newest first", func(t *testing.T) {
		keys, err := store.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.Equal(t, "beta/aio-theme", keys[0].Key)
		assert.Equal(t, "alpha/aio-theme", keys[1].Key)
		assert.Equal(t, 5, keys[0].Size)
		assert.Equal(t, 4, keys[1].Size)
	})

	t.Run("by prefix", func(t *testing.T) {
		keys, err := store.List(ctx, "alpha/")
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, "alpha/aio-theme", keys[0].Key)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		keys, err := store.List(ctx, "gamma/")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// PostgreSQL tests using testcontainers

func TestStore_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	t.Log("starting postgres container...")
	pgContainer := containers.NewPostgresTestContainerWithDB(ctx, t, "themer_test")
	defer pgContainer.Close(ctx)
	t.Log("postgres container started")

	store, err := New(pgContainer.ConnectionString())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, enum.DBTypePostgres, store.dbType)

	t.Run("set and get value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "pg/aio-theme", []byte("true")))

		value, err := store.Get(ctx, "pg/aio-theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("true"), value)
	})

	t.Run("upsert", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "pg/aio-theme", []byte("false")))

		value, err := store.Get(ctx, "pg/aio-theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("false"), value)
	})

	t.Run("list by prefix", func(t *testing.T) {
		keys, err := store.List(ctx, "pg/")
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, 5, keys[0].Size)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "pg/none")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
