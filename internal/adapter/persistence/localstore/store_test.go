package localstore

import (
	"context"
	"testing"

	"laminasycortes/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStore_GetItemMissingKey(t *testing.T) {
	store := newTestStore(t)

	var dest []string
	found, err := store.GetItem(context.Background(), "nope", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", []string{"a", "b"}))

	var dest []string
	found, err := store.GetItem(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, dest)
}

func TestStore_SetItemReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", []int{1, 2, 3}))
	require.NoError(t, store.SetItem(ctx, "k", []int{9}))

	var dest []int
	found, err := store.GetItem(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{9}, dest)
}

func TestStore_RemoveItem(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", "v"))
	require.NoError(t, store.RemoveItem(ctx, "k"))

	has, err := store.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "a", 1))
	require.NoError(t, store.SetItem(ctx, "b", 2))
	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		has, err := store.Has(ctx, key)
		require.NoError(t, err)
		assert.False(t, has, key)
	}
}
