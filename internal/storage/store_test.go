package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "cartItems", []byte(`[{"id":"burger1"}]`))
	require.NoError(t, err)

	value, err := store.Get(ctx, "cartItems")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"burger1"}]`, string(value))
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "user"))

	_, err := store.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "user"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'x'

	stored, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(stored))

	stored[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
