package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	var _ Cache = store

	require.NoError(t, store.Set(ctx, "stats", `{"total_meetings":1}`, time.Minute))
	val, ok, err := store.Get(ctx, "stats")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"total_meetings":1}`, val)

	require.NoError(t, store.Delete(ctx, "stats"))
	_, ok, err = store.Get(ctx, "stats")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", "v", -time.Second))
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
