package cache_test

import (
	"context"
	"lodging/infras/otel/mocks"
	"lodging/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneration(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	assert.Equal(t, int64(0), cache.Generation(ctx, store, "room"))
	assert.Equal(t, "room:dashboard:v0", cache.Versioned(ctx, store, "room", "room:dashboard"))

	require.NoError(t, cache.Bump(ctx, store, "room"))
	require.NoError(t, cache.Bump(ctx, store, "room"))

	assert.Equal(t, int64(2), cache.Generation(ctx, store, "room"))
	assert.Equal(t, "room:dashboard:v2", cache.Versioned(ctx, store, "room", "room:dashboard"))
	assert.Equal(t, "guest:list:v0", cache.Versioned(ctx, store, "guest", "guest:list"))
}

func TestVersioned_StaleLoadIsNotRead(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	before := cache.Versioned(ctx, store, "room", "room:availability:2026-10-16")
	require.NoError(t, cache.Bump(ctx, store, "room"))
	require.NoError(t, store.Save(ctx, before, []int{1, 2}, 60))

	after := cache.Versioned(ctx, store, "room", "room:availability:2026-10-16")
	assert.NotEqual(t, before, after)

	var got []int
	require.ErrorIs(t, store.Get(ctx, after, &got), cache.Nil)
}
