package cache_test

import (
	"context"
	"errors"
	"lodging/infras/otel/mocks"
	"lodging/shared/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemember(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	calls := 0
	load := func(context.Context) (availability, error) {
		calls++

		return availability{Date: "2026-10-16", Available: []int{3}}, nil
	}

	first, err := cache.Remember(ctx, store, "room:availability:2026-10-16", 60, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	require.Eventually(t, func() bool {
		var cached availability

		return store.Get(ctx, "room:availability:2026-10-16", &cached) == nil
	}, time.Second, 10*time.Millisecond)

	second, err := cache.Remember(ctx, store, "room:availability:2026-10-16", 60, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestRemember_LoadError(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())
	loadErr := errors.New("database unavailable")

	_, err := cache.Remember(ctx, store, "guest:get:1", 60, func(context.Context) (availability, error) {
		return availability{}, loadErr
	})
	require.ErrorIs(t, err, loadErr)

	time.Sleep(20 * time.Millisecond)

	var cached availability
	assert.ErrorIs(t, store.Get(ctx, "guest:get:1", &cached), cache.Nil)
}
