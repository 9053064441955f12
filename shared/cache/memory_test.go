package cache_test

import (
	"context"
	"errors"
	"lodging/infras/otel/mocks"
	"lodging/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availability struct {
	Date      string `json:"date"`
	Available []int  `json:"available"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	t.Run("save and get struct", func(t *testing.T) {
		want := availability{Date: "2026-10-16", Available: []int{1, 2, 5}}
		require.NoError(t, store.Save(ctx, "room:availability:2026-10-16", want, 60))

		var got availability
		require.NoError(t, store.Get(ctx, "room:availability:2026-10-16", &got))
		assert.Equal(t, want, got)
	})

	t.Run("save and get string", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "token", "abc", 0))

		var got string
		require.NoError(t, store.Get(ctx, "token", &got))
		assert.Equal(t, "abc", got)
	})

	t.Run("miss wraps nil", func(t *testing.T) {
		var got availability
		err := store.Get(ctx, "missing", &got)
		assert.True(t, errors.Is(err, cache.Nil))
	})

	t.Run("clear by prefix", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "room:availability:a", "1", 0))
		require.NoError(t, store.Save(ctx, "room:availability:b", "2", 0))
		require.NoError(t, store.Save(ctx, "room:dashboard", "3", 0))

		require.NoError(t, store.Clear(ctx, "room:availability:*"))

		var got string
		assert.Error(t, store.Get(ctx, "room:availability:a", &got))
		assert.Error(t, store.Get(ctx, "room:availability:b", &got))
		assert.NoError(t, store.Get(ctx, "room:dashboard", &got))

		require.NoError(t, store.Delete(ctx, "room:dashboard"))
		assert.Error(t, store.Get(ctx, "room:dashboard", &got))
	})

	t.Run("increment counts within window", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			got, err := store.Increment(ctx, "limiter:10.0.0.1:desk", 60)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		var raw string
		require.NoError(t, store.Get(ctx, "limiter:10.0.0.1:desk", &raw))
		assert.Equal(t, "3", raw)
	})

	t.Run("clear with malformed pattern keeps keys", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "guest:get:1", "x", 0))
		require.NoError(t, store.Clear(ctx, "guest:[get"))

		var got string
		assert.NoError(t, store.Get(ctx, "guest:get:1", &got))
	})
}
