package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember returns the value cached under key or calls load and caches its
// result in the background. Load errors are returned as is and never cached.
// A cache failure on either side only costs a reload.
func Remember[T any](ctx context.Context, store RedisCache, key string, duration int, load func(context.Context) (T, error)) (T, error) {
	var cached T

	if err := store.Get(ctx, key, &cached); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := store.Save(context.WithoutCancel(ctx), key, value, duration); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()

	return value, nil
}
