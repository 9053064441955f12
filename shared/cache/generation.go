package cache

import (
	"context"
	"fmt"
)

const generationPrefix = "generation:"

func generationKey(scope string) string {
	return generationPrefix + scope
}

// Generation returns the current generation of scope, zero when none was recorded.
func Generation(ctx context.Context, store RedisCache, scope string) int64 {
	var generation int64

	if err := store.Get(ctx, generationKey(scope), &generation); err != nil {
		return 0
	}

	return generation
}

// Versioned suffixes key with the current generation of scope. After Bump,
// readers use a fresh key, so a load that started before a write can only
// refill an entry nobody reads again.
func Versioned(ctx context.Context, store RedisCache, scope, key string) string {
	return fmt.Sprintf("%s:v%d", key, Generation(ctx, store, scope))
}

// Bump starts a new generation of scope. Generation counters never expire.
func Bump(ctx context.Context, store RedisCache, scope string) error {
	if _, err := store.Increment(ctx, generationKey(scope), 0); err != nil {
		return fmt.Errorf("failed to bump cache generation %s: %w", scope, err)
	}

	return nil
}
