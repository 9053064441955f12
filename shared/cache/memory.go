package cache

import (
	"context"
	"fmt"
	"lodging/infras/otel"
	"path"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

type memoryCache struct {
	store *gocache.Cache
	otel  otel.Otel
	// counters guards the read-then-add in Increment.
	counters sync.Mutex
}

// NewMemoryCache returns a process local store used when redis is disabled.
func NewMemoryCache(ot otel.Otel) RedisCache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

func (cache *memoryCache) trace(ctx context.Context, operation, key string) otel.Scope {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory."+operation)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return scope
}

func memoryTTL(duration int) time.Duration {
	if duration <= 0 {
		return gocache.NoExpiration
	}

	return ttl(duration)
}

func (cache *memoryCache) Clear(ctx context.Context, pattern string) error {
	scope := cache.trace(ctx, "Clear", pattern)
	defer scope.End()

	for key := range cache.store.Items() {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			cache.store.Delete(key)
		}
	}

	return nil
}

func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	scope := cache.trace(ctx, "Delete", key)
	defer scope.End()

	cache.store.Delete(key)

	return nil
}

func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	scope := cache.trace(ctx, "Get", key)
	defer scope.End()

	raw, found := cache.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	switch stored := raw.(type) {
	case []byte:
		return decode(stored, value)
	case int64:
		return decode([]byte(fmt.Sprint(stored)), value)
	default:
		return fmt.Errorf("failed to get cache value: unexpected %T", raw)
	}
}

func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	scope := cache.trace(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := encode(value)
	if err != nil {
		return err
	}

	cache.store.Set(key, payload, memoryTTL(duration))

	return nil
}

func (cache *memoryCache) Increment(ctx context.Context, key string, duration int) (int64, error) {
	scope := cache.trace(ctx, "Increment", key)
	defer scope.End()

	cache.counters.Lock()
	defer cache.counters.Unlock()

	if err := cache.store.Add(key, int64(1), memoryTTL(duration)); err == nil {
		return 1, nil
	}

	count, err := cache.store.IncrementInt64(key, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return count, nil
}
