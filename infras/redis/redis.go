package redis

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	"lodging/shared/cache"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout  = 5 * time.Second
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// Connect opens the primary redis client and verifies it answers PING.
func Connect(cfg *config.Config) (*goRedis.Client, error) {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to ping redis at %s: %w", client.Options().Addr, err)
	}

	log.Info().Str("addr", client.Options().Addr).Int("db", primary.DB).Msg("connected to redis")

	return client, nil
}

// NewCache returns the redis backed cache when enabled and reachable, and the
// in-process store otherwise. Every cached read has a database fallback, so a
// missing redis only costs latency.
func NewCache(cfg *config.Config, ot otel.Otel) cache.RedisCache {
	if !cfg.Cache.Redis.Enable {
		log.Info().Msg("redis disabled, using in-memory cache")

		return cache.NewMemoryCache(ot)
	}

	client, err := Connect(cfg)
	if err != nil {
		log.Error().Err(err).Msg("redis unavailable, using in-memory cache")

		return cache.NewMemoryCache(ot)
	}

	return cache.NewRedisCache(client, ot)
}
