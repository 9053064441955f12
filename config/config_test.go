package config_test

import (
	"lodging/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Run("empty settings", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Defaults()

		assert.Equal(t, config.DefaultCacheTTLSeconds, cfg.Cache.TTL)
		assert.Equal(t, config.DefaultTotalRooms, cfg.App.TotalRooms)
		assert.Equal(t, config.DefaultTimezone, cfg.App.Timezone)
	})

	t.Run("configured settings are kept", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Cache.TTL = 30
		cfg.App.TotalRooms = 20
		cfg.Defaults()

		assert.Equal(t, 30, cfg.Cache.TTL)
		assert.Equal(t, 20, cfg.App.TotalRooms)
	})
}
