package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file overriding a few keys
		path := writeConfig(t, `
log-level: debug
first-player: computer
scoring: flat
computer-delay: 1s
storage: redis
redis:
  host: cache
  port: "6380"
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the file values and the remaining defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, FirstPlayerComputer, conf.FirstPlayer)
		assert.Equal(t, ScoringFlat, conf.Scoring)
		assert.Equal(t, time.Second, conf.ComputerDelay)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and one environment override
		t.Setenv("FIRST_PLAYER", "human")

		// When: a missing path is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults and the override are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, FirstPlayerHuman, conf.FirstPlayer)
		assert.Equal(t, ScoringDepth, conf.Scoring)
		assert.Equal(t, 400*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects unknown values", func(t *testing.T) {
		path := writeConfig(t, "scoring: random\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
