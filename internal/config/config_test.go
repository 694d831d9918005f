package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Taostats: *DefaultTaostatsConfig(),
		Sync:     *DefaultSyncConfig(),
		Poller:   *DefaultPollerConfig(),
		Server:   *DefaultServerConfig(),
		Metrics:  *DefaultMetricsConfig(),
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
	})
	t.Run("missing db address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Address = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing db address")
	})
	t.Run("unsupported db scheme", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Address = "postgres://localhost:5432"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported db address scheme")
	})
	t.Run("invalid taostats url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Taostats.URL = "not a url"
		require.Error(t, cfg.Validate())
	})
	t.Run("static dir must exist", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.StaticDir = filepath.Join(t.TempDir(), "missing")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid static dir")
	})
}

func TestSyncConfig_Validate(t *testing.T) {
	t.Run("defaults cover the whole subnet range", func(t *testing.T) {
		cfg := DefaultSyncConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, uint32(1), cfg.MinNetuid)
		assert.Equal(t, uint32(128), cfg.MaxNetuid)
		assert.Equal(t, 300*time.Millisecond, cfg.RequestInterval)
	})
	t.Run("zero interval disables pacing", func(t *testing.T) {
		cfg := DefaultSyncConfig()
		cfg.RequestInterval = 0
		require.NoError(t, cfg.Validate())
	})
	t.Run("min netuid not set - should error", func(t *testing.T) {
		cfg := DefaultSyncConfig()
		cfg.MinNetuid = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min-netuid must be positive")
	})
	t.Run("inverted range - should error", func(t *testing.T) {
		cfg := DefaultSyncConfig()
		cfg.MinNetuid = 10
		cfg.MaxNetuid = 5
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max-netuid must not be less than min-netuid")
	})
	t.Run("negative interval - should error", func(t *testing.T) {
		cfg := DefaultSyncConfig()
		cfg.RequestInterval = -time.Second
		require.Error(t, cfg.Validate())
	})
}

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("price polling interval not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, defaultPricePollingInterval, cfg.PricePollingInterval)
	})
}

func TestNew(t *testing.T) {
	const content = `
db:
  username: root
  password: example
  address: "mongodb://localhost:27017"
  db-name: subnet-indexer
sync:
  request-interval: 1s
  max-netuid: 64
server:
  port: 8080
`
	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "subnet-indexer", cfg.Db.DbName)
	assert.Equal(t, time.Second, cfg.Sync.RequestInterval)
	assert.Equal(t, uint32(1), cfg.Sync.MinNetuid)
	assert.Equal(t, uint32(64), cfg.Sync.MaxNetuid)
	assert.Equal(t, 8080, cfg.Server.Port)
	// untouched sections keep their defaults
	assert.Equal(t, defaultTaostatsURL, cfg.Taostats.URL)
	assert.Equal(t, defaultPricePollingInterval, cfg.Poller.PricePollingInterval)

	_, err = New(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
