package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db       DbConfig       `mapstructure:"db"`
	Taostats TaostatsConfig `mapstructure:"taostats"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Poller   PollerConfig   `mapstructure:"poller"`
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Taostats.Validate(); err != nil {
		return err
	}

	if err := cfg.Sync.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Values from the file can be overridden by environment variables where
// nested keys are joined with an underscore, e.g. DB_ADDRESS or SYNC_REQUEST_INTERVAL.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		Taostats: *DefaultTaostatsConfig(),
		Sync:     *DefaultSyncConfig(),
		Poller:   *DefaultPollerConfig(),
		Server:   *DefaultServerConfig(),
		Metrics:  *DefaultMetricsConfig(),
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
