package config

import (
	"errors"
	"time"
)

const (
	DefaultMinNetuid       = 1
	DefaultMaxNetuid       = 128
	defaultRequestInterval = 300 * time.Millisecond
)

// SyncConfig drives a single refresh run over [MinNetuid, MaxNetuid].
type SyncConfig struct {
	MinNetuid uint32 `mapstructure:"min-netuid"`
	MaxNetuid uint32 `mapstructure:"max-netuid"`
	// RequestInterval is the minimum spacing between the starts of two
	// consecutive upstream requests. Zero disables pacing.
	RequestInterval time.Duration `mapstructure:"request-interval"`
	// RefreshPollingInterval schedules periodic refresh runs. Zero disables them.
	RefreshPollingInterval time.Duration `mapstructure:"refresh-polling-interval"`
}

func DefaultSyncConfig() *SyncConfig {
	return &SyncConfig{
		MinNetuid:       DefaultMinNetuid,
		MaxNetuid:       DefaultMaxNetuid,
		RequestInterval: defaultRequestInterval,
	}
}

func (cfg *SyncConfig) Validate() error {
	if cfg.MinNetuid == 0 {
		return errors.New("min-netuid must be positive")
	}

	if cfg.MaxNetuid < cfg.MinNetuid {
		return errors.New("max-netuid must not be less than min-netuid")
	}

	if cfg.RequestInterval < 0 {
		return errors.New("request-interval must not be negative")
	}

	if cfg.RefreshPollingInterval < 0 {
		return errors.New("refresh-polling-interval must not be negative")
	}

	return nil
}
