package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultTaostatsURL           = "https://taostats.io"
	defaultTaostatsTimeout       = 15 * time.Second
	defaultTaostatsMaxRetryTimes = 3
	defaultTaostatsRetryInterval = time.Second
)

// TaostatsConfig describes the upstream data provider.
type TaostatsConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api-key"`
	// Timeout bounds a single upstream request.
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRetryTimes and RetryInterval only apply to price polling, subnet
	// fetches are always issued once per netuid.
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func DefaultTaostatsConfig() *TaostatsConfig {
	return &TaostatsConfig{
		URL:           defaultTaostatsURL,
		Timeout:       defaultTaostatsTimeout,
		MaxRetryTimes: defaultTaostatsMaxRetryTimes,
		RetryInterval: defaultTaostatsRetryInterval,
	}
}

func (cfg *TaostatsConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("taostats url must be set")
	}

	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return fmt.Errorf("invalid taostats url: %w", err)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("taostats timeout should be positive")
	}

	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("taostats max retry times should be positive")
	}

	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("taostats retry interval should be positive")
	}

	return nil
}
