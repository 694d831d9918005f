package config

import (
	"time"
)

const defaultPricePollingInterval = 5 * time.Second

type PollerConfig struct {
	PricePollingInterval time.Duration `mapstructure:"price-polling-interval"`
}

func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		PricePollingInterval: defaultPricePollingInterval,
	}
}

func (cfg *PollerConfig) Validate() error {
	if cfg.PricePollingInterval <= 0 {
		cfg.PricePollingInterval = defaultPricePollingInterval
	}

	return nil
}
