package config

import "fmt"

const defaultMetricsPort = 2112

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Host: "0.0.0.0",
		Port: defaultMetricsPort,
	}
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("metrics server port must be between 0 and 65535, got %d", cfg.Port)
	}

	return nil
}

func (cfg *MetricsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
