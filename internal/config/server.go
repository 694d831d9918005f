package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultServerHost    = "0.0.0.0"
	defaultServerPort    = 4000
	defaultServerTimeout = 10 * time.Minute
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`
	// WriteTimeout has to outlive a full refresh run triggered over HTTP.
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	// StaticDir optionally points at a built dashboard that is served for
	// every path outside of /api and /health.
	StaticDir string `mapstructure:"static-dir"`
}

func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           defaultServerHost,
		Port:           defaultServerPort,
		AllowedOrigins: []string{"*"},
		WriteTimeout:   defaultServerTimeout,
	}
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be between 0 and 65535, got %d", cfg.Port)
	}

	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout should be positive")
	}

	if cfg.StaticDir != "" {
		info, err := os.Stat(cfg.StaticDir)
		if err != nil {
			return fmt.Errorf("invalid static dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("static dir %s is not a directory", cfg.StaticDir)
		}
	}

	return nil
}

func (cfg *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
