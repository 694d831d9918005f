package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taodash/subnet-indexer/pkg"
)

const (
	defaultConfigFileName = "config.yml"
	configPathEnv         = "SUBNET_INDEXER_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:          "subnet-indexer",
		Short:        "Mirrors Bittensor subnet metadata from taostats into MongoDB",
		SilenceUsage: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(RefreshCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
