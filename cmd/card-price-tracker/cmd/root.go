// Package cmd implements the CLI commands for the card-price-tracker server.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dimedrop/card-price-tracker/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "card-price-tracker",
	Short: "Track basketball card prices on eBay",
	Long: "An API-first service that looks up basketball card prices on eBay, " +
		"caches them under a 90-day retention window, budgets API calls against " +
		"the daily quota, and fires price alerts on tracked cards.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is fine; config has its own env overrides.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configured YAML file. A missing file is not an
// error: defaults plus environment variables are enough to run locally.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
