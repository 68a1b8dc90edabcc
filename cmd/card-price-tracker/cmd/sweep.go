package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dimedrop/card-price-tracker/internal/cache"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired price cache entries",
	Long: "Removes price cache entries past their expiry window. The serve " +
		"command runs this on a schedule; sweep exists for one-off runs and cron.",
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	priceCache, err := cache.New(st, cache.WithTTLDays(cfg.Cache.TTLDays))
	if err != nil {
		return fmt.Errorf("configuring price cache: %w", err)
	}

	deleted, err := priceCache.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweeping cache: %w", err)
	}

	logger.Info("cache sweep complete", "deleted", deleted)
	return nil
}
