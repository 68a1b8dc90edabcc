package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dimedrop/card-price-tracker/internal/api/handlers"
	"github.com/dimedrop/card-price-tracker/internal/api/middleware"
	"github.com/dimedrop/card-price-tracker/internal/cache"
	"github.com/dimedrop/card-price-tracker/internal/config"
	"github.com/dimedrop/card-price-tracker/internal/ebay"
	"github.com/dimedrop/card-price-tracker/internal/engine"
	"github.com/dimedrop/card-price-tracker/internal/notify"
	"github.com/dimedrop/card-price-tracker/internal/portfolio"
	"github.com/dimedrop/card-price-tracker/internal/pricing"
	"github.com/dimedrop/card-price-tracker/internal/quota"
	"github.com/dimedrop/card-price-tracker/internal/sentiment"
	"github.com/dimedrop/card-price-tracker/internal/store"
	"github.com/dimedrop/card-price-tracker/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cmdLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})

	appLog := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File.Path,
		MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAgeDays: cfg.Logging.File.MaxAgeDays,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	st, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 60*time.Second)
	err = st.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	priceCache, err := cache.New(st, cache.WithTTLDays(cfg.Cache.TTLDays))
	if err != nil {
		return fmt.Errorf("configuring price cache: %w", err)
	}

	limiter := quota.NewDailyLimiter(st, "ebay",
		quota.WithLimit(cfg.Ebay.RateLimit.DailyLimit),
		quota.WithLogger(appLog),
	)

	prices, err := buildPricingService(cfg, priceCache, limiter, appLog, cmdLog)
	if err != nil {
		return err
	}

	holdings := portfolio.NewService(st, prices, appLog)
	analyzer := sentiment.NewAnalyzer()
	notifier := buildNotifier(cfg, appLog)

	eng := engine.New(st, prices, priceCache, notifier, appLog)
	sched, err := engine.NewScheduler(
		eng,
		cfg.Schedule.AlertCheckInterval,
		cfg.Schedule.SweepInterval,
		appLog,
	)
	if err != nil {
		return fmt.Errorf("configuring scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(appLog))
	e.Use(middleware.Recovery(appLog))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Card Price Tracker API", Version))
	handlers.RegisterPriceRoutes(api, handlers.NewPricesHandler(prices))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))
	handlers.RegisterPortfolioRoutes(api, handlers.NewPortfolioHandler(holdings))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(st))
	handlers.RegisterSentimentRoutes(api, handlers.NewSentimentHandler(analyzer))
	handlers.RegisterSweepRoutes(api, handlers.NewSweepHandler(priceCache))

	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cmdLog.Info("starting server", "addr", addr, "driver", cfg.Database.Driver)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cmdLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cmdLog.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	// Let in-flight scheduled jobs finish before cutting connections.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		cmdLog.Warn("scheduler jobs still running at shutdown deadline")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cmdLog.Info("server stopped")
	return nil
}

// openStore connects the configured backend: sqlite (default) or postgres.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.Database.DSN())
	default:
		return store.NewSQLiteStore(ctx, cfg.Database.Path)
	}
}

// buildPricingService wires the live eBay source when credentials are
// configured; without them every lookup serves synthetic data.
func buildPricingService(
	cfg *config.Config,
	priceCache *cache.PriceCache,
	limiter *quota.DailyLimiter,
	appLog *slog.Logger,
	cmdLog *log.Logger,
) (*pricing.Service, error) {
	svcOpts := []pricing.ServiceOption{pricing.WithLogger(appLog)}

	if cfg.Ebay.Configured() {
		tokens, err := ebay.NewOAuthTokenProvider(
			cfg.Ebay.AppID,
			cfg.Ebay.CertID,
			ebay.WithTokenURL(cfg.Ebay.TokenURL),
		)
		if err != nil {
			return nil, fmt.Errorf("configuring eBay auth: %w", err)
		}

		browse := ebay.NewBrowseClient(tokens,
			ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
			ebay.WithMarketplace(cfg.Ebay.Marketplace),
			ebay.WithRateLimiter(ebay.NewRateLimiter(
				cfg.Ebay.RateLimit.PerSecond,
				cfg.Ebay.RateLimit.Burst,
			)),
		)

		svcOpts = append(svcOpts,
			pricing.WithEbayFetcher(pricing.NewEbayFetcher(browse)),
			pricing.WithListingClient(browse),
		)
		cmdLog.Info("eBay API configured", "marketplace", cfg.Ebay.Marketplace)
	} else {
		cmdLog.Warn("eBay credentials absent, serving synthetic price data")
	}

	return pricing.NewService(priceCache, limiter, svcOpts...), nil
}

// buildNotifier returns the webhook notifier when configured, otherwise a
// no-op that just logs.
func buildNotifier(cfg *config.Config, appLog *slog.Logger) notify.Notifier {
	if cfg.Notifications.Webhook.Enabled {
		return notify.NewWebhookNotifier(cfg.Notifications.Webhook.WebhookURL)
	}
	return notify.NewNoOpNotifier(appLog)
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
