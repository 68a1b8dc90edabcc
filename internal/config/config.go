// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Cache         CacheConfig         `yaml:"cache"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines storage settings. Driver selects the backend:
// "sqlite" (default, local file) or "postgres".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`

	// SQLite
	Path string `yaml:"path"`

	// PostgreSQL
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns the connection string for the configured driver.
func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings. AppID and CertID may be empty;
// the price lookup path then serves synthetic data instead of live results.
type EbayConfig struct {
	AppID       string          `yaml:"app_id"`
	CertID      string          `yaml:"cert_id"`
	TokenURL    string          `yaml:"token_url"`
	BrowseURL   string          `yaml:"browse_url"`
	Marketplace string          `yaml:"marketplace"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// Configured reports whether eBay credentials are present.
func (e *EbayConfig) Configured() bool {
	return e.AppID != "" && e.CertID != ""
}

// RateLimitConfig defines eBay API rate limiting settings. DailyLimit is
// kept a buffer below eBay's real 5000/day quota.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int     `yaml:"daily_limit"`
}

// CacheConfig defines price cache settings. TTLDays defaults to 90, the
// eBay data-retention ceiling; raising it past 90 is rejected at load time.
type CacheConfig struct {
	TTLDays int `yaml:"ttl_days"`
}

// ScheduleConfig defines background job intervals.
type ScheduleConfig struct {
	AlertCheckInterval time.Duration `yaml:"alert_check_interval"`
	SweepInterval      time.Duration `yaml:"sweep_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines Discord-compatible webhook settings.
type WebhookConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string     `yaml:"level"`  // debug, info, warn, error
	Format string     `yaml:"format"` // text, json
	File   FileConfig `yaml:"file"`
}

// FileConfig defines optional rotating log file output.
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution, environment overrides, and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with all defaults applied and environment
// overrides honored, for running without a config file.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg
}

// applyEnvOverrides honors the flat environment variables the original
// deployment used, so a bare .env is enough to run.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EBAY_APP_ID"); v != "" && cfg.Ebay.AppID == "" {
		cfg.Ebay.AppID = v
	}
	if v := os.Getenv("EBAY_CERT_ID"); v != "" && cfg.Ebay.CertID == "" {
		cfg.Ebay.CertID = v
	}
	if v := os.Getenv("EBAY_DAILY_LIMIT"); v != "" && cfg.Ebay.RateLimit.DailyLimit == 0 {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ebay.RateLimit.DailyLimit = n
		}
	}
	if v := os.Getenv("CACHE_TTL_DAYS"); v != "" && cfg.Cache.TTLDays == 0 {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLDays = n
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" && cfg.Database.Driver == "" && cfg.Database.Path == "" {
		cfg.Database.Driver = "sqlite"
		cfg.Database.Path = v
	}
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyCacheDefaults(&cfg.Cache)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = "sqlite"
	}
	if d.Driver == "sqlite" && d.Path == "" {
		d.Path = "file:cards.db"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 4800
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.TTLDays == 0 {
		c.TTLDays = 90
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.AlertCheckInterval == 0 {
		s.AlertCheckInterval = 15 * time.Minute
	}
	if s.SweepInterval == 0 {
		s.SweepInterval = 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			errs = append(errs, fmt.Errorf("database.path is required for sqlite"))
		}
	case "postgres":
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required for postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required for postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"database.driver must be one of: sqlite, postgres (got %q)",
			cfg.Database.Driver,
		))
	}

	// eBay's terms cap local retention of price data at 90 days.
	if cfg.Cache.TTLDays > 90 {
		errs = append(errs, fmt.Errorf(
			"cache.ttl_days must not exceed 90 (got %d)", cfg.Cache.TTLDays,
		))
	}

	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.WebhookURL == "" {
		errs = append(errs, fmt.Errorf(
			"notifications.webhook.webhook_url is required when webhook is enabled",
		))
	}

	return errors.Join(errs...)
}
