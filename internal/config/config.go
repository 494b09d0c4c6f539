// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Known vendor keys, in default fan-out order.
const (
	VendorKroger  = "kroger"
	VendorWalmart = "walmart"
)

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Kroger     KrogerConfig     `yaml:"kroger"`
	Walmart    WalmartConfig    `yaml:"walmart"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Offers     OffersConfig     `yaml:"offers"`
	Database   DatabaseConfig   `yaml:"database"`
	TokenCache TokenCacheConfig `yaml:"token_cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// KrogerConfig defines Kroger Products and Locations API settings.
type KrogerConfig struct {
	ClientID          string          `yaml:"client_id"`
	ClientSecret      string          `yaml:"client_secret"`
	Scope             string          `yaml:"scope"`
	AuthStyle         string          `yaml:"auth_style"` // basic, body
	TokenURL          string          `yaml:"token_url"`
	BaseURL           string          `yaml:"base_url"`
	DefaultLocationID string          `yaml:"default_location_id"`
	ResultLimit       int             `yaml:"result_limit"`
	Timeout           time.Duration   `yaml:"timeout"`
	RateLimit         RateLimitConfig `yaml:"rate_limit"`
}

// WalmartConfig defines Walmart Affiliate price-availability API settings.
type WalmartConfig struct {
	ConsumerID   string          `yaml:"consumer_id"`
	ClientSecret string          `yaml:"client_secret"`
	TokenURL     string          `yaml:"token_url"`
	BaseURL      string          `yaml:"base_url"`
	OfferIDMap   string          `yaml:"offer_id_map"` // JSON object: item name -> offer IDs
	Timeout      time.Duration   `yaml:"timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines per-vendor call budget settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// AggregatorConfig defines fan-out behavior.
type AggregatorConfig struct {
	VendorTimeout time.Duration `yaml:"vendor_timeout"`
	Vendors       []string      `yaml:"vendors"` // fan-out and merge order
}

// OffersConfig defines where the Walmart offer mapping comes from.
type OffersConfig struct {
	Source          string        `yaml:"source"` // static, postgres
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// TokenCacheConfig defines where vendor access tokens are cached.
type TokenCacheConfig struct {
	Backend       string        `yaml:"backend"` // memory, redis
	RefreshMargin time.Duration `yaml:"refresh_margin"`
	Redis         RedisConfig   `yaml:"redis"`
}

// RedisConfig defines the Redis token store connection.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it as YAML.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyKrogerDefaults(&cfg.Kroger)
	applyWalmartDefaults(&cfg.Walmart)
	applyAggregatorDefaults(&cfg.Aggregator)
	applyOffersDefaults(&cfg.Offers)
	applyDatabaseDefaults(&cfg.Database)
	applyTokenCacheDefaults(&cfg.TokenCache)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 3000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
}

func applyKrogerDefaults(k *KrogerConfig) {
	if k.Scope == "" {
		k.Scope = "product.compact"
	}
	if k.AuthStyle == "" {
		k.AuthStyle = "basic"
	}
	if k.TokenURL == "" {
		k.TokenURL = "https://api.kroger.com/v1/connect/oauth2/token"
	}
	if k.BaseURL == "" {
		k.BaseURL = "https://api.kroger.com/v1"
	}
	if k.ResultLimit == 0 {
		k.ResultLimit = 10
	}
	if k.Timeout == 0 {
		k.Timeout = 10 * time.Second
	}
	applyRateLimitDefaults(&k.RateLimit, 10000)
}

func applyWalmartDefaults(w *WalmartConfig) {
	if w.TokenURL == "" {
		w.TokenURL = "https://developer.api.walmart.com/api-proxy/service/identity/oauth/v1/token"
	}
	if w.BaseURL == "" {
		w.BaseURL = "https://developer.api.walmart.com/api-proxy/service"
	}
	if w.Timeout == 0 {
		w.Timeout = 10 * time.Second
	}
	applyRateLimitDefaults(&w.RateLimit, 5000)
}

func applyRateLimitDefaults(r *RateLimitConfig, daily int64) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = daily
	}
}

func applyAggregatorDefaults(a *AggregatorConfig) {
	if a.VendorTimeout == 0 {
		a.VendorTimeout = 10 * time.Second
	}
	if len(a.Vendors) == 0 {
		a.Vendors = []string{VendorKroger, VendorWalmart}
	}
}

func applyOffersDefaults(o *OffersConfig) {
	if o.Source == "" {
		o.Source = "static"
	}
	if o.RefreshInterval == 0 {
		o.RefreshInterval = 15 * time.Minute
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 4
	}
}

func applyTokenCacheDefaults(t *TokenCacheConfig) {
	if t.Backend == "" {
		t.Backend = "memory"
	}
	if t.RefreshMargin == 0 {
		t.RefreshMargin = 60 * time.Second
	}
	if t.Redis.KeyPrefix == "" {
		t.Redis.KeyPrefix = "grocer:token:"
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

	known := []string{VendorKroger, VendorWalmart}
	seen := make(map[string]bool, len(cfg.Aggregator.Vendors))
	for _, v := range cfg.Aggregator.Vendors {
		if !slices.Contains(known, v) {
			errs = append(errs, fmt.Errorf("aggregator.vendors: unknown vendor %q", v))
			continue
		}
		if seen[v] {
			errs = append(errs, fmt.Errorf("aggregator.vendors: duplicate vendor %q", v))
		}
		seen[v] = true
	}

	switch cfg.Kroger.AuthStyle {
	case "basic", "body":
	default:
		errs = append(errs, fmt.Errorf(
			"kroger.auth_style must be one of: basic, body (got %q)", cfg.Kroger.AuthStyle,
		))
	}

	if cfg.Kroger.ResultLimit < 1 || cfg.Kroger.ResultLimit > 50 {
		errs = append(errs, fmt.Errorf(
			"kroger.result_limit must be between 1 and 50 (got %d)", cfg.Kroger.ResultLimit,
		))
	}

	switch cfg.Offers.Source {
	case "static":
	case "postgres":
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when offers.source is postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when offers.source is postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when offers.source is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"offers.source must be one of: static, postgres (got %q)", cfg.Offers.Source,
		))
	}

	switch cfg.TokenCache.Backend {
	case "memory":
	case "redis":
		if cfg.TokenCache.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("token_cache.redis.addr is required when backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"token_cache.backend must be one of: memory, redis (got %q)", cfg.TokenCache.Backend,
		))
	}

	if cfg.Aggregator.VendorTimeout < 0 {
		errs = append(errs, fmt.Errorf("aggregator.vendor_timeout must be positive"))
	}

	return errors.Join(errs...)
}
