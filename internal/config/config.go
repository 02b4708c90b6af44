// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Source   SourceConfig   `mapstructure:"source"`
	Crawler  CrawlerConfig  `mapstructure:"crawler"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	DB       DBConfig       `mapstructure:"db"`
	PubSub   PubSubConfig   `mapstructure:"pubsub"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// AuthConfig defines API authentication toggles.
type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
}

// SourceConfig names the professional network being harvested.
type SourceConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// CrawlerConfig governs pagination, retry, and politeness behavior.
type CrawlerConfig struct {
	UserAgent      string  `mapstructure:"user_agent"`
	DelayMs        int     `mapstructure:"delay_ms"`
	MaxRetries     int     `mapstructure:"max_retries"`
	MaxPages       int     `mapstructure:"max_pages"`
	RPS            float64 `mapstructure:"rps"`
	Burst          int     `mapstructure:"burst"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

// HeadlessConfig configures the headless rendering fallback.
type HeadlessConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxParallel   int  `mapstructure:"max_parallel"`
	NavTimeoutSec int  `mapstructure:"nav_timeout_seconds"`
	BodyThreshold int  `mapstructure:"body_threshold"`
}

// SnapshotConfig selects where raw page snapshots are archived.
type SnapshotConfig struct {
	// Provider is one of "none", "local", "gcs".
	Provider  string `mapstructure:"provider"`
	Dir       string `mapstructure:"dir"`
	GCSBucket string `mapstructure:"gcs_bucket"`
}

// DBConfig controls access to the relational database.
type DBConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// PubSubConfig holds metadata for persisted-record notifications.
type PubSubConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	ProjectID string `mapstructure:"project_id"`
	TopicName string `mapstructure:"topic_name"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HARVESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 60)
	v.SetDefault("source.base_url", "https://www.linkedin.com")
	v.SetDefault("crawler.user_agent", "")
	v.SetDefault("crawler.delay_ms", 2000)
	v.SetDefault("crawler.max_retries", 3)
	v.SetDefault("crawler.max_pages", 5)
	v.SetDefault("crawler.rps", 1)
	v.SetDefault("crawler.burst", 2)
	v.SetDefault("crawler.timeout_seconds", 30)
	v.SetDefault("headless.enabled", false)
	v.SetDefault("headless.max_parallel", 1)
	v.SetDefault("headless.nav_timeout_seconds", 25)
	v.SetDefault("headless.body_threshold", 2048)
	v.SetDefault("snapshot.provider", "none")
	v.SetDefault("snapshot.dir", "snapshots")
	v.SetDefault("db.enabled", false)
	v.SetDefault("pubsub.enabled", false)
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url must be set")
	}
	if c.Crawler.DelayMs < 0 {
		return fmt.Errorf("crawler.delay_ms must be >= 0")
	}
	if c.Crawler.MaxRetries < 0 {
		return fmt.Errorf("crawler.max_retries must be >= 0")
	}
	if c.Crawler.RPS <= 0 {
		return fmt.Errorf("crawler.rps must be > 0")
	}
	if c.Headless.Enabled && c.Headless.MaxParallel <= 0 {
		return fmt.Errorf("headless.max_parallel must be > 0 when headless is enabled")
	}
	switch c.Snapshot.Provider {
	case "none", "local", "gcs":
	default:
		return fmt.Errorf("snapshot.provider must be none, local, or gcs")
	}
	if c.Snapshot.Provider == "gcs" && c.Snapshot.GCSBucket == "" {
		return fmt.Errorf("snapshot.gcs_bucket must be set for the gcs provider")
	}
	if c.DB.Enabled && c.DB.DSN == "" {
		return fmt.Errorf("db.dsn must be set when db is enabled")
	}
	if c.PubSub.Enabled && (c.PubSub.ProjectID == "" || c.PubSub.TopicName == "") {
		return fmt.Errorf("pubsub.project_id and pubsub.topic_name must be set when pubsub is enabled")
	}
	if c.Auth.Enabled && c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key must be set when auth is enabled")
	}
	return nil
}

// Delay returns the base politeness delay as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.Crawler.DelayMs) * time.Millisecond
}

// RequestTimeout returns the per-fetch timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Crawler.TimeoutSeconds) * time.Second
}
