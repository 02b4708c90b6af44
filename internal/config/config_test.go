package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
  timeout_seconds: 45
auth:
  enabled: true
  api_key: secret
source:
  base_url: https://network.example.com
crawler:
  user_agent: harvester-agent
  delay_ms: 500
  max_retries: 4
  max_pages: 10
  rps: 2
  burst: 4
  timeout_seconds: 20
headless:
  enabled: true
  max_parallel: 2
  nav_timeout_seconds: 30
  body_threshold: 4096
snapshot:
  provider: gcs
  gcs_bucket: raw-pages
db:
  enabled: true
  dsn: postgres://localhost/talentboard
pubsub:
  enabled: true
  project_id: talentboard
  topic_name: harvested-records
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Auth.Enabled || cfg.Auth.APIKey != "secret" {
		t.Fatalf("expected auth enabled with secret key")
	}
	if cfg.Source.BaseURL != "https://network.example.com" {
		t.Fatalf("expected source base URL override, got %q", cfg.Source.BaseURL)
	}
	if cfg.Crawler.MaxRetries != 4 || cfg.Crawler.RPS != 2 {
		t.Fatalf("expected crawler overrides to apply")
	}
	if !cfg.Headless.Enabled || cfg.Headless.BodyThreshold != 4096 {
		t.Fatalf("expected headless overrides to apply")
	}
	if cfg.Snapshot.Provider != "gcs" || cfg.Snapshot.GCSBucket != "raw-pages" {
		t.Fatalf("expected snapshot overrides to apply")
	}
	if cfg.Delay() != 500*time.Millisecond {
		t.Fatalf("expected delay 500ms, got %v", cfg.Delay())
	}
	if cfg.RequestTimeout() != 20*time.Second {
		t.Fatalf("expected request timeout 20s, got %v", cfg.RequestTimeout())
	}
	if cfg.Logging.Development {
		t.Fatalf("expected logging.development false")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Crawler.DelayMs != 2000 || cfg.Crawler.MaxRetries != 3 || cfg.Crawler.MaxPages != 5 {
		t.Fatalf("expected crawler defaults, got %+v", cfg.Crawler)
	}
	if cfg.Snapshot.Provider != "none" {
		t.Fatalf("expected snapshot provider none, got %q", cfg.Snapshot.Provider)
	}
	if cfg.DB.Enabled || cfg.PubSub.Enabled {
		t.Fatalf("expected db and pubsub disabled by default")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantMsg: "server.port",
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Source.BaseURL = "" },
			wantMsg: "source.base_url",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Crawler.MaxRetries = -1 },
			wantMsg: "crawler.max_retries",
		},
		{
			name:    "unknown snapshot provider",
			mutate:  func(c *Config) { c.Snapshot.Provider = "s3" },
			wantMsg: "snapshot.provider",
		},
		{
			name:    "gcs without bucket",
			mutate:  func(c *Config) { c.Snapshot.Provider = "gcs" },
			wantMsg: "snapshot.gcs_bucket",
		},
		{
			name:    "db enabled without dsn",
			mutate:  func(c *Config) { c.DB.Enabled = true },
			wantMsg: "db.dsn",
		},
		{
			name:    "auth enabled without key",
			mutate:  func(c *Config) { c.Auth.Enabled = true },
			wantMsg: "auth.api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(&cfg)
			err = cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}
