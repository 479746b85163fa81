package config_test

import (
	"testing"
	"time"

	"github.com/iho/txengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Fatalf("expected exporters to be disabled by default, got db=%q redis=%q", cfg.DatabaseURL, cfg.RedisURL)
	}

	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected log defaults: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.StrictDeposits {
		t.Fatalf("expected strict deposits to be off by default")
	}

	if cfg.ExportTimeout != 30*time.Second {
		t.Fatalf("expected default export timeout 30s, got %s", cfg.ExportTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("REDIS_SUMMARY_TTL", "1h")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("STRICT_DEPOSITS", "true")
	t.Setenv("METRICS_TEXTFILE", "/tmp/txengine.prom")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" || cfg.RedisSummaryTTL != time.Hour {
		t.Fatalf("expected redis overrides, got url=%s ttl=%s", cfg.RedisURL, cfg.RedisSummaryTTL)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if !cfg.StrictDeposits || cfg.MetricsTextfile != "/tmp/txengine.prom" {
		t.Fatalf("expected ledger settings to be set, got strict=%v textfile=%s", cfg.StrictDeposits, cfg.MetricsTextfile)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("EXPORT_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("STRICT_DEPOSITS", "maybe")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
