package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Ledger
	StrictDeposits bool `env:"STRICT_DEPOSITS" envDefault:"false"`

	// Metrics
	MetricsTextfile string `env:"METRICS_TEXTFILE" envDefault:""`

	// Database export (optional - leave empty to disable)
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:""`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	DatabaseMinConns int           `env:"DATABASE_MIN_CONNS" envDefault:"1"`
	DatabaseTimeout  time.Duration `env:"DATABASE_TIMEOUT"   envDefault:"30s"`

	// Redis export (optional - leave empty to disable)
	RedisURL        string        `env:"REDIS_URL"         envDefault:""`
	RedisSummaryTTL time.Duration `env:"REDIS_SUMMARY_TTL" envDefault:"24h"`

	// Exporters
	ExportTimeout time.Duration `env:"EXPORT_TIMEOUT" envDefault:"30s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
