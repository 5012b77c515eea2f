package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host    string `env:"DB_HOST"`
	Port    string `env:"DB_PORT"`
	User    string `env:"DB_USER"`
	Pass    string `env:"DB_PASSWORD"`
	Name    string `env:"DB_NAME"`
	SSLMode string `env:"DB_SSLMODE"`
}

// DSN builds the pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Pass, d.Host, d.Port, d.Name, d.SSLMode)
}

// RateLimit stores export endpoint rate limiter settings.
type RateLimit struct {
	Enabled    bool          `env:"RATE_LIMIT_ENABLED"`
	Rate       float64       `env:"RATE_LIMIT_RATE"`
	Burst      int           `env:"RATE_LIMIT_BURST"`
	TTL        time.Duration `env:"RATE_LIMIT_TTL"`
	MaxBuckets int           `env:"RATE_LIMIT_MAX_BUCKETS"`
}

// Pprof stores the profiling server settings. User and Pass guard
// non-loopback access.
type Pprof struct {
	Enabled bool   `env:"PPROF_ENABLED"`
	Addr    string `env:"PPROF_ADDR"`
	User    string `env:"PPROF_USER"`
	Pass    string `env:"PPROF_PASS"`
}

// Thresholds stores the recommendation rule policy. The defaults are
// the documented operational policy; override per environment.
type Thresholds struct {
	AvgDelayMinutes     float64 `env:"RULE_AVG_DELAY_MINUTES"`
	CancellationRatePct float64 `env:"RULE_CANCELLATION_RATE_PCT"`
	StockoutRatePct     float64 `env:"RULE_STOCKOUT_RATE_PCT"`
	AvgPickingMinutes   float64 `env:"RULE_AVG_PICKING_MINUTES"`
	RiderOverloadFactor float64 `env:"RULE_RIDER_OVERLOAD_FACTOR"`
	OnTimeRatePct       float64 `env:"RULE_ON_TIME_RATE_PCT"`
}

// Config stores analytics service settings.
type Config struct {
	Port             int           `env:"PORT"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
	DB               DB
	Pprof            Pprof
	RateLimit        RateLimit
	Thresholds       Thresholds
}

// Load reads configuration from defaults, then .env (if present),
// then environment variables, then flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := Default()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.OperationTimeout <= 0 {
		return nil, fmt.Errorf("invalid operation timeout: %v", cfg.OperationTimeout)
	}
	return cfg, nil
}
