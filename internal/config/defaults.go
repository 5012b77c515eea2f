package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 10 * time.Second
)

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "analytics",
	Pass:    "analytics",
	Name:    "quickcommerce",
	SSLMode: "disable",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       1,
	Burst:      3,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

// defaultThresholds mirrors the documented rule policy: delay above 10
// minutes, cancellations above 10%, stockouts above 5%, picking above
// 15 minutes, rider load above 2x the cohort average, on-time below
// 70%.
var defaultThresholds = Thresholds{
	AvgDelayMinutes:     10,
	CancellationRatePct: 10,
	StockoutRatePct:     5,
	AvgPickingMinutes:   15,
	RiderOverloadFactor: 2.0,
	OnTimeRatePct:       70,
}

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		Port:             defaultPort,
		OperationTimeout: defaultOperationTimeout,
		DB:               defaultDB,
		Pprof:            defaultPprof,
		RateLimit:        defaultRateLimit,
		Thresholds:       defaultThresholds,
	}
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultThresholds returns the default rule policy.
func DefaultThresholds() Thresholds {
	return defaultThresholds
}
