package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.OperationTimeout)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "quickcommerce", cfg.DB.Name)

	require.Equal(t, 10.0, cfg.Thresholds.AvgDelayMinutes)
	require.Equal(t, 5.0, cfg.Thresholds.StockoutRatePct)
	require.Equal(t, 70.0, cfg.Thresholds.OnTimeRatePct)
	require.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "ops")
	t.Setenv("RULE_CANCELLATION_RATE_PCT", "25")
	t.Setenv("OPERATION_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "ops", cfg.DB.Name)
	require.Equal(t, 25.0, cfg.Thresholds.CancellationRatePct)
	require.Equal(t, 3*time.Second, cfg.OperationTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestDB_DSN(t *testing.T) {
	t.Parallel()

	d := config.DB{
		Host: "localhost", Port: "5432",
		User: "u", Pass: "p", Name: "orders", SSLMode: "disable",
	}
	require.Equal(t, "postgres://u:p@localhost:5432/orders?sslmode=disable", d.DSN())
}

func TestDefaultThresholds_MatchDocumentedPolicy(t *testing.T) {
	t.Parallel()

	th := config.DefaultThresholds()
	require.Equal(t, 10.0, th.AvgDelayMinutes)
	require.Equal(t, 10.0, th.CancellationRatePct)
	require.Equal(t, 5.0, th.StockoutRatePct)
	require.Equal(t, 15.0, th.AvgPickingMinutes)
	require.Equal(t, 2.0, th.RiderOverloadFactor)
	require.Equal(t, 70.0, th.OnTimeRatePct)
}
