package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/config"
	"github.com/davidbz/pricewise/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, 10, cfg.Server.ShutdownTimeout)
		require.Equal(t, []string{"X-Request-Id", "X-Trace-Id"}, cfg.CORS.ExposedHeaders)
		require.Equal(t, "postgres", cfg.Store.Driver)
		require.False(t, cfg.Store.Seed)
		require.Equal(t, "localhost", cfg.Postgres.Host)
		require.Equal(t, 5432, cfg.Postgres.Port)
		require.Equal(t, "ai_model_prices_insert", cfg.Postgres.Channel)
		require.Equal(t, 10*time.Second, cfg.Postgres.MinReconnect)
		require.Equal(t, time.Minute, cfg.Postgres.MaxReconnect)
		require.Equal(t, "data/prices.sqlite", cfg.SQLite.Path)
		require.Equal(t, "https://api.apilayer.com/exchangerates_data", cfg.Rates.BaseURL)
		require.Equal(t, 10, cfg.Rates.Timeout)
		require.Empty(t, cfg.Rates.APIKey)
		require.True(t, cfg.Pricing.RoundBeforeSum)
		require.Equal(t, uint64(1000000), cfg.Pricing.DefaultInputTokens)
		require.NoError(t, cfg.Validate())
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("STORE_SEED", "true")
		t.Setenv("SQLITE_PATH", "/tmp/prices.db")
		t.Setenv("POSTGRES_LISTENER_MIN_RECONNECT", "2s")
		t.Setenv("POSTGRES_LISTENER_MAX_RECONNECT", "30s")
		t.Setenv("EXCHANGE_RATES_API_KEY", "test-key")
		t.Setenv("EXCHANGE_RATES_TIMEOUT", "3")
		t.Setenv("PRICING_ROUND_BEFORE_SUM", "false")
		t.Setenv("PRICING_DEFAULT_CURRENCY", " eur ")
		t.Setenv("PRICING_DEFAULT_INPUT_TOKENS", "5000")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "sqlite", cfg.Store.Driver)
		require.True(t, cfg.Store.Seed)
		require.Equal(t, "/tmp/prices.db", cfg.SQLite.Path)
		require.Equal(t, 2*time.Second, cfg.Postgres.MinReconnect)
		require.Equal(t, "test-key", cfg.Rates.APIKey)
		require.Equal(t, 3, cfg.Rates.Timeout)
		require.Equal(t, domain.CalculatorOptions{RoundBeforeSum: false}, cfg.Pricing.CalculatorOptions())
		require.Equal(t, domain.ComparisonDefaults{
			Currency:     "EUR",
			InputTokens:  5000,
			OutputTokens: 1000000,
		}, cfg.Pricing.ComparisonDefaults())
		require.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	t.Run("should reject unknown driver", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("STORE_DRIVER", "mongo")

		err := config.Load().Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown STORE_DRIVER")
	})

	t.Run("should reject inverted reconnect window", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("POSTGRES_LISTENER_MIN_RECONNECT", "1m")
		t.Setenv("POSTGRES_LISTENER_MAX_RECONNECT", "10s")

		err := config.Load().Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "reconnect window")
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Postgres, deps.Postgres)
	require.Same(t, &cfg.SQLite, deps.SQLite)
	require.Same(t, &cfg.Rates, deps.Rates)
	require.Same(t, &cfg.Pricing, deps.Pricing)
}
