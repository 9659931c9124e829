package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
	"github.com/davidbz/pricewise/internal/rates"
	"github.com/davidbz/pricewise/internal/store/postgres"
	"github.com/davidbz/pricewise/internal/store/sqlite"
)

// Config represents the service configuration.
type Config struct {
	Log      observability.Config
	Server   ServerConfig
	CORS     CORSConfig
	Store    StoreConfig
	Postgres postgres.Config
	SQLite   sqlite.Config
	Rates    rates.Config
	Pricing  PricingConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS"   envSeparator:"," envDefault:"X-Request-Id,X-Trace-Id"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// StoreConfig selects the price store backend.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
	Seed   bool   `env:"STORE_SEED"   envDefault:"false"`
}

// PricingConfig contains comparison defaults and rounding policy.
type PricingConfig struct {
	RoundBeforeSum      bool   `env:"PRICING_ROUND_BEFORE_SUM"      envDefault:"true"`
	DefaultCurrency     string `env:"PRICING_DEFAULT_CURRENCY"      envDefault:"USD"`
	DefaultInputTokens  uint64 `env:"PRICING_DEFAULT_INPUT_TOKENS"  envDefault:"1000000"`
	DefaultOutputTokens uint64 `env:"PRICING_DEFAULT_OUTPUT_TOKENS" envDefault:"1000000"`
}

// ComparisonDefaults converts the pricing section for the comparison service.
func (c *PricingConfig) ComparisonDefaults() domain.ComparisonDefaults {
	return domain.ComparisonDefaults{
		Currency:     strings.ToUpper(strings.TrimSpace(c.DefaultCurrency)),
		InputTokens:  c.DefaultInputTokens,
		OutputTokens: c.DefaultOutputTokens,
	}
}

// CalculatorOptions converts the pricing section for the cost calculator.
func (c *PricingConfig) CalculatorOptions() domain.CalculatorOptions {
	return domain.CalculatorOptions{
		RoundBeforeSum: c.RoundBeforeSum,
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	Log      *observability.Config
	Server   *ServerConfig
	CORS     *CORSConfig
	Store    *StoreConfig
	Postgres *postgres.Config
	SQLite   *sqlite.Config
	Rates    *rates.Config
	Pricing  *PricingConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Postgres.MinReconnect <= 0 || c.Postgres.MaxReconnect < c.Postgres.MinReconnect {
		return fmt.Errorf("invalid listener reconnect window %s..%s",
			c.Postgres.MinReconnect, c.Postgres.MaxReconnect)
	}

	return nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Log,
		&cfg.Server,
		&cfg.CORS,
		&cfg.Store,
		&cfg.Postgres,
		&cfg.SQLite,
		&cfg.Rates,
		&cfg.Pricing,
	}
}
