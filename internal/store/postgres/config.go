package postgres

import (
	"fmt"
	"strings"
	"time"
)

// Config contains Postgres backend settings.
type Config struct {
	URL          string        `env:"POSTGRES_URL"`
	Host         string        `env:"POSTGRES_HOST"                   envDefault:"localhost"`
	Port         int           `env:"POSTGRES_PORT"                   envDefault:"5432"`
	User         string        `env:"POSTGRES_USER"                   envDefault:"postgres"`
	Password     string        `env:"POSTGRES_PASSWORD"`
	DBName       string        `env:"POSTGRES_DB"                     envDefault:"postgres"`
	SSLMode      string        `env:"POSTGRES_SSLMODE"                envDefault:"require"`
	Migrate      bool          `env:"POSTGRES_MIGRATE"                envDefault:"false"`
	Channel      string        `env:"POSTGRES_NOTIFY_CHANNEL"         envDefault:"ai_model_prices_insert"`
	MinReconnect time.Duration `env:"POSTGRES_LISTENER_MIN_RECONNECT" envDefault:"10s"`
	MaxReconnect time.Duration `env:"POSTGRES_LISTENER_MAX_RECONNECT" envDefault:"1m"`
	MaxOpenConns int           `env:"POSTGRES_MAX_OPEN_CONNS"         envDefault:"10"`
}

// DSN returns a connection string understood by both pgx and lib/pq.
// URL wins when set; otherwise a key/value string is built from the parts.
func (c *Config) DSN() string {
	if url := strings.TrimSpace(c.URL); url != "" {
		return url
	}

	parts := []string{
		"host=" + quoteDSNValue(c.Host),
		fmt.Sprintf("port=%d", c.Port),
		"user=" + quoteDSNValue(c.User),
	}
	if c.Password != "" {
		parts = append(parts, "password="+quoteDSNValue(c.Password))
	}
	parts = append(parts,
		"dbname="+quoteDSNValue(c.DBName),
		"sslmode="+quoteDSNValue(c.SSLMode),
	)

	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes values that contain spaces, quotes or backslashes.
func quoteDSNValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
