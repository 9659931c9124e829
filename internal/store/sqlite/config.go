package sqlite

// Config contains SQLite store settings.
type Config struct {
	Path string `env:"SQLITE_PATH" envDefault:"data/prices.sqlite"`
}
