// Package sqlite provides a single-node PriceStore backed by an embedded SQLite database.
// Insert notifications are fanned out in process.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
	"github.com/davidbz/pricewise/internal/store/stream"
)

// DriverName identifies the SQLite driver.
const DriverName = "sqlite"

const openTimeout = 5 * time.Second

// Store implements domain.PriceStore on SQLite.
type Store struct {
	db   *sql.DB
	path string
	hub  *stream.Hub

	mu     sync.RWMutex
	closed bool
}

// NewStore opens (creating if needed) the database at path and ensures the schema.
func NewStore(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("sqlite store: path is required")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o700); err != nil {
		return nil, fmt.Errorf("sqlite store: create directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", abs)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: ping database: %w", err)
	}

	store := &Store{db: db, path: abs, hub: stream.NewHub()}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	observability.FromContext(ctx).Info("sqlite store opened", observability.String("path", abs))
	return store, nil
}

// Close ends open subscriptions and closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.hub.Close()
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`
		CREATE TABLE IF NOT EXISTS ai_model_prices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			model_name TEXT NOT NULL UNIQUE,
			input_price TEXT NOT NULL,
			output_price TEXT NOT NULL,
			provider TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)
		`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite store: ensure schema: %w", err)
		}
	}
	return nil
}

// ListAll returns every record in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]domain.ModelPrice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT model_name, input_price, output_price, provider
		FROM ai_model_prices
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: list model prices: %w", domain.ErrDataAccess, err)
	}
	defer rows.Close()

	records, err := scanModelPrices(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: list model prices: %w", domain.ErrDataAccess, err)
	}
	return records, nil
}

// Upsert inserts a record or replaces the one with the same model name.
func (s *Store) Upsert(ctx context.Context, record domain.ModelPrice) (*domain.ModelPrice, error) {
	if record.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", domain.ErrInvalidRecord)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: begin upsert: %w", domain.ErrDataAccess, err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM ai_model_prices WHERE model_name = ?)`,
		record.ModelName,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%w: sqlite: check model price: %w", domain.ErrDataAccess, err)
	}

	now := time.Now().UTC().Unix()
	rows, err := tx.QueryContext(ctx, `
		INSERT INTO ai_model_prices (model_name, input_price, output_price, provider, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(model_name) DO UPDATE SET
			input_price = excluded.input_price,
			output_price = excluded.output_price,
			provider = excluded.provider,
			updated_at = excluded.updated_at
		RETURNING model_name, input_price, output_price, provider
	`, record.ModelName, record.InputPrice.String(), record.OutputPrice.String(), record.Provider, now, now)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: upsert model price: %w", domain.ErrDataAccess, err)
	}

	saved, err := scanModelPrices(rows)
	_ = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: upsert model price: %w", domain.ErrDataAccess, err)
	}
	if len(saved) == 0 {
		return nil, domain.ErrEmptyResult
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: sqlite: commit upsert: %w", domain.ErrDataAccess, err)
	}

	if !exists {
		s.hub.Broadcast(stream.NewEvent(domain.EventInsert, saved[0]))
	}

	return &saved[0], nil
}

// SubscribeInserts opens an in-process subscription to inserts made through this store.
func (s *Store) SubscribeInserts(_ context.Context) (domain.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("%w: sqlite store is closed", domain.ErrDataAccess)
	}

	return s.hub.Subscribe(), nil
}

func scanModelPrices(rows *sql.Rows) ([]domain.ModelPrice, error) {
	var records []domain.ModelPrice
	for rows.Next() {
		var record domain.ModelPrice
		if err := rows.Scan(&record.ModelName, &record.InputPrice, &record.OutputPrice, &record.Provider); err != nil {
			return nil, fmt.Errorf("scan model price: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate model prices: %w", err)
	}
	return records, nil
}

// Driver opens SQLite stores.
type Driver struct {
	config *Config
}

// NewDriver creates the SQLite driver.
func NewDriver(cfg *Config) *Driver {
	return &Driver{config: cfg}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return DriverName
}

// Open opens the configured database file.
func (d *Driver) Open(_ context.Context) (domain.PriceStore, error) {
	if d.config == nil {
		return nil, errors.New("sqlite store: config is required")
	}
	return NewStore(d.config.Path)
}
