// Package postgres implements the hosted backend: procedure calls through gorm and a
// LISTEN/NOTIFY realtime channel through lib/pq.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
	"github.com/davidbz/pricewise/internal/store/stream"
)

// DriverName identifies the Postgres driver.
const DriverName = "postgres"

const (
	connectTimeout       = 10 * time.Second
	listenerPingInterval = 90 * time.Second
	slowQueryThreshold   = time.Second
)

//nolint:gochecknoglobals // Compiled once
var channelPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// modelPriceRow is one row returned by the backend procedures.
type modelPriceRow struct {
	ModelName   string          `gorm:"column:model_name"`
	InputPrice  decimal.Decimal `gorm:"column:input_price"`
	OutputPrice decimal.Decimal `gorm:"column:output_price"`
	Provider    string          `gorm:"column:provider"`
}

func (r modelPriceRow) toDomain() domain.ModelPrice {
	return domain.ModelPrice{
		ModelName:   r.ModelName,
		InputPrice:  r.InputPrice,
		OutputPrice: r.OutputPrice,
		Provider:    r.Provider,
	}
}

// Store implements domain.PriceStore against the hosted Postgres backend.
type Store struct {
	db     *gorm.DB
	config *Config
}

// NewStore connects to Postgres and, when configured, installs the schema.
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("postgres store: config is required")
	}
	if !channelPattern.MatchString(cfg.Channel) {
		return nil, fmt.Errorf("postgres store: invalid notify channel %q", cfg.Channel)
	}

	gormLogger := logger.New(
		&gormWriter{},
		logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: connect: %w", domain.ErrDataAccess, err)
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres store: underlying sql.DB: %w", err)
	}
	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(2)
	sqldb.SetConnMaxLifetime(2 * time.Hour)
	sqldb.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("%w: postgres: ping: %w", domain.ErrDataAccess, err)
	}

	store := &Store{db: db, config: cfg}

	if cfg.Migrate {
		if err := store.ensureSchema(pingCtx); err != nil {
			_ = sqldb.Close()
			return nil, err
		}
	}

	observability.FromContext(ctx).Info("postgres store connected",
		observability.String("host", cfg.Host),
		observability.String("database", cfg.DBName),
		observability.Bool("migrated", cfg.Migrate),
	)

	return store, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements(s.config.Channel) {
		if err := s.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("postgres store: ensure schema: %w", err)
		}
	}
	return nil
}

// ListAll calls get_all_model_prices().
func (s *Store) ListAll(ctx context.Context) ([]domain.ModelPrice, error) {
	var rows []modelPriceRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT model_name, input_price, output_price, provider FROM get_all_model_prices()`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: get_all_model_prices: %w", domain.ErrDataAccess, err)
	}

	records := make([]domain.ModelPrice, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

// Upsert calls upsert_model_price and returns the resulting row.
func (s *Store) Upsert(ctx context.Context, record domain.ModelPrice) (*domain.ModelPrice, error) {
	var rows []modelPriceRow
	err := s.db.WithContext(ctx).
		Raw(
			`SELECT model_name, input_price, output_price, provider
			FROM upsert_model_price(?::text, ?::numeric, ?::numeric, ?::text)`,
			record.ModelName,
			record.InputPrice.String(),
			record.OutputPrice.String(),
			record.Provider,
		).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: upsert_model_price: %w", domain.ErrDataAccess, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyResult
	}

	saved := rows[0].toDomain()
	return &saved, nil
}

// SubscribeInserts opens a dedicated LISTEN connection for this subscription.
// The connection reconnects with backoff between MinReconnect and MaxReconnect; after a
// reconnect a resync event is delivered because notifications may have been missed.
func (s *Store) SubscribeInserts(ctx context.Context) (domain.Subscription, error) {
	log := observability.FromContext(ctx)
	channel := s.config.Channel

	listener := pq.NewListener(s.config.DSN(), s.config.MinReconnect, s.config.MaxReconnect,
		func(event pq.ListenerEventType, err error) {
			switch event {
			case pq.ListenerEventConnected:
				log.Debug("price listener connected", observability.String("channel", channel))
			case pq.ListenerEventDisconnected:
				log.Warn("price listener disconnected", observability.Error(err))
			case pq.ListenerEventReconnected:
				log.Info("price listener reconnected", observability.String("channel", channel))
			case pq.ListenerEventConnectionAttemptFailed:
				log.Warn("price listener connection attempt failed", observability.Error(err))
			}
		},
	)

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("%w: postgres: listen %s: %w", domain.ErrDataAccess, channel, err)
	}

	sub := stream.New(func() {
		if err := listener.Close(); err != nil {
			log.Debug("price listener close", observability.Error(err))
		}
	})

	go pump(ctx, listener, sub)

	return sub, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("postgres store: underlying sql.DB: %w", err)
	}
	return sqldb.Close()
}

// pump forwards listener notifications into the subscription until it is released.
func pump(ctx context.Context, listener *pq.Listener, sub *stream.Stream) {
	log := observability.FromContext(ctx)

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.Done():
			return

		case notification, ok := <-listener.Notify:
			if !ok {
				return
			}

			if notification == nil {
				sub.Publish(stream.NewEvent(domain.EventResync, domain.ModelPrice{}))
				continue
			}

			record, err := decodeNotification(notification.Extra)
			if err != nil {
				log.Warn("invalid price notification payload", observability.Error(err))
				sub.Publish(stream.NewEvent(domain.EventResync, domain.ModelPrice{}))
				continue
			}
			sub.Publish(stream.NewEvent(domain.EventInsert, record))

		case <-ticker.C:
			go func() {
				if err := listener.Ping(); err != nil {
					log.Debug("price listener ping failed", observability.Error(err))
				}
			}()
		}
	}
}

// decodeNotification parses the JSON row emitted by the insert trigger.
func decodeNotification(payload string) (domain.ModelPrice, error) {
	var record domain.ModelPrice
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return domain.ModelPrice{}, fmt.Errorf("decode notification: %w", err)
	}
	if record.ModelName == "" {
		return domain.ModelPrice{}, errors.New("decode notification: model_name missing")
	}
	return record, nil
}

// gormWriter routes gorm's slow-query and error output to the application logger.
type gormWriter struct{}

func (w *gormWriter) Printf(format string, args ...interface{}) {
	observability.FromContext(context.Background()).Sugar().Warnf(format, args...)
}

// Driver opens Postgres stores.
type Driver struct {
	config *Config
}

// NewDriver creates the Postgres driver.
func NewDriver(cfg *Config) *Driver {
	return &Driver{config: cfg}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return DriverName
}

// Open connects to the configured database.
func (d *Driver) Open(ctx context.Context) (domain.PriceStore, error) {
	return NewStore(ctx, d.config)
}
