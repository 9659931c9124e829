package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/pricewise/internal/config"
	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/http"
	"github.com/davidbz/pricewise/internal/http/middleware"
	"github.com/davidbz/pricewise/internal/metrics"
	"github.com/davidbz/pricewise/internal/observability"
	"github.com/davidbz/pricewise/internal/rates"
	"github.com/davidbz/pricewise/internal/store/memory"
	"github.com/davidbz/pricewise/internal/store/postgres"
	"github.com/davidbz/pricewise/internal/store/registry"
	"github.com/davidbz/pricewise/internal/store/seed"
	"github.com/davidbz/pricewise/internal/store/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := buildContainer(ctx)

	err := container.Invoke(func(
		logger *zap.Logger,
		server *http.Server,
		store domain.PriceStore,
		serverCfg *config.ServerConfig,
	) error {
		defer func() { _ = logger.Sync() }()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			_ = store.Close()
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(serverCfg.ShutdownTimeout)*time.Second)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		if err := store.Close(); err != nil {
			logger.Warn("failed to close price store", zap.Error(err))
		}
		logger.Info("shutdown complete")

		return shutdownErr
	})
	if err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func buildContainer(ctx context.Context) *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(func() (*config.Config, error) {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus()
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}
	if err := container.Provide(metrics.NewCollector); err != nil {
		log.Fatalf("Failed to provide metrics collector: %v", err)
	}

	// Logger must exist before anything else logs.
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Exchange rates, loaded once per process
	if err := container.Provide(func(cfg *rates.Config, collector *metrics.Collector) *domain.ExchangeRates {
		return rates.NewLoader(rates.NewClient(*cfg), collector).Load(ctx)
	}); err != nil {
		log.Fatalf("Failed to provide exchange rates: %v", err)
	}

	// Store drivers
	if err := container.Provide(func(pgCfg *postgres.Config, sqliteCfg *sqlite.Config) (*registry.Registry, error) {
		reg := registry.NewRegistry()
		for _, driver := range []domain.StoreDriver{
			postgres.NewDriver(pgCfg),
			sqlite.NewDriver(sqliteCfg),
			memory.NewDriver(),
		} {
			if err := reg.Register(ctx, driver); err != nil {
				return nil, fmt.Errorf("failed to register %s driver: %w", driver.Name(), err)
			}
		}
		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide store registry: %v", err)
	}

	// Price store
	if err := container.Provide(func(
		reg *registry.Registry,
		storeCfg *config.StoreConfig,
		collector *metrics.Collector,
	) (domain.PriceStore, error) {
		opened, err := reg.Open(ctx, storeCfg.Driver)
		if err != nil {
			return nil, err
		}

		store := metrics.InstrumentStore(opened, collector)

		if storeCfg.Seed {
			if _, err := seed.Apply(ctx, store); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("failed to seed price store: %w", err)
			}
		}

		observability.FromContext(ctx).Info("price store ready", zap.String("driver", storeCfg.Driver))

		return store, nil
	}); err != nil {
		log.Fatalf("Failed to provide price store: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(cfg *config.PricingConfig) domain.CostCalculator {
		return domain.NewStandardCostCalculator(cfg.CalculatorOptions())
	}); err != nil {
		log.Fatalf("Failed to provide cost calculator: %v", err)
	}
	if err := container.Provide(func(cfg *config.PricingConfig) domain.ComparisonDefaults {
		return cfg.ComparisonDefaults()
	}); err != nil {
		log.Fatalf("Failed to provide comparison defaults: %v", err)
	}
	if err := container.Provide(domain.NewComparisonService); err != nil {
		log.Fatalf("Failed to provide comparison service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
