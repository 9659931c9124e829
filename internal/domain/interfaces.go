package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CostCalculator converts token counts into costs.
type CostCalculator interface {
	// UnitCost returns the cost of tokens at a per-million rate, converted by exchangeRate.
	UnitCost(ratePerMillion decimal.Decimal, tokens uint64, exchangeRate decimal.Decimal) decimal.Decimal

	// TotalCost combines the input and output costs.
	TotalCost(inputCost, outputCost decimal.Decimal) decimal.Decimal
}

// PriceStore performs data access against the model price table.
type PriceStore interface {
	// ListAll fetches the full record set in fetch order.
	ListAll(ctx context.Context) ([]ModelPrice, error)

	// Upsert inserts a record or replaces the one with the same model name.
	Upsert(ctx context.Context, record ModelPrice) (*ModelPrice, error)

	// SubscribeInserts opens a channel that reports inserts made after the call.
	SubscribeInserts(ctx context.Context) (Subscription, error)

	// Close releases the backend connection.
	Close() error
}

// Subscription is a live feed of insert events.
type Subscription interface {
	// Events returns the event channel. It is closed after Unsubscribe.
	Events() <-chan InsertEvent

	// Unsubscribe stops delivery and releases the backend channel.
	Unsubscribe()
}

// StoreDriver opens a PriceStore for a configured backend.
type StoreDriver interface {
	// Name returns the driver identifier.
	Name() string

	// Open connects to the backend.
	Open(ctx context.Context) (PriceStore, error)
}

// StoreRegistry manages available store drivers.
type StoreRegistry interface {
	// Register adds a driver to the registry.
	Register(ctx context.Context, driver StoreDriver) error

	// Get retrieves a driver by name.
	Get(ctx context.Context, name string) (StoreDriver, error)

	// List returns all registered driver names.
	List(ctx context.Context) ([]string, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
