// Package memory provides an in-process PriceStore that keeps records in insertion order.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/store/stream"
)

// DriverName identifies the in-memory driver.
const DriverName = "memory"

// Store stores model prices in memory.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.ModelPrice
	hub     *stream.Hub
	closed  bool
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		mu:      sync.RWMutex{},
		order:   nil,
		records: make(map[string]domain.ModelPrice),
		hub:     stream.NewHub(),
		closed:  false,
	}
}

// ListAll returns a copy of every record in insertion order.
func (s *Store) ListAll(_ context.Context) ([]domain.ModelPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("%w: memory store is closed", domain.ErrDataAccess)
	}

	records := make([]domain.ModelPrice, 0, len(s.order))
	for _, name := range s.order {
		records = append(records, s.records[name])
	}

	return records, nil
}

// Upsert adds a record or replaces the one with the same model name.
func (s *Store) Upsert(_ context.Context, record domain.ModelPrice) (*domain.ModelPrice, error) {
	if record.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", domain.ErrInvalidRecord)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: memory store is closed", domain.ErrDataAccess)
	}

	_, exists := s.records[record.ModelName]
	if !exists {
		s.order = append(s.order, record.ModelName)
	}
	s.records[record.ModelName] = record
	s.mu.Unlock()

	if !exists {
		s.hub.Broadcast(stream.NewEvent(domain.EventInsert, record))
	}

	saved := record
	return &saved, nil
}

// SubscribeInserts opens a subscription to records inserted after this call.
func (s *Store) SubscribeInserts(_ context.Context) (domain.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("%w: memory store is closed", domain.ErrDataAccess)
	}

	return s.hub.Subscribe(), nil
}

// Close ends every open subscription.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.hub.Close()
	return nil
}

// Driver opens in-memory stores.
type Driver struct{}

// NewDriver creates the in-memory driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return DriverName
}

// Open returns a fresh empty store.
func (d *Driver) Open(_ context.Context) (domain.PriceStore, error) {
	return NewStore(), nil
}
