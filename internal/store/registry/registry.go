package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/davidbz/pricewise/internal/domain"
)

// Registry implements the StoreRegistry interface.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]domain.StoreDriver
}

// NewRegistry creates a new store driver registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:      sync.RWMutex{},
		drivers: make(map[string]domain.StoreDriver),
	}
}

// Register adds a driver to the registry.
func (r *Registry) Register(_ context.Context, driver domain.StoreDriver) error {
	if driver == nil {
		return errors.New("driver cannot be nil")
	}

	name := driver.Name()
	if name == "" {
		return errors.New("driver name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[name]; exists {
		return fmt.Errorf("driver %s already registered", name)
	}

	r.drivers[name] = driver

	return nil
}

// Get retrieves a driver by name.
func (r *Registry) Get(_ context.Context, name string) (domain.StoreDriver, error) {
	if name == "" {
		return nil, errors.New("driver name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[name]
	if !exists {
		return nil, fmt.Errorf("driver %s not found", name)
	}

	return driver, nil
}

// List returns all registered driver names in sorted order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// Open looks up the named driver and opens its store.
func (r *Registry) Open(ctx context.Context, name string) (domain.PriceStore, error) {
	driver, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	store, err := driver.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", name, err)
	}

	return store, nil
}
