package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/davidbz/pricewise/internal/domain"
)

// InstrumentedStore decorates a PriceStore with operation metrics.
type InstrumentedStore struct {
	next      domain.PriceStore
	collector *Collector
}

// InstrumentStore wraps next so every call is counted and timed.
func InstrumentStore(next domain.PriceStore, collector *Collector) *InstrumentedStore {
	return &InstrumentedStore{
		next:      next,
		collector: collector,
	}
}

// ListAll implements domain.PriceStore.
func (s *InstrumentedStore) ListAll(ctx context.Context) ([]domain.ModelPrice, error) {
	start := time.Now()
	records, err := s.next.ListAll(ctx)
	s.collector.ObserveStoreOp("list_all", time.Since(start), err)

	return records, err
}

// Upsert implements domain.PriceStore.
func (s *InstrumentedStore) Upsert(ctx context.Context, record domain.ModelPrice) (*domain.ModelPrice, error) {
	start := time.Now()
	saved, err := s.next.Upsert(ctx, record)
	s.collector.ObserveStoreOp("upsert", time.Since(start), err)

	return saved, err
}

// SubscribeInserts implements domain.PriceStore.
func (s *InstrumentedStore) SubscribeInserts(ctx context.Context) (domain.Subscription, error) {
	start := time.Now()
	sub, err := s.next.SubscribeInserts(ctx)
	s.collector.ObserveStoreOp("subscribe", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	s.collector.activeSubscriptions.Inc()

	return newCountingSubscription(sub, s.collector), nil
}

// Close implements domain.PriceStore.
func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}

// countingSubscription relays events while counting them.
type countingSubscription struct {
	next      domain.Subscription
	collector *Collector
	events    chan domain.InsertEvent
	stop      chan struct{}
	once      sync.Once
}

func newCountingSubscription(next domain.Subscription, collector *Collector) *countingSubscription {
	sub := &countingSubscription{
		next:      next,
		collector: collector,
		events:    make(chan domain.InsertEvent),
		stop:      make(chan struct{}),
		once:      sync.Once{},
	}

	go sub.relay()

	return sub
}

func (s *countingSubscription) Events() <-chan domain.InsertEvent {
	return s.events
}

func (s *countingSubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.stop)
		s.next.Unsubscribe()
		s.collector.activeSubscriptions.Dec()
	})
}

func (s *countingSubscription) relay() {
	defer close(s.events)

	for {
		select {
		case <-s.stop:
			return
		case event, ok := <-s.next.Events():
			if !ok {
				return
			}

			select {
			case s.events <- event:
				s.collector.eventsDelivered.WithLabelValues(string(event.Kind)).Inc()
			case <-s.stop:
				return
			}
		}
	}
}
