// Package stream provides the subscription plumbing shared by the store drivers:
// a per-subscriber Stream with an unbounded queue and a Hub that fans events out.
package stream

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/davidbz/pricewise/internal/domain"
)

// Stream is a single subscription. Publishing never blocks; events queue until read.
type Stream struct {
	mu      sync.Mutex
	queue   []domain.InsertEvent
	closed  bool
	signal  chan struct{}
	events  chan domain.InsertEvent
	done    chan struct{}
	once    sync.Once
	release func()
}

// New creates a stream and starts its delivery goroutine.
// release is called exactly once, on the first Unsubscribe.
func New(release func()) *Stream {
	s := &Stream{
		mu:      sync.Mutex{},
		queue:   nil,
		closed:  false,
		signal:  make(chan struct{}, 1),
		events:  make(chan domain.InsertEvent),
		done:    make(chan struct{}),
		once:    sync.Once{},
		release: release,
	}

	go s.run()

	return s
}

// Events returns the delivery channel. It is closed after Unsubscribe.
func (s *Stream) Events() <-chan domain.InsertEvent {
	return s.events
}

// Done is closed once the stream has been unsubscribed.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Publish queues an event. It reports false when the stream is already closed.
func (s *Stream) Publish(event domain.InsertEvent) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}

	return true
}

// Unsubscribe stops delivery and releases the underlying channel.
func (s *Stream) Unsubscribe() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.queue = nil
		s.mu.Unlock()

		close(s.done)

		if s.release != nil {
			s.release()
		}
	})
}

func (s *Stream) run() {
	defer close(s.events)

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()

			select {
			case <-s.signal:
				continue
			case <-s.done:
				return
			}
		}
		event := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.events <- event:
		case <-s.done:
			return
		}
	}
}

// NewEvent builds an event stamped with a fresh ULID.
func NewEvent(kind domain.EventKind, record domain.ModelPrice) domain.InsertEvent {
	return domain.InsertEvent{
		ID:         ulid.Make().String(),
		Kind:       kind,
		Record:     record,
		ReceivedAt: time.Now().UTC(),
	}
}
