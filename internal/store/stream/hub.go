package stream

import (
	"sync"

	"github.com/davidbz/pricewise/internal/domain"
)

// Hub fans insert events out to every open stream.
type Hub struct {
	mu      sync.RWMutex
	nextID  uint64
	streams map[uint64]*Stream
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		mu:      sync.RWMutex{},
		nextID:  0,
		streams: make(map[uint64]*Stream),
	}
}

// Subscribe opens a stream that receives events broadcast after this call.
func (h *Hub) Subscribe() *Stream {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	s := New(func() { h.remove(id) })
	h.streams[id] = s

	return s
}

// Broadcast delivers an event to every open stream.
func (h *Hub) Broadcast(event domain.InsertEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.streams {
		s.Publish(event)
	}
}

// Len returns the number of open streams.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.streams)
}

// Close unsubscribes every open stream.
func (h *Hub) Close() {
	h.mu.RLock()
	open := make([]*Stream, 0, len(h.streams))
	for _, s := range h.streams {
		open = append(open, s)
	}
	h.mu.RUnlock()

	for _, s := range open {
		s.Unsubscribe()
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.streams, id)
}
