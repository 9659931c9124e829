package stream_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/store/stream"
)

const waitTimeout = 2 * time.Second

func receive(t *testing.T, s *stream.Stream) domain.InsertEvent {
	t.Helper()

	select {
	case event, ok := <-s.Events():
		require.True(t, ok, "events channel closed unexpectedly")
		return event
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for event")
		return domain.InsertEvent{}
	}
}

func TestStream_DeliversInOrder(t *testing.T) {
	s := stream.New(nil)
	defer s.Unsubscribe()

	names := []string{"a", "b", "c", "d"}
	for _, name := range names {
		require.True(t, s.Publish(stream.NewEvent(domain.EventInsert, domain.ModelPrice{ModelName: name})))
	}

	for _, name := range names {
		require.Equal(t, name, receive(t, s).Record.ModelName)
	}
}

func TestStream_Unsubscribe(t *testing.T) {
	t.Run("should release once and close events", func(t *testing.T) {
		var released atomic.Int32
		s := stream.New(func() { released.Add(1) })

		s.Unsubscribe()
		s.Unsubscribe()

		require.Equal(t, int32(1), released.Load())

		select {
		case _, ok := <-s.Events():
			require.False(t, ok)
		case <-time.After(waitTimeout):
			t.Fatal("events channel was not closed")
		}
	})

	t.Run("should reject publish after unsubscribe", func(t *testing.T) {
		s := stream.New(nil)
		s.Unsubscribe()

		require.False(t, s.Publish(stream.NewEvent(domain.EventInsert, domain.ModelPrice{ModelName: "late"})))
	})
}

func TestNewEvent(t *testing.T) {
	first := stream.NewEvent(domain.EventInsert, domain.ModelPrice{ModelName: "gpt-4o"})
	second := stream.NewEvent(domain.EventResync, domain.ModelPrice{})

	require.Len(t, first.ID, 26)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, domain.EventInsert, first.Kind)
	require.Equal(t, domain.EventResync, second.Kind)
	require.False(t, first.ReceivedAt.IsZero())
}

func TestHub(t *testing.T) {
	t.Run("should broadcast to every open stream", func(t *testing.T) {
		hub := stream.NewHub()
		defer hub.Close()

		first := hub.Subscribe()
		second := hub.Subscribe()
		require.Equal(t, 2, hub.Len())

		hub.Broadcast(stream.NewEvent(domain.EventInsert, domain.ModelPrice{ModelName: "gpt-4o"}))

		require.Equal(t, "gpt-4o", receive(t, first).Record.ModelName)
		require.Equal(t, "gpt-4o", receive(t, second).Record.ModelName)
	})

	t.Run("should drop stream on unsubscribe", func(t *testing.T) {
		hub := stream.NewHub()
		defer hub.Close()

		s := hub.Subscribe()
		s.Unsubscribe()

		require.Equal(t, 0, hub.Len())
	})

	t.Run("should close all streams", func(t *testing.T) {
		hub := stream.NewHub()
		s := hub.Subscribe()

		hub.Close()

		require.Equal(t, 0, hub.Len())
		select {
		case <-s.Done():
		case <-time.After(waitTimeout):
			t.Fatal("stream was not closed")
		}
	})
}
