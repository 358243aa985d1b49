package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []Event
}

func (s *recordingSink) Log(ctx context.Context, action, entity, entityID string, metadata any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Event{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *recordingSink) first() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[0]
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: "507f1f77bcf86cd799439011",
	})

	require.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 5*time.Millisecond)

	got := sink.first()
	assert.Equal(t, "client_created", got.Action)
	assert.Equal(t, "client", got.Entity)
	assert.Equal(t, "507f1f77bcf86cd799439011", got.EntityID)
}

type blockedSink struct {
	gate chan struct{}
	rec  recordingSink
}

func (s *blockedSink) Log(ctx context.Context, action, entity, entityID string, metadata any) error {
	<-s.gate
	return s.rec.Log(ctx, action, entity, entityID, metadata)
}

// Dispatch must never block the caller, even with a stuck sink and a full
// queue; overflow events are dropped.
func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &blockedSink{gate: make(chan struct{})}
	d := NewDispatcher(sink)

	for i := 0; i < 150; i++ {
		d.Dispatch(Event{Action: "client_created", Entity: "client"})
	}

	close(sink.gate)

	require.Eventually(t, func() bool { return sink.rec.count() > 0 },
		time.Second, 5*time.Millisecond)

	// 100 queued plus at most one in flight; the rest were dropped.
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, sink.rec.count(), 101)
}
