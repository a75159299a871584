package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeDrawCommitted, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Publish(context.Background(), DrawCommittedEvent{GiverID: "justine"})

	select {
	case event := <-received:
		committed, ok := event.(DrawCommittedEvent)
		require.True(t, ok)
		assert.Equal(t, "justine", committed.GiverID)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestBusIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeDrawsReset, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Publish(context.Background(), DrawCommittedEvent{GiverID: "justine"})

	select {
	case <-received:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusRecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus()
	received := make(chan struct{}, 1)

	bus.Subscribe(EventTypeDrawsReset, func(ctx context.Context, event Event) {
		panic("handler bug")
	})
	bus.Subscribe(EventTypeDrawsReset, func(ctx context.Context, event Event) {
		received <- struct{}{}
	})

	bus.Publish(context.Background(), DrawsResetEvent{})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked after first panicked")
	}
}
