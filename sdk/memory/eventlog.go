package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/smartcontractkit/tokenvoting/types"
)

// EventLog records every event it is notified of. It implements sdk.Notifier and can be shared
// by the engine and the DAO to observe the combined event order.
type EventLog struct {
	mu     sync.Mutex
	events []types.Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Notify implements sdk.Notifier.
func (l *EventLog) Notify(_ context.Context, event types.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
}

// Events returns the recorded events in notification order.
func (l *EventLog) Events() []types.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.events)
}

// Named returns the recorded events of the given type.
func (l *EventLog) Named(name types.EventType) []types.Event {
	return lo.Filter(l.Events(), func(e types.Event, _ int) bool {
		return e.EventName() == name
	})
}

// Names returns the type of every recorded event in notification order.
func (l *EventLog) Names() []types.EventType {
	return lo.Map(l.Events(), func(e types.Event, _ int) types.EventType {
		return e.EventName()
	})
}

// Reset drops every recorded event.
func (l *EventLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = nil
}
