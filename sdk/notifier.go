package sdk

import (
	"context"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Notifier receives the events of successful calls, in emission order.
//
// Notify runs before the engine accepts its next call, so implementations must not call back into
// the engine.
type Notifier interface {
	Notify(ctx context.Context, event types.Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event types.Event)

// Notify calls f(ctx, event).
func (f NotifierFunc) Notify(ctx context.Context, event types.Event) {
	f(ctx, event)
}
