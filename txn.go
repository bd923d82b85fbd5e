package tokenvoting

import (
	"context"

	"github.com/smartcontractkit/tokenvoting/types"
)

// txn is the journal of a single engine call. Every state change registers its inverse so that a
// failing call can be undone completely, and events are held back until the call succeeds.
//
// Calls made from inside an executor with the context it received join the running txn instead
// of waiting for the engine lock, like a re-entrant call within one ledger transaction.
type txn struct {
	engine *Engine
	head   *types.BlockHead
	undo   []func()
	events []types.Event
}

type txnContextKey struct{}

type savepoint struct {
	undo   int
	events int
}

func (tx *txn) onUndo(fn func()) {
	tx.undo = append(tx.undo, fn)
}

func (tx *txn) emit(event types.Event) {
	tx.events = append(tx.events, event)
}

func (tx *txn) savepoint() savepoint {
	return savepoint{undo: len(tx.undo), events: len(tx.events)}
}

// rollbackTo undoes every change made after sp, newest first.
func (tx *txn) rollbackTo(sp savepoint) {
	for i := len(tx.undo) - 1; i >= sp.undo; i-- {
		tx.undo[i]()
	}
	tx.undo = tx.undo[:sp.undo]
	tx.events = tx.events[:sp.events]
}

// blockHead returns the block the txn runs in, reading it from the clock once.
func (tx *txn) blockHead(ctx context.Context) (types.BlockHead, error) {
	if tx.head != nil {
		return *tx.head, nil
	}

	head, err := tx.engine.clock.Head(ctx)
	if err != nil {
		return types.BlockHead{}, err
	}
	tx.head = &head

	return head, nil
}

// atomically runs fn as one all-or-nothing call. On success the buffered events are delivered in
// order; on failure every change fn made is undone and no event is delivered.
func (e *Engine) atomically(ctx context.Context, fn func(ctx context.Context, tx *txn) error) error {
	if tx, ok := ctx.Value(txnContextKey{}).(*txn); ok && tx.engine == e {
		sp := tx.savepoint()
		if err := fn(ctx, tx); err != nil {
			tx.rollbackTo(sp)
			return err
		}

		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tx := &txn{engine: e}
	txCtx := context.WithValue(ctx, txnContextKey{}, tx)
	if err := fn(txCtx, tx); err != nil {
		tx.rollbackTo(savepoint{})
		return err
	}

	for _, event := range tx.events {
		e.log(ctx).Debugf("emitting %s", event)
		if e.notifier != nil {
			e.notifier.Notify(ctx, event)
		}
	}

	return nil
}
