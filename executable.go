package tokenvoting

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/tokenvoting/types"
)

// CanExecute reports whether the proposal can be executed now. It has no side effects.
func (e *Engine) CanExecute(ctx context.Context, id uint64) (bool, error) {
	var ok bool
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		p, found := e.proposals.Get(id)
		if !found {
			return NewProposalNotFoundError(id)
		}

		head, err := tx.blockHead(ctx)
		if err != nil {
			return fmt.Errorf("unable to read block head: %w", err)
		}
		ok = canExecute(p, head.Timestamp)

		return nil
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Execute asks the executor to run the actions of a decided proposal and returns their results
// unchanged. A proposal is executed at most once.
func (e *Engine) Execute(ctx context.Context, id uint64) ([]types.ExecutionResult, error) {
	var results []types.ExecutionResult
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		p, ok := e.proposals.Get(id)
		if !ok {
			return NewProposalExecutionForbiddenError(id)
		}

		head, err := tx.blockHead(ctx)
		if err != nil {
			return fmt.Errorf("unable to read block head: %w", err)
		}
		if !canExecute(p, head.Timestamp) {
			e.log(ctx).Debugf("rejecting execution of proposal %d: not executable at %d", id, head.Timestamp)
			return NewProposalExecutionForbiddenError(id)
		}

		results, err = e.execute(ctx, tx, p)

		return err
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// execute marks p executed and runs its actions. The flag is set before the executor is called,
// so a call made by the executor back into the engine sees the proposal as executed.
func (e *Engine) execute(ctx context.Context, tx *txn, p *types.Proposal) ([]types.ExecutionResult, error) {
	p.Executed = true
	tx.onUndo(func() { p.Executed = false })

	e.log(ctx).Infof("executing proposal %d with %d actions", p.ID, len(p.Actions))

	results, err := e.executor.Execute(ctx, e.identity, p.ID, types.CloneActions(p.Actions))
	if err != nil {
		e.log(ctx).Warnf("execution of proposal %d failed: %v", p.ID, err)
		return nil, NewExecutionFailedError(p.ID, err)
	}

	tx.emit(types.ProposalExecutedEvent{
		ProposalID: p.ID,
		Results:    results,
	})

	return results, nil
}
