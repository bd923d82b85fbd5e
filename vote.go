package tokenvoting

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Vote casts or replaces voter's vote on a proposal. A repeated vote first removes the weight of
// the previous one, so the voter's weight is counted once.
//
// When tryEarlyExecution is set and the proposal can be executed after the vote, it is executed in
// the same call. A failing execution rejects the vote as well.
func (e *Engine) Vote(
	ctx context.Context,
	voter common.Address,
	id uint64,
	option types.VoteOption,
	tryEarlyExecution bool,
) error {
	return e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		return e.vote(ctx, tx, voter, id, option, tryEarlyExecution)
	})
}

// CanVote reports whether account could vote on the proposal now. It does not check a specific
// option; any option other than VoteOptionNone is accepted by Vote when this returns true.
func (e *Engine) CanVote(ctx context.Context, id uint64, account common.Address) (bool, error) {
	var ok bool
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		p, found := e.proposals.Get(id)
		if !found {
			return NewProposalNotFoundError(id)
		}

		reason, _, err := e.voteForbidden(ctx, tx, p, account, types.VoteOptionYes)
		if err != nil {
			return err
		}
		ok = reason == ""

		return nil
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

// GetVoteOption returns the option voter last chose on a proposal, VoteOptionNone when the voter
// has not voted.
func (e *Engine) GetVoteOption(ctx context.Context, id uint64, voter common.Address) (types.VoteOption, error) {
	receipt, err := e.GetVoteReceipt(ctx, id, voter)
	if err != nil {
		return types.VoteOptionNone, err
	}

	return receipt.Option, nil
}

// GetVoteReceipt returns the option and weight of voter's last vote on a proposal. A voter that
// has not voted gets a receipt with VoteOptionNone and zero weight.
func (e *Engine) GetVoteReceipt(ctx context.Context, id uint64, voter common.Address) (types.VoteReceipt, error) {
	var receipt types.VoteReceipt
	err := e.atomically(ctx, func(context.Context, *txn) error {
		if _, ok := e.proposals.Get(id); !ok {
			return NewProposalNotFoundError(id)
		}

		r, ok := e.proposals.Receipt(id, voter)
		if !ok {
			receipt = types.VoteReceipt{Option: types.VoteOptionNone, Weight: new(big.Int)}
			return nil
		}
		receipt = r.Clone()

		return nil
	})

	return receipt, err
}

// Voters returns the accounts holding a vote on a proposal, sorted by address.
func (e *Engine) Voters(ctx context.Context, id uint64) ([]common.Address, error) {
	var voters []common.Address
	err := e.atomically(ctx, func(context.Context, *txn) error {
		if _, ok := e.proposals.Get(id); !ok {
			return NewProposalNotFoundError(id)
		}
		voters = e.proposals.Voters(id)

		return nil
	})

	return voters, err
}

func (e *Engine) vote(
	ctx context.Context,
	tx *txn,
	voter common.Address,
	id uint64,
	option types.VoteOption,
	tryEarlyExecution bool,
) error {
	p, ok := e.proposals.Get(id)
	if !ok {
		return NewVoteCastForbiddenError(id, voter, "proposal does not exist")
	}

	reason, weight, err := e.voteForbidden(ctx, tx, p, voter, option)
	if err != nil {
		return err
	}
	if reason != "" {
		e.log(ctx).Debugf("rejecting vote of %s on proposal %d: %s", voter.Hex(), id, reason)
		return NewVoteCastForbiddenError(id, voter, reason)
	}

	prevTally := p.Tally.Clone()
	prevReceipt, hadReceipt := e.proposals.Receipt(id, voter)
	tx.onUndo(func() {
		p.Tally = prevTally
		if hadReceipt {
			// the proposal exists, so restoring its receipt cannot fail
			_ = e.proposals.SetReceipt(id, voter, prevReceipt)
		} else {
			e.proposals.ClearReceipt(id, voter)
		}
	})

	if hadReceipt {
		if err := p.Tally.Sub(prevReceipt.Option, prevReceipt.Weight); err != nil {
			return fmt.Errorf("unable to remove previous vote of %s on proposal %d: %w", voter.Hex(), id, err)
		}
	}
	if err := p.Tally.Add(option, weight); err != nil {
		return err
	}
	if err := e.proposals.SetReceipt(id, voter, types.VoteReceipt{Option: option, Weight: new(big.Int).Set(weight)}); err != nil {
		return err
	}

	tx.emit(types.VoteCastEvent{
		ProposalID: id,
		Voter:      voter,
		Option:     option,
		Weight:     new(big.Int).Set(weight),
	})

	e.log(ctx).Debugf("vote of %s on proposal %d: %s with weight %s", voter.Hex(), id, option, weight)

	if !tryEarlyExecution {
		return nil
	}

	head, err := tx.blockHead(ctx)
	if err != nil {
		return fmt.Errorf("unable to read block head: %w", err)
	}
	if !canExecute(p, head.Timestamp) {
		return nil
	}

	_, err = e.execute(ctx, tx, p)

	return err
}

// voteForbidden returns a non-empty reason when voter may not vote option on p now, and the
// voter's snapshot weight otherwise.
func (e *Engine) voteForbidden(
	ctx context.Context,
	tx *txn,
	p *types.Proposal,
	voter common.Address,
	option types.VoteOption,
) (string, *big.Int, error) {
	if option == types.VoteOptionNone || !option.IsValid() {
		return fmt.Sprintf("vote option %s not allowed", option), nil, nil
	}

	head, err := tx.blockHead(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("unable to read block head: %w", err)
	}

	switch {
	case p.Executed:
		return "proposal already executed", nil, nil
	case head.Timestamp < p.Parameters.StartDate:
		return "voting has not started", nil, nil
	case head.Timestamp >= p.Parameters.EndDate:
		return "voting has ended", nil, nil
	}

	weight, err := e.oracle.PastVotes(ctx, voter, p.Parameters.SnapshotBlock)
	if err != nil {
		return "", nil, fmt.Errorf("unable to read voting power of %s at block %d: %w",
			voter.Hex(), p.Parameters.SnapshotBlock, err)
	}
	if weight == nil || weight.Sign() <= 0 {
		return "no voting power at snapshot", nil, nil
	}

	return "", weight, nil
}
