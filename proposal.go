package tokenvoting

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/tokenvoting/internal/core/tally"
	"github.com/smartcontractkit/tokenvoting/types"
)

// CreateProposalParams describes a new proposal.
type CreateProposalParams struct {
	// Metadata is an opaque pointer to the proposal description, e.g. an IPFS URI.
	Metadata []byte `json:"metadata"`

	// Actions run in order when the proposal is executed.
	Actions []types.Action `json:"actions" validate:"dive"`

	// StartDate is the first second votes are accepted. 0 means the current block time.
	StartDate uint64 `json:"startDate"`

	// EndDate is the first second votes are no longer accepted. 0 means StartDate plus the
	// minimum duration.
	EndDate uint64 `json:"endDate"`

	// EarlyExecutionAllowed lets the proposal be executed before EndDate once the outcome can no
	// longer change.
	EarlyExecutionAllowed bool `json:"earlyExecutionAllowed"`

	// InitialVote is cast by the creator in the same call unless it is VoteOptionNone.
	InitialVote types.VoteOption `json:"initialVote"`

	// TryEarlyExecution executes the proposal in the same call if the initial vote decides it.
	TryEarlyExecution bool `json:"tryEarlyExecution"`
}

// Validate runs the tag based checks of the params.
func (p CreateProposalParams) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}

	if !p.InitialVote.IsValid() {
		return fmt.Errorf("invalid initial vote option: %d", uint8(p.InitialVote))
	}

	return nil
}

// ProposalView is a read-only snapshot of a proposal.
type ProposalView struct {
	types.Proposal

	Open   bool                 `json:"open"`
	Status types.ProposalStatus `json:"status"`
}

// CreateProposal stores a new proposal on behalf of creator and returns its id.
func (e *Engine) CreateProposal(ctx context.Context, creator common.Address, params CreateProposalParams) (uint64, error) {
	var id uint64
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		var err error
		id, err = e.createProposal(ctx, tx, creator, params)

		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (e *Engine) createProposal(
	ctx context.Context,
	tx *txn,
	creator common.Address,
	params CreateProposalParams,
) (uint64, error) {
	if e.settings == nil {
		return 0, ErrNotInitialized
	}
	if err := params.Validate(); err != nil {
		return 0, err
	}

	head, err := tx.blockHead(ctx)
	if err != nil {
		return 0, fmt.Errorf("unable to read block head: %w", err)
	}

	minDuration := e.settings.MinDuration
	startDate, endDate := params.StartDate, params.EndDate
	if startDate == 0 {
		startDate = head.Timestamp
	}
	if endDate == 0 {
		endDate = startDate + minDuration
		if endDate < startDate {
			return 0, NewVotingPeriodInvalidError(head.Timestamp, startDate, endDate, minDuration)
		}
	}
	if startDate < head.Timestamp || endDate <= startDate || endDate-startDate < minDuration {
		return 0, NewVotingPeriodInvalidError(head.Timestamp, startDate, endDate, minDuration)
	}

	snapshotBlock := uint64(0)
	if head.Number > 0 {
		snapshotBlock = head.Number - 1
	}

	totalVotingPower, err := e.oracle.PastTotalSupply(ctx, snapshotBlock)
	if err != nil {
		return 0, fmt.Errorf("unable to read total supply at block %d: %w", snapshotBlock, err)
	}
	if totalVotingPower == nil || totalVotingPower.Sign() <= 0 {
		return 0, ErrNoVotingPower
	}

	proposalParams := e.settings.parameters()
	proposalParams.StartDate = startDate
	proposalParams.EndDate = endDate
	proposalParams.SnapshotBlock = snapshotBlock
	proposalParams.EarlyExecutionAllowed = params.EarlyExecutionAllowed

	actions := types.CloneActions(params.Actions)
	for i := range actions {
		if actions[i].Value == nil {
			actions[i].Value = new(big.Int)
		}
	}

	proposal := &types.Proposal{
		Creator:          creator,
		Parameters:       proposalParams,
		TotalVotingPower: new(big.Int).Set(totalVotingPower),
		Tally:            types.NewTally(),
		Actions:          actions,
		Metadata:         common.CopyBytes(params.Metadata),
	}

	id := e.proposals.Append(proposal)
	tx.onUndo(func() {
		// the store only refuses when something else was appended after us, which the journal
		// order rules out
		_ = e.proposals.DiscardLast(id)
	})

	tx.emit(types.ProposalCreatedEvent{
		ProposalID: id,
		Creator:    creator,
		Metadata:   common.CopyBytes(params.Metadata),
	})

	e.log(ctx).Infof("proposal %d created by %s: window [%d, %d), snapshot block %d, total voting power %s",
		id, creator.Hex(), startDate, endDate, snapshotBlock, totalVotingPower)

	if params.InitialVote != types.VoteOptionNone {
		if err := e.vote(ctx, tx, creator, id, params.InitialVote, params.TryEarlyExecution); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// GetProposal returns a snapshot of the proposal evaluated at the current block.
func (e *Engine) GetProposal(ctx context.Context, id uint64) (ProposalView, error) {
	var view ProposalView
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		p, ok := e.proposals.Get(id)
		if !ok {
			return NewProposalNotFoundError(id)
		}

		head, err := tx.blockHead(ctx)
		if err != nil {
			return fmt.Errorf("unable to read block head: %w", err)
		}

		view = ProposalView{
			Proposal: *p.Clone(),
			Open:     isOpen(p, head.Timestamp),
			Status:   status(p, head.Timestamp),
		}

		return nil
	})

	return view, err
}

// isOpen reports whether votes are accepted at time now.
func isOpen(p *types.Proposal, now uint64) bool {
	return !p.Executed && p.Parameters.StartDate <= now && now < p.Parameters.EndDate
}

// canExecute reports whether the proposal may be executed at time now.
func canExecute(p *types.Proposal, now uint64) bool {
	if p.Executed {
		return false
	}

	res := tally.Evaluate(tally.NewInput(p), now, p.Parameters.EndDate, p.Parameters.EarlyExecutionAllowed)

	return res.Decided
}

func status(p *types.Proposal, now uint64) types.ProposalStatus {
	switch {
	case p.Executed:
		return types.ProposalStatusExecuted
	case canExecute(p, now):
		return types.ProposalStatusDecided
	case now < p.Parameters.StartDate:
		return types.ProposalStatusPending
	case now < p.Parameters.EndDate:
		return types.ProposalStatusOpen
	default:
		return types.ProposalStatusExpired
	}
}
