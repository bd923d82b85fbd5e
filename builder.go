package tokenvoting

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/types"
)

// ProposalBuilder assembles the params of a new proposal.
type ProposalBuilder struct {
	params CreateProposalParams
}

// NewProposalBuilder creates a new ProposalBuilder. Without further calls it describes a proposal
// without actions that starts now and lasts the minimum duration.
func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{
		params: CreateProposalParams{
			Actions:     []types.Action{},
			InitialVote: types.VoteOptionNone,
		},
	}
}

// SetMetadata sets the metadata of the proposal.
func (b *ProposalBuilder) SetMetadata(metadata []byte) *ProposalBuilder {
	b.params.Metadata = common.CopyBytes(metadata)
	return b
}

// SetDescription sets the metadata of the proposal to a plain text description.
func (b *ProposalBuilder) SetDescription(description string) *ProposalBuilder {
	b.params.Metadata = []byte(description)
	return b
}

// AddAction adds an action to the end of the proposal.
func (b *ProposalBuilder) AddAction(action types.Action) *ProposalBuilder {
	b.params.Actions = append(b.params.Actions, action.Clone())
	return b
}

// AddCall adds an action calling to with the given value and calldata.
func (b *ProposalBuilder) AddCall(to common.Address, value *big.Int, data []byte) *ProposalBuilder {
	return b.AddAction(types.Action{To: to, Value: value, Data: data})
}

// SetActions sets all the actions of the proposal.
func (b *ProposalBuilder) SetActions(actions []types.Action) *ProposalBuilder {
	b.params.Actions = types.CloneActions(actions)
	return b
}

// SetStartDate sets the start of the voting window. 0 means the time of creation.
func (b *ProposalBuilder) SetStartDate(startDate uint64) *ProposalBuilder {
	b.params.StartDate = startDate
	return b
}

// SetEndDate sets the end of the voting window. 0 means start plus the minimum duration.
func (b *ProposalBuilder) SetEndDate(endDate uint64) *ProposalBuilder {
	b.params.EndDate = endDate
	return b
}

// SetVotingWindow sets the start of the voting window and its length.
func (b *ProposalBuilder) SetVotingWindow(startDate uint64, duration types.Duration) *ProposalBuilder {
	b.params.StartDate = startDate
	b.params.EndDate = startDate + duration.Uint64Seconds()

	return b
}

// SetEarlyExecutionAllowed sets whether the proposal may be executed before its end date.
func (b *ProposalBuilder) SetEarlyExecutionAllowed(allowed bool) *ProposalBuilder {
	b.params.EarlyExecutionAllowed = allowed
	return b
}

// SetInitialVote makes the creator vote in the creation call.
func (b *ProposalBuilder) SetInitialVote(option types.VoteOption, tryEarlyExecution bool) *ProposalBuilder {
	b.params.InitialVote = option
	b.params.TryEarlyExecution = tryEarlyExecution

	return b
}

// Build validates and returns the constructed params.
func (b *ProposalBuilder) Build() (CreateProposalParams, error) {
	if err := b.params.Validate(); err != nil {
		return CreateProposalParams{}, err
	}

	out := b.params
	out.Metadata = common.CopyBytes(b.params.Metadata)
	out.Actions = types.CloneActions(b.params.Actions)

	return out, nil
}
