package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalParameters are fixed when a proposal is created and never change afterwards.
type ProposalParameters struct {
	SupportThreshold       Pct    `json:"supportThreshold"`
	ParticipationThreshold Pct    `json:"participationThreshold"`
	StartDate              uint64 `json:"startDate"`
	EndDate                uint64 `json:"endDate"`
	SnapshotBlock          uint64 `json:"snapshotBlock"`
	EarlyExecutionAllowed  bool   `json:"earlyExecutionAllowed"`
}

// Proposal is the stored state of a single proposal.
type Proposal struct {
	ID               uint64             `json:"id"`
	Creator          common.Address     `json:"creator"`
	Parameters       ProposalParameters `json:"parameters"`
	TotalVotingPower *big.Int           `json:"totalVotingPower"`
	Tally            Tally              `json:"tally"`
	Executed         bool               `json:"executed"`
	Actions          []Action           `json:"actions"`
	Metadata         []byte             `json:"metadata"`
}

// Clone returns a deep copy of the proposal.
func (p *Proposal) Clone() *Proposal {
	out := *p
	out.TotalVotingPower = cloneOrZero(p.TotalVotingPower)
	out.Tally = p.Tally.Clone()
	out.Actions = CloneActions(p.Actions)
	out.Metadata = common.CopyBytes(p.Metadata)

	return &out
}

// VoteReceipt records the last option a voter chose on a proposal and the weight it carried.
type VoteReceipt struct {
	Option VoteOption `json:"option"`
	Weight *big.Int   `json:"weight"`
}

// Clone returns a deep copy of the receipt.
func (r VoteReceipt) Clone() VoteReceipt {
	return VoteReceipt{Option: r.Option, Weight: cloneOrZero(r.Weight)}
}

// ProposalStatus is the lifecycle stage of a proposal at a point in time.
type ProposalStatus string

const (
	// ProposalStatusPending means the voting window has not started.
	ProposalStatusPending ProposalStatus = "pending"
	// ProposalStatusOpen means votes are accepted and the outcome is not decided.
	ProposalStatusOpen ProposalStatus = "open"
	// ProposalStatusDecided means the proposal can be executed.
	ProposalStatusDecided ProposalStatus = "decided"
	// ProposalStatusExecuted is terminal.
	ProposalStatusExecuted ProposalStatus = "executed"
	// ProposalStatusExpired means the window closed without a passing outcome. It is terminal.
	ProposalStatusExpired ProposalStatus = "expired"
)
