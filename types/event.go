package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type EventType string

const (
	EventTypeProposalCreated  EventType = "ProposalCreated"
	EventTypeVoteCast         EventType = "VoteCast"
	EventTypeProposalExecuted EventType = "ProposalExecuted"
	EventTypeSettingsUpdated  EventType = "VoteSettingsUpdated"
)

// Event is a notification emitted by the voting engine for external indexers.
type Event interface {
	EventName() EventType
	String() string
}

// ProposalCreatedEvent is emitted once a proposal is stored.
type ProposalCreatedEvent struct {
	ProposalID uint64
	Creator    common.Address
	Metadata   []byte
}

func (ProposalCreatedEvent) EventName() EventType {
	return EventTypeProposalCreated
}

func (e ProposalCreatedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, creator=%s, metadata=%s",
		e.EventName(), e.ProposalID, e.Creator.Hex(), hexutil.Encode(e.Metadata))
}

// VoteCastEvent is emitted for every accepted vote, including repeated identical votes.
type VoteCastEvent struct {
	ProposalID uint64
	Voter      common.Address
	Option     VoteOption
	Weight     *big.Int
}

func (VoteCastEvent) EventName() EventType {
	return EventTypeVoteCast
}

func (e VoteCastEvent) String() string {
	return fmt.Sprintf("%s: id=%d, voter=%s, option=%s, weight=%s",
		e.EventName(), e.ProposalID, e.Voter.Hex(), e.Option, e.Weight)
}

// ProposalExecutedEvent is emitted after the DAO ran the proposal actions.
type ProposalExecutedEvent struct {
	ProposalID uint64
	Results    []ExecutionResult
}

func (ProposalExecutedEvent) EventName() EventType {
	return EventTypeProposalExecuted
}

func (e ProposalExecutedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, results=%d", e.EventName(), e.ProposalID, len(e.Results))
}

// SettingsUpdatedEvent is emitted when the voting settings change. Open proposals are unaffected.
type SettingsUpdatedEvent struct {
	SupportThreshold       Pct
	ParticipationThreshold Pct
	MinDuration            uint64
}

func (SettingsUpdatedEvent) EventName() EventType {
	return EventTypeSettingsUpdated
}

func (e SettingsUpdatedEvent) String() string {
	return fmt.Sprintf("%s: support=%s, participation=%s, minDuration=%ds",
		e.EventName(), e.SupportThreshold, e.ParticipationThreshold, e.MinDuration)
}
