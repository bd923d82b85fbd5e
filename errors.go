package tokenvoting

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrAlreadyInitialized is returned when Initialize is called more than once.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized is returned by calls that need the voting settings before Initialize.
	ErrNotInitialized = errors.New("not initialized")

	// ErrVoteDurationZero is returned when the minimum voting duration is 0.
	ErrVoteDurationZero = errors.New("vote duration zero")

	// ErrNoVotingPower is returned when the total supply at the snapshot block is 0.
	ErrNoVotingPower = errors.New("no voting power")
)

// VotingPeriodInvalidError is returned when a proposal's voting window starts in the past or is
// shorter than the minimum duration.
type VotingPeriodInvalidError struct {
	Current     uint64
	StartDate   uint64
	EndDate     uint64
	MinDuration uint64
}

func NewVotingPeriodInvalidError(current, start, end, minDuration uint64) *VotingPeriodInvalidError {
	return &VotingPeriodInvalidError{
		Current:     current,
		StartDate:   start,
		EndDate:     end,
		MinDuration: minDuration,
	}
}

func (e *VotingPeriodInvalidError) Error() string {
	return fmt.Sprintf("voting period invalid: current %d, start %d, end %d, min duration %d",
		e.Current, e.StartDate, e.EndDate, e.MinDuration)
}

// VoteCastForbiddenError is returned when an account may not vote on a proposal.
type VoteCastForbiddenError struct {
	ProposalID uint64
	Account    common.Address
	Reason     string
}

func NewVoteCastForbiddenError(id uint64, account common.Address, reason string) *VoteCastForbiddenError {
	return &VoteCastForbiddenError{ProposalID: id, Account: account, Reason: reason}
}

func (e *VoteCastForbiddenError) Error() string {
	return fmt.Sprintf("vote cast forbidden on proposal %d for %s: %s", e.ProposalID, e.Account.Hex(), e.Reason)
}

// ProposalExecutionForbiddenError is returned when a proposal is not decided or already executed.
type ProposalExecutionForbiddenError struct {
	ProposalID uint64
}

func NewProposalExecutionForbiddenError(id uint64) *ProposalExecutionForbiddenError {
	return &ProposalExecutionForbiddenError{ProposalID: id}
}

func (e *ProposalExecutionForbiddenError) Error() string {
	return fmt.Sprintf("proposal execution forbidden: %d", e.ProposalID)
}

// ProposalNotFoundError is returned by views for an unknown proposal id.
type ProposalNotFoundError struct {
	ProposalID uint64
}

func NewProposalNotFoundError(id uint64) *ProposalNotFoundError {
	return &ProposalNotFoundError{ProposalID: id}
}

func (e *ProposalNotFoundError) Error() string {
	return fmt.Sprintf("proposal not found: %d", e.ProposalID)
}

// ExecutionFailedError wraps an error returned by the executor. The call that triggered the
// execution is rejected as a whole.
type ExecutionFailedError struct {
	ProposalID uint64
	Err        error
}

func NewExecutionFailedError(id uint64, err error) *ExecutionFailedError {
	return &ExecutionFailedError{ProposalID: id, Err: err}
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("execution of proposal %d failed: %v", e.ProposalID, e.Err)
}

func (e *ExecutionFailedError) Unwrap() error {
	return e.Err
}
