// Package tally decides proposals from their accumulated votes.
//
// Nothing here is stored: decisions are always derived from the current tally and the current
// time, so a deadline passing is reflected without any scheduled transition. All ratios are
// compared by cross-multiplication against types.PctBase, never with floating point.
package tally

import (
	"math/big"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Input is everything the decision rules look at.
type Input struct {
	Tally                  types.Tally
	TotalVotingPower       *big.Int
	SupportThreshold       types.Pct
	ParticipationThreshold types.Pct
}

// NewInput builds an Input from a stored proposal.
func NewInput(p *types.Proposal) Input {
	return Input{
		Tally:                  p.Tally,
		TotalVotingPower:       p.TotalVotingPower,
		SupportThreshold:       p.Parameters.SupportThreshold,
		ParticipationThreshold: p.Parameters.ParticipationThreshold,
	}
}

// Result is the evaluated state of a proposal at a point in time.
type Result struct {
	SupportReached       bool
	ParticipationReached bool
	EarlySupportReached  bool
	// Decided is true when the proposal may be executed under the rule that applies at the
	// evaluated time.
	Decided bool
}

var base = new(big.Int).SetUint64(types.PctBase)

// SupportReached reports whether yes > (yes + no) * supportThreshold. Abstain votes are not part
// of the support ratio. With no yes or no votes the condition fails.
func SupportReached(in Input) bool {
	yes, no := value(in.Tally.Yes), value(in.Tally.No)

	lhs := new(big.Int).Mul(yes, base)
	rhs := in.SupportThreshold.MulBig(new(big.Int).Add(yes, no))

	return lhs.Cmp(rhs) > 0
}

// ParticipationReached reports whether yes + no + abstain >= totalVotingPower *
// participationThreshold.
func ParticipationReached(in Input) bool {
	lhs := new(big.Int).Mul(in.Tally.Total(), base)
	rhs := in.ParticipationThreshold.MulBig(value(in.TotalVotingPower))

	return lhs.Cmp(rhs) >= 0
}

// EarlySupportReached reports whether the outcome is locked in before the deadline: support holds
// and yes > supportThreshold * (totalVotingPower - no).
func EarlySupportReached(in Input) bool {
	if !SupportReached(in) {
		return false
	}

	yes, no := value(in.Tally.Yes), value(in.Tally.No)

	remaining := new(big.Int).Sub(value(in.TotalVotingPower), no)
	if remaining.Sign() < 0 {
		remaining.SetInt64(0)
	}

	lhs := new(big.Int).Mul(yes, base)
	rhs := in.SupportThreshold.MulBig(remaining)

	return lhs.Cmp(rhs) > 0
}

// Evaluate applies the decision rules at time now. Before endDate only the early rule can decide
// the proposal, and only when early execution is allowed. At or after endDate support and
// participation must both hold.
func Evaluate(in Input, now, endDate uint64, earlyExecutionAllowed bool) Result {
	res := Result{
		SupportReached:       SupportReached(in),
		ParticipationReached: ParticipationReached(in),
		EarlySupportReached:  EarlySupportReached(in),
	}

	if now < endDate {
		res.Decided = earlyExecutionAllowed && res.EarlySupportReached
	} else {
		res.Decided = res.SupportReached && res.ParticipationReached
	}

	return res
}

func value(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}
