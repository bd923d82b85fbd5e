package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"math/big"
)

// Tally accumulates the voting weight cast for each option of a proposal.
type Tally struct {
	Yes     *big.Int `json:"yes"`
	No      *big.Int `json:"no"`
	Abstain *big.Int `json:"abstain"`
}

// NewTally returns an empty tally.
func NewTally() Tally {
	return Tally{
		Yes:     new(big.Int),
		No:      new(big.Int),
		Abstain: new(big.Int),
	}
}

// NewTallyFromUint64 builds a tally from plain integers. Mostly useful in tests and the CLI.
func NewTallyFromUint64(yes, no, abstain uint64) Tally {
	return Tally{
		Yes:     new(big.Int).SetUint64(yes),
		No:      new(big.Int).SetUint64(no),
		Abstain: new(big.Int).SetUint64(abstain),
	}
}

// Clone returns a deep copy of the tally.
func (t Tally) Clone() Tally {
	return Tally{
		Yes:     cloneOrZero(t.Yes),
		No:      cloneOrZero(t.No),
		Abstain: cloneOrZero(t.Abstain),
	}
}

// Total returns yes + no + abstain.
func (t Tally) Total() *big.Int {
	total := new(big.Int).Add(cloneOrZero(t.Yes), cloneOrZero(t.No))

	return total.Add(total, cloneOrZero(t.Abstain))
}

// Add adds weight to the bucket of the given option. Adding to VoteOptionNone is a no-op.
func (t Tally) Add(option VoteOption, weight *big.Int) error {
	bucket, err := t.bucket(option)
	if err != nil || bucket == nil {
		return err
	}
	bucket.Add(bucket, weight)

	return nil
}

// Sub removes weight from the bucket of the given option. Removing from VoteOptionNone is a
// no-op.
func (t Tally) Sub(option VoteOption, weight *big.Int) error {
	bucket, err := t.bucket(option)
	if err != nil || bucket == nil {
		return err
	}
	if bucket.Cmp(weight) < 0 {
		return fmt.Errorf("tally underflow: cannot remove %s from %s bucket holding %s", weight, option, bucket)
	}
	bucket.Sub(bucket, weight)

	return nil
}

func (t Tally) bucket(option VoteOption) (*big.Int, error) {
	switch option {
	case VoteOptionNone:
		return nil, nil
	case VoteOptionYes:
		return t.Yes, nil
	case VoteOptionNo:
		return t.No, nil
	case VoteOptionAbstain:
		return t.Abstain, nil
	default:
		return nil, fmt.Errorf("invalid vote option: %d", uint8(option))
	}
}

func cloneOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(v)
}
