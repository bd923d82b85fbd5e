// Package store keeps proposals and voter receipts in memory.
//
// A Store is not safe for concurrent use. The voting engine serializes every call, which is the
// only writer.
package store

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Store holds proposals indexed by their sequential id.
type Store struct {
	proposals []*types.Proposal
	receipts  []map[common.Address]types.VoteReceipt
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of proposals. It is also the id the next proposal will get.
func (s *Store) Len() uint64 {
	return uint64(len(s.proposals))
}

// Append stores a new proposal, assigning it the next id.
func (s *Store) Append(p *types.Proposal) uint64 {
	p.ID = s.Len()
	s.proposals = append(s.proposals, p)
	s.receipts = append(s.receipts, make(map[common.Address]types.VoteReceipt))

	return p.ID
}

// DiscardLast drops the most recently appended proposal. It only exists so that a call that
// failed after appending can be undone, and it refuses to drop anything but the given id.
func (s *Store) DiscardLast(id uint64) error {
	if len(s.proposals) == 0 || s.Len()-1 != id {
		return fmt.Errorf("proposal %d is not the last stored proposal", id)
	}

	s.proposals = s.proposals[:len(s.proposals)-1]
	s.receipts = s.receipts[:len(s.receipts)-1]

	return nil
}

// Get returns the stored proposal. The returned pointer is the stored value; callers mutate it in
// place.
func (s *Store) Get(id uint64) (*types.Proposal, bool) {
	if id >= s.Len() {
		return nil, false
	}

	return s.proposals[id], true
}

// Receipt returns the voter's receipt on a proposal. A voter without a receipt has not voted.
func (s *Store) Receipt(id uint64, voter common.Address) (types.VoteReceipt, bool) {
	if id >= s.Len() {
		return types.VoteReceipt{}, false
	}

	r, ok := s.receipts[id][voter]

	return r, ok
}

// SetReceipt replaces the voter's receipt on a proposal.
func (s *Store) SetReceipt(id uint64, voter common.Address, r types.VoteReceipt) error {
	if id >= s.Len() {
		return fmt.Errorf("proposal %d does not exist", id)
	}

	s.receipts[id][voter] = r

	return nil
}

// ClearReceipt removes the voter's receipt, restoring the "not voted" state.
func (s *Store) ClearReceipt(id uint64, voter common.Address) {
	if id >= s.Len() {
		return
	}

	delete(s.receipts[id], voter)
}

// Voters returns the accounts holding a receipt on a proposal, sorted by address.
func (s *Store) Voters(id uint64) []common.Address {
	if id >= s.Len() {
		return nil
	}

	voters := make([]common.Address, 0, len(s.receipts[id]))
	for voter := range s.receipts[id] {
		voters = append(voters, voter)
	}
	slices.SortFunc(voters, func(a, b common.Address) int {
		return bytes.Compare(a.Bytes(), b.Bytes())
	})

	return voters
}
