package store

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenvoting/types"
)

func Test_Store_AppendGet(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, uint64(0), s.Len())

	_, ok := s.Get(0)
	assert.False(t, ok)

	id0 := s.Append(&types.Proposal{Metadata: []byte("a")})
	id1 := s.Append(&types.Proposal{Metadata: []byte("b")})

	assert.Equal(t, uint64(0), id0)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), s.Len())

	p, ok := s.Get(id1)
	require.True(t, ok)
	assert.Equal(t, id1, p.ID)
	assert.Equal(t, []byte("b"), p.Metadata)

	// mutations through the returned pointer are stored
	p.Executed = true
	p2, _ := s.Get(id1)
	assert.True(t, p2.Executed)
}

func Test_Store_DiscardLast(t *testing.T) {
	t.Parallel()

	s := New()
	s.Append(&types.Proposal{})
	id := s.Append(&types.Proposal{})

	require.EqualError(t, s.DiscardLast(0), "proposal 0 is not the last stored proposal")
	require.NoError(t, s.DiscardLast(id))
	assert.Equal(t, uint64(1), s.Len())

	// the next proposal takes the discarded id again
	assert.Equal(t, id, s.Append(&types.Proposal{}))

	empty := New()
	require.Error(t, empty.DiscardLast(0))
}

func Test_Store_Receipts(t *testing.T) {
	t.Parallel()

	var (
		alice = common.HexToAddress("0x2")
		bob   = common.HexToAddress("0x1")
	)

	s := New()
	id := s.Append(&types.Proposal{})

	_, ok := s.Receipt(id, alice)
	assert.False(t, ok)

	require.NoError(t, s.SetReceipt(id, alice, types.VoteReceipt{Option: types.VoteOptionYes, Weight: big.NewInt(3)}))
	require.NoError(t, s.SetReceipt(id, bob, types.VoteReceipt{Option: types.VoteOptionNo, Weight: big.NewInt(1)}))

	r, ok := s.Receipt(id, alice)
	require.True(t, ok)
	assert.Equal(t, types.VoteOptionYes, r.Option)
	assert.Equal(t, int64(3), r.Weight.Int64())

	assert.Equal(t, []common.Address{bob, alice}, s.Voters(id))

	s.ClearReceipt(id, alice)
	_, ok = s.Receipt(id, alice)
	assert.False(t, ok)

	require.EqualError(t, s.SetReceipt(5, alice, types.VoteReceipt{}), "proposal 5 does not exist")
	_, ok = s.Receipt(5, alice)
	assert.False(t, ok)
	assert.Nil(t, s.Voters(5))
}
