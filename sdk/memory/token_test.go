package memory

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/tokenvoting/sdk/errors"
)

func TestVotesToken_PastVotes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	alice := common.HexToAddress("0xa11ce")
	bob := common.HexToAddress("0xb0b")

	chain := NewChain(1, 1000)
	token := NewVotesToken(chain)

	token.Mint(alice, big.NewInt(10)) // block 1
	chain.Mine()
	require.NoError(t, token.Transfer(alice, bob, big.NewInt(4))) // block 2
	token.Mint(bob, big.NewInt(1))                                // block 2
	chain.Mine()                                                  // block 3

	tests := []struct {
		name      string
		account   common.Address
		block     uint64
		want      int64
		wantTotal int64
	}{
		{name: "before any mint", account: alice, block: 0, want: 0, wantTotal: 0},
		{name: "after mint", account: alice, block: 1, want: 10, wantTotal: 10},
		{name: "sender after transfer", account: alice, block: 2, want: 6, wantTotal: 11},
		{name: "receiver after transfer and mint", account: bob, block: 2, want: 5, wantTotal: 11},
		{name: "receiver before transfer", account: bob, block: 1, want: 0, wantTotal: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := token.PastVotes(ctx, tt.account, tt.block)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.want), got)

			total, err := token.PastTotalSupply(ctx, tt.block)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.wantTotal), total)
		})
	}
}

func TestVotesToken_FutureLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chain := NewChain(5, 1000)
	token := NewVotesToken(chain)

	_, err := token.PastVotes(ctx, common.HexToAddress("0x1"), 5)
	var futureErr *sdkerrors.FutureLookupError
	require.ErrorAs(t, err, &futureErr)
	assert.Equal(t, uint64(5), futureErr.Block)

	_, err = token.PastTotalSupply(ctx, 6)
	require.ErrorAs(t, err, &futureErr)
}

func TestVotesToken_PastValuesAreImmutable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	alice := common.HexToAddress("0xa11ce")
	chain := NewChain(1, 1000)
	token := NewVotesToken(chain)

	token.Mint(alice, big.NewInt(10))
	chain.Mine()

	before, err := token.PastVotes(ctx, alice, 1)
	require.NoError(t, err)

	token.Mint(alice, big.NewInt(5))
	require.NoError(t, token.Burn(alice, big.NewInt(3)))
	chain.Mine()

	after, err := token.PastVotes(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, big.NewInt(12), token.Votes(alice))
	assert.Equal(t, big.NewInt(12), token.TotalSupply())
}

func TestVotesToken_InsufficientBalance(t *testing.T) {
	t.Parallel()

	alice := common.HexToAddress("0xa11ce")
	token := NewVotesToken(NewChain(1, 1000))
	token.Mint(alice, big.NewInt(1))

	var balanceErr *sdkerrors.InsufficientBalanceError
	require.ErrorAs(t, token.Transfer(alice, common.HexToAddress("0xb0b"), big.NewInt(2)), &balanceErr)
	require.ErrorAs(t, token.Burn(alice, big.NewInt(2)), &balanceErr)
	assert.Equal(t, big.NewInt(1), token.Votes(alice))
}
