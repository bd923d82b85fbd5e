package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WeightOracle reads historical voting weights.
//
// Values for a block that is already in the past must never change, which lets callers cache
// them and makes votes immune to balance changes after the snapshot.
type WeightOracle interface {
	// PastVotes returns the voting weight of account at the end of the given block.
	PastVotes(ctx context.Context, account common.Address, block uint64) (*big.Int, error)

	// PastTotalSupply returns the total voting weight at the end of the given block.
	PastTotalSupply(ctx context.Context, block uint64) (*big.Int, error)
}
