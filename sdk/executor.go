package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Executor runs the actions of a passed proposal.
//
// Implementations execute the actions atomically and check that caller holds the execute
// permission. Any returned error means none of the actions took effect.
type Executor interface {
	Execute(
		ctx context.Context,
		caller common.Address,
		callID uint64,
		actions []types.Action,
	) ([]types.ExecutionResult, error)
}
