package sdk

import (
	"context"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Clock reports the block a call is executed in.
type Clock interface {
	Head(ctx context.Context) (types.BlockHead, error)
}
