package evm

import (
	"context"
	"errors"
	"math/big"

	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/types"
)

var _ sdk.Clock = (*HeaderClock)(nil)

// HeaderReader is the part of a chain client the clock needs.
type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*gethtypes.Header, error)
}

// HeaderClock reports the latest block header of a chain.
type HeaderClock struct {
	client HeaderReader
}

// NewHeaderClock creates a clock backed by client.
func NewHeaderClock(client HeaderReader) *HeaderClock {
	return &HeaderClock{client: client}
}

// Head returns the number and timestamp of the latest block.
func (c *HeaderClock) Head(ctx context.Context) (types.BlockHead, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return types.BlockHead{}, err
	}
	if header == nil || header.Number == nil {
		return types.BlockHead{}, errors.New("latest header has no block number")
	}

	return types.BlockHead{
		Number:    header.Number.Uint64(),
		Timestamp: header.Time,
	}, nil
}
