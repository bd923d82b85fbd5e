// Package cache wraps a weight oracle with bounded caches. Past weights never change, so cached
// entries are never invalidated, only evicted.
package cache

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/lru"

	"github.com/smartcontractkit/tokenvoting/sdk"
)

const (
	// DefaultVotesCapacity is the default number of (account, block) weights kept.
	DefaultVotesCapacity = 10000

	// DefaultSupplyCapacity is the default number of per block total supplies kept.
	DefaultSupplyCapacity = 1000
)

type votesKey struct {
	account common.Address
	block   uint64
}

// Oracle is a caching sdk.WeightOracle. Errors are not cached.
type Oracle struct {
	inner  sdk.WeightOracle
	votes  *lru.Cache[votesKey, *big.Int]
	supply *lru.Cache[uint64, *big.Int]
}

var _ sdk.WeightOracle = (*Oracle)(nil)

// NewOracle wraps inner with caches of the given capacities. Non-positive capacities fall back to
// the defaults.
func NewOracle(inner sdk.WeightOracle, votesCapacity, supplyCapacity int) *Oracle {
	if votesCapacity <= 0 {
		votesCapacity = DefaultVotesCapacity
	}
	if supplyCapacity <= 0 {
		supplyCapacity = DefaultSupplyCapacity
	}

	return &Oracle{
		inner:  inner,
		votes:  lru.NewCache[votesKey, *big.Int](votesCapacity),
		supply: lru.NewCache[uint64, *big.Int](supplyCapacity),
	}
}

// PastVotes implements sdk.WeightOracle.
func (o *Oracle) PastVotes(ctx context.Context, account common.Address, block uint64) (*big.Int, error) {
	key := votesKey{account: account, block: block}
	if v, ok := o.votes.Get(key); ok {
		return new(big.Int).Set(v), nil
	}

	v, err := o.inner.PastVotes(ctx, account, block)
	if err != nil {
		return nil, err
	}
	o.votes.Add(key, new(big.Int).Set(v))

	return v, nil
}

// PastTotalSupply implements sdk.WeightOracle.
func (o *Oracle) PastTotalSupply(ctx context.Context, block uint64) (*big.Int, error) {
	if v, ok := o.supply.Get(block); ok {
		return new(big.Int).Set(v), nil
	}

	v, err := o.inner.PastTotalSupply(ctx, block)
	if err != nil {
		return nil, err
	}
	o.supply.Add(block, new(big.Int).Set(v))

	return v, nil
}

// Len returns the number of cached weights and total supplies.
func (o *Oracle) Len() (votes, supply int) {
	return o.votes.Len(), o.supply.Len()
}
