package memory

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/tokenvoting/sdk/errors"
)

type checkpoint struct {
	block uint64
	value *big.Int
}

// history is a list of checkpoints ordered by block.
type history []checkpoint

func (h history) latest() *big.Int {
	if len(h) == 0 {
		return new(big.Int)
	}

	return h[len(h)-1].value
}

// at returns the value at the end of block.
func (h history) at(block uint64) *big.Int {
	i := sort.Search(len(h), func(i int) bool { return h[i].block > block })
	if i == 0 {
		return new(big.Int)
	}

	return h[i-1].value
}

func (h history) push(block uint64, value *big.Int) history {
	if n := len(h); n > 0 && h[n-1].block == block {
		h[n-1].value = value
		return h
	}

	return append(h, checkpoint{block: block, value: value})
}

// VotesToken is a checkpointed voting token. Every balance change is recorded at the current
// block of its chain, so values at past blocks never change. Balances count as votes directly.
type VotesToken struct {
	chain *Chain

	mu       sync.RWMutex
	balances map[common.Address]history
	supply   history
}

// NewVotesToken creates a token without holders.
func NewVotesToken(chain *Chain) *VotesToken {
	return &VotesToken{
		chain:    chain,
		balances: make(map[common.Address]history),
	}
}

// Mint creates amount tokens for to.
func (t *VotesToken) Mint(to common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	block := t.chain.Current().Number
	t.balances[to] = t.balances[to].push(block, new(big.Int).Add(t.balances[to].latest(), amount))
	t.supply = t.supply.push(block, new(big.Int).Add(t.supply.latest(), amount))
}

// Burn destroys amount tokens of from.
func (t *VotesToken) Burn(from common.Address, amount *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	balance := t.balances[from].latest()
	if balance.Cmp(amount) < 0 {
		return sdkerrors.NewInsufficientBalanceError(from, new(big.Int).Set(balance), amount)
	}

	block := t.chain.Current().Number
	t.balances[from] = t.balances[from].push(block, new(big.Int).Sub(balance, amount))
	t.supply = t.supply.push(block, new(big.Int).Sub(t.supply.latest(), amount))

	return nil
}

// Transfer moves amount tokens from one holder to another.
func (t *VotesToken) Transfer(from, to common.Address, amount *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	balance := t.balances[from].latest()
	if balance.Cmp(amount) < 0 {
		return sdkerrors.NewInsufficientBalanceError(from, new(big.Int).Set(balance), amount)
	}

	block := t.chain.Current().Number
	t.balances[from] = t.balances[from].push(block, new(big.Int).Sub(balance, amount))
	t.balances[to] = t.balances[to].push(block, new(big.Int).Add(t.balances[to].latest(), amount))

	return nil
}

// Votes returns the current voting weight of account.
func (t *VotesToken) Votes(account common.Address) *big.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return new(big.Int).Set(t.balances[account].latest())
}

// TotalSupply returns the current total supply.
func (t *VotesToken) TotalSupply() *big.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return new(big.Int).Set(t.supply.latest())
}

// PastVotes implements sdk.WeightOracle. Only blocks before the current one can be read.
func (t *VotesToken) PastVotes(_ context.Context, account common.Address, block uint64) (*big.Int, error) {
	if current := t.chain.Current().Number; block >= current {
		return nil, sdkerrors.NewFutureLookupError(block, current)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return new(big.Int).Set(t.balances[account].at(block)), nil
}

// PastTotalSupply implements sdk.WeightOracle. Only blocks before the current one can be read.
func (t *VotesToken) PastTotalSupply(_ context.Context, block uint64) (*big.Int, error) {
	if current := t.chain.Current().Number; block >= current {
		return nil, sdkerrors.NewFutureLookupError(block, current)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return new(big.Int).Set(t.supply.at(block)), nil
}
