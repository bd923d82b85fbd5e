package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Chain is a manually driven block clock. Every mined block moves the timestamp forward by at
// least one second.
type Chain struct {
	mu   sync.RWMutex
	head types.BlockHead
}

// NewChain starts a chain at the given block number and timestamp.
func NewChain(number, timestamp uint64) *Chain {
	return &Chain{head: types.BlockHead{Number: number, Timestamp: timestamp}}
}

// Head implements sdk.Clock.
func (c *Chain) Head(context.Context) (types.BlockHead, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.head, nil
}

// Current returns the head without a context.
func (c *Chain) Current() types.BlockHead {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.head
}

// Mine mines a single block one second after the current one.
func (c *Chain) Mine() types.BlockHead {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.head.Number++
	c.head.Timestamp++

	return c.head
}

// AdvanceTime mines a block the given number of seconds after the current one.
func (c *Chain) AdvanceTime(seconds uint64) types.BlockHead {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.head.Number++
	c.head.Timestamp += max(seconds, 1)

	return c.head
}

// AdvanceTo mines a block with the given timestamp.
func (c *Chain) AdvanceTo(timestamp uint64) (types.BlockHead, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timestamp <= c.head.Timestamp {
		return c.head, fmt.Errorf("timestamp %d is not after the current block timestamp %d", timestamp, c.head.Timestamp)
	}

	c.head.Number++
	c.head.Timestamp = timestamp

	return c.head, nil
}
