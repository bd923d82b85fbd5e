package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/sdk/evm/bindings"
)

var _ sdk.WeightOracle = (*VotesOracle)(nil)

// VotesOracle is a WeightOracle reading the checkpoints of an ERC20Votes token.
type VotesOracle struct {
	client bind.ContractCaller
	token  common.Address
}

// NewVotesOracle creates a new VotesOracle for the token at the given address.
func NewVotesOracle(client bind.ContractCaller, token common.Address) *VotesOracle {
	return &VotesOracle{
		client: client,
		token:  token,
	}
}

// PastVotes gets the voting weight of account at the end of block.
func (o *VotesOracle) PastVotes(ctx context.Context, account common.Address, block uint64) (*big.Int, error) {
	token, err := bindings.NewIVotes(o.token, o.client)
	if err != nil {
		return nil, err
	}

	votes, err := token.GetPastVotes(&bind.CallOpts{Context: ctx}, account, new(big.Int).SetUint64(block))
	if err != nil {
		return nil, fmt.Errorf("getPastVotes(%s, %d): %w", account.Hex(), block, DecodeRevert(err))
	}

	return votes, nil
}

// PastTotalSupply gets the total supply at the end of block.
func (o *VotesOracle) PastTotalSupply(ctx context.Context, block uint64) (*big.Int, error) {
	token, err := bindings.NewIVotes(o.token, o.client)
	if err != nil {
		return nil, err
	}

	supply, err := token.GetPastTotalSupply(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(block))
	if err != nil {
		return nil, fmt.Errorf("getPastTotalSupply(%d): %w", block, DecodeRevert(err))
	}

	return supply, nil
}
