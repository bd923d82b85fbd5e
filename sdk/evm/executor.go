package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/sdk/evm/bindings"
	"github.com/smartcontractkit/tokenvoting/types"
)

var _ sdk.Executor = (*DAOExecutor)(nil)

// DAOExecutor is an Executor asking a DAO contract to run actions with execute(bytes32,
// Action[], uint256). No failure is allowed, so a single failing action reverts the execution.
type DAOExecutor struct {
	client ContractDeployBackend
	dao    common.Address
	auth   *bind.TransactOpts
}

// NewDAOExecutor creates a new DAOExecutor. The transactor address is the caller identity the
// DAO sees and must hold its execute permission.
func NewDAOExecutor(client ContractDeployBackend, dao common.Address, auth *bind.TransactOpts) *DAOExecutor {
	return &DAOExecutor{
		client: client,
		dao:    dao,
		auth:   auth,
	}
}

// Execute simulates the execution to capture the return data of every action, then sends the
// transaction and waits for it to be mined.
func (e *DAOExecutor) Execute(
	ctx context.Context,
	caller common.Address,
	callID uint64,
	actions []types.Action,
) ([]types.ExecutionResult, error) {
	if caller != e.auth.From {
		return nil, fmt.Errorf("caller %s does not match transactor %s", caller.Hex(), e.auth.From.Hex())
	}

	dao, err := bindings.NewDAO(e.dao, e.client)
	if err != nil {
		return nil, err
	}

	id := callIDToBytes32(callID)
	gethActions := toGethActions(actions)
	allowFailureMap := new(big.Int)

	simulated, err := dao.SimulateExecute(&bind.CallOpts{Context: ctx, From: caller}, id, gethActions, allowFailureMap)
	if err != nil {
		return nil, DecodeRevert(err)
	}

	opts := *e.auth
	opts.Context = ctx

	tx, err := dao.Execute(&opts, id, gethActions, allowFailureMap)
	if err != nil {
		return nil, DecodeRevert(err)
	}

	receipt, err := bind.WaitMined(ctx, e.client, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for execute transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("execute transaction %s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}

	return toExecutionResults(simulated.ExecResults), nil
}
