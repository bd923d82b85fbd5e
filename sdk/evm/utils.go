package evm

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/sdk/evm/bindings"
	"github.com/smartcontractkit/tokenvoting/types"
)

type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// toGethActions converts actions to the DAO binding struct.
func toGethActions(actions []types.Action) []bindings.DAOAction {
	out := make([]bindings.DAOAction, 0, len(actions))
	for _, a := range actions {
		value := a.Value
		if value == nil {
			value = new(big.Int)
		}

		out = append(out, bindings.DAOAction{
			To:    a.To,
			Value: new(big.Int).Set(value),
			Data:  common.CopyBytes(a.Data),
		})
	}

	return out
}

// callIDToBytes32 left-pads the call id to 32 bytes, matching bytes32(uint256(proposalId)).
func callIDToBytes32(callID uint64) [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[24:], callID)

	return out
}

// toExecutionResults converts raw return data to execution results.
func toExecutionResults(raw [][]byte) []types.ExecutionResult {
	out := make([]types.ExecutionResult, len(raw))
	for i, r := range raw {
		out[i] = types.ExecutionResult(common.CopyBytes(r))
	}

	return out
}
