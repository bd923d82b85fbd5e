package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Action is a single call a DAO executes on behalf of a passed proposal. The engine treats it as
// opaque data.
type Action struct {
	To    common.Address `json:"to" yaml:"to"`
	Value *big.Int       `json:"value" yaml:"value"`
	Data  []byte         `json:"data" yaml:"data"`
}

// Clone returns a deep copy of the action.
func (a Action) Clone() Action {
	out := Action{
		To:   a.To,
		Data: common.CopyBytes(a.Data),
	}
	if a.Value != nil {
		out.Value = new(big.Int).Set(a.Value)
	}

	return out
}

// CloneActions returns a deep copy of a list of actions. The result is never nil.
func CloneActions(actions []Action) []Action {
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = a.Clone()
	}

	return out
}

// ExecutionResult is the raw return data of a single executed action.
type ExecutionResult []byte
