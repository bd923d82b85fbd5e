package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DAOAction is an auto generated low-level Go binding around an user-defined struct.
type DAOAction struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}

// DAOExecuteResult is the return value of DAO.execute.
type DAOExecuteResult struct {
	ExecResults [][]byte
	FailureMap  *big.Int
}

// DAOMetaData contains the execute entry point of a DAO and the errors it reverts with.
var DAOMetaData = &bind.MetaData{
	ABI: `[{"inputs":[{"internalType":"bytes32","name":"_callId","type":"bytes32"},{"components":[{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"value","type":"uint256"},{"internalType":"bytes","name":"data","type":"bytes"}],"internalType":"struct Action[]","name":"_actions","type":"tuple[]"},{"internalType":"uint256","name":"_allowFailureMap","type":"uint256"}],"name":"execute","outputs":[{"internalType":"bytes[]","name":"execResults","type":"bytes[]"},{"internalType":"uint256","name":"failureMap","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"uint256","name":"index","type":"uint256"}],"name":"ActionFailed","type":"error"},{"inputs":[{"internalType":"address","name":"where","type":"address"},{"internalType":"address","name":"who","type":"address"},{"internalType":"bytes32","name":"permissionId","type":"bytes32"}],"name":"Unauthorized","type":"error"},{"inputs":[],"name":"TooManyActions","type":"error"}]`,
}

// DAO is a binding around the execute entry point of a DAO.
type DAO struct {
	contract *bind.BoundContract
}

// NewDAO creates a new instance of DAO, bound to a specific deployed contract.
func NewDAO(address common.Address, backend bind.ContractBackend) (*DAO, error) {
	parsed, err := DAOMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(address, *parsed, backend, backend, backend)

	return &DAO{contract: contract}, nil
}

// SimulateExecute performs a call of execute (0xc71bf324) without sending a transaction, returning what the
// transaction would return.
//
// Solidity: function execute(bytes32 _callId, (address,uint256,bytes)[] _actions, uint256 _allowFailureMap) returns(bytes[] execResults, uint256 failureMap)
func (_DAO *DAO) SimulateExecute(
	opts *bind.CallOpts,
	callID [32]byte,
	actions []DAOAction,
	allowFailureMap *big.Int,
) (DAOExecuteResult, error) {
	var out []interface{}
	err := _DAO.contract.Call(opts, &out, "execute", callID, actions, allowFailureMap)

	outstruct := new(DAOExecuteResult)
	if err != nil {
		return *outstruct, err
	}

	outstruct.ExecResults = *abi.ConvertType(out[0], new([][]byte)).(*[][]byte)
	outstruct.FailureMap = *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)

	return *outstruct, err
}

// Execute is a paid mutator transaction binding the contract method 0xc71bf324.
//
// Solidity: function execute(bytes32 _callId, (address,uint256,bytes)[] _actions, uint256 _allowFailureMap) returns(bytes[] execResults, uint256 failureMap)
func (_DAO *DAO) Execute(
	opts *bind.TransactOpts,
	callID [32]byte,
	actions []DAOAction,
	allowFailureMap *big.Int,
) (*types.Transaction, error) {
	return _DAO.contract.Transact(opts, "execute", callID, actions, allowFailureMap)
}
