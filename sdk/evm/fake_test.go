package evm_test

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/tokenvoting/sdk/evm"
)

// fakeBackend answers the calls the evm collaborators make. Any other backend method panics on
// the nil embedded interface.
type fakeBackend struct {
	evm.ContractDeployBackend

	call    func(msg ethereum.CallMsg) ([]byte, error)
	calls   []ethereum.CallMsg
	sent    []*gethtypes.Transaction
	status  uint64
	header  *gethtypes.Header
	headErr error
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	return f.call(msg)
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *gethtypes.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*gethtypes.Receipt, error) {
	for _, tx := range f.sent {
		if tx.Hash() == hash {
			return &gethtypes.Receipt{TxHash: hash, Status: f.status, BlockNumber: big.NewInt(10)}, nil
		}
	}

	return nil, ethereum.NotFound
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*gethtypes.Header, error) {
	return f.header, f.headErr
}

// revertError mimics the JSON-RPC error returned for a reverted eth_call.
type revertError struct {
	data string
}

func (e *revertError) Error() string {
	return "execution reverted"
}

func (e *revertError) ErrorData() interface{} {
	return e.data
}

func newRevertError(parsed *abi.ABI, name string, args ...any) error {
	abiErr, ok := parsed.Errors[name]
	if !ok {
		return errors.New("unknown error " + name)
	}

	packed, err := abiErr.Inputs.Pack(args...)
	if err != nil {
		return err
	}

	return &revertError{data: hexutil.Encode(append(abiErr.ID.Bytes()[:4], packed...))}
}
