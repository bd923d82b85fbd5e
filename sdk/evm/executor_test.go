package evm_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/tokenvoting/sdk/errors"
	"github.com/smartcontractkit/tokenvoting/sdk/evm"
	"github.com/smartcontractkit/tokenvoting/sdk/evm/bindings"
	"github.com/smartcontractkit/tokenvoting/types"
)

func newTransactor(t *testing.T) *bind.TransactOpts {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.NoError(t, err)
	auth.Nonce = big.NewInt(0)
	auth.GasPrice = big.NewInt(1)
	auth.GasLimit = 1_000_000

	return auth
}

func TestDAOExecutor_Execute(t *testing.T) {
	t.Parallel()

	daoAddress := common.HexToAddress("0xda0")
	permission := crypto.Keccak256Hash([]byte("EXECUTE_PERMISSION"))
	actions := []types.Action{
		{To: common.HexToAddress("0x1"), Value: big.NewInt(5), Data: []byte{0xab}},
		{To: common.HexToAddress("0x2")},
	}

	parsed, err := bindings.DAOMetaData.GetAbi()
	require.NoError(t, err)
	method := parsed.Methods["execute"]

	tests := []struct {
		name      string
		caller    func(auth *bind.TransactOpts) common.Address
		status    uint64
		call      func(t *testing.T, auth *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error)
		want      []types.ExecutionResult
		wantSent  int
		wantErr   string
		wantErrAs func(t *testing.T, err error)
	}{
		{
			name:   "success",
			status: gethtypes.ReceiptStatusSuccessful,
			call: func(t *testing.T, auth *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error) {
				return func(msg ethereum.CallMsg) ([]byte, error) {
					assert.Equal(t, auth.From, msg.From)
					assert.Equal(t, daoAddress, *msg.To)

					args, err := method.Inputs.Unpack(msg.Data[4:])
					require.NoError(t, err)
					callID := args[0].([32]byte)
					assert.Equal(t, byte(9), callID[31])
					assert.Equal(t, "0", args[2].(*big.Int).String())

					return method.Outputs.Pack([][]byte{{0x01}, {}}, big.NewInt(0))
				}
			},
			want:     []types.ExecutionResult{{0x01}, {}},
			wantSent: 1,
		},
		{
			name: "unauthorized revert",
			call: func(*testing.T, *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error) {
				return func(msg ethereum.CallMsg) ([]byte, error) {
					return nil, newRevertError(parsed, "Unauthorized", daoAddress, msg.From, [32]byte(permission))
				}
			},
			wantErrAs: func(t *testing.T, err error) {
				t.Helper()

				var permErr *sdkerrors.PermissionUnauthorizedError
				require.ErrorAs(t, err, &permErr)
				assert.Equal(t, daoAddress, permErr.Where)
				assert.Equal(t, common.Hash(permission), permErr.PermissionID)
			},
		},
		{
			name: "action failed revert",
			call: func(*testing.T, *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error) {
				return func(ethereum.CallMsg) ([]byte, error) {
					return nil, newRevertError(parsed, "ActionFailed", big.NewInt(1))
				}
			},
			wantErrAs: func(t *testing.T, err error) {
				t.Helper()

				require.Equal(t, sdkerrors.NewActionFailedError(1, nil), err)
			},
		},
		{
			name:   "mined but reverted",
			status: gethtypes.ReceiptStatusFailed,
			call: func(*testing.T, *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error) {
				return func(ethereum.CallMsg) ([]byte, error) {
					return method.Outputs.Pack([][]byte{{}, {}}, big.NewInt(0))
				}
			},
			wantSent: 1,
			wantErr:  "reverted in block 10",
		},
		{
			name: "caller is not the transactor",
			caller: func(*bind.TransactOpts) common.Address {
				return common.HexToAddress("0xbad")
			},
			call: func(*testing.T, *bind.TransactOpts) func(msg ethereum.CallMsg) ([]byte, error) {
				return nil
			},
			wantErr: "does not match transactor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := newTransactor(t)
			backend := &fakeBackend{call: tt.call(t, auth), status: tt.status}
			executor := evm.NewDAOExecutor(backend, daoAddress, auth)

			caller := auth.From
			if tt.caller != nil {
				caller = tt.caller(auth)
			}

			got, err := executor.Execute(context.Background(), caller, 9, actions)
			assert.Len(t, backend.sent, tt.wantSent)

			switch {
			case tt.wantErrAs != nil:
				tt.wantErrAs(t, err)
			case tt.wantErr != "":
				require.ErrorContains(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
