package evm

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/smartcontractkit/tokenvoting/internal/utils/safecast"
	sdkerrors "github.com/smartcontractkit/tokenvoting/sdk/errors"
	"github.com/smartcontractkit/tokenvoting/sdk/evm/bindings"
)

const selectorSize = 4

// RevertError is a revert that is not one of the known custom errors.
type RevertError struct {
	Reason string
	Data   []byte
	Err    error
}

func (e *RevertError) Error() string {
	if e.Reason != "" {
		return "execution reverted: " + e.Reason
	}

	return "execution reverted: " + hexutil.Encode(e.Data)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// DecodeRevert turns the revert data carried by an RPC error into the matching sdk error: a
// DAO Unauthorized revert becomes *sdkerrors.PermissionUnauthorizedError, ActionFailed becomes
// *sdkerrors.ActionFailedError and ERC5805FutureLookup becomes *sdkerrors.FutureLookupError.
// Errors without revert data are returned unchanged.
func DecodeRevert(err error) error {
	if err == nil {
		return nil
	}

	data, ok := revertData(err)
	if !ok || len(data) < selectorSize {
		return err
	}

	if reason, uerr := abi.UnpackRevert(data); uerr == nil {
		return &RevertError{Reason: reason, Data: data, Err: err}
	}

	for _, md := range []*bind.MetaData{bindings.DAOMetaData, bindings.IVotesMetaData} {
		parsed, perr := md.GetAbi()
		if perr != nil {
			continue
		}

		for name, abiErr := range parsed.Errors {
			if !bytes.Equal(abiErr.ID[:selectorSize], data[:selectorSize]) {
				continue
			}

			values, uerr := abiErr.Inputs.Unpack(data[selectorSize:])
			if uerr != nil {
				return fmt.Errorf("unable to unpack %s revert: %w", name, errors.Join(uerr, err))
			}

			if decoded := toSDKError(name, values); decoded != nil {
				return decoded
			}
		}
	}

	return &RevertError{Data: data, Err: err}
}

func toSDKError(name string, values []any) error {
	switch name {
	case "Unauthorized":
		if len(values) != 3 {
			return nil
		}
		where, _ := values[0].(common.Address)
		who, _ := values[1].(common.Address)
		permission, _ := values[2].([32]byte)

		return sdkerrors.NewPermissionUnauthorizedError(where, who, common.Hash(permission))
	case "ActionFailed":
		if len(values) != 1 {
			return nil
		}
		index, err := safecast.BigToUint64(asBig(values[0]))
		if err != nil {
			return nil
		}

		return sdkerrors.NewActionFailedError(int(index), nil) //nolint:gosec // action lists are far shorter than MaxInt
	case "ERC5805FutureLookup":
		if len(values) != 2 {
			return nil
		}
		timepoint, err := safecast.BigToUint64(asBig(values[0]))
		if err != nil {
			return nil
		}
		current, err := safecast.BigToUint64(asBig(values[1]))
		if err != nil {
			return nil
		}

		return sdkerrors.NewFutureLookupError(timepoint, current)
	default:
		return nil
	}
}

// revertData extracts the revert payload of an eth_call or eth_estimateGas error.
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}

	switch data := dataErr.ErrorData().(type) {
	case string:
		b, derr := hexutil.Decode(data)
		if derr != nil {
			return nil, false
		}

		return b, true
	case []byte:
		return data, true
	default:
		return nil, false
	}
}

// asBig normalizes the integer types the abi decoder produces for uint48 and uint256.
func asBig(v any) *big.Int {
	switch n := v.(type) {
	case *big.Int:
		return n
	case uint64:
		return new(big.Int).SetUint64(n)
	default:
		return nil
	}
}
