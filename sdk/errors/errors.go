package sdkerrors

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PermissionUnauthorizedError is returned by a DAO when the caller does not hold the permission
// it needs.
type PermissionUnauthorizedError struct {
	Where        common.Address
	Who          common.Address
	PermissionID common.Hash
}

func (e *PermissionUnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s lacks permission %s on %s", e.Who.Hex(), e.PermissionID.Hex(), e.Where.Hex())
}

func NewPermissionUnauthorizedError(where, who common.Address, permissionID common.Hash) *PermissionUnauthorizedError {
	return &PermissionUnauthorizedError{Where: where, Who: who, PermissionID: permissionID}
}

// ActionFailedError is returned when one action of an execution failed. None of the actions of
// the execution take effect.
type ActionFailedError struct {
	Index int
	Err   error
}

func (e *ActionFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("action %d failed", e.Index)
	}

	return fmt.Sprintf("action %d failed: %v", e.Index, e.Err)
}

func (e *ActionFailedError) Unwrap() error {
	return e.Err
}

func NewActionFailedError(index int, err error) *ActionFailedError {
	return &ActionFailedError{Index: index, Err: err}
}

// FutureLookupError is returned when a past value is requested for a block that is not mined
// yet.
type FutureLookupError struct {
	Block   uint64
	Current uint64
}

func (e *FutureLookupError) Error() string {
	return fmt.Sprintf("future lookup: block %d, current block %d", e.Block, e.Current)
}

func NewFutureLookupError(block, current uint64) *FutureLookupError {
	return &FutureLookupError{Block: block, Current: current}
}

// InsufficientBalanceError is returned when an account cannot cover a value transfer.
type InsufficientBalanceError struct {
	Account   common.Address
	Balance   *big.Int
	Requested *big.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %s holds %s, requested %s", e.Account.Hex(), e.Balance, e.Requested)
}

func NewInsufficientBalanceError(account common.Address, balance, requested *big.Int) *InsufficientBalanceError {
	return &InsufficientBalanceError{Account: account, Balance: balance, Requested: requested}
}
