package memory

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"

	"github.com/smartcontractkit/tokenvoting/sdk"
	sdkerrors "github.com/smartcontractkit/tokenvoting/sdk/errors"
	"github.com/smartcontractkit/tokenvoting/types"
)

// ExecutePermissionID is the permission a caller needs to make the DAO execute actions.
var ExecutePermissionID = crypto.Keccak256Hash([]byte("EXECUTE_PERMISSION"))

const EventTypeExecuted types.EventType = "Executed"

// ExecutedEvent is emitted by the DAO after it ran a list of actions.
type ExecutedEvent struct {
	Actor   common.Address
	CallID  uint64
	Actions []types.Action
	Results []types.ExecutionResult
}

func (ExecutedEvent) EventName() types.EventType {
	return EventTypeExecuted
}

func (e ExecutedEvent) String() string {
	return fmt.Sprintf("%s: actor=%s, callId=%d, actions=%d, results=[%s]",
		e.EventName(), e.Actor.Hex(), e.CallID, len(e.Actions),
		strings.Join(lo.Map(e.Results, func(r types.ExecutionResult, _ int) string { return hexutil.Encode(r) }), ", "))
}

// Target is a contract the DAO can call.
type Target interface {
	Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) ([]byte, error)
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func(ctx context.Context, caller common.Address, value *big.Int, data []byte) ([]byte, error)

// Call calls f.
func (f TargetFunc) Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) ([]byte, error) {
	return f(ctx, caller, value, data)
}

type permissionKey struct {
	who          common.Address
	permissionID common.Hash
}

// DAO holds permissions and funds and executes actions for callers holding ExecutePermissionID.
//
// Calls to addresses without a registered target succeed with empty return data, like calls to
// accounts without code. Value sent with actions is taken from the DAO balance.
type DAO struct {
	address  common.Address
	notifier sdk.Notifier

	mu          sync.Mutex
	permissions map[permissionKey]struct{}
	targets     map[common.Address]Target
	balances    map[common.Address]*big.Int
}

// NewDAO creates a DAO at the given address. notifier may be nil.
func NewDAO(address common.Address, notifier sdk.Notifier) *DAO {
	return &DAO{
		address:     address,
		notifier:    notifier,
		permissions: make(map[permissionKey]struct{}),
		targets:     make(map[common.Address]Target),
		balances:    make(map[common.Address]*big.Int),
	}
}

// Address returns the address of the DAO.
func (d *DAO) Address() common.Address {
	return d.address
}

// Grant gives who the permission.
func (d *DAO) Grant(who common.Address, permissionID common.Hash) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.permissions[permissionKey{who: who, permissionID: permissionID}] = struct{}{}
}

// Revoke takes the permission away from who.
func (d *DAO) Revoke(who common.Address, permissionID common.Hash) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.permissions, permissionKey{who: who, permissionID: permissionID})
}

// HasPermission reports whether who holds the permission.
func (d *DAO) HasPermission(who common.Address, permissionID common.Hash) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.permissions[permissionKey{who: who, permissionID: permissionID}]

	return ok
}

// SetTarget registers the behaviour of the contract at address.
func (d *DAO) SetTarget(address common.Address, target Target) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.targets[address] = target
}

// Deposit adds amount to the DAO balance.
func (d *DAO) Deposit(amount *big.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.balances[d.address] = new(big.Int).Add(d.balanceOf(d.address), amount)
}

// Balance returns the native balance of account as tracked by the DAO.
func (d *DAO) Balance(account common.Address) *big.Int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return new(big.Int).Set(d.balanceOf(account))
}

// Execute implements sdk.Executor. Either every action succeeds or none of the value transfers
// happen and an *sdkerrors.ActionFailedError is returned. Targets are called without the DAO lock
// held so they may call back into the DAO.
func (d *DAO) Execute(
	ctx context.Context,
	caller common.Address,
	callID uint64,
	actions []types.Action,
) ([]types.ExecutionResult, error) {
	if !d.HasPermission(caller, ExecutePermissionID) {
		return nil, sdkerrors.NewPermissionUnauthorizedError(d.address, caller, ExecutePermissionID)
	}

	sent := new(big.Int)
	results := make([]types.ExecutionResult, len(actions))
	for i, action := range actions {
		value := action.Value
		if value == nil {
			value = new(big.Int)
		}

		sent.Add(sent, value)
		if balance := d.Balance(d.address); balance.Cmp(sent) < 0 {
			return nil, sdkerrors.NewActionFailedError(i, sdkerrors.NewInsufficientBalanceError(d.address, balance, value))
		}

		d.mu.Lock()
		target, ok := d.targets[action.To]
		d.mu.Unlock()

		if !ok {
			results[i] = types.ExecutionResult{}
			continue
		}

		out, err := target.Call(ctx, d.address, new(big.Int).Set(value), common.CopyBytes(action.Data))
		if err != nil {
			return nil, sdkerrors.NewActionFailedError(i, err)
		}
		results[i] = types.ExecutionResult(common.CopyBytes(out))
	}

	if err := d.transfer(actions); err != nil {
		return nil, err
	}

	if d.notifier != nil {
		d.notifier.Notify(ctx, ExecutedEvent{
			Actor:   caller,
			CallID:  callID,
			Actions: types.CloneActions(actions),
			Results: lo.Map(results, func(r types.ExecutionResult, _ int) types.ExecutionResult {
				return types.ExecutionResult(common.CopyBytes(r))
			}),
		})
	}

	return results, nil
}

func (d *DAO) transfer(actions []types.Action) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := new(big.Int)
	for _, action := range actions {
		if action.Value != nil {
			total.Add(total, action.Value)
		}
	}
	if balance := d.balanceOf(d.address); balance.Cmp(total) < 0 {
		return sdkerrors.NewActionFailedError(len(actions)-1,
			sdkerrors.NewInsufficientBalanceError(d.address, new(big.Int).Set(balance), total))
	}

	for _, action := range actions {
		if action.Value == nil || action.Value.Sign() == 0 {
			continue
		}
		d.balances[d.address] = new(big.Int).Sub(d.balanceOf(d.address), action.Value)
		d.balances[action.To] = new(big.Int).Add(d.balanceOf(action.To), action.Value)
	}

	return nil
}

func (d *DAO) balanceOf(account common.Address) *big.Int {
	if b, ok := d.balances[account]; ok {
		return b
	}

	return new(big.Int)
}
