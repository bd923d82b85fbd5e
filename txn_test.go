package tokenvoting

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenvoting/sdk/mocks"
	"github.com/smartcontractkit/tokenvoting/types"
)

func TestAtomically(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	notifier := mocks.NewNotifier(t)
	clock := mocks.NewClock(t)
	clock.EXPECT().Head(mock.Anything).Return(types.BlockHead{Number: 2, Timestamp: 20}, nil).Once()

	var notified []types.Event
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Run(func(_ context.Context, event types.Event) {
		notified = append(notified, event)
	}).Return()

	e := NewEngine(common.Address{}, nil, nil, clock, WithNotifier(notifier))

	state := []string{}
	err := e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		state = append(state, "outer")
		tx.onUndo(func() { state = state[:len(state)-1] })
		tx.emit(types.ProposalCreatedEvent{ProposalID: 1})

		// a failing nested call only undoes its own changes
		nestedErr := e.atomically(ctx, func(_ context.Context, tx *txn) error {
			state = append(state, "inner")
			tx.onUndo(func() { state = state[:len(state)-1] })
			tx.emit(types.ProposalCreatedEvent{ProposalID: 2})

			return errors.New("nested failure")
		})
		require.EqualError(t, nestedErr, "nested failure")

		// the head is read once per call
		for range 2 {
			head, err := tx.blockHead(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(20), head.Timestamp)
		}

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"outer"}, state)
	assert.Equal(t, []types.Event{types.ProposalCreatedEvent{ProposalID: 1}}, notified)
}

func TestAtomically_Failure(t *testing.T) {
	t.Parallel()

	e := NewEngine(common.Address{}, nil, nil, nil, WithNotifier(mocks.NewNotifier(t)))

	value := 1
	err := e.atomically(t.Context(), func(_ context.Context, tx *txn) error {
		prev := value
		value = 2
		tx.onUndo(func() { value = prev })
		tx.emit(types.ProposalCreatedEvent{})

		return errors.New("failure")
	})
	require.EqualError(t, err, "failure")
	assert.Equal(t, 1, value)
}
