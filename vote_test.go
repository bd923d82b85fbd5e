package tokenvoting_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/internal/testutils/votingtest"
	"github.com/smartcontractkit/tokenvoting/types"
)

func TestEngine_Vote_Forbidden(t *testing.T) {
	t.Parallel()

	balances := map[common.Address]int64{
		votingtest.Alice: 60,
		votingtest.Bob:   40,
	}

	tests := []struct {
		name   string
		setup  func(t *testing.T, env *votingtest.Env) uint64
		voter  common.Address
		option types.VoteOption
		reason string
	}{
		{
			name:   "proposal does not exist",
			setup:  func(*testing.T, *votingtest.Env) uint64 { return 42 },
			voter:  votingtest.Alice,
			option: types.VoteOptionYes,
			reason: "proposal does not exist",
		},
		{
			name:   "option none",
			setup:  createDefaultProposal,
			voter:  votingtest.Alice,
			option: types.VoteOptionNone,
			reason: "vote option none not allowed",
		},
		{
			name:   "unknown option",
			setup:  createDefaultProposal,
			voter:  votingtest.Alice,
			option: types.VoteOption(4),
			reason: "vote option VoteOption(4) not allowed",
		},
		{
			name:   "no voting power",
			setup:  createDefaultProposal,
			voter:  votingtest.Carol,
			option: types.VoteOptionYes,
			reason: "no voting power at snapshot",
		},
		{
			name: "before start",
			setup: func(t *testing.T, env *votingtest.Env) uint64 {
				t.Helper()

				id, err := env.Engine.CreateProposal(t.Context(), votingtest.Alice, tokenvoting.CreateProposalParams{
					StartDate: env.Chain.Current().Timestamp + 10,
				})
				require.NoError(t, err)

				return id
			},
			voter:  votingtest.Alice,
			option: types.VoteOptionYes,
			reason: "voting has not started",
		},
		{
			name: "at end date",
			setup: func(t *testing.T, env *votingtest.Env) uint64 {
				t.Helper()

				id := createDefaultProposal(t, env)
				env.Chain.AdvanceTime(3600)

				return id
			},
			voter:  votingtest.Alice,
			option: types.VoteOptionYes,
			reason: "voting has ended",
		},
		{
			name: "executed",
			setup: func(t *testing.T, env *votingtest.Env) uint64 {
				t.Helper()

				id, err := env.Engine.CreateProposal(t.Context(), votingtest.Alice, tokenvoting.CreateProposalParams{
					EarlyExecutionAllowed: true,
					InitialVote:           types.VoteOptionYes,
					TryEarlyExecution:     true,
				})
				require.NoError(t, err)

				return id
			},
			voter:  votingtest.Bob,
			option: types.VoteOptionNo,
			reason: "proposal already executed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), balances)
			id := tt.setup(t, env)
			env.Log.Reset()

			err := env.Engine.Vote(ctx, tt.voter, id, tt.option, false)
			require.Equal(t, tokenvoting.NewVoteCastForbiddenError(id, tt.voter, tt.reason), err)
			assert.Empty(t, env.Log.Events())

			ok, err := env.Engine.CanVote(ctx, id, tt.voter)
			if tt.reason == "proposal does not exist" {
				require.Equal(t, tokenvoting.NewProposalNotFoundError(id), err)
				return
			}
			require.NoError(t, err)
			if tt.option == types.VoteOptionYes || tt.option == types.VoteOptionNo {
				assert.False(t, ok)
			}
		})
	}
}

func TestEngine_Vote_Switching(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), map[common.Address]int64{
		votingtest.Alice: 10,
		votingtest.Bob:   5,
	})
	id := createDefaultProposal(t, env)

	tally := func() [3]string {
		view, err := env.Engine.GetProposal(ctx, id)
		require.NoError(t, err)

		return votingtest.TallyOf(view.Tally)
	}

	ok, err := env.Engine.CanVote(ctx, id, votingtest.Alice)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, env.Engine.Vote(ctx, votingtest.Alice, id, types.VoteOptionYes, false))
	assert.Equal(t, votingtest.Tally(10, 0, 0), tally())

	// the same vote again changes nothing
	require.NoError(t, env.Engine.Vote(ctx, votingtest.Alice, id, types.VoteOptionYes, false))
	assert.Equal(t, votingtest.Tally(10, 0, 0), tally())

	require.NoError(t, env.Engine.Vote(ctx, votingtest.Alice, id, types.VoteOptionNo, false))
	assert.Equal(t, votingtest.Tally(0, 10, 0), tally())

	require.NoError(t, env.Engine.Vote(ctx, votingtest.Alice, id, types.VoteOptionAbstain, false))
	assert.Equal(t, votingtest.Tally(0, 0, 10), tally())

	require.NoError(t, env.Engine.Vote(ctx, votingtest.Bob, id, types.VoteOptionYes, false))
	assert.Equal(t, votingtest.Tally(5, 0, 10), tally())

	receipt, err := env.Engine.GetVoteReceipt(ctx, id, votingtest.Alice)
	require.NoError(t, err)
	assert.Equal(t, types.VoteOptionAbstain, receipt.Option)
	assert.Equal(t, "10", receipt.Weight.String())

	option, err := env.Engine.GetVoteOption(ctx, id, votingtest.Carol)
	require.NoError(t, err)
	assert.Equal(t, types.VoteOptionNone, option)

	voters, err := env.Engine.Voters(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{votingtest.Bob, votingtest.Alice}, voters)

	// every accepted vote is reported, repeated ones included
	votes := env.Log.Named(types.EventTypeVoteCast)
	require.Len(t, votes, 5)
	assert.Equal(t, types.VoteCastEvent{
		ProposalID: id,
		Voter:      votingtest.Alice,
		Option:     types.VoteOptionNo,
		Weight:     big.NewInt(10),
	}, votes[2])
}

func TestEngine_Vote_UsesSnapshotWeight(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), map[common.Address]int64{
		votingtest.Alice: 10,
		votingtest.Bob:   5,
	})
	id := createDefaultProposal(t, env)

	// moving tokens after the snapshot neither helps the receiver nor hurts the sender
	require.NoError(t, env.Token.Transfer(votingtest.Alice, votingtest.Bob, big.NewInt(10)))
	env.Chain.Mine()

	require.NoError(t, env.Engine.Vote(ctx, votingtest.Alice, id, types.VoteOptionYes, false))
	require.NoError(t, env.Engine.Vote(ctx, votingtest.Bob, id, types.VoteOptionNo, false))

	view, err := env.Engine.GetProposal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, votingtest.Tally(10, 5, 0), votingtest.TallyOf(view.Tally))
}

func TestEngine_GetVoteOption_NotFound(t *testing.T) {
	t.Parallel()

	env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), nil)

	_, err := env.Engine.GetVoteOption(t.Context(), 3, votingtest.Alice)
	require.Equal(t, tokenvoting.NewProposalNotFoundError(3), err)

	_, err = env.Engine.Voters(t.Context(), 3)
	require.Equal(t, tokenvoting.NewProposalNotFoundError(3), err)
}

func createDefaultProposal(t *testing.T, env *votingtest.Env) uint64 {
	t.Helper()

	id, err := env.Engine.CreateProposal(t.Context(), votingtest.Alice, tokenvoting.CreateProposalParams{})
	require.NoError(t, err)

	return id
}
