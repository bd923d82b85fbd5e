package tokenvoting_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/internal/testutils/votingtest"
	"github.com/smartcontractkit/tokenvoting/types"
)

func TestEngine_Initialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings tokenvoting.Settings
		wantErr  string
	}{
		{
			name:     "valid settings",
			settings: votingtest.DefaultSettings(),
		},
		{
			name: "support threshold of 100% is accepted",
			settings: tokenvoting.Settings{
				SupportThreshold:       types.Pct16(100),
				ParticipationThreshold: types.Pct16(100),
				MinDuration:            1,
			},
		},
		{
			name: "zero duration",
			settings: tokenvoting.Settings{
				SupportThreshold:       types.Pct16(50),
				ParticipationThreshold: types.Pct16(20),
			},
			wantErr: "vote duration zero",
		},
		{
			name: "participation above 100%",
			settings: tokenvoting.Settings{
				SupportThreshold:       types.Pct16(50),
				ParticipationThreshold: types.Pct16(101),
				MinDuration:            3600,
			},
			wantErr: "invalid settings: Key: 'Settings.ParticipationThreshold' Error:Field validation for 'ParticipationThreshold' failed on the 'lte' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := votingtest.NewEnv(t, nil)

			err := env.Engine.Initialize(t.Context(), tt.settings)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)

				_, err = env.Engine.Settings(t.Context())
				require.ErrorIs(t, err, tokenvoting.ErrNotInitialized)

				return
			}

			require.NoError(t, err)
			got, err := env.Engine.Settings(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.settings, got)
		})
	}
}

func TestEngine_Initialize_Twice(t *testing.T) {
	t.Parallel()

	env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), nil)

	err := env.Engine.Initialize(t.Context(), votingtest.DefaultSettings())
	require.ErrorIs(t, err, tokenvoting.ErrAlreadyInitialized)
}

func TestEngine_NotInitialized(t *testing.T) {
	t.Parallel()

	env := votingtest.NewEnv(t, map[common.Address]int64{votingtest.Alice: 10})

	_, err := env.Engine.CreateProposal(t.Context(), votingtest.Alice, tokenvoting.CreateProposalParams{})
	require.ErrorIs(t, err, tokenvoting.ErrNotInitialized)

	err = env.Engine.UpdateSettings(t.Context(), votingtest.DefaultSettings())
	require.ErrorIs(t, err, tokenvoting.ErrNotInitialized)
}

func TestEngine_UpdateSettings(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	env := votingtest.NewInitializedEnv(t, votingtest.DefaultSettings(), map[common.Address]int64{
		votingtest.Alice: 60,
		votingtest.Bob:   40,
	})

	id, err := env.Engine.CreateProposal(ctx, votingtest.Alice, tokenvoting.CreateProposalParams{})
	require.NoError(t, err)

	updated := tokenvoting.Settings{
		SupportThreshold:       types.Pct16(70),
		ParticipationThreshold: types.Pct16(90),
		MinDuration:            7200,
	}
	require.NoError(t, env.Engine.UpdateSettings(ctx, updated))

	got, err := env.Engine.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// the existing proposal keeps its thresholds
	view, err := env.Engine.GetProposal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.Pct16(50), view.Parameters.SupportThreshold)
	assert.Equal(t, types.Pct16(20), view.Parameters.ParticipationThreshold)

	// new proposals pick up the update
	id, err = env.Engine.CreateProposal(ctx, votingtest.Alice, tokenvoting.CreateProposalParams{})
	require.NoError(t, err)
	view, err = env.Engine.GetProposal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.Pct16(70), view.Parameters.SupportThreshold)
	assert.Equal(t, view.Parameters.StartDate+7200, view.Parameters.EndDate)

	events := env.Log.Named(types.EventTypeSettingsUpdated)
	require.Len(t, events, 1)
	assert.Equal(t, types.SettingsUpdatedEvent{
		SupportThreshold:       types.Pct16(70),
		ParticipationThreshold: types.Pct16(90),
		MinDuration:            7200,
	}, events[0])

	// invalid updates are rejected and change nothing
	require.ErrorIs(t, env.Engine.UpdateSettings(ctx, tokenvoting.Settings{}), tokenvoting.ErrVoteDurationZero)
	got, err = env.Engine.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestEngine_Identity(t *testing.T) {
	t.Parallel()

	env := votingtest.NewEnv(t, nil)

	assert.Equal(t, votingtest.PluginAddress, env.Engine.Identity())
}
