// Package votingtest wires a voting engine to in-memory collaborators for tests.
package votingtest

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/sdk/memory"
	"github.com/smartcontractkit/tokenvoting/types"
)

var (
	Alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	Bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	Carol = common.HexToAddress("0x00000000000000000000000000000000000ca201")
	Dave  = common.HexToAddress("0x0000000000000000000000000000000000000da7")

	DAOAddress    = common.HexToAddress("0x000000000000000000000000000000000000da00")
	PluginAddress = common.HexToAddress("0x0000000000000000000000000000000000009106")

	// GenesisTimestamp is the timestamp of the first block of every test chain.
	GenesisTimestamp uint64 = 1_700_000_000
)

// DefaultSettings are 50% support, 20% participation and a one hour minimum duration.
func DefaultSettings() tokenvoting.Settings {
	return tokenvoting.Settings{
		SupportThreshold:       types.Pct16(50),
		ParticipationThreshold: types.Pct16(20),
		MinDuration:            3600,
	}
}

// Env is a voting engine backed by an in-memory chain, token and DAO. The engine holds the
// execute permission and both the engine and the DAO report to Log.
type Env struct {
	Chain  *memory.Chain
	Token  *memory.VotesToken
	DAO    *memory.DAO
	Log    *memory.EventLog
	Engine *tokenvoting.Engine
}

// NewEnv creates an Env, mints balances and mines a block so that the minted balances are part
// of the snapshot of the next proposal.
func NewEnv(t *testing.T, balances map[common.Address]int64) *Env {
	t.Helper()

	chain := memory.NewChain(1, GenesisTimestamp)
	token := memory.NewVotesToken(chain)
	log := memory.NewEventLog()
	dao := memory.NewDAO(DAOAddress, log)
	dao.Grant(PluginAddress, memory.ExecutePermissionID)

	for account, amount := range balances {
		token.Mint(account, big.NewInt(amount))
	}
	chain.Mine()

	engine := tokenvoting.NewEngine(PluginAddress, token, dao, chain,
		tokenvoting.WithNotifier(log),
		tokenvoting.WithLogger(zaptest.NewLogger(t).Sugar()),
	)

	return &Env{
		Chain:  chain,
		Token:  token,
		DAO:    dao,
		Log:    log,
		Engine: engine,
	}
}

// NewInitializedEnv is NewEnv followed by Initialize with settings.
func NewInitializedEnv(t *testing.T, settings tokenvoting.Settings, balances map[common.Address]int64) *Env {
	t.Helper()

	env := NewEnv(t, balances)
	require.NoError(t, env.Engine.Initialize(t.Context(), settings))

	return env
}

// TallyOf renders a tally as decimal strings in yes, no, abstain order, which compares reliably
// regardless of how the big integers were computed.
func TallyOf(tally types.Tally) [3]string {
	return [3]string{tally.Yes.String(), tally.No.String(), tally.Abstain.String()}
}

// Tally returns the expected TallyOf value.
func Tally(yes, no, abstain int64) [3]string {
	return [3]string{big.NewInt(yes).String(), big.NewInt(no).String(), big.NewInt(abstain).String()}
}
