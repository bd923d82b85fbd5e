// Package scenario replays a scripted sequence of governance calls against an engine backed by
// in-memory collaborators. Every step runs in its own block.
package scenario

import (
	"bytes"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/internal/config"
	"github.com/smartcontractkit/tokenvoting/types"
)

// DefaultGenesisTimestamp is used when a scenario does not set genesis_timestamp.
const DefaultGenesisTimestamp uint64 = 1_700_000_000

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	// Settings override the defaults given to Run. Unset fields keep the default.
	Settings SettingsSpec `yaml:"settings"`

	GenesisTimestamp uint64 `yaml:"genesis_timestamp"`

	// Balances maps account names or hex addresses to their initial token balance.
	Balances map[string]string `yaml:"balances"`

	// Treasury is the native balance deposited in the DAO.
	Treasury string `yaml:"treasury"`

	Steps []Step `yaml:"steps"`
}

// SettingsSpec holds raw setting values, parsed like the configuration file.
type SettingsSpec struct {
	SupportThreshold       any `yaml:"support_threshold"`
	ParticipationThreshold any `yaml:"participation_threshold"`
	MinDuration            any `yaml:"min_duration"`
}

// Step is a single call. Exactly one of the call fields is set.
type Step struct {
	Create   *CreateStep     `yaml:"create"`
	Vote     *VoteStep       `yaml:"vote"`
	Execute  *ExecuteStep    `yaml:"execute"`
	Transfer *TransferStep   `yaml:"transfer"`
	Advance  *types.Duration `yaml:"advance"`

	// ExpectError makes the step pass only when the call fails with an error containing it.
	ExpectError string `yaml:"expect_error"`
}

type CreateStep struct {
	As                string           `yaml:"as"`
	Description       string           `yaml:"description"`
	Actions           []ActionSpec     `yaml:"actions"`
	StartIn           types.Duration   `yaml:"start_in"`
	Duration          types.Duration   `yaml:"duration"`
	EarlyExecution    bool             `yaml:"early_execution"`
	Vote              types.VoteOption `yaml:"vote"`
	TryEarlyExecution bool             `yaml:"try_early_execution"`
}

type ActionSpec struct {
	To    string `yaml:"to"`
	Value string `yaml:"value"`
	Data  string `yaml:"data"`
}

type VoteStep struct {
	As                string           `yaml:"as"`
	Proposal          uint64           `yaml:"proposal"`
	Option            types.VoteOption `yaml:"option"`
	TryEarlyExecution bool             `yaml:"try_early_execution"`
}

type ExecuteStep struct {
	Proposal uint64 `yaml:"proposal"`
}

type TransferStep struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	for i, step := range s.Steps {
		if _, err := step.kind(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return &s, nil
}

func (s Step) kind() (string, error) {
	set := []bool{s.Create != nil, s.Vote != nil, s.Execute != nil, s.Transfer != nil, s.Advance != nil}
	if n := lo.Count(set, true); n != 1 {
		return "", fmt.Errorf("expected exactly one call, got %d", n)
	}

	switch {
	case s.Create != nil:
		return "create", nil
	case s.Vote != nil:
		return "vote", nil
	case s.Execute != nil:
		return "execute", nil
	case s.Transfer != nil:
		return "transfer", nil
	default:
		return "advance", nil
	}
}

// resolveSettings applies the scenario overrides to defaults.
func (s *Scenario) resolveSettings(defaults tokenvoting.Settings) (tokenvoting.Settings, error) {
	out := defaults

	if s.Settings.SupportThreshold != nil {
		pct, err := config.ParsePct(s.Settings.SupportThreshold)
		if err != nil {
			return out, fmt.Errorf("support_threshold: %w", err)
		}
		out.SupportThreshold = pct
	}
	if s.Settings.ParticipationThreshold != nil {
		pct, err := config.ParsePct(s.Settings.ParticipationThreshold)
		if err != nil {
			return out, fmt.Errorf("participation_threshold: %w", err)
		}
		out.ParticipationThreshold = pct
	}
	if s.Settings.MinDuration != nil {
		seconds, err := config.ParseSeconds(s.Settings.MinDuration)
		if err != nil {
			return out, fmt.Errorf("min_duration: %w", err)
		}
		out.MinDuration = seconds
	}

	return out, nil
}

// Address resolves an account name or hex address. Names map to the last 20 bytes of their
// keccak256 hash.
func Address(account string) common.Address {
	account = strings.TrimSpace(account)
	if common.IsHexAddress(account) {
		return common.HexToAddress(account)
	}

	return common.BytesToAddress(crypto.Keccak256([]byte(strings.ToLower(account)))[12:])
}

func parseAmount(s string) (*big.Int, error) {
	if strings.TrimSpace(s) == "" {
		return new(big.Int), nil
	}

	amount, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}

	return amount, nil
}

func (a ActionSpec) toAction() (types.Action, error) {
	value, err := parseAmount(a.Value)
	if err != nil {
		return types.Action{}, err
	}

	var data []byte
	if a.Data != "" {
		data, err = hexutil.Decode(a.Data)
		if err != nil {
			return types.Action{}, fmt.Errorf("invalid action data %q: %w", a.Data, err)
		}
	}

	return types.Action{To: Address(a.To), Value: value, Data: data}, nil
}
