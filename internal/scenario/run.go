package scenario

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/sdk/memory"
	"github.com/smartcontractkit/tokenvoting/types"
)

var (
	DAOAddress    = common.HexToAddress("0x000000000000000000000000000000000000da00")
	PluginAddress = common.HexToAddress("0x0000000000000000000000000000000000009106")
)

// StepResult describes how a step went.
type StepResult struct {
	Index   int
	Kind    string
	Block   types.BlockHead
	Outcome string
	// Err is the expected error the step failed with, nil when it succeeded.
	Err error
}

// Vote is a receipt held when the replay ended.
type Vote struct {
	ProposalID uint64
	Voter      common.Address
	Receipt    types.VoteReceipt
}

// Result is the state after the last step.
type Result struct {
	Settings  tokenvoting.Settings
	Head      types.BlockHead
	Steps     []StepResult
	Proposals []tokenvoting.ProposalView
	Votes     []Vote
	Events    []types.Event

	names map[common.Address]string
}

// Name returns the scenario name of addr, or its hex form for unnamed accounts.
func (r *Result) Name(addr common.Address) string {
	if name, ok := r.names[addr]; ok {
		return name
	}

	return addr.Hex()
}

type runner struct {
	chain  *memory.Chain
	token  *memory.VotesToken
	engine *tokenvoting.Engine
	names  map[common.Address]string
}

// Run replays the scenario. settings fills in what the scenario does not set and logger, when
// not nil, receives the engine logs.
//
// A step failing without expect_error, or succeeding with it, stops the replay with an error.
func (s *Scenario) Run(ctx context.Context, settings tokenvoting.Settings, logger sdk.Logger) (*Result, error) {
	settings, err := s.resolveSettings(settings)
	if err != nil {
		return nil, err
	}

	genesis := s.GenesisTimestamp
	if genesis == 0 {
		genesis = DefaultGenesisTimestamp
	}

	chain := memory.NewChain(1, genesis)
	token := memory.NewVotesToken(chain)
	log := memory.NewEventLog()
	dao := memory.NewDAO(DAOAddress, log)
	dao.Grant(PluginAddress, memory.ExecutePermissionID)

	r := &runner{
		chain: chain,
		token: token,
		names: map[common.Address]string{
			DAOAddress:    "dao",
			PluginAddress: "plugin",
		},
	}

	accounts := lo.Keys(s.Balances)
	slices.Sort(accounts)
	for _, account := range accounts {
		amount, err := parseAmount(s.Balances[account])
		if err != nil {
			return nil, fmt.Errorf("balance of %s: %w", account, err)
		}
		token.Mint(r.address(account), amount)
	}

	treasury, err := parseAmount(s.Treasury)
	if err != nil {
		return nil, fmt.Errorf("treasury: %w", err)
	}
	dao.Deposit(treasury)

	chain.Mine()

	opts := []tokenvoting.Option{tokenvoting.WithNotifier(log)}
	if logger != nil {
		opts = append(opts, tokenvoting.WithLogger(logger))
	}
	r.engine = tokenvoting.NewEngine(PluginAddress, token, dao, chain, opts...)

	if err := r.engine.Initialize(ctx, settings); err != nil {
		return nil, err
	}

	result := &Result{Settings: settings, names: r.names}
	for i, step := range s.Steps {
		kind, err := step.kind()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		head := chain.Current()
		outcome, err := r.run(ctx, step)

		switch {
		case err != nil && step.ExpectError == "":
			return nil, fmt.Errorf("step %d (%s): %w", i, kind, err)
		case err == nil && step.ExpectError != "":
			return nil, fmt.Errorf("step %d (%s): expected an error containing %q", i, kind, step.ExpectError)
		case err != nil && !strings.Contains(err.Error(), step.ExpectError):
			return nil, fmt.Errorf("step %d (%s): expected an error containing %q, got: %w", i, kind, step.ExpectError, err)
		case err != nil:
			outcome = "rejected: " + err.Error()
		}

		result.Steps = append(result.Steps, StepResult{
			Index:   i,
			Kind:    kind,
			Block:   head,
			Outcome: outcome,
			Err:     err,
		})

		if step.Advance == nil {
			chain.Mine()
		}
	}

	count, err := r.engine.ProposalCount(ctx)
	if err != nil {
		return nil, err
	}
	for id := range count {
		view, err := r.engine.GetProposal(ctx, id)
		if err != nil {
			return nil, err
		}
		result.Proposals = append(result.Proposals, view)

		voters, err := r.engine.Voters(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, voter := range voters {
			receipt, err := r.engine.GetVoteReceipt(ctx, id, voter)
			if err != nil {
				return nil, err
			}
			result.Votes = append(result.Votes, Vote{ProposalID: id, Voter: voter, Receipt: receipt})
		}
	}

	result.Head = chain.Current()
	result.Events = log.Events()

	return result, nil
}

func (r *runner) address(account string) common.Address {
	addr := Address(account)
	if _, ok := r.names[addr]; !ok && !common.IsHexAddress(account) {
		r.names[addr] = account
	}

	return addr
}

func (r *runner) name(addr common.Address) string {
	if name, ok := r.names[addr]; ok {
		return name
	}

	return addr.Hex()
}

func (r *runner) run(ctx context.Context, step Step) (string, error) {
	switch {
	case step.Create != nil:
		return r.create(ctx, step.Create)
	case step.Vote != nil:
		return r.vote(ctx, step.Vote)
	case step.Execute != nil:
		results, err := r.engine.Execute(ctx, step.Execute.Proposal)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("proposal %d executed with %d results", step.Execute.Proposal, len(results)), nil
	case step.Transfer != nil:
		amount, err := parseAmount(step.Transfer.Amount)
		if err != nil {
			return "", err
		}
		from, to := r.address(step.Transfer.From), r.address(step.Transfer.To)
		if err := r.token.Transfer(from, to, amount); err != nil {
			return "", err
		}

		return fmt.Sprintf("%s sent %s to %s", r.name(from), amount, r.name(to)), nil
	default:
		head := r.chain.AdvanceTime(step.Advance.Uint64Seconds())

		return fmt.Sprintf("advanced to block %d at %d", head.Number, head.Timestamp), nil
	}
}

func (r *runner) create(ctx context.Context, c *CreateStep) (string, error) {
	builder := tokenvoting.NewProposalBuilder().
		SetDescription(c.Description).
		SetEarlyExecutionAllowed(c.EarlyExecution).
		SetInitialVote(c.Vote, c.TryEarlyExecution)

	for _, spec := range c.Actions {
		action, err := spec.toAction()
		if err != nil {
			return "", err
		}
		builder.AddAction(action)
	}

	now := r.chain.Current().Timestamp
	start := uint64(0)
	if offset := c.StartIn.Uint64Seconds(); offset > 0 {
		start = now + offset
		builder.SetStartDate(start)
	}
	if c.Duration.Uint64Seconds() > 0 {
		builder.SetVotingWindow(max(start, now), c.Duration)
	}

	params, err := builder.Build()
	if err != nil {
		return "", err
	}

	creator := r.address(c.As)
	id, err := r.engine.CreateProposal(ctx, creator, params)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s created proposal %d", r.name(creator), id), nil
}

func (r *runner) vote(ctx context.Context, v *VoteStep) (string, error) {
	voter := r.address(v.As)
	if err := r.engine.Vote(ctx, voter, v.Proposal, v.Option, v.TryEarlyExecution); err != nil {
		return "", err
	}

	outcome := fmt.Sprintf("%s voted %s on proposal %d", r.name(voter), v.Option, v.Proposal)
	if v.TryEarlyExecution {
		view, err := r.engine.GetProposal(ctx, v.Proposal)
		if err != nil {
			return "", err
		}
		if view.Executed {
			outcome += " and executed it"
		}
	}

	return outcome, nil
}
