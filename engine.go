package tokenvoting

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/tokenvoting/internal/core/store"
	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/types"
)

// Engine is a token weighted voting plugin. It creates proposals, records votes and asks the DAO
// to execute the actions of proposals that passed.
//
// Every exported method is one atomic call: calls are serialized and a call that returns an error
// leaves no trace.
type Engine struct {
	mu sync.Mutex

	identity common.Address
	oracle   sdk.WeightOracle
	executor sdk.Executor
	clock    sdk.Clock
	notifier sdk.Notifier
	logger   sdk.Logger

	settings  *Settings
	proposals *store.Store
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine instead of the one carried by the context.
func WithLogger(logger sdk.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithNotifier sets the receiver of the engine events.
func WithNotifier(notifier sdk.Notifier) Option {
	return func(e *Engine) {
		e.notifier = notifier
	}
}

// NewEngine creates an engine that is not yet initialized.
//
// identity is the address the engine presents to the executor. The DAO must have granted it the
// execute permission for proposals to be executable.
func NewEngine(
	identity common.Address,
	oracle sdk.WeightOracle,
	executor sdk.Executor,
	clock sdk.Clock,
	opts ...Option,
) *Engine {
	e := &Engine{
		identity:  identity,
		oracle:    oracle,
		executor:  executor,
		clock:     clock,
		proposals: store.New(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Identity returns the address the engine executes proposals as.
func (e *Engine) Identity() common.Address {
	return e.identity
}

// Initialize sets the voting settings. It can only be called once.
func (e *Engine) Initialize(ctx context.Context, settings Settings) error {
	return e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		if e.settings != nil {
			return ErrAlreadyInitialized
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		e.settings = &settings
		tx.onUndo(func() { e.settings = nil })

		e.log(ctx).Infof("voting initialized: support %s, participation %s, min duration %ds",
			settings.SupportThreshold, settings.ParticipationThreshold, settings.MinDuration)

		return nil
	})
}

// UpdateSettings replaces the voting settings. Proposals that already exist keep the thresholds
// they were created with.
func (e *Engine) UpdateSettings(ctx context.Context, settings Settings) error {
	return e.atomically(ctx, func(ctx context.Context, tx *txn) error {
		if e.settings == nil {
			return ErrNotInitialized
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		prev := e.settings
		e.settings = &settings
		tx.onUndo(func() { e.settings = prev })

		tx.emit(types.SettingsUpdatedEvent{
			SupportThreshold:       settings.SupportThreshold,
			ParticipationThreshold: settings.ParticipationThreshold,
			MinDuration:            settings.MinDuration,
		})

		return nil
	})
}

// Settings returns the current voting settings.
func (e *Engine) Settings(ctx context.Context) (Settings, error) {
	var out Settings
	err := e.atomically(ctx, func(context.Context, *txn) error {
		if e.settings == nil {
			return ErrNotInitialized
		}
		out = *e.settings

		return nil
	})

	return out, err
}

// ProposalCount returns the number of proposals created so far.
func (e *Engine) ProposalCount(ctx context.Context) (uint64, error) {
	var count uint64
	err := e.atomically(ctx, func(context.Context, *txn) error {
		count = e.proposals.Len()
		return nil
	})

	return count, err
}

func (e *Engine) log(ctx context.Context) sdk.Logger {
	if e.logger != nil {
		return e.logger
	}

	return sdk.LoggerFrom(ctx)
}
