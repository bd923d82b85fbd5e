package tokenvoting

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/tokenvoting/types"
)

// Settings are the voting rules copied into every new proposal.
type Settings struct {
	// SupportThreshold is the share of yes votes among yes and no votes that must be exceeded.
	SupportThreshold types.Pct `json:"supportThreshold"`

	// ParticipationThreshold is the share of the total voting power that must have voted.
	ParticipationThreshold types.Pct `json:"participationThreshold" validate:"lte=1000000000000000000"`

	// MinDuration is the minimum voting window in seconds.
	MinDuration uint64 `json:"minDuration"`
}

// Validate checks the settings. A support threshold of 100% or more is accepted even though no
// proposal can pass with it.
func (s Settings) Validate() error {
	if s.MinDuration == 0 {
		return ErrVoteDurationZero
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

func (s Settings) parameters() types.ProposalParameters {
	return types.ProposalParameters{
		SupportThreshold:       s.SupportThreshold,
		ParticipationThreshold: s.ParticipationThreshold,
	}
}
