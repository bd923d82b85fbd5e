package tokenvoting

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{ErrAlreadyInitialized, "already initialized"},
		{ErrVoteDurationZero, "vote duration zero"},
		{ErrNoVotingPower, "no voting power"},
		{NewVotingPeriodInvalidError(10, 5, 20, 3600), "voting period invalid: current 10, start 5, end 20, min duration 3600"},
		{
			NewVoteCastForbiddenError(1, common.HexToAddress("0x1"), "voting has ended"),
			"vote cast forbidden on proposal 1 for 0x0000000000000000000000000000000000000001: voting has ended",
		},
		{NewProposalExecutionForbiddenError(2), "proposal execution forbidden: 2"},
		{NewProposalNotFoundError(3), "proposal not found: 3"},
		{NewExecutionFailedError(4, errors.New("reverted")), "execution of proposal 4 failed: reverted"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestExecutionFailedError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("reverted")

	assert.ErrorIs(t, NewExecutionFailedError(0, cause), cause)
}
