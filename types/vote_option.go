package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"strings"
)

// VoteOption is the choice a voter makes on a proposal.
//
// The numeric values match the order used by the on-chain TokenVoting plugin so that options can
// be passed through ABI encoded calls unchanged.
type VoteOption uint8

const (
	// VoteOptionNone means no vote has been cast.
	VoteOptionNone VoteOption = iota
	VoteOptionAbstain
	VoteOptionYes
	VoteOptionNo
)

var voteOptionNames = map[VoteOption]string{
	VoteOptionNone:    "none",
	VoteOptionAbstain: "abstain",
	VoteOptionYes:     "yes",
	VoteOptionNo:      "no",
}

// String returns the lower case name of the option.
func (o VoteOption) String() string {
	if name, ok := voteOptionNames[o]; ok {
		return name
	}

	return fmt.Sprintf("VoteOption(%d)", uint8(o))
}

// IsValid reports whether the option is one of the known options, including None.
func (o VoteOption) IsValid() bool {
	_, ok := voteOptionNames[o]

	return ok
}

// ParseVoteOption parses the case-insensitive name of an option.
func ParseVoteOption(s string) (VoteOption, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for opt, name := range voteOptionNames {
		if name == needle {
			return opt, nil
		}
	}

	return VoteOptionNone, fmt.Errorf("invalid vote option: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o VoteOption) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("invalid vote option: %d", uint8(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *VoteOption) UnmarshalText(b []byte) error {
	opt, err := ParseVoteOption(string(b))
	if err != nil {
		return err
	}
	*o = opt

	return nil
}
