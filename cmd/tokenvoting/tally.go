package tokenvoting

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tokenvoting/internal/config"
	"github.com/smartcontractkit/tokenvoting/internal/core/tally"
)

func buildTallyCmd(a *app) *cobra.Command {
	var (
		yes, no, abstain, total string
		support, participation  string
		beforeEnd, early        bool
	)

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Evaluate the decision rules for a tally",
		Long: `Evaluate support, participation and early support for the given votes. Thresholds
default to the configured settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := tally.Input{
				SupportThreshold:       a.cfg.Settings.SupportThreshold,
				ParticipationThreshold: a.cfg.Settings.ParticipationThreshold,
			}

			amounts := []struct {
				flag  string
				value string
				dst   **big.Int
			}{
				{"yes", yes, &in.Tally.Yes},
				{"no", no, &in.Tally.No},
				{"abstain", abstain, &in.Tally.Abstain},
				{"total", total, &in.TotalVotingPower},
			}
			for _, amount := range amounts {
				v, ok := new(big.Int).SetString(amount.value, 0)
				if !ok || v.Sign() < 0 {
					return fmt.Errorf("invalid --%s: %q", amount.flag, amount.value)
				}
				*amount.dst = v
			}

			if support != "" {
				pct, err := config.ParsePct(support)
				if err != nil {
					return fmt.Errorf("invalid --support: %w", err)
				}
				in.SupportThreshold = pct
			}
			if participation != "" {
				pct, err := config.ParsePct(participation)
				if err != nil {
					return fmt.Errorf("invalid --participation: %w", err)
				}
				in.ParticipationThreshold = pct
			}

			// only the position relative to the end date matters
			now, endDate := uint64(1), uint64(1)
			if beforeEnd {
				now = 0
			}

			renderTally(cmd.OutOrStdout(), in, tally.Evaluate(in, now, endDate, early), beforeEnd)

			return nil
		},
	}

	cmd.Flags().StringVar(&yes, "yes", "0", "Yes votes")
	cmd.Flags().StringVar(&no, "no", "0", "No votes")
	cmd.Flags().StringVar(&abstain, "abstain", "0", "Abstain votes")
	cmd.Flags().StringVar(&total, "total", "", "Total voting power at the snapshot block")
	cmd.Flags().StringVar(&support, "support", "", `Support threshold, e.g. "50%"`)
	cmd.Flags().StringVar(&participation, "participation", "", `Participation threshold, e.g. "0.15"`)
	cmd.Flags().BoolVar(&beforeEnd, "before-end", false, "Evaluate before the end date")
	cmd.Flags().BoolVar(&early, "early", false, "Early execution is allowed")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}
