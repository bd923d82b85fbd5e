package tokenvoting

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tokenvoting/internal/core"
	"github.com/smartcontractkit/tokenvoting/internal/scenario"
)

func buildSimulateCmd(a *app) *cobra.Command {
	var (
		scenarioPath string
		showEvents   bool
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a scenario against an in-memory token and DAO",
		Long: `Replay the create, vote, transfer, advance and execute steps of a scenario file.
Each step is mined in its own block. Settings missing from the scenario come from the
configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(scenarioPath)
			if err != nil {
				return err
			}

			res, err := s.Run(cmd.Context(), a.cfg.Settings, a.logger)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			renderSteps(out, res)
			renderProposals(out, res)
			renderVotesCast(out, res)
			if showEvents {
				renderEvents(out, res.Events)
			}

			if outPath != "" {
				if err := core.WriteToFile(res.Proposals, outPath); err != nil {
					return fmt.Errorf("failed to write proposals to %s: %w", outPath, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path of the scenario file")
	cmd.Flags().BoolVar(&showEvents, "events", false, "Also print the emitted events")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the final proposals as JSON to this file")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
