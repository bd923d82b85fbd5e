package tokenvoting

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/smartcontractkit/tokenvoting/internal/core/tally"
	"github.com/smartcontractkit/tokenvoting/internal/scenario"
	"github.com/smartcontractkit/tokenvoting/types"
)

var (
	headerStyle   = color.New(color.Bold, color.FgHiWhite)
	passStyle     = color.New(color.FgGreen)
	failStyle     = color.New(color.FgRed)
	pendingStyle  = color.New(color.FgYellow)
	executedStyle = color.New(color.FgCyan, color.Bold)
	faintStyle    = color.New(color.Faint)
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	return t
}

func yesNo(ok bool) string {
	if ok {
		return passStyle.Sprint("yes")
	}

	return failStyle.Sprint("no")
}

func statusText(status types.ProposalStatus) string {
	switch status {
	case types.ProposalStatusExecuted:
		return executedStyle.Sprint(status)
	case types.ProposalStatusDecided:
		return passStyle.Sprint(status)
	case types.ProposalStatusPending, types.ProposalStatusOpen:
		return pendingStyle.Sprint(status)
	default:
		return failStyle.Sprint(status)
	}
}

func renderSteps(w io.Writer, res *scenario.Result) {
	headerStyle.Fprintln(w, "Steps")

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Block", "Time", "Call", "Outcome"})
	for _, step := range res.Steps {
		outcome := step.Outcome
		if step.Err != nil {
			outcome = faintStyle.Sprint(outcome)
		}
		t.AppendRow(table.Row{step.Index, step.Block.Number, step.Block.Timestamp, step.Kind, outcome})
	}
	t.Render()
}

func renderProposals(w io.Writer, res *scenario.Result) {
	headerStyle.Fprintf(w, "Proposals at block %d (time %d)\n", res.Head.Number, res.Head.Timestamp)

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Creator", "Status", "Yes", "No", "Abstain", "Voting power", "Window", "Actions"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, p := range res.Proposals {
		t.AppendRow(table.Row{
			p.ID,
			res.Name(p.Creator),
			statusText(p.Status),
			p.Tally.Yes,
			p.Tally.No,
			p.Tally.Abstain,
			p.TotalVotingPower,
			fmt.Sprintf("[%d, %d)", p.Parameters.StartDate, p.Parameters.EndDate),
			len(p.Actions),
		})
	}
	t.Render()
}

func renderVotesCast(w io.Writer, res *scenario.Result) {
	if len(res.Votes) == 0 {
		return
	}

	headerStyle.Fprintln(w, "Votes")

	t := newTable(w)
	t.AppendHeader(table.Row{"Proposal", "Voter", "Option", "Weight"})
	for _, v := range res.Votes {
		t.AppendRow(table.Row{v.ProposalID, res.Name(v.Voter), v.Receipt.Option, v.Receipt.Weight})
	}
	t.Render()
}

func renderEvents(w io.Writer, events []types.Event) {
	headerStyle.Fprintln(w, "Events")

	lines := lo.Map(events, func(e types.Event, i int) string {
		return fmt.Sprintf("%3d  %s", i, e.String())
	})
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func renderTally(w io.Writer, in tally.Input, res tally.Result, beforeEnd bool) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Rule", "Threshold", "Reached"})
	t.AppendRow(table.Row{"support", in.SupportThreshold, yesNo(res.SupportReached)})
	t.AppendRow(table.Row{"participation", in.ParticipationThreshold, yesNo(res.ParticipationReached)})
	t.AppendRow(table.Row{"early support", in.SupportThreshold, yesNo(res.EarlySupportReached)})
	t.AppendSeparator()

	when := "after end"
	if beforeEnd {
		when = "before end"
	}
	t.AppendFooter(table.Row{"decided (" + when + ")", "", yesNo(res.Decided)})
	t.Render()
}

func renderVotes(w io.Writer, block uint64, supply *big.Int, rows []accountVotes) {
	headerStyle.Fprintf(w, "Voting power at block %d\n", block)

	t := newTable(w)
	t.AppendHeader(table.Row{"Account", "Votes", "Share"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.account.Hex(), row.votes, share(row.votes, supply)})
	}
	t.AppendFooter(table.Row{"total supply", supply, ""})
	t.Render()
}

func share(votes, supply *big.Int) string {
	if supply == nil || supply.Sign() == 0 || votes == nil {
		return "-"
	}

	return new(big.Rat).SetFrac(new(big.Int).Mul(votes, big.NewInt(100)), supply).FloatString(2) + "%"
}
