package cmds

import (
	"fmt"
	"math"
	"os"

	"epgsync/internal/app/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func newSummaryTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)
	return tw
}

// printFixSummary reports the fuzzy pass: counts, one line per matched
// channel with its score as a percentage, then the unmatched names.
func printFixSummary(result *reconcile.FixResult) {
	fmt.Printf("channels: %d, matched: %d, unmatched: %d\n",
		len(result.Channels), len(result.Matches), len(result.Unmatched))

	tw := newSummaryTable("Playlist Name", "EPG Name", "EPG ID", "Score")
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	for _, m := range result.Matches {
		tw.AppendRow(table.Row{
			m.Channel.Name,
			m.EpgName,
			m.EpgID,
			fmt.Sprintf("%d%%", int(math.Round(m.Score*100))),
		})
	}
	tw.Render()

	for _, ch := range result.Unmatched {
		fmt.Printf("no match: %s\n", ch.Name)
	}
}

// printCleanSummary reports the override pass.
func printCleanSummary(result *reconcile.CleanResult) {
	fmt.Printf("channels: %d, resolved: %d, unresolved: %d\n",
		len(result.Channels), len(result.Resolved), len(result.Unresolved))

	tw := newSummaryTable("Playlist Name", "EPG ID")
	for _, m := range result.Resolved {
		tw.AppendRow(table.Row{m.Channel.Name, m.ID})
	}
	tw.Render()

	unresolved := result.Unresolved
	if len(unresolved) > reconcile.MaxUnresolved {
		unresolved = unresolved[:reconcile.MaxUnresolved]
	}
	for _, m := range unresolved {
		fmt.Printf("unresolved: %s\n", m.Channel.Name)
	}
}
