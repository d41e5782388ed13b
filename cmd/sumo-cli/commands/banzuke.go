package commands

import (
	"fmt"
	"os"

	"sumo-scraper/cmd/sumo-cli/globals"
	"sumo-scraper/cmd/sumo-cli/utils"
	"sumo-scraper/internal/export"
	"sumo-scraper/internal/sumo"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var banzukeDivision *string
var banzukeFormat *string

func init() {
	banzukeDivision = banzukeCmd.Flags().String("division", "", "Comma separated divisions to list, all of them if empty.")
	banzukeFormat = banzukeCmd.Flags().String("format", "table", "The output format: table, list or json.")
	rootCmd.AddCommand(banzukeCmd)
}

var banzukeCmd = &cobra.Command{
	Use:   "banzuke [--division <divisions>] [--format table|list|json]",
	Short: "Lists the wrestlers of the stored rosters in banzuke order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := globals.Get(cmd.Context())

		divisions, err := parseDivisions(*banzukeDivision)
		if err != nil {
			return err
		}
		format, err := parseFormat(*banzukeFormat, formatTable, formatList, formatJSON)
		if err != nil {
			return err
		}

		var wrestlers []sumo.Wrestler
		for _, division := range divisions {
			roster, err := g.Rosters.GetOrLoad(cmd.Context(), division)
			if err != nil {
				return err
			}
			wrestlers = append(wrestlers, roster...)
		}
		sumo.SortWrestlers(wrestlers)

		switch format {
		case formatJSON:
			return export.WriteWrestlersJSON(os.Stdout, wrestlers)
		case formatList:
			renderWrestlerList(wrestlers)
		default:
			renderWrestlerTable(wrestlers)
		}
		return nil
	},
}

func slotLabel(w sumo.Wrestler) string {
	if w.CurrentSlot == nil {
		return "-"
	}
	return w.CurrentSlot.Label()
}

func renderWrestlerTable(wrestlers []sumo.Wrestler) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"Division", "Rank", "Name", "Kanji", "ID"})
	for _, w := range wrestlers {
		division := "-"
		if w.CurrentSlot != nil {
			division = w.CurrentSlot.Division.String()
		}
		t.AppendRow(table.Row{division, slotLabel(w), w.DisplayName(), w.KanjiName, w.ID})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(wrestlers)})
	t.Render()
}

// renderWrestlerList groups the wrestlers under their division, they must already be
// sorted.
func renderWrestlerList(wrestlers []sumo.Wrestler) {
	l := utils.NewList()
	current := sumo.DivisionUnknown
	indented := false
	for _, w := range wrestlers {
		division := sumo.DivisionUnknown
		if w.CurrentSlot != nil {
			division = w.CurrentSlot.Division
		}
		if !indented || division != current {
			if indented {
				l.UnIndent()
			}
			l.AppendItem(fmt.Sprintf("%s %s", division, division.Japanese()))
			l.Indent()
			indented = true
			current = division
		}
		l.AppendItem(fmt.Sprintf("%-5s %s (%s)", slotLabel(w), w.DisplayName(), w.KanjiName))
	}
	l.Render()
}
