package commands

import (
	"fmt"

	"sumo-scraper/cmd/sumo-cli/globals"
	"sumo-scraper/cmd/sumo-cli/utils"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/scrapers/jsa"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	report_roster_fetch = "sumo-cli.roster-fetch"
)

var rosterDivision *string

func init() {
	rosterDivision = rosterFetchCmd.Flags().String("division", "", "Comma separated divisions to fetch, all of them if empty.")
	rosterCmd.AddCommand(rosterFetchCmd)
	rootCmd.AddCommand(rosterCmd)
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manages the division rosters wrestler names are resolved against.",
}

var rosterFetchCmd = &cobra.Command{
	Use:   "fetch [--division <divisions>]",
	Short: "Downloads the banzuke of each division and writes it as a roster file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := globals.Get(cmd.Context())

		divisions, err := parseDivisions(*rosterDivision)
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Division", "Wrestlers", "File"})
		for _, division := range divisions {
			doc, err := g.Client.FetchBanzuke(cmd.Context(), division)
			if err != nil {
				return err
			}
			entries := jsa.RosterEntries(jsa.ParseBanzuke(cmd.Context(), doc, division))
			if len(entries) == 0 {
				g.Tel.ReportWarning(report_roster_fetch, "banzuke has no wrestlers", division.String())
			}

			err = roster.Write(g.DataDir, division, entries)
			if err != nil {
				return fmt.Errorf("write %s roster: %w", division, err)
			}
			t.AppendRow(table.Row{division.String(), len(entries), roster.Path(g.DataDir, division)})
		}
		t.Render()
		return nil
	},
}
