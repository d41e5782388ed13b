package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sumo-scraper/cmd/sumo-cli/globals"
	"sumo-scraper/cmd/sumo-cli/utils"
	"sumo-scraper/internal/export"
	"sumo-scraper/internal/sumo"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var torikumiDivision *string
var torikumiDay *int
var torikumiOut *string
var torikumiFormat *string

func init() {
	torikumiDivision = torikumiCmd.Flags().String("division", "makuuchi", "The division of the bouts.")
	torikumiDay = torikumiCmd.Flags().Int("day", 1, "The day of the basho, from 1 to 15.")
	torikumiOut = torikumiCmd.Flags().String("out", "", "Writes the bouts to a .csv or .json file instead of the console.")
	torikumiFormat = torikumiCmd.Flags().String("format", "table", "The console output format: table, json or csv.")
	rootCmd.AddCommand(torikumiCmd)
}

var torikumiCmd = &cobra.Command{
	Use:   "torikumi --division <division> --day <day> [--out <file.csv|file.json>] [--format table|json|csv]",
	Short: "Fetches and parses the bouts of a division on a day of the current basho.",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := globals.Get(cmd.Context())

		division, err := sumo.ParseDivision(*torikumiDivision)
		if err != nil {
			return err
		}
		format, err := parseFormat(*torikumiFormat, formatTable, formatJSON, formatCSV)
		if err != nil {
			return err
		}
		if *torikumiOut != "" {
			format, err = formatFromExtension(*torikumiOut)
			if err != nil {
				return err
			}
		}

		doc, err := g.Client.FetchTorikumi(cmd.Context(), division, *torikumiDay)
		if err != nil {
			return err
		}
		matchups, err := g.Parser.ParseTorikumi(cmd.Context(), doc, division)
		if err != nil {
			return err
		}

		if *torikumiOut == "" {
			if format == formatTable {
				renderMatchups(division, *torikumiDay, matchups)
				return nil
			}
			return writeMatchups(os.Stdout, format, division, *torikumiDay, matchups)
		}

		f, err := os.Create(*torikumiOut)
		if err != nil {
			return err
		}
		defer f.Close()
		err = writeMatchups(f, format, division, *torikumiDay, matchups)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d bouts to %s\n", len(matchups), *torikumiOut)
		return f.Close()
	},
}

func formatFromExtension(path string) (outputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".json":
		return formatJSON, nil
	}
	return "", fmt.Errorf("cannot tell the format of %s, use a .csv or .json file", path)
}

func writeMatchups(w io.Writer, format outputFormat, division sumo.Division, day int, matchups []sumo.MatchupData) error {
	if format == formatCSV {
		return export.WriteMatchupsCSV(w, division, day, matchups)
	}
	return export.WriteMatchupsJSON(w, division, day, matchups)
}

func renderMatchups(division sumo.Division, day int, matchups []sumo.MatchupData) {
	t := utils.NewTable()
	t.SetTitle(fmt.Sprintf("%s day %d", division, day))
	t.AppendHeader(table.Row{"East", "", "", "Kimarite", "", "", "West"})
	for _, m := range matchups {
		technique := m.East.Technique
		if technique == "" {
			technique = m.West.Technique
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%s %s", m.East.Slot.Label(), m.East.Name()),
			m.East.Record.String(),
			utils.Result(m.East.Result),
			technique,
			utils.Result(m.West.Result),
			m.West.Record.String(),
			fmt.Sprintf("%s %s", m.West.Name(), m.West.Slot.Label()),
		})
	}
	t.Render()
}
