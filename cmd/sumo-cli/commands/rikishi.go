package commands

import (
	"errors"
	"fmt"
	"unicode"

	"sumo-scraper/cmd/sumo-cli/globals"
	"sumo-scraper/cmd/sumo-cli/utils"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/sumo"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	report_rikishi_find = "sumo-cli.rikishi-find"
)

var rikishiDivision *string

func init() {
	rikishiDivision = rikishiFindCmd.Flags().String("division", "", "The division to look in first.")
	rikishiCmd.AddCommand(rikishiFindCmd)
	rootCmd.AddCommand(rikishiCmd)
}

var rikishiCmd = &cobra.Command{
	Use:   "rikishi",
	Short: "Looks up wrestlers in the stored rosters.",
}

// isJapanese is true when the name has any kanji or kana, so it is looked up
// by its exact kanji form instead of as a romanized name.
func isJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

var rikishiFindCmd = &cobra.Command{
	Use:   "find <name> [--division <division>]",
	Short: "Finds a wrestler by kanji name or by romanized name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := globals.Get(cmd.Context())
		name := args[0]

		preferred := sumo.DivisionUnknown
		if *rikishiDivision != "" {
			parsed, err := sumo.ParseDivision(*rikishiDivision)
			if err != nil {
				return err
			}
			preferred = parsed
		}

		var wrestler sumo.Wrestler
		var err error
		if isJapanese(name) {
			wrestler, err = g.Resolver.Resolve(cmd.Context(), name, preferred)
		} else {
			wrestler, err = g.Resolver.ResolveRomaji(cmd.Context(), name, preferred)
		}
		if errors.Is(err, roster.ErrNotFound) {
			return suggest(cmd, name)
		}
		if err != nil {
			return err
		}

		renderWrestlerTable([]sumo.Wrestler{wrestler})
		return nil
	},
}

func suggest(cmd *cobra.Command, name string) error {
	g := globals.Get(cmd.Context())

	suggestions, err := g.Resolver.Suggest(cmd.Context(), name, 5)
	if err != nil {
		g.Tel.ReportWarning(report_rikishi_find, err)
	}
	if len(suggestions) == 0 {
		return fmt.Errorf("no wrestler named %q", name)
	}

	fmt.Printf("no wrestler named %q, did you mean:\n", name)
	t := utils.NewTable()
	t.AppendHeader(table.Row{"Name", "Kanji", "Rank", "Similarity"})
	for _, s := range suggestions {
		t.AppendRow(table.Row{
			s.Wrestler.DisplayName(),
			s.Wrestler.KanjiName,
			slotLabel(s.Wrestler),
			fmt.Sprintf("%.2f", s.Similarity),
		})
	}
	t.Render()
	return nil
}
