package jsa

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/sumo"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// playerCell renders one side of a torikumi row.
func playerCell(class, rank, name, record string) string {
	return fmt.Sprintf(`
		<td class="%s">
			<span class="rank">%s</span>
			<span class="name"><a href="/ResultRikishiData/profile/1/">%s</a></span>
			<span class="perform">%s</span>
		</td>`, class, rank, name, record)
}

// boutRow renders a torikumi row with the outcome images of both sides.
func boutRow(east, eastImage, decide, westImage, west string) string {
	return fmt.Sprintf(`
		<tr>
			%s
			<td class="result"><img src="/img/sumo_data/%s"></td>
			<td class="decide">%s</td>
			<td class="result"><img src="/img/sumo_data/%s"></td>
			%s
		</tr>`, east, eastImage, decide, westImage, west)
}

func torikumiTable(rows ...string) string {
	return `<html><body><table class="mdTable1">
		<tr><th>東</th><th></th><th>決まり手</th><th></th><th>西</th></tr>` +
		strings.Join(rows, "\n") +
		`</table></body></html>`
}

func parseDocument(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// dataRows are the rows of the fixture that have cells.
func dataRows(doc *goquery.Document) []*goquery.Selection {
	var rows []*goquery.Selection
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.ChildrenFiltered("td").Length() > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}

type lookup struct {
	kanji     string
	preferred sumo.Division
}

type fakeResolver struct {
	wrestlers map[string]sumo.Wrestler
	err       error
	panics    bool
	lookups   []lookup
}

func (r *fakeResolver) Resolve(_ context.Context, kanji string, preferred sumo.Division) (sumo.Wrestler, error) {
	if r.panics {
		panic("resolver exploded")
	}
	r.lookups = append(r.lookups, lookup{kanji: kanji, preferred: preferred})
	if r.err != nil {
		return sumo.Wrestler{}, r.err
	}
	w, ok := r.wrestlers[kanji]
	if !ok {
		return sumo.Wrestler{}, fmt.Errorf("%w: %s", roster.ErrNotFound, kanji)
	}
	return w, nil
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		wrestlers: map[string]sumo.Wrestler{
			"阿炎":  {ID: 3761, KanjiName: "阿炎", RomajiName: "abi", EnglishName: "Abi"},
			"若元春": {ID: 3853, KanjiName: "若元春", RomajiName: "wakamotoharu", EnglishName: "Wakamotoharu"},
			"獅司":  {ID: 12131, KanjiName: "獅司", RomajiName: "shishi", EnglishName: "Shishi"},
			"豊昇龍": {ID: 3842, KanjiName: "豊昇龍", RomajiName: "hoshoryu", EnglishName: "Hoshoryu"},
		},
	}
}

func newRecorder() *telemetry.Recorder {
	return &telemetry.Recorder{}
}
