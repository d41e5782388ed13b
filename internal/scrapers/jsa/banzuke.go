package jsa

import (
	"context"

	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/sumo"
	"sumo-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// BanzukeRows selects the rows of the standings table of a division.
const BanzukeRows = "table.mdTable1 tr"

// BanzukeEntry is one wrestler as listed on the banzuke.
type BanzukeEntry struct {
	ID       int
	Kanji    string
	Hiragana string
	// RankText is the rank as printed, like 前頭三枚目.
	RankText string
	Slot     sumo.Slot
	Record   sumo.Record
}

// ParseBanzuke reads the standings table of a division. Every row has an east cell, a
// rank cell and a west cell, either side may be empty. Wrestlers without a profile
// link are skipped.
func ParseBanzuke(ctx context.Context, doc *goquery.Document, division sumo.Division) []BanzukeEntry {
	var entries []BanzukeEntry
	doc.Find(BanzukeRows).Each(func(_ int, row *goquery.Selection) {
		rankText := htmlutil.Text(row.Find("td.rank"))
		if rankText == "" {
			return
		}

		sides := []struct {
			side sumo.Side
			cell *goquery.Selection
		}{
			{side: sumo.East, cell: row.Find("td.east")},
			{side: sumo.West, cell: row.Find("td.west")},
		}
		for _, s := range sides {
			entry, ok := parseBanzukeCell(ctx, s.cell, rankText, division, s.side)
			if ok {
				entries = append(entries, entry)
			}
		}
	})
	return entries
}

func parseBanzukeCell(ctx context.Context, cell *goquery.Selection, rankText string, division sumo.Division, side sumo.Side) (BanzukeEntry, bool) {
	anchors := htmlutil.GetAnchors(ctx, cell.Find("a[href*='/profile/']"))
	if len(anchors) == 0 {
		return BanzukeEntry{}, false
	}
	id, ok := anchors[0].ProfileID()
	if !ok || anchors[0].Name == "" {
		return BanzukeEntry{}, false
	}
	slot, ok := sumo.ParseSlot(rankText, division, side)
	if !ok {
		return BanzukeEntry{}, false
	}

	return BanzukeEntry{
		ID:       id,
		Kanji:    anchors[0].Name,
		Hiragana: htmlutil.Text(cell.Find(".kana")),
		RankText: rankText,
		Slot:     slot,
		Record:   sumo.ParseRecord(htmlutil.Text(cell.Find(".perform"))),
	}, true
}

// RosterEntries converts banzuke entries into the entries of a roster file, ordered
// as the banzuke orders them.
func RosterEntries(entries []BanzukeEntry) []roster.Entry {
	wrestlers := make([]sumo.Wrestler, 0, len(entries))
	byID := make(map[int]BanzukeEntry, len(entries))
	for _, e := range entries {
		slot := e.Slot
		wrestlers = append(wrestlers, sumo.Wrestler{ID: e.ID, KanjiName: e.Kanji, CurrentSlot: &slot})
		byID[e.ID] = e
	}
	sumo.SortWrestlers(wrestlers)

	out := make([]roster.Entry, 0, len(wrestlers))
	for _, w := range wrestlers {
		e := byID[w.ID]
		out = append(out, roster.Entry{
			ID:       e.ID,
			Kanji:    e.Kanji,
			Hiragana: e.Hiragana,
			Rank:     e.RankText,
			Side:     e.Slot.Side.String(),
		})
	}
	return out
}
