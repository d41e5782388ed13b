package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sumo-scraper/internal/components/assert"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/sumo"
	"sumo-scraper/internal/sumo/kana"
)

const (
	report_file_loader_load = "file-loader.load"
)

var ErrRosterMissing = errors.New("roster file missing")

// Entry is a wrestler as stored in a roster file. Rank and side are kept as the
// Japanese text of the banzuke and parsed on load.
type Entry struct {
	ID       int    `json:"id"`
	Kanji    string `json:"kanji"`
	Hiragana string `json:"hiragana,omitempty"`
	Romaji   string `json:"romaji,omitempty"`
	English  string `json:"english,omitempty"`
	Rank     string `json:"rank,omitempty"`
	Side     string `json:"side,omitempty"`
}

type file struct {
	Rikishi []Entry `json:"rikishi"`
}

// Path returns where the roster of a division lives under dataDir:
// {dataDir}/json/{n}_{name}_rikishi.json
func Path(dataDir string, division sumo.Division) string {
	return filepath.Join(
		dataDir,
		"json",
		fmt.Sprintf("%d_%s_rikishi.json", int(division), division),
	)
}

// FileLoader loads rosters from the json files written by Write.
type FileLoader struct {
	dataDir string
	tel     telemetry.API
}

func NewFileLoader(dataDir string, tel telemetry.API) FileLoader {
	assert.NotEmptyStr(dataDir)
	assert.NotNil(tel)

	return FileLoader{
		dataDir: dataDir,
		tel:     telemetry.NewScopedAPI("roster", tel),
	}
}

func (l FileLoader) Load(_ context.Context, division sumo.Division) ([]sumo.Wrestler, error) {
	path := Path(l.dataDir, division)

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: division %s at %s", ErrRosterMissing, division, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read roster of division %s at %s: %w", division, path, err)
	}

	var f file
	err = json.Unmarshal(contents, &f)
	if err != nil {
		return nil, fmt.Errorf("decode roster of division %s at %s: %w", division, path, err)
	}

	wrestlers := make([]sumo.Wrestler, 0, len(f.Rikishi))
	for i, entry := range f.Rikishi {
		wrestler, ok := l.toWrestler(entry, division)
		if !ok {
			l.tel.ReportWarning(report_file_loader_load, "skipped entry without kanji name", path, i)
			continue
		}
		wrestlers = append(wrestlers, wrestler)
	}
	return wrestlers, nil
}

func (l FileLoader) toWrestler(entry Entry, division sumo.Division) (sumo.Wrestler, bool) {
	kanji := strings.TrimSpace(entry.Kanji)
	if kanji == "" {
		return sumo.Wrestler{}, false
	}

	romaji := entry.Romaji
	if romaji == "" {
		romaji = kana.ToRomaji(entry.Hiragana)
	}
	english := entry.English
	if english == "" {
		english = kana.EnglishName(romaji)
	}

	wrestler := sumo.Wrestler{
		ID:           entry.ID,
		KanjiName:    kanji,
		HiraganaName: entry.Hiragana,
		RomajiName:   romaji,
		EnglishName:  english,
	}

	if entry.Rank != "" {
		slot, ok := sumo.ParseSlot(entry.Rank, division, sumo.ParseSide(entry.Side))
		if ok {
			wrestler.CurrentSlot = &slot
		} else {
			l.tel.ReportWarning(report_file_loader_load, "unknown rank", kanji, entry.Rank)
		}
	}
	return wrestler, true
}

// Write stores the roster of a division where FileLoader expects it.
func Write(dataDir string, division sumo.Division, entries []Entry) error {
	if !division.Valid() {
		return fmt.Errorf("write roster: invalid division %d", int(division))
	}
	path := Path(dataDir, division)

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	if entries == nil {
		entries = []Entry{}
	}
	contents, err := json.MarshalIndent(file{Rikishi: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	err = os.WriteFile(path, contents, 0644)
	if err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
