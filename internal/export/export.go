// Package export writes parsed tables out as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"sumo-scraper/internal/sumo"
)

var matchupHeader = []string{
	"division",
	"day",
	"east_rank",
	"east_name",
	"east_kanji",
	"east_record",
	"east_result",
	"east_technique",
	"west_rank",
	"west_name",
	"west_kanji",
	"west_record",
	"west_result",
	"west_technique",
}

func sideColumns(side sumo.MatchupSide) []string {
	return []string{
		side.Slot.Label(),
		side.Name(),
		side.KanjiName,
		side.Record.String(),
		side.Result.String(),
		side.Technique,
	}
}

// WriteMatchupsCSV writes one line per bout, with a header line.
func WriteMatchupsCSV(w io.Writer, division sumo.Division, day int, matchups []sumo.MatchupData) error {
	writer := csv.NewWriter(w)
	err := writer.Write(matchupHeader)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, m := range matchups {
		record := []string{division.String(), strconv.Itoa(day)}
		record = append(record, sideColumns(m.East)...)
		record = append(record, sideColumns(m.West)...)
		err = writer.Write(record)
		if err != nil {
			return fmt.Errorf("write csv bout %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type torikumiJSON struct {
	Division sumo.Division      `json:"division"`
	Day      int                `json:"day"`
	Bouts    []sumo.MatchupData `json:"bouts"`
}

// WriteMatchupsJSON writes the bouts of a day as one indented JSON document.
func WriteMatchupsJSON(w io.Writer, division sumo.Division, day int, matchups []sumo.MatchupData) error {
	if matchups == nil {
		matchups = []sumo.MatchupData{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(torikumiJSON{
		Division: division,
		Day:      day,
		Bouts:    matchups,
	})
	if err != nil {
		return fmt.Errorf("write matchups json: %w", err)
	}
	return nil
}

// WriteWrestlersJSON writes wrestlers as an indented JSON array, in the order given.
func WriteWrestlersJSON(w io.Writer, wrestlers []sumo.Wrestler) error {
	if wrestlers == nil {
		wrestlers = []sumo.Wrestler{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(wrestlers)
	if err != nil {
		return fmt.Errorf("write wrestlers json: %w", err)
	}
	return nil
}
