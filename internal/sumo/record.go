package sumo

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/width"
)

// Record is a wrestler's tournament record. Rest is only set when bouts were missed.
type Record struct {
	Wins   int  `json:"wins"`
	Losses int  `json:"losses"`
	Rest   *int `json:"rest,omitempty"`
}

func (r Record) String() string {
	if r.Rest != nil {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, *r.Rest)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// N勝M敗P休 or N勝M敗, optionally in parentheses. Full width parentheses and digits are
// folded to ASCII before matching.
var recordPattern = regexp.MustCompile(`\(?\s*(\d+)勝(\d+)敗(?:(\d+)休)?\s*\)?`)

// ParseRecord reads a record like （6勝2敗） or （1勝0敗3休）. Text without a record
// parses as 0-0.
func ParseRecord(text string) Record {
	groups := recordPattern.FindStringSubmatch(width.Fold.String(text))
	if groups == nil {
		return Record{}
	}

	wins, err := strconv.Atoi(groups[1])
	if err != nil {
		return Record{}
	}
	losses, err := strconv.Atoi(groups[2])
	if err != nil {
		return Record{}
	}
	record := Record{Wins: wins, Losses: losses}

	if groups[3] != "" {
		rest, err := strconv.Atoi(groups[3])
		if err == nil {
			record.Rest = &rest
		}
	}
	return record
}
