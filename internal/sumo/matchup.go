package sumo

import (
	"errors"
	"fmt"
)

// Result is the outcome of a bout for one side.
type Result int

const (
	NoResult Result = iota
	Win
	Loss
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "none"
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// MatchupSide is one wrestler's half of a bout. Technique is the English kimarite and
// is only set on a win.
type MatchupSide struct {
	Slot      Slot      `json:"slot"`
	KanjiName string    `json:"kanji"`
	Wrestler  *Wrestler `json:"wrestler,omitempty"`
	Record    Record    `json:"record"`
	Result    Result    `json:"result"`
	Technique string    `json:"technique,omitempty"`
}

// Name is the English name of the resolved wrestler, falling back to the kanji name.
func (m MatchupSide) Name() string {
	if m.Wrestler != nil {
		return m.Wrestler.DisplayName()
	}
	return m.KanjiName
}

// MatchupData is a single bout of a torikumi table.
type MatchupData struct {
	East MatchupSide `json:"east"`
	West MatchupSide `json:"west"`
}

var ErrDoubleWin = errors.New("both sides of a bout cannot win")

func (m MatchupData) Validate() error {
	if m.East.Result == Win && m.West.Result == Win {
		return ErrDoubleWin
	}
	for _, side := range []MatchupSide{m.East, m.West} {
		if side.Technique != "" && side.Result != Win {
			return fmt.Errorf("%s has a technique without winning", side.KanjiName)
		}
	}
	return nil
}
