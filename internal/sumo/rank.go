package sumo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Title is one of the named ranks above maegashira, strongest first.
type Title int

const (
	Yokozuna Title = iota
	Ozeki
	Sekiwake
	Komusubi
)

var titleNames = []string{"yokozuna", "ozeki", "sekiwake", "komusubi"}

func (t Title) String() string {
	if t < Yokozuna || t > Komusubi {
		return "unknown"
	}
	return titleNames[t]
}

func titleFromName(name string) (Title, bool) {
	for i, n := range titleNames {
		if n == name {
			return Title(i), true
		}
	}
	return 0, false
}

// Rank is a position on the banzuke. The set of implementations is closed:
// Titled, Maegashira, Numbered and Unplaced.
type Rank interface {
	// Division is the division the rank implies.
	Division() Division
	// Short is a compact label like "Y", "M3" or "Ms12".
	Short() string
	String() string

	isRank()
}

// Titled is one of the four titled ranks of the top division.
type Titled struct {
	Title Title
}

func (Titled) Division() Division { return Makuuchi }
func (Titled) isRank() {}

func (t Titled) Short() string {
	return [...]string{"Y", "O", "S", "K"}[t.Title]
}

func (t Titled) String() string {
	return t.Title.String()
}

// Maegashira is a numbered rank of the top division.
type Maegashira struct {
	number uint
}

var errZeroPosition = errors.New("rank position must be at least 1")

func NewMaegashira(number uint) (Maegashira, error) {
	if number == 0 {
		return Maegashira{}, errZeroPosition
	}
	return Maegashira{number: number}, nil
}

func (Maegashira) Division() Division { return Makuuchi }
func (Maegashira) isRank() {}

func (m Maegashira) Number() uint {
	return m.number
}

func (m Maegashira) Short() string {
	return fmt.Sprintf("M%d", m.number)
}

func (m Maegashira) String() string {
	return fmt.Sprintf("maegashira %d", m.number)
}

// Numbered is a rank of any division below the top one.
type Numbered struct {
	division Division
	number   uint
}

func NewNumbered(division Division, number uint) (Numbered, error) {
	if !division.Valid() || division == Makuuchi {
		return Numbered{}, fmt.Errorf("division %s has no plain numbered ranks", division)
	}
	if number == 0 {
		return Numbered{}, errZeroPosition
	}
	return Numbered{division: division, number: number}, nil
}

func (n Numbered) Division() Division { return n.division }
func (Numbered) isRank() {}

func (n Numbered) Number() uint {
	return n.number
}

var divisionShort = map[Division]string{
	Juryo:     "J",
	Makushita: "Ms",
	Sandanme:  "Sd",
	Jonidan:   "Jd",
	Jonokuchi: "Jk",
}

func (n Numbered) Short() string {
	return fmt.Sprintf("%s%d", divisionShort[n.division], n.number)
}

func (n Numbered) String() string {
	return fmt.Sprintf("%s %d", n.division, n.number)
}

// Unplaced is a rank whose division is known but whose position could not be read.
type Unplaced struct {
	division Division
}

func NewUnplaced(division Division) (Unplaced, error) {
	if !division.Valid() {
		return Unplaced{}, fmt.Errorf("invalid division %d", int(division))
	}
	return Unplaced{division: division}, nil
}

func (u Unplaced) Division() Division { return u.division }
func (Unplaced) isRank() {}

func (u Unplaced) Short() string {
	if u.division == Makuuchi {
		return "M?"
	}
	return divisionShort[u.division] + "?"
}

func (u Unplaced) String() string {
	return fmt.Sprintf("%s (unplaced)", u.division)
}

// numberedRank builds the positioned rank of a division.
func numberedRank(division Division, number uint) (Rank, error) {
	if division == Makuuchi {
		return NewMaegashira(number)
	}
	return NewNumbered(division, number)
}

// Slot is a wrestler's place on the banzuke.
type Slot struct {
	Division Division
	Side     Side
	Rank     Rank
}

func (s Slot) String() string {
	if s.Rank == nil {
		return fmt.Sprintf("%s %s", s.Division, s.Side)
	}
	return fmt.Sprintf("%s %s", s.Rank.Short(), s.Side)
}

// Label is the compact banzuke notation, like "M3e" or "Ye".
func (s Slot) Label() string {
	label := "?"
	if s.Rank != nil {
		label = s.Rank.Short()
	}
	switch s.Side {
	case East:
		label += "e"
	case West:
		label += "w"
	}
	return label
}

type slotJSON struct {
	Division Division `json:"division"`
	Side     Side     `json:"side"`
	Rank     string   `json:"rank,omitempty"`
}

func (s Slot) MarshalJSON() ([]byte, error) {
	out := slotJSON{Division: s.Division, Side: s.Side}
	if s.Rank != nil {
		out.Rank = s.Rank.Short()
	}
	return json.Marshal(out)
}
