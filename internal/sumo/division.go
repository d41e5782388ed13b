// Package sumo holds the banzuke domain model: divisions, ranks, sides, wrestlers,
// bout records and the order the banzuke imposes on them.
package sumo

import (
	"fmt"
	"strings"

	"sumo-scraper/internal/sumo/dictionary"
)

// Division is one of the six ranked tiers. The numbering follows the federation's
// own division ids, top division first.
type Division int

const (
	DivisionUnknown Division = iota
	Makuuchi
	Juryo
	Makushita
	Sandanme
	Jonidan
	Jonokuchi
)

// Divisions lists every division in hierarchy order.
var Divisions = []Division{
	Makuuchi,
	Juryo,
	Makushita,
	Sandanme,
	Jonidan,
	Jonokuchi,
}

var divisionNames = map[Division]string{
	Makuuchi:  "makuuchi",
	Juryo:     "juryo",
	Makushita: "makushita",
	Sandanme:  "sandanme",
	Jonidan:   "jonidan",
	Jonokuchi: "jonokuchi",
}

func (d Division) Valid() bool {
	return d >= Makuuchi && d <= Jonokuchi
}

// String returns the English name, "unknown" for anything invalid.
func (d Division) String() string {
	name, ok := divisionNames[d]
	if !ok {
		return "unknown"
	}
	return name
}

// Japanese returns the kanji name of the division.
func (d Division) Japanese() string {
	ja, _ := dictionary.Divisions.Japanese(d.String())
	return ja
}

// ParseDivision accepts the English name, the Japanese name or the division number.
func ParseDivision(text string) (Division, error) {
	text = strings.TrimSpace(text)
	lowered := strings.ToLower(text)
	for _, d := range Divisions {
		if lowered == d.String() || text == d.Japanese() || text == fmt.Sprint(int(d)) {
			return d, nil
		}
	}
	return DivisionUnknown, fmt.Errorf("unknown division %q", text)
}

func (d Division) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid division %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Division) UnmarshalText(text []byte) error {
	parsed, err := ParseDivision(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Side is the half of the banzuke a wrestler is listed on.
type Side int

const (
	SideUnknown Side = iota
	East
	West
)

func (s Side) String() string {
	switch s {
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseSide accepts "east"/"west" or 東/西, anything else is SideUnknown.
func ParseSide(text string) Side {
	text = strings.TrimSpace(text)
	if en, ok := dictionary.Sides.English(text); ok {
		text = en
	}
	switch strings.ToLower(text) {
	case "east":
		return East
	case "west":
		return West
	}
	return SideUnknown
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	*s = ParseSide(string(text))
	return nil
}
