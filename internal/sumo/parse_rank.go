package sumo

import (
	"strings"

	"sumo-scraper/internal/sumo/dictionary"
	"sumo-scraper/internal/sumo/kanjinum"
)

const (
	// 筆頭 marks the first position of a division's numbered ranks.
	topOfSheet = "筆頭"
	// 枚目 is the ordinal counter suffix, 三枚目 is the third position.
	ordinalSuffix = "枚目"
)

// splitSide strips a leading 東/西 marker.
func splitSide(text string) (Side, string) {
	for _, ja := range dictionary.Sides.Prefixes() {
		if strings.HasPrefix(text, ja) {
			return ParseSide(ja), strings.TrimSpace(strings.TrimPrefix(text, ja))
		}
	}
	return SideUnknown, text
}

// parsePosition reads what follows a rank name: nothing or 筆頭 is the first position,
// otherwise a numeral with or without 枚目. 0 means the remainder is not a position.
func parsePosition(remainder string) uint {
	remainder = strings.TrimSpace(remainder)
	if remainder == "" || remainder == topOfSheet {
		return 1
	}
	remainder = strings.TrimSuffix(remainder, ordinalSuffix)
	return kanjinum.Convert(remainder)
}

// ParseRank turns banzuke rank text like 横綱, 前頭三枚目 or 幕下十五枚目 into a Rank.
// `division` is the division of the table the text came from (DivisionUnknown if not
// known), it is only used when the text itself does not name a division. A nil result
// means the rank is unknown.
//
// Maegashira positions are absolute: 前頭三枚目 is maegashira 3, not 3 places below
// the titled ranks.
func ParseRank(text string, division Division) Rank {
	_, text = splitSide(strings.TrimSpace(text))

	if text == topOfSheet {
		if !division.Valid() {
			return nil
		}
		rank, err := numberedRank(division, 1)
		if err != nil {
			return nil
		}
		return rank
	}

	if en, ja, ok := dictionary.Ranks.MatchPrefix(text); ok {
		if title, isTitle := titleFromName(en); isTitle {
			return Titled{Title: title}
		}

		matched := Makuuchi
		if en != "maegashira" {
			parsed, err := ParseDivision(en)
			if err != nil {
				return nil
			}
			matched = parsed
		}

		position := parsePosition(strings.TrimPrefix(text, ja))
		if position == 0 {
			return Unplaced{division: matched}
		}
		rank, err := numberedRank(matched, position)
		if err != nil {
			return nil
		}
		return rank
	}

	if strings.HasSuffix(text, ordinalSuffix) && division.Valid() {
		position := kanjinum.Convert(strings.TrimSuffix(text, ordinalSuffix))
		if position > 0 {
			rank, err := numberedRank(division, position)
			if err == nil {
				return rank
			}
		}
	}

	if !division.Valid() {
		return nil
	}
	return Unplaced{division: division}
}

// ParseSlot parses rank text into a full slot. The side comes from `side`, or from a
// leading 東/西 in the text when `side` is SideUnknown. It returns false when the rank
// (and so the division) could not be determined.
func ParseSlot(text string, division Division, side Side) (Slot, bool) {
	textSide, _ := splitSide(strings.TrimSpace(text))
	if side == SideUnknown {
		side = textSide
	}

	rank := ParseRank(text, division)
	if rank == nil {
		return Slot{}, false
	}
	return Slot{
		Division: rank.Division(),
		Side:     side,
		Rank:     rank,
	}, true
}
