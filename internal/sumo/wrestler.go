package sumo

import "strings"

// Wrestler is a rikishi as listed in a division roster. ID is the federation's profile
// id and is stable across tournaments.
type Wrestler struct {
	ID           int    `json:"id"`
	KanjiName    string `json:"kanji"`
	HiraganaName string `json:"hiragana"`
	RomajiName   string `json:"romaji"`
	EnglishName  string `json:"english"`
	CurrentSlot  *Slot  `json:"slot,omitempty"`
}

// DisplayName is the English name, or the kanji name when there is no English name.
func (w Wrestler) DisplayName() string {
	if strings.TrimSpace(w.EnglishName) != "" {
		return w.EnglishName
	}
	return w.KanjiName
}
