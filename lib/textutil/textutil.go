package textutil

import (
	"strings"
	"unicode"
)

// NormalizeName lower-cases a romanized name and drops everything that is not a
// letter, so "Hōshōryū Tomokatsu" and "hoshoryu-tomokatsu" compare on letters only.
func NormalizeName(name string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			out.WriteRune(r)
			continue
		}
		if folded, ok := macrons[r]; ok {
			out.WriteRune(folded)
		}
	}
	return out.String()
}

var macrons = map[rune]rune{
	'ā': 'a',
	'ī': 'i',
	'ū': 'u',
	'ē': 'e',
	'ō': 'o',
	'â': 'a',
	'î': 'i',
	'û': 'u',
	'ê': 'e',
	'ô': 'o',
}

// MatchName returns true if the normalized name contains any of the matchers.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if m != "" && strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}
