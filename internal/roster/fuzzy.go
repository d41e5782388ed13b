package roster

import (
	"context"
	"errors"
	"regexp"
	"slices"

	"sumo-scraper/internal/sumo"
	"sumo-scraper/lib/textutil"

	"github.com/antzucaro/matchr"
)

type collapseRule struct {
	pattern *regexp.Regexp
	replace string
}

// phoneticRules fold the spellings romanized names drift between, applied in order.
// "oh" only folds before a consonant, so Daishoho keeps its last syllable.
var phoneticRules = []collapseRule{
	{pattern: regexp.MustCompile(`ou`), replace: "o"},
	{pattern: regexp.MustCompile(`oh([^aeiouy]|$)`), replace: "o$1"},
	{pattern: regexp.MustCompile(`oo`), replace: "o"},
	{pattern: regexp.MustCompile(`uu`), replace: "u"},
	{pattern: regexp.MustCompile(`ei`), replace: "e"},
	{pattern: regexp.MustCompile(`aa`), replace: "a"},
	{pattern: regexp.MustCompile(`ii`), replace: "i"},
	{pattern: regexp.MustCompile(`ee`), replace: "e"},
}

// NormalizeRomaji lower-cases and strips everything but letters.
func NormalizeRomaji(name string) string {
	return textutil.NormalizeName(name)
}

// Collapse applies the phonetic rules to an already normalized name.
func Collapse(normalized string) string {
	for _, rule := range phoneticRules {
		normalized = rule.pattern.ReplaceAllString(normalized, rule.replace)
	}
	return normalized
}

// MatchForward collapses the query and compares it with the normalized candidate.
func MatchForward(query, candidate string) bool {
	q := NormalizeRomaji(query)
	c := NormalizeRomaji(candidate)
	if q == "" || c == "" {
		return false
	}
	return q == c || Collapse(q) == c
}

// MatchReverse collapses the candidate and compares it with the normalized query.
func MatchReverse(query, candidate string) bool {
	q := NormalizeRomaji(query)
	c := NormalizeRomaji(candidate)
	if q == "" || c == "" {
		return false
	}
	return Collapse(c) == q
}

// Suggestion is a wrestler and how similar its name is to a query, 1 being identical.
type Suggestion struct {
	Wrestler   sumo.Wrestler
	Similarity float64
}

// Suggest ranks every wrestler of every division by Jaro-Winkler similarity to the
// query, for "did you mean" output. Divisions whose roster cannot be loaded are skipped
// and their errors returned alongside the suggestions.
func (r Resolver) Suggest(ctx context.Context, name string, limit int) ([]Suggestion, error) {
	query := Collapse(NormalizeRomaji(name))
	if query == "" {
		return nil, nil
	}

	var suggestions []Suggestion
	var errs []error
	for _, division := range sumo.Divisions {
		roster, err := r.cache.GetOrLoad(ctx, division)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, w := range roster {
			best := 0.0
			for _, candidate := range []string{w.RomajiName, w.EnglishName} {
				c := Collapse(NormalizeRomaji(candidate))
				if c == "" {
					continue
				}
				best = max(best, matchr.JaroWinkler(query, c, false))
			}
			if best > 0 {
				suggestions = append(suggestions, Suggestion{Wrestler: w, Similarity: best})
			}
		}
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return sumo.Compare(a.Wrestler, b.Wrestler)
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions, errors.Join(errs...)
}
