package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sumo-scraper/internal/components/assert"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/sumo"
)

const (
	report_resolver_resolve = "resolver.resolve"
)

var ErrNotFound = errors.New("wrestler not found")

// Resolver finds wrestlers in the cached division rosters.
type Resolver struct {
	cache *Cache
	tel   telemetry.API
}

func NewResolver(cache *Cache, tel telemetry.API) Resolver {
	assert.NotNil(cache)
	assert.NotNil(tel)

	return Resolver{
		cache: cache,
		tel:   telemetry.NewScopedAPI("roster", tel),
	}
}

// searchOrder is the preferred division followed by every other division top down.
func searchOrder(preferred sumo.Division) []sumo.Division {
	order := make([]sumo.Division, 0, len(sumo.Divisions))
	if preferred.Valid() {
		order = append(order, preferred)
	}
	for _, d := range sumo.Divisions {
		if d != preferred {
			order = append(order, d)
		}
	}
	return order
}

// Resolve finds a wrestler by exact kanji name, looking in the preferred division
// first. It returns ErrNotFound when no roster has the name, and the loader's error
// when a roster it had to search could not be loaded.
func (r Resolver) Resolve(ctx context.Context, kanji string, preferred sumo.Division) (sumo.Wrestler, error) {
	kanji = strings.TrimSpace(kanji)
	if kanji == "" {
		return sumo.Wrestler{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	for _, division := range searchOrder(preferred) {
		roster, err := r.cache.GetOrLoad(ctx, division)
		if err != nil {
			return sumo.Wrestler{}, err
		}
		for _, w := range roster {
			if w.KanjiName == kanji {
				if division != preferred {
					r.tel.ReportDebug("resolved outside preferred division", kanji, preferred.String(), division.String())
				}
				return w, nil
			}
		}
	}

	r.tel.ReportWarning(report_resolver_resolve, "name not in any roster", kanji, preferred.String())
	return sumo.Wrestler{}, fmt.Errorf("%w: %s", ErrNotFound, kanji)
}

// ResolveRomaji finds a wrestler by a romanized name that may be spelled with or
// without long vowels. Candidates are matched on both their romaji and English names.
func (r Resolver) ResolveRomaji(ctx context.Context, name string, preferred sumo.Division) (sumo.Wrestler, error) {
	if NormalizeRomaji(name) == "" {
		return sumo.Wrestler{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	var rosters [][]sumo.Wrestler
	for _, division := range searchOrder(preferred) {
		roster, err := r.cache.GetOrLoad(ctx, division)
		if err != nil {
			return sumo.Wrestler{}, err
		}
		rosters = append(rosters, roster)
	}

	for _, match := range []func(query, candidate string) bool{MatchForward, MatchReverse} {
		for _, roster := range rosters {
			for _, w := range roster {
				if match(name, w.RomajiName) || match(name, w.EnglishName) {
					return w, nil
				}
			}
		}
	}

	r.tel.ReportWarning(report_resolver_resolve, "romanized name not in any roster", name)
	return sumo.Wrestler{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}
