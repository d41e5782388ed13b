package sumo

import (
	"cmp"
	"slices"
	"strings"
)

const (
	tierTitled = iota
	tierNumbered
	tierUnplaced
)

func rankOrder(r Rank) (tier int, position uint) {
	switch r := r.(type) {
	case Titled:
		return tierTitled, uint(r.Title)
	case Maegashira:
		return tierNumbered, r.number
	case Numbered:
		return tierNumbered, r.number
	}
	return tierUnplaced, 0
}

func sideOrder(s Side) int {
	switch s {
	case East:
		return 0
	case West:
		return 1
	}
	return 2
}

func ranked(w Wrestler) bool {
	return w.CurrentSlot != nil && w.CurrentSlot.Rank != nil && w.CurrentSlot.Rank.Division().Valid()
}

// Compare orders wrestlers the way the banzuke lists them: by division, then titled
// ranks (yokozuna, ozeki, sekiwake, komusubi) before numbered positions, then east before
// west, then by English name ignoring case. The profile id breaks any remaining tie.
//
// Wrestlers without a rank compare after every ranked wrestler and equal to each other,
// so a stable sort keeps them in their original order.
func Compare(a, b Wrestler) int {
	aRanked, bRanked := ranked(a), ranked(b)
	switch {
	case !aRanked && !bRanked:
		return 0
	case !aRanked:
		return 1
	case !bRanked:
		return -1
	}

	aRank, bRank := a.CurrentSlot.Rank, b.CurrentSlot.Rank
	if c := cmp.Compare(aRank.Division(), bRank.Division()); c != 0 {
		return c
	}

	aTier, aPosition := rankOrder(aRank)
	bTier, bPosition := rankOrder(bRank)
	if c := cmp.Compare(aTier, bTier); c != 0 {
		return c
	}
	if c := cmp.Compare(aPosition, bPosition); c != 0 {
		return c
	}

	if c := cmp.Compare(sideOrder(a.CurrentSlot.Side), sideOrder(b.CurrentSlot.Side)); c != 0 {
		return c
	}

	aName := strings.ToLower(a.DisplayName())
	bName := strings.ToLower(b.DisplayName())
	if c := strings.Compare(aName, bName); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortWrestlers sorts in banzuke order in place.
func SortWrestlers(wrestlers []Wrestler) {
	slices.SortStableFunc(wrestlers, Compare)
}
