package jsa

import (
	"path"
	"strings"

	"sumo-scraper/internal/sumo"
	"sumo-scraper/internal/sumo/dictionary"
	"sumo-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	winnerClass      = "win"
	participantClass = "player"

	// the decision cell reads like 上手投げ取組解説, "uwatenage bout commentary"
	decisionSuffix = "取組解説"
)

// Image names of the outcome cells once a bout is decided. Anything else in those
// cells is the placeholder of a bout not yet fought.
var decidedImages = []string{"shiro", "kuro", "fusen"}

// DetermineResult reads the outcome of a bout for the wrestler in `cell`. The winner
// marker takes precedence, a participant without it has lost only if the row shows the
// bout as decided.
func DetermineResult(cell, row *goquery.Selection) sumo.Result {
	if cell.HasClass(winnerClass) {
		return sumo.Win
	}
	if cell.HasClass(participantClass) && rowDecided(row) {
		return sumo.Loss
	}
	return sumo.NoResult
}

func rowDecided(row *goquery.Selection) bool {
	decided := false
	row.Find("td.result img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		name := strings.ToLower(path.Base(img.AttrOr("src", "")))
		for _, marker := range decidedImages {
			if strings.Contains(name, marker) {
				decided = true
				return false
			}
		}
		return true
	})
	return decided
}

// decisionText is the kimarite label of the row, without the commentary suffix.
func decisionText(cell *goquery.Selection) string {
	text := htmlutil.Text(cell.SiblingsFiltered("td.decide"))
	return strings.TrimSpace(strings.TrimSuffix(text, decisionSuffix))
}

// ExtractTechnique returns the English kimarite of the bout `cell` belongs to, or ""
// when the row has none or it is not in the dictionary.
func ExtractTechnique(cell *goquery.Selection) string {
	en, _ := dictionary.Kimarite.English(decisionText(cell))
	return en
}
