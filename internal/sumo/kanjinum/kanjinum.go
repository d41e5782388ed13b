// Package kanjinum converts the kanji numerals used in banzuke positions into integers.
package kanjinum

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var digits = map[rune]uint{
	'〇': 0,
	'一': 1,
	'二': 2,
	'三': 3,
	'四': 4,
	'五': 5,
	'六': 6,
	'七': 7,
	'八': 8,
	'九': 9,
}

var units = map[rune]uint{
	'十': 10,
	'百': 100,
}

// Convert parses a kanji numeral like 三, 十八, 二十 or 百五 into its value.
// Plain digits (half or full width) are accepted as well. Anything it does not
// recognize converts to 0.
func Convert(text string) uint {
	text = strings.TrimSpace(width.Fold.String(text))
	if text == "" {
		return 0
	}
	if n, err := strconv.ParseUint(text, 10, 32); err == nil {
		return uint(n)
	}

	var total uint
	// -1 means no digit is pending
	pending := -1
	// units must strictly descend, 百 then 十
	lastUnit := uint(1000)

	for _, r := range text {
		if d, ok := digits[r]; ok {
			if pending >= 0 {
				return 0
			}
			pending = int(d)
			continue
		}

		unit, ok := units[r]
		if !ok || unit >= lastUnit {
			return 0
		}
		lastUnit = unit

		multiplier := uint(1)
		if pending == 0 {
			return 0
		}
		if pending > 0 {
			multiplier = uint(pending)
		}
		total += multiplier * unit
		pending = -1
	}

	if pending >= 0 {
		total += uint(pending)
	}
	return total
}
