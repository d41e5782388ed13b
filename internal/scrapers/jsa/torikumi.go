package jsa

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"sumo-scraper/internal/components/assert"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/sumo"
	"sumo-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_parser_parse_matchup_row = "parser.parse-matchup-row"
	report_parser_parse_torikumi    = "parser.parse-torikumi"
)

// TorikumiRows selects the rows of every bout table on a torikumi page.
const TorikumiRows = "table.mdTable1 tr"

var errMalformedRow = errors.New("malformed row")

// Resolver finds a wrestler by kanji name, see roster.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, kanji string, preferred sumo.Division) (sumo.Wrestler, error)
}

// Parser turns the rows of a torikumi table into matchups.
type Parser struct {
	resolver Resolver
	tel      telemetry.API
}

func NewParser(resolver Resolver, tel telemetry.API) Parser {
	assert.NotNil(resolver)
	assert.NotNil(tel)

	return Parser{
		resolver: resolver,
		tel:      telemetry.NewScopedAPI("jsa", tel),
	}
}

// rowContext is a short description of a row for reports.
func rowContext(row *goquery.Selection) string {
	text := htmlutil.CleanText(row.Text())
	if utf8.RuneCountInString(text) > 80 {
		return string([]rune(text)[:80]) + "..."
	}
	return text
}

// ParseMatchupRow assembles a bout from a torikumi row. The first and last cells are
// the east and west wrestlers. It returns false, and reports why, for rows that are
// not bouts or cannot be read.
func (p Parser) ParseMatchupRow(ctx context.Context, row *goquery.Selection, division sumo.Division) (sumo.MatchupData, bool) {
	matchup, err := p.parseRow(ctx, row, division)
	if errors.Is(err, errMalformedRow) {
		p.tel.ReportWarning(report_parser_parse_matchup_row, err, division.String(), rowContext(row))
		return sumo.MatchupData{}, false
	}
	if err != nil {
		p.tel.ReportBroken(report_parser_parse_matchup_row, err, division.String(), rowContext(row))
		return sumo.MatchupData{}, false
	}
	return matchup, true
}

// parseRow returns errMalformedRow for rows that should be skipped, any other error
// means a roster could not be loaded.
func (p Parser) parseRow(ctx context.Context, row *goquery.Selection, division sumo.Division) (matchup sumo.MatchupData, err error) {
	defer func() {
		r := recover()
		if r != nil {
			matchup = sumo.MatchupData{}
			err = fmt.Errorf("%w: panic: %v", errMalformedRow, r)
		}
	}()

	cells := row.ChildrenFiltered("td")
	if cells.Length() < 2 {
		return sumo.MatchupData{}, fmt.Errorf("%w: %d cells", errMalformedRow, cells.Length())
	}

	east, err := p.parseSide(ctx, cells.First(), row, division, sumo.East)
	if err != nil {
		return sumo.MatchupData{}, err
	}
	west, err := p.parseSide(ctx, cells.Last(), row, division, sumo.West)
	if err != nil {
		return sumo.MatchupData{}, err
	}

	matchup = sumo.MatchupData{East: east, West: west}
	err = matchup.Validate()
	if err != nil {
		return sumo.MatchupData{}, fmt.Errorf("%w: %w", errMalformedRow, err)
	}
	return matchup, nil
}

func (p Parser) parseSide(ctx context.Context, cell, row *goquery.Selection, division sumo.Division, side sumo.Side) (sumo.MatchupSide, error) {
	kanji := htmlutil.Text(cell.Find(".name"))
	if kanji == "" {
		return sumo.MatchupSide{}, fmt.Errorf("%w: %s has no name", errMalformedRow, side)
	}

	rankText := htmlutil.Text(cell.Find(".rank"))
	slot, ok := sumo.ParseSlot(rankText, division, side)
	if !ok {
		return sumo.MatchupSide{}, fmt.Errorf("%w: %s has unknown rank %q", errMalformedRow, kanji, rankText)
	}

	// the listed rank can be of another division than the table, when a juryo
	// wrestler fills a gap in makuuchi for example
	preferred := slot.Division
	if !preferred.Valid() {
		preferred = division
	}

	out := sumo.MatchupSide{
		Slot:      slot,
		KanjiName: kanji,
		Record:    sumo.ParseRecord(htmlutil.Text(cell.Find(".perform"))),
		Result:    DetermineResult(cell, row),
	}

	wrestler, err := p.resolver.Resolve(ctx, kanji, preferred)
	switch {
	case err == nil:
		out.Wrestler = &wrestler
	case errors.Is(err, roster.ErrNotFound):
		p.tel.ReportWarning(report_parser_parse_matchup_row, "unresolved wrestler, using kanji name", kanji, preferred.String())
	default:
		return sumo.MatchupSide{}, fmt.Errorf("resolve %s: %w", kanji, err)
	}

	if out.Result == sumo.Win {
		out.Technique = ExtractTechnique(cell)
		if out.Technique == "" && decisionText(cell) != "" {
			p.tel.ReportWarning(report_parser_parse_matchup_row, "unknown kimarite", decisionText(cell))
		}
	}
	return out, nil
}

// ParseTorikumi parses every bout of a torikumi page. Rows that cannot be read are
// skipped, a roster that cannot be loaded aborts the page.
func (p Parser) ParseTorikumi(ctx context.Context, doc *goquery.Document, division sumo.Division) ([]sumo.MatchupData, error) {
	var matchups []sumo.MatchupData
	var fatal error

	doc.Find(TorikumiRows).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		// header rows
		if row.ChildrenFiltered("td").Length() == 0 {
			return true
		}

		matchup, err := p.parseRow(ctx, row, division)
		if errors.Is(err, errMalformedRow) {
			p.tel.ReportWarning(report_parser_parse_matchup_row, err, division.String(), rowContext(row))
			return true
		}
		if err != nil {
			fatal = err
			return false
		}
		matchups = append(matchups, matchup)
		return true
	})
	if fatal != nil {
		p.tel.ReportBroken(report_parser_parse_torikumi, fatal, division.String())
		return nil, fmt.Errorf("parse %s torikumi: %w", division, fatal)
	}

	p.tel.ReportCount(division.String()+".bouts", int64(len(matchups)))
	return matchups, nil
}
