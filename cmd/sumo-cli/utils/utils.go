package utils

import (
	"os"

	"sumo-scraper/internal/sumo"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func NewList() list.Writer {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	l.SetOutputMirror(os.Stdout)
	return l
}

var (
	winColor  = color.New(color.FgGreen, color.Bold)
	lossColor = color.New(color.FgRed)
	noneColor = color.New(color.Faint)
)

// Result renders a bout result with a color, white star green and black star red.
func Result(result sumo.Result) string {
	switch result {
	case sumo.Win:
		return winColor.Sprint("○ win")
	case sumo.Loss:
		return lossColor.Sprint("● loss")
	}
	return noneColor.Sprint("-")
}
