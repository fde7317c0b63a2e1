package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/willbeason/renal-tree/pkg/stats"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
)

// printReport writes the ensemble statistics as a table.
func printReport(w io.Writer, r stats.Report) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%s: %d trees, diameter %g → %g",
		r.Model, r.Trees, r.Params.InitDiam, r.Params.StopDiam)))

	rows := [][]string{
		distributionRow("branches", r.Branches),
		distributionRow("afferents", r.Afferents),
		distributionRow("side branches", r.SideBranches),
		distributionRow("max depth", r.MaxDepth),
		distributionRow("total length", r.TotalLength),
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "mean", "stddev", "min", "p5", "median", "p95", "max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return styleHeader
			case col == 0:
				return styleLabel
			default:
				return styleValue
			}
		})

	fmt.Fprintln(w, t.Render())
}

func distributionRow(name string, d stats.Distribution) []string {
	return []string{
		name,
		formatNumber(d.Mean),
		formatNumber(d.StdDev),
		formatNumber(d.Min),
		formatNumber(d.P5),
		formatNumber(d.Median),
		formatNumber(d.P95),
		formatNumber(d.Max),
	}
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
