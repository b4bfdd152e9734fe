package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/daryltucker/solver-radar/internal/chart"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Success prints a green status line.
func Success(w io.Writer, format string, args ...any) {
	okColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Warning prints a yellow status line.
func Warning(w io.Writer, format string, args ...any) {
	warnColor.Fprint(w, "! ")
	fmt.Fprintf(w, format+"\n", args...)
}

// SummaryTable renders one plot as a solver × category table.
func SummaryTable(rd chart.RadarData) string {
	headers := append([]string{"solver"}, rd.Labels...)
	rows := make([][]string, 0, len(rd.Datasets))
	for _, ds := range rd.Datasets {
		row := make([]string, 0, len(rd.Labels)+1)
		row = append(row, ds.Label)
		for i := range rd.Labels {
			n := 0
			if i < len(ds.Data) {
				n = ds.Data[i]
			}
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}
	return Table(rd.Title, headers, rows)
}

// PrintSummary writes a table per plot. Plots without data get a note.
func PrintSummary(w io.Writer, r chart.Report) {
	for _, rd := range r.Charts {
		if len(rd.Datasets) == 0 {
			Warning(w, "%s: no data loaded", rd.Class.Title())
			continue
		}
		fmt.Fprintln(w, SummaryTable(rd))
	}
}

// Table renders a titled table in the summary style.
func Table(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableStyle).
		Headers(headers...).
		Rows(rows...)
	return titleStyle.Render(title) + "\n" + t.String()
}
