package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/control-theory/hitview/internal/stats"
)

const (
	headerHeight = 6
	footerHeight = 1

	generalTitle = " General Statistics - Information analyzed from log file - Unique totals"

	mb = 1024 * 1024
	gb = 1024 * 1024 * 1024

	// The summary occupies the first MinWidth columns; the daily visitors
	// chart only appears when at least chartMinWidth more are available.
	chartMinWidth = 24
	chartHeight   = 4
)

// headerField is one label/value pair of the summary
type headerField struct {
	row, labelCol, valueCol int
	label, value            string
	style                   *lipgloss.Style
}

// renderHeader draws the general statistics summary
func renderHeader(dc *DisplayContext, width int, active stats.Module) string {
	styles := &dc.Styles
	store := dc.Store
	totals := store.Totals()

	band := newCanvas(width)
	band.print(0, generalTitle, &styles.Title)
	band.print(width-20, fmt.Sprintf("[Active Module %d]", int(active)), &styles.Title)
	band.fill(&styles.Title)

	bw := "N/A"
	if totals.BandwidthKnown {
		bw = fmt.Sprintf("%.3f GB", float64(totals.Bytes)/gb)
	}

	fields := []headerField{
		{2, 2, 18, "Total hits", strconv.Itoa(totals.Processed), &styles.Value},
		{3, 2, 18, "Invalid entries", strconv.Itoa(totals.Invalid), &styles.Value},
		{4, 2, 18, "Generation Time", fmt.Sprintf("%d sec", int(totals.Duration.Seconds())), &styles.Value},
		{2, 28, 50, "Total Unique Visitors", strconv.Itoa(store.ModuleTotal(stats.UniqueVisitors)), &styles.Value},
		{3, 28, 50, "Total Requests", strconv.Itoa(store.Len(stats.Requests)), &styles.Value},
		{4, 28, 50, "Total Static Requests", strconv.Itoa(store.Len(stats.RequestsStatic)), &styles.Value},
		{2, 58, 74, "Total Referrers", strconv.Itoa(store.Len(stats.Referrers)), &styles.Value},
		{3, 58, 74, "Total 404", strconv.Itoa(store.Len(stats.NotFound)), &styles.Value},
		{2, 82, 86, "Log", fmt.Sprintf("%.2fMB", float64(totals.FileSize)/mb), &styles.Value},
		{3, 82, 86, "BW", bw, &styles.Value},
		{4, 58, 58, "", totals.FilePath, &styles.Path},
	}

	summaryWidth := width
	chart := ""
	if width-MinWidth >= chartMinWidth {
		chartWidth := width - MinWidth - 1
		chart = renderVisitorsChart(dc, chartWidth, chartHeight)
		if chart != "" {
			summaryWidth = MinWidth + 1
		}
	}

	// Summary rows 1..4; row 1 stays blank
	rows := make([]*canvas, chartHeight)
	for i := range rows {
		rows[i] = newCanvas(summaryWidth)
	}
	for _, f := range fields {
		c := rows[f.row-1]
		if f.label != "" {
			c.print(f.labelCol, f.label, &styles.Label)
		}
		c.print(f.valueCol, f.value, f.style)
	}

	lines := make([]string, len(rows))
	for i, c := range rows {
		lines[i] = c.String()
	}
	summary := strings.Join(lines, "\n")
	if chart != "" {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, summary, chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left, band.String(), summary, "")
}

// renderVisitorsChart draws the most recent daily unique visitors in
// chronological order. It returns "" when there is nothing to draw.
func renderVisitorsChart(dc *DisplayContext, width, height int) string {
	entries, err := dc.Store.Entries(stats.UniqueVisitors)
	if err != nil {
		log.Printf("visitors chart: %v", err)
		return ""
	}
	if len(entries) == 0 {
		return ""
	}
	stats.SortByLabel(entries)

	// Bars are one column wide with a one column gap
	maxBars := (width + 1) / 2
	if len(entries) > maxBars {
		entries = entries[len(entries)-maxBars:]
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for _, e := range entries {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{
					Name:  e.Label,
					Value: float64(e.Hits),
					Style: dc.Styles.Bar,
				},
			},
		})
	}
	bc.Draw()
	return bc.View()
}
