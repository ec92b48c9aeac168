package tui

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/control-theory/hitview/internal/stats"
)

// Fixed columns of a data row
const (
	colHits       = 2
	colPercent    = 10
	colLabel      = 18
	colStatusText = 23
	colBar        = 35

	// barMargin is the width taken by everything left of the bar plus a
	// trailing gutter
	barMargin = 38
	barRune   = '|'
)

// AvailableBarWidth returns the columns a bar may span on a terminal of
// termWidth columns
func AvailableBarWidth(termWidth int) int {
	if w := termWidth - barMargin; w > 0 {
		return w
	}
	return 0
}

// BarLength scales hits against the module maximum onto available
// columns, rounding down
func BarLength(hits, highest, available int) int {
	if hits <= 0 || highest <= 0 || available <= 0 {
		return 0
	}
	n := int(math.Floor(float64(hits) / float64(highest) * float64(available)))
	if n > available {
		return available
	}
	return n
}

// FormatDate renders a YYYYMMDD label as DD/Mon/YYYY. Labels that do not
// parse are returned as they are.
func FormatDate(label string) string {
	t, err := time.Parse("20060102", label)
	if err != nil {
		return label
	}
	return t.Format("02/Jan/2006")
}

// StatusText returns the reason phrase of a status code label
func StatusText(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return ""
	}
	return http.StatusText(n)
}

// DisplayLabel is the label as shown to the user for a module
func DisplayLabel(module stats.Module, label string) string {
	if module.IsDateBased() {
		return FormatDate(label)
	}
	return label
}

// RowRenderer draws one main panel row at a time. It never touches scroll
// or data state.
type RowRenderer struct {
	styles *Styles
	width  int
}

// NewRowRenderer creates a renderer for a terminal of width columns
func NewRowRenderer(styles *Styles, width int) RowRenderer {
	return RowRenderer{styles: styles, width: width}
}

// Render draws row as a single line exactly width columns wide
func (r RowRenderer) Render(row DisplayRow) string {
	return r.draw(row).String()
}

// Plain draws row without styling
func (r RowRenderer) Plain(row DisplayRow) string {
	return r.draw(row).plain()
}

func (r RowRenderer) draw(row DisplayRow) *canvas {
	c := newCanvas(r.width)

	switch row.Kind {
	case ModuleHeader:
		c.print(0, row.Module.Title(), &r.styles.Title)
		c.fill(&r.styles.Title)
	case ModuleSubheader:
		c.print(0, row.Module.Subtitle(), &r.styles.Band)
		c.fill(&r.styles.Band)
	case DataRow:
		if row.Entry != nil {
			r.drawEntry(c, row)
		}
	}
	return c
}

func (r RowRenderer) drawEntry(c *canvas, row DisplayRow) {
	e := row.Entry

	c.print(colHits, strconv.Itoa(e.Hits), &r.styles.Hits)
	pct := fmt.Sprintf("%.2f%%", Percent(e.Hits, row.Denominator))
	c.print(colPercent, pct, r.percentStyle(row))
	c.print(colLabel, DisplayLabel(row.Module, e.Label), &r.styles.Label)

	if row.Module == stats.StatusCodes {
		c.print(colStatusText, StatusText(e.Label), &r.styles.Label)
		return
	}

	n := BarLength(e.Hits, row.Max, AvailableBarWidth(r.width))
	c.hline(colBar, n, barRune, &r.styles.Bar)
}

// percentStyle highlights the module's top entry
func (r RowRenderer) percentStyle(row DisplayRow) *lipgloss.Style {
	if row.Entry != nil && row.Max > 0 && row.Entry.Hits == row.Max {
		return &r.styles.Attention
	}
	return &r.styles.Neutral
}
