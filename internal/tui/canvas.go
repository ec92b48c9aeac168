package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal column. Wide runes occupy their own cell plus a
// trailing continuation cell.
type cell struct {
	r     rune
	style *lipgloss.Style
	cont  bool
}

// canvas is a single fixed-width line that text is placed on at absolute
// columns. Later writes overwrite earlier ones, so a bar drawn at a fixed
// column covers whatever label ran underneath it.
type canvas struct {
	cells []cell
}

func newCanvas(width int) *canvas {
	if width < 0 {
		width = 0
	}
	c := &canvas{cells: make([]cell, width)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *canvas) width() int {
	return len(c.cells)
}

// print writes s starting at col, clipped at the right edge
func (c *canvas) print(col int, s string, style *lipgloss.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col < 0 || col+w > len(c.cells) {
			break
		}
		c.clear(col)
		c.cells[col] = cell{r: r, style: style}
		if w == 2 {
			c.clear(col + 1)
			c.cells[col+1] = cell{style: style, cont: true}
		}
		col += w
	}
	return col
}

// hline fills n columns starting at col with r
func (c *canvas) hline(col, n int, r rune, style *lipgloss.Style) {
	for i := 0; i < n && col+i < len(c.cells); i++ {
		if col+i < 0 {
			continue
		}
		c.clear(col + i)
		c.cells[col+i] = cell{r: r, style: style}
	}
}

// fill paints every column with style, keeping the runes already placed
func (c *canvas) fill(style *lipgloss.Style) {
	for i := range c.cells {
		c.cells[i].style = style
	}
}

// clear blanks the wide rune that col is part of, if any
func (c *canvas) clear(col int) {
	switch {
	case c.cells[col].cont && col > 0:
		c.cells[col-1] = cell{r: ' ', style: c.cells[col-1].style}
	case !c.cells[col].cont && col+1 < len(c.cells) && c.cells[col+1].cont:
		c.cells[col+1] = cell{r: ' ', style: c.cells[col+1].style}
	}
	c.cells[col] = cell{r: ' ', style: c.cells[col].style}
}

// String renders runs of equally styled cells
func (c *canvas) String() string {
	var b, run strings.Builder
	var current *lipgloss.Style

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if current == nil {
			b.WriteString(run.String())
		} else {
			b.WriteString(current.Render(run.String()))
		}
		run.Reset()
	}

	for _, cl := range c.cells {
		if cl.cont {
			continue
		}
		if cl.style != current {
			flush()
			current = cl.style
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}

// plain returns the canvas text without styling
func (c *canvas) plain() string {
	var b strings.Builder
	for _, cl := range c.cells {
		if !cl.cont {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}
