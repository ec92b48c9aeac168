package tui

import (
	"strings"
)

// ScrollState tracks whether a scroll step is in progress
type ScrollState int

const (
	Idle ScrollState = iota
	ScrollingDown
	ScrollingUp
)

// RenderFunc draws a single layout row
type RenderFunc func(DisplayRow) string

// Viewport is the scroll controller of the main panel. It keeps the
// rendered lines of the visible window so a one-row step only renders the
// row that enters the window.
type Viewport struct {
	layout *Layout
	render RenderFunc
	height int
	offset int
	state  ScrollState

	lines    []string
	rendered int
}

// NewViewport creates a viewport showing height rows of layout
func NewViewport(layout *Layout, render RenderFunc, height int) *Viewport {
	v := &Viewport{}
	v.Reset(layout, render, height)
	return v
}

// Reset replaces the layout, renderer and height, clamps the offset and
// repaints every visible row
func (v *Viewport) Reset(layout *Layout, render RenderFunc, height int) {
	if height < 0 {
		height = 0
	}
	v.layout = layout
	v.render = render
	v.height = height
	v.offset = clamp(v.offset, 0, v.MaxOffset())
	v.Repaint()
}

// Repaint re-renders every visible row from the current layout
func (v *Viewport) Repaint() {
	v.state = Idle
	v.lines = v.lines[:0]
	end := min(v.offset+v.height, v.layout.Len())
	for i := v.offset; i < end; i++ {
		v.lines = append(v.lines, v.renderRow(i))
	}
}

// ScrollDown moves the window one row down. It reports false when the last
// row is already visible.
func (v *Viewport) ScrollDown() bool {
	if v.height == 0 || v.offset+v.height >= v.layout.Len() {
		return false
	}
	v.state = ScrollingDown
	defer func() { v.state = Idle }()

	next := v.renderRow(v.offset + v.height)
	copy(v.lines, v.lines[1:])
	v.lines[len(v.lines)-1] = next
	v.offset++
	return true
}

// ScrollUp moves the window one row up. It reports false at the top.
func (v *Viewport) ScrollUp() bool {
	if v.height == 0 || v.offset <= 0 {
		return false
	}
	v.state = ScrollingUp
	defer func() { v.state = Idle }()

	prev := v.renderRow(v.offset - 1)
	copy(v.lines[1:], v.lines[:len(v.lines)-1])
	v.lines[0] = prev
	v.offset--
	return true
}

// PageDown repeats ScrollDown once per visible row and returns the number
// of rows moved
func (v *Viewport) PageDown() int {
	moved := 0
	for i := 0; i < v.height && v.ScrollDown(); i++ {
		moved++
	}
	return moved
}

// PageUp repeats ScrollUp once per visible row and returns the number of
// rows moved
func (v *Viewport) PageUp() int {
	moved := 0
	for i := 0; i < v.height && v.ScrollUp(); i++ {
		moved++
	}
	return moved
}

// ScrollTo moves the window so index is the first visible row, clamped,
// with a full repaint
func (v *Viewport) ScrollTo(index int) {
	v.offset = clamp(index, 0, v.MaxOffset())
	v.Repaint()
}

// Offset returns the index of the first visible row
func (v *Viewport) Offset() int {
	return v.offset
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// State returns the scroll state
func (v *Viewport) State() ScrollState {
	return v.state
}

// MaxOffset returns the largest valid offset
func (v *Viewport) MaxOffset() int {
	return max(0, v.layout.Len()-v.height)
}

// Rendered returns how many rows have been rendered since creation
func (v *Viewport) Rendered() int {
	return v.rendered
}

// Lines returns the rendered visible rows
func (v *Viewport) Lines() []string {
	return v.lines
}

// View joins the visible rows, padding with empty lines to the full height
func (v *Viewport) View() string {
	var b strings.Builder
	for i := 0; i < v.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < len(v.lines) {
			b.WriteString(v.lines[i])
		}
	}
	return b.String()
}

func (v *Viewport) renderRow(index int) string {
	v.rendered++
	return v.render(v.layout.Row(index))
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
