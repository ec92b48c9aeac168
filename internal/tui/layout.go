package tui

import (
	"github.com/control-theory/hitview/internal/stats"
)

// Every module owns a block of BlockSize rows in the main panel:
// title, subtitle, a blank, up to TopN entries and a trailing blank.
const (
	BlockSize     = 10
	TopN          = 6
	firstDataSlot = 3
)

// RowKind says how a main panel row is drawn
type RowKind int

const (
	ModuleHeader RowKind = iota
	ModuleSubheader
	DataRow
	BlankPad
)

func (k RowKind) String() string {
	switch k {
	case ModuleHeader:
		return "header"
	case ModuleSubheader:
		return "subheader"
	case DataRow:
		return "data"
	default:
		return "blank"
	}
}

// KindAt returns the kind of the row at index. It depends only on the
// row's slot within its module block.
func KindAt(index int) RowKind {
	switch slot := index % BlockSize; {
	case slot == 0:
		return ModuleHeader
	case slot == 1:
		return ModuleSubheader
	case slot >= firstDataSlot && slot < firstDataSlot+TopN:
		return DataRow
	default:
		return BlankPad
	}
}

// DisplayRow is one line of the main panel
type DisplayRow struct {
	Index  int
	Kind   RowKind
	Module stats.Module
	// Entry is nil for non-data rows and for data slots past the end of a
	// short module
	Entry *stats.Entry
	// Max is the highest hit count among the module's displayed entries
	Max int
	// Denominator is the total percentages are computed against
	Denominator int
}

// Layout is the full ordered sequence of main panel rows
type Layout struct {
	rows []DisplayRow
}

// BuildLayout lays out every module in enumeration order from the store's
// current top entries. Maxima and denominators are recomputed from the
// data on every build.
func BuildLayout(store stats.Store) *Layout {
	modules := stats.AllModules()
	rows := make([]DisplayRow, 0, len(modules)*BlockSize)

	for _, module := range modules {
		top := store.Top(module, TopN)
		denom := Denominator(store, module)
		base := len(rows)

		for slot := 0; slot < BlockSize; slot++ {
			row := DisplayRow{
				Index:       base + slot,
				Kind:        KindAt(base + slot),
				Module:      module,
				Denominator: denom,
			}
			if i := slot - firstDataSlot; row.Kind == DataRow && i < len(top) {
				entry := top[i]
				row.Entry = &entry
			}
			rows = append(rows, row)
		}
	}

	l := &Layout{rows: rows}
	for _, module := range modules {
		highest := l.ModuleMax(module)
		for i := range l.rows {
			if l.rows[i].Module == module {
				l.rows[i].Max = highest
			}
		}
	}
	return l
}

// Len returns the total row count
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.rows)
}

// Row returns the row at index
func (l *Layout) Row(index int) DisplayRow {
	return l.rows[index]
}

// ModuleStart returns the index of a module's title row
func (l *Layout) ModuleStart(module stats.Module) int {
	for _, row := range l.rows {
		if row.Module == module {
			return row.Index
		}
	}
	return 0
}

// ModuleMax recomputes the maximum hits among the rows tagged with module
func (l *Layout) ModuleMax(module stats.Module) int {
	highest := 0
	for _, row := range l.rows {
		if row.Module == module && row.Entry != nil && row.Entry.Hits > highest {
			highest = row.Entry.Hits
		}
	}
	return highest
}

// denominatorRule names what a module's percentages are relative to
type denominatorRule int

const (
	ownTotal denominatorRule = iota
	visitorsTotal
	grandTotal
)

// denominatorRules is the single source of the percentage policy.
// Modules not listed use their own total.
var denominatorRules = map[stats.Module]denominatorRule{
	stats.OS:          visitorsTotal,
	stats.Browsers:    visitorsTotal,
	stats.Hosts:       grandTotal,
	stats.StatusCodes: grandTotal,
}

// Denominator returns the total a module's percentages are computed against
func Denominator(store stats.Store, module stats.Module) int {
	switch denominatorRules[module] {
	case visitorsTotal:
		return store.ModuleTotal(stats.UniqueVisitors)
	case grandTotal:
		return store.Totals().Processed
	default:
		return store.ModuleTotal(module)
	}
}

// Percent returns hits as a percentage of denom, 0 when denom is 0
func Percent(hits, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(hits) * 100 / float64(denom)
}
