package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/control-theory/hitview/internal/stats"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewBeforeSize(t *testing.T) {
	ctx, _ := newTestContext(sampleStore())
	m := NewModel(ctx)
	if got := m.View(); got != "Initializing display..." {
		t.Fatalf("unexpected view %q", got)
	}
}

func TestResizeBelowMinimumIsFatal(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", MinWidth - 1, MinHeight},
		{"short", MinWidth, MinHeight - 1},
		{"tiny", 80, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(sampleStore())
			m := NewModel(ctx)

			_, cmd := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			if !isQuit(cmd) {
				t.Fatal("expected the program to quit")
			}
			if !IsFatal(m.Err(), FatalEnvironment) {
				t.Fatalf("expected environment failure, got %v", m.Err())
			}
			var fe *FatalError
			if !errors.As(m.Err(), &fe) || fe.Msg != "Minimum screen size - 97 columns by 40 lines" {
				t.Fatalf("unexpected message: %v", m.Err())
			}
			if m.View() != "" {
				t.Fatal("no rendering after a fatal error")
			}
		})
	}
}

func TestResizeBelowMinimumAfterStart(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}

	m.Update(tea.WindowSizeMsg{Width: 96, Height: 40})
	if !IsFatal(m.Err(), FatalEnvironment) {
		t.Fatalf("expected environment failure, got %v", m.Err())
	}

	// Nothing moves once the display has failed
	offset := m.Viewport().Offset()
	press(m, runeKey('j'))
	if m.Viewport().Offset() != offset || m.View() != "" {
		t.Fatal("display kept running after a fatal error")
	}
}

func TestMainPanelHeight(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	if got := m.Viewport().Height(); got != 40-headerHeight-footerHeight {
		t.Fatalf("expected %d visible rows, got %d", 40-headerHeight-footerHeight, got)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Fatalf("expected a 40 line view, got %d", lines)
	}
}

func TestScrollKeys(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	v := m.Viewport()

	before := v.Rendered()
	press(m, runeKey('j'))
	if v.Offset() != 1 {
		t.Fatalf("expected offset 1, got %d", v.Offset())
	}
	if v.Rendered()-before != 1 {
		t.Fatalf("one step rendered %d rows", v.Rendered()-before)
	}

	press(m, typeKey(tea.KeyUp))
	if v.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", v.Offset())
	}

	press(m, typeKey(tea.KeyPgDown))
	if v.Offset() != v.Height() {
		t.Fatalf("expected offset %d, got %d", v.Height(), v.Offset())
	}
	press(m, typeKey(tea.KeyPgUp))
	if v.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", v.Offset())
	}
}

func TestModuleSelection(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)

	if m.Active() != stats.UniqueVisitors {
		t.Fatalf("expected module 1 active, got %v", m.Active())
	}
	press(m, typeKey(tea.KeyShiftTab))
	if m.Active() != stats.Keyphrases {
		t.Fatalf("expected wrap to keyphrases, got %v", m.Active())
	}
	press(m, typeKey(tea.KeyTab))
	if m.Active() != stats.UniqueVisitors {
		t.Fatalf("expected wrap to unique visitors, got %v", m.Active())
	}
	press(m, runeKey('8'))
	if m.Active() != stats.Hosts {
		t.Fatalf("expected hosts, got %v", m.Active())
	}
	press(m, runeKey('0'))
	if m.Active() != stats.ReferringSites {
		t.Fatalf("expected referring sites, got %v", m.Active())
	}
	if !strings.Contains(m.View(), "[Active Module 10]") {
		t.Fatal("header does not show the active module")
	}
}

func TestOpenAndCloseList(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)

	press(m, runeKey('2'), runeKey('o'))
	if m.List() == nil {
		t.Fatal("expected list popup")
	}
	if m.List().Module() != stats.Requests {
		t.Fatalf("expected requests popup, got %v", m.List().Module())
	}
	if !strings.Contains(m.View(), "/y") {
		t.Fatal("popup view does not list entries")
	}

	// Keys go to the popup, not the main panel
	press(m, runeKey('j'))
	if m.Viewport().Offset() != 0 || m.List().Index() != 1 {
		t.Fatal("expected the popup to consume navigation keys")
	}

	before := m.Viewport().Rendered()
	cmd := press(m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("q in a popup must not quit")
	}
	if m.List() != nil {
		t.Fatal("expected the popup to close")
	}
	if m.Viewport().Rendered()-before != m.Viewport().Height() {
		t.Fatal("closing a popup must repaint the main panel")
	}
}

func TestOpenListFailureIsFatal(t *testing.T) {
	m := newTestModel(failingStore{sampleStore()}, 120, 40)

	cmd := press(m, typeKey(tea.KeyEnter))
	if !isQuit(cmd) {
		t.Fatal("expected the program to quit")
	}
	if !IsFatal(m.Err(), FatalAllocation) {
		t.Fatalf("expected allocation failure, got %v", m.Err())
	}
}

func TestDetailPopupLookups(t *testing.T) {
	tests := []struct {
		name     string
		resolver fakeResolver
		locator  fakeLocator
		want     []string
	}{
		{
			name:     "resolved",
			resolver: fakeResolver{name: "host.example"},
			locator:  fakeLocator{country: "Portugal"},
			want:     []string{"Reverse DNS for address: 10.0.0.1", "host.example", "Country: Portugal"},
		},
		{
			name:     "unresolved",
			resolver: fakeResolver{err: errors.New("no such host")},
			locator:  fakeLocator{err: errors.New("lookup failed")},
			want:     []string{"Reverse DNS for address: 10.0.0.1", "N/A", "Country: Not found"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(sampleStore())
			ctx.Resolver = tt.resolver
			ctx.Locator = tt.locator
			m := NewModel(ctx)
			m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

			cmd := press(m, runeKey('8'), runeKey('o'), typeKey(tea.KeyEnter))
			if m.Detail() == nil || !m.Detail().Resolving() {
				t.Fatal("expected a resolving detail popup")
			}
			if cmd == nil {
				t.Fatal("expected a lookup command")
			}
			if m.Detail().Addr() != "10.0.0.1" {
				t.Fatalf("expected details of the top host, got %q", m.Detail().Addr())
			}
			if !strings.Contains(m.renderStatusLine(), "10.0.0.1") {
				t.Fatal("status line does not name the host")
			}

			m.Update(cmd())
			if got := m.Detail().Lines(); !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}

			// q closes the detail and leaves the list open
			press(m, runeKey('q'))
			if m.Detail() != nil || m.List() == nil {
				t.Fatal("expected only the detail popup to close")
			}
		})
	}
}

func TestStaleLookupResultIgnored(t *testing.T) {
	d := NewDetailPopup("10.0.0.1")
	if d.apply(detailResultMsg{addr: "10.0.0.2", name: "other"}) {
		t.Fatal("result for another address applied")
	}
	if !d.Resolving() {
		t.Fatal("popup stopped resolving")
	}
}

func TestResizeClosesPopups(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	press(m, runeKey('8'), runeKey('o'), typeKey(tea.KeyEnter))
	if m.List() == nil || m.Detail() == nil {
		t.Fatal("expected list and detail popups")
	}

	m.Update(tea.WindowSizeMsg{Width: 130, Height: 45})
	if m.List() != nil || m.Detail() != nil {
		t.Fatal("resize must close list and detail popups")
	}
	if m.Viewport().Height() != 45-headerHeight-footerHeight {
		t.Fatalf("viewport not resized: %d", m.Viewport().Height())
	}
}

func TestHelpScrollIsBounded(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	press(m, typeKey(tea.KeyF1))
	h := m.Help()
	if h == nil {
		t.Fatal("expected help popup")
	}

	limit := max(0, len(helpText)-h.viewport.Height)
	for i := 0; i < len(helpText)*2; i++ {
		press(m, typeKey(tea.KeyDown))
		if h.Offset() < 0 || h.Offset() > limit {
			t.Fatalf("help offset %d outside [0, %d]", h.Offset(), limit)
		}
	}
	if h.Offset() != limit {
		t.Fatalf("expected to reach %d, got %d", limit, h.Offset())
	}
	for i := 0; i < len(helpText)*2; i++ {
		press(m, typeKey(tea.KeyUp))
	}
	if h.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", h.Offset())
	}

	press(m, runeKey('q'))
	if m.Help() != nil {
		t.Fatal("expected help to close")
	}
}

func TestRefreshRebuildsLayout(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)

	next := stats.NewMemory()
	next.Set(stats.Requests, "/fresh", 7)
	m.Update(RefreshMsg{Store: next})

	row := m.layout.Row(m.layout.ModuleStart(stats.Requests) + firstDataSlot)
	if row.Entry == nil || row.Entry.Label != "/fresh" {
		t.Fatalf("layout not rebuilt: %+v", row.Entry)
	}
	if row.Max != 7 {
		t.Fatalf("expected max recomputed to 7, got %d", row.Max)
	}
}

func TestRefreshAfterInPlaceReplace(t *testing.T) {
	store := sampleStore()
	m := newTestModel(store, 120, 40)

	next := stats.NewMemory()
	next.Set(stats.Hosts, "192.168.0.9", 3)
	store.Replace(next)
	m.Update(RefreshMsg{})

	row := m.layout.Row(m.layout.ModuleStart(stats.Hosts) + firstDataSlot)
	if row.Entry == nil || row.Entry.Label != "192.168.0.9" || row.Max != 3 {
		t.Fatalf("layout not rebuilt from the refilled store: %+v", row)
	}
	if m.layout.ModuleMax(stats.Requests) != 0 {
		t.Fatal("stale requests survived the refresh")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(sampleStore(), 120, 40)
	if !isQuit(press(m, runeKey('q'))) {
		t.Fatal("q must quit from the main panel")
	}
	if !isQuit(press(m, typeKey(tea.KeyCtrlC))) {
		t.Fatal("ctrl+c must quit")
	}
}
