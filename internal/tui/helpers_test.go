package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/control-theory/hitview/internal/lookup"
	"github.com/control-theory/hitview/internal/stats"
)

// failingStore is a store whose enumeration always fails
type failingStore struct {
	*stats.Memory
}

func (failingStore) Entries(stats.Module) ([]stats.Entry, error) {
	return nil, errors.New("enumeration failed")
}

type fakeResolver struct {
	name string
	err  error
}

func (r fakeResolver) Reverse(context.Context, string) (string, error) {
	return r.name, r.err
}

type fakeLocator struct {
	country string
	err     error
}

func (l fakeLocator) Country(context.Context, string) (string, error) {
	return l.country, l.err
}

// sampleStore has a few entries in every module
func sampleStore() *stats.Memory {
	s := stats.NewMemory()
	s.Set(stats.UniqueVisitors, "20100723", 40)
	s.Set(stats.UniqueVisitors, "20100724", 10)
	s.Set(stats.UniqueVisitors, "20100725", 50)
	s.Set(stats.Requests, "/", 120)
	s.Set(stats.Requests, "/x", 30)
	s.Set(stats.Requests, "/y", 50)
	s.Set(stats.OS, "Linux", 60)
	s.Set(stats.OS, "Windows", 40)
	s.Set(stats.Browsers, "Firefox", 100)
	s.Set(stats.Hosts, "10.0.0.1", 150)
	s.Set(stats.Hosts, "10.0.0.2", 50)
	s.Set(stats.StatusCodes, "200", 180)
	s.Set(stats.StatusCodes, "404", 20)
	for i := 0; i < 8; i++ {
		s.Set(stats.Referrers, fmt.Sprintf("http://ref%d.example/", i), 10+i)
	}
	s.SetTotals(stats.Totals{Processed: 200, Invalid: 2, FilePath: "access.log"})
	return s
}

// newTestContext creates a context with fake collaborators that never touch
// the network or the clipboard
func newTestContext(store stats.Store) (*DisplayContext, *[]string) {
	copied := &[]string{}
	ctx := &DisplayContext{
		Store:    store,
		Resolver: fakeResolver{name: "host.example"},
		Locator:  fakeLocator{err: lookup.ErrNotFound},
		Styles:   NewStyles(nil),
		Copy: func(s string) error {
			*copied = append(*copied, s)
			return nil
		},
	}
	ctx.applyDefaults()
	return ctx, copied
}

// newTestModel creates a model already sized to width x height
func newTestModel(store stats.Store, width, height int) *Model {
	ctx, _ := newTestContext(store)
	m := NewModel(ctx)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}
