package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/control-theory/hitview/internal/lookup"
	"github.com/control-theory/hitview/internal/stats"
)

const (
	defaultMaxChoices    = 100
	defaultLookupTimeout = 5 * time.Second
)

// DisplayContext carries everything the display reads from the outside
// world. It replaces process-wide state: one context per program.
type DisplayContext struct {
	Store    stats.Store
	Resolver lookup.Resolver
	Locator  lookup.Locator
	Styles   Styles

	// MaxChoices caps the number of items a list popup shows
	MaxChoices int
	// LookupTimeout bounds the detail popup lookups
	LookupTimeout time.Duration
	// Copy writes text to the system clipboard
	Copy func(string) error
}

// NewDisplayContext creates a context with default collaborators for any
// nil field
func NewDisplayContext(store stats.Store, styles Styles) *DisplayContext {
	ctx := &DisplayContext{Store: store, Styles: styles}
	ctx.applyDefaults()
	return ctx
}

func (c *DisplayContext) applyDefaults() {
	if c.Store == nil {
		c.Store = stats.NewMemory()
	}
	if c.Resolver == nil {
		c.Resolver = lookup.NewDNS()
	}
	if c.Locator == nil {
		c.Locator = lookup.NoLocation{}
	}
	if c.MaxChoices <= 0 {
		c.MaxChoices = defaultMaxChoices
	}
	if c.LookupTimeout <= 0 {
		c.LookupTimeout = defaultLookupTimeout
	}
	if c.Copy == nil {
		c.Copy = clipboard.WriteAll
	}
}
