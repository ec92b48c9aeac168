package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/control-theory/hitview/internal/lookup"
	"github.com/control-theory/hitview/internal/stats"
	"github.com/control-theory/hitview/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runApp initializes and runs the application
func runApp(cmd *cobra.Command, args []string) error {
	// Check if version flag was used
	if v, _ := cmd.Flags().GetBool("version"); v {
		versionCmd.Run(cmd, args)
		return nil
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	source, load, err := newLoader(cfg)
	if err != nil {
		return err
	}
	store, err := load()
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	skin, err := tui.LoadSkinByName(cfg.Skin, configDir())
	if err != nil {
		log.Printf("Error loading skin %q, using default: %v", cfg.Skin, err)
		skin = tui.DefaultSkin()
	}

	dc := tui.NewDisplayContext(store, tui.NewStyles(skin))
	dc.MaxChoices = cfg.MaxChoices
	dc.LookupTimeout = cfg.LookupTimeout
	if cfg.GeoIPDatabase != "" {
		geo, err := lookup.OpenGeoIP(cfg.GeoIPDatabase)
		if err != nil {
			return err
		}
		defer geo.Close()
		dc.Locator = geo
	}

	model := tui.NewModel(dc)

	var p *tea.Program
	if cfg.TestMode {
		// Test mode - no TTY requirements
		p = tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(os.Stdout))
	} else {
		p = tea.NewProgram(model, tea.WithAltScreen())
	}

	if cfg.Watch {
		watcher, err := stats.NewWatcher(source, load)
		if err != nil {
			return err
		}
		updates, err := watcher.Start()
		if err != nil {
			return fmt.Errorf("watch %s: %w", source, err)
		}
		defer watcher.Stop()
		log.Printf("Watching %s for changes", watcher.Path())

		go func() {
			for mem := range updates {
				store.Replace(mem)
				p.Send(tui.RefreshMsg{})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal. Try --test-mode for non-interactive testing")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return model.Err()
}

// newLoader picks the statistics source named by the config and returns its
// path together with a loader that re-reads it
func newLoader(c Config) (string, stats.Loader, error) {
	switch {
	case c.Snapshot != "" && c.Database != "":
		return "", nil, errors.New("use either --snapshot or --db, not both")
	case c.Snapshot != "":
		path := c.Snapshot
		return path, func() (*stats.Memory, error) {
			return stats.LoadSnapshot(path)
		}, nil
	case c.Database != "":
		path := c.Database
		return path, func() (*stats.Memory, error) {
			return stats.LoadDatabase(context.Background(), path)
		}, nil
	default:
		return "", nil, errors.New("no statistics source: pass --snapshot or --db")
	}
}

// setupLogging sends the standard logger to path, or discards it so log
// lines never draw over the display
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
