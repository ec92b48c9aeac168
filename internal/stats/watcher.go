package stats

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Loader produces a fresh store from the watched source
type Loader func() (*Memory, error)

// reloadDelay coalesces the burst of events a single save produces
const reloadDelay = 200 * time.Millisecond

// Watcher reloads a snapshot file whenever it changes on disk
type Watcher struct {
	path    string
	load    Loader
	ctx     context.Context
	cancel  context.CancelFunc
	updates chan *Memory
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for path; load is called on every change
func NewWatcher(path string, load Loader) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil || info.IsDir() {
		return nil, fmt.Errorf("snapshot %s is not a readable file", path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:    absPath,
		load:    load,
		ctx:     ctx,
		cancel:  cancel,
		updates: make(chan *Memory, 1),
	}, nil
}

// Start begins watching and returns the channel of reloaded stores.
// The channel is closed when the watcher stops.
func (w *Watcher) Start() (<-chan *Memory, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors and exporters often replace the file by rename
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return nil, err
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.run()

	return w.updates, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.updates)
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			store, err := w.load()
			if err != nil {
				log.Printf("Error reloading snapshot %s: %v", w.path, err)
				continue
			}
			select {
			case w.updates <- store:
			case <-w.ctx.Done():
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error for %s: %v", w.path, err)
		}
	}
}

// Stop stops watching and waits for the goroutine to exit
func (w *Watcher) Stop() {
	w.cancel()
	w.wg.Wait()
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}
