package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleSnapshot = `
totals:
  processed: 200
  invalid: 3
  bytes: 1073741824
  bandwidth: true
  generation_time: 2s
  file_path: /var/log/access.log
  file_size: 2048
modules:
  requests:
    "/": 120
    "/x": 30
    "/y": 50
  hosts:
    "10.0.0.1": 7
  not_a_module:
    "ignored": 1
`

func TestParseSnapshotYAML(t *testing.T) {
	s, err := ParseSnapshot([]byte(sampleSnapshot))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if s.ModuleTotal(Requests) != 200 {
		t.Errorf("expected requests total 200, got %d", s.ModuleTotal(Requests))
	}
	if s.Len(Hosts) != 1 {
		t.Errorf("expected 1 host, got %d", s.Len(Hosts))
	}

	totals := s.Totals()
	if totals.Processed != 200 || totals.Invalid != 3 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if !totals.BandwidthKnown || totals.Bytes != 1073741824 {
		t.Errorf("unexpected bandwidth: %+v", totals)
	}
	if totals.Duration != 2*time.Second {
		t.Errorf("expected 2s generation time, got %v", totals.Duration)
	}
	if totals.FilePath != "/var/log/access.log" || totals.FileSize != 2048 {
		t.Errorf("unexpected file info: %+v", totals)
	}
}

func TestParseSnapshotJSON(t *testing.T) {
	data := `{"totals": {"processed": 10}, "modules": {"browsers": {"Firefox": 6, "Chrome": 4}}}`
	s, err := ParseSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if top := s.Top(Browsers, 1); len(top) != 1 || top[0].Label != "Firefox" {
		t.Fatalf("unexpected top browsers: %+v", top)
	}
}

func TestParseSnapshotRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "modules: [unterminated"},
		{"negative hits", "modules:\n  requests:\n    /: -1\n"},
		{"bad duration", "totals:\n  generation_time: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSnapshot([]byte(tt.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte("modules:\n  os:\n    Linux: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path, func() (*Memory, error) { return LoadSnapshot(path) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	updates, err := w.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if !filepath.IsAbs(w.Path()) || filepath.Base(w.Path()) != "snapshot.yaml" {
		t.Fatalf("unexpected watched path %q", w.Path())
	}

	if err := os.WriteFile(path, []byte("modules:\n  os:\n    Linux: 5\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case store := <-updates:
		if store.ModuleTotal(OS) != 5 {
			t.Fatalf("expected reloaded total 5, got %d", store.ModuleTotal(OS))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestNewWatcherRejectsDirectory(t *testing.T) {
	if _, err := NewWatcher(t.TempDir(), nil); err == nil {
		t.Fatal("expected error for directory path")
	}
}
