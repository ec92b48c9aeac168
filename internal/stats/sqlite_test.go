package stats

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeDatabase creates an aggregated database holding the given rows
func writeDatabase(t *testing.T, hits, totals string) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE hits (module TEXT, label TEXT, hits INTEGER)`,
		`CREATE TABLE totals (key TEXT PRIMARY KEY, value TEXT)`,
	}
	if hits != "" {
		stmts = append(stmts, `INSERT INTO hits VALUES `+hits)
	}
	if totals != "" {
		stmts = append(stmts, `INSERT INTO totals VALUES `+totals)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return dbPath
}

func TestLoadDatabase(t *testing.T) {
	dbPath := writeDatabase(t,
		`('status_codes', '200', 90), ('status_codes', '404', 10), ('os', 'Linux', 3)`,
		`('processed', '100'), ('bandwidth', '1'), ('bytes', '2048'), ('generation_time', '1s'), ('file_path', 'access.log')`,
	)

	s, err := LoadDatabase(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("LoadDatabase: %v", err)
	}
	if s.ModuleTotal(StatusCodes) != 100 {
		t.Errorf("expected status total 100, got %d", s.ModuleTotal(StatusCodes))
	}
	if s.Len(OS) != 1 {
		t.Errorf("expected 1 OS, got %d", s.Len(OS))
	}
	totals := s.Totals()
	if totals.Processed != 100 || !totals.BandwidthKnown || totals.Bytes != 2048 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.Duration != time.Second || totals.FilePath != "access.log" {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestLoadDatabaseRejectsBadRows(t *testing.T) {
	tests := []struct {
		name    string
		hits    string
		totals  string
		wantErr string
	}{
		{"negative hits", `('hosts', '10.0.0.1', -5)`, "", "negative hits"},
		{"thousands separator", "", `('processed', '12,000')`, "processed"},
		{"trailing text", "", `('bytes', '2048 bytes')`, "bytes"},
		{"negative total", "", `('invalid', '-1')`, "invalid"},
		{"bad bandwidth flag", "", `('bandwidth', 'maybe')`, "bandwidth"},
		{"bad duration", "", `('generation_time', 'soon')`, "generation_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := writeDatabase(t, tt.hits, tt.totals)
			_, err := LoadDatabase(context.Background(), dbPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error naming %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadDatabaseMissingTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	if _, err := LoadDatabase(context.Background(), dbPath); err == nil {
		t.Fatal("expected error for database without tables")
	}
}
