package stats

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// The database holds already aggregated data:
//
//	CREATE TABLE hits   (module TEXT, label TEXT, hits INTEGER);
//	CREATE TABLE totals (key TEXT PRIMARY KEY, value TEXT);
//
// totals keys: processed, invalid, bytes, bandwidth, generation_time,
// file_size, file_path.

// LoadDatabase reads an aggregated SQLite database into a new store
func LoadDatabase(ctx context.Context, dbPath string) (*Memory, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	defer db.Close()

	store := NewMemory()
	if err := loadHits(ctx, db, store); err != nil {
		return nil, err
	}

	totals, err := loadTotals(ctx, db)
	if err != nil {
		return nil, err
	}
	store.SetTotals(totals)

	return store, nil
}

func loadHits(ctx context.Context, db *sql.DB, store *Memory) error {
	rows, err := db.QueryContext(ctx, `SELECT module, label, hits FROM hits`)
	if err != nil {
		return fmt.Errorf("query hits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, label string
		var hits int
		if err := rows.Scan(&key, &label, &hits); err != nil {
			return fmt.Errorf("scan hits: %w", err)
		}
		module, ok := ModuleByKey(key)
		if !ok {
			log.Printf("Warning: skipping unknown module %q in database", key)
			continue
		}
		if hits < 0 {
			return fmt.Errorf("negative hits for %s %q", module.Key(), label)
		}
		store.Add(module, label, hits)
	}
	return rows.Err()
}

func loadTotals(ctx context.Context, db *sql.DB) (Totals, error) {
	var totals Totals

	rows, err := db.QueryContext(ctx, `SELECT key, value FROM totals`)
	if err != nil {
		return totals, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return totals, fmt.Errorf("scan totals: %w", err)
		}
		if err := applyTotal(&totals, key, value); err != nil {
			return totals, err
		}
	}
	return totals, rows.Err()
}

// applyTotal parses one totals row into t
func applyTotal(t *Totals, key, value string) error {
	var err error
	switch key {
	case "processed":
		t.Processed, err = strconv.Atoi(value)
	case "invalid":
		t.Invalid, err = strconv.Atoi(value)
	case "bytes":
		t.Bytes, err = strconv.ParseInt(value, 10, 64)
	case "bandwidth":
		t.BandwidthKnown, err = strconv.ParseBool(value)
	case "generation_time":
		t.Duration, err = time.ParseDuration(value)
	case "file_size":
		t.FileSize, err = strconv.ParseInt(value, 10, 64)
	case "file_path":
		t.FilePath = value
	default:
		log.Printf("Warning: skipping unknown total %q in database", key)
	}
	if err != nil {
		return fmt.Errorf("invalid total %s %q: %w", key, value, err)
	}
	if t.Processed < 0 || t.Invalid < 0 || t.Bytes < 0 || t.FileSize < 0 {
		return fmt.Errorf("negative total %s %q", key, value)
	}
	return nil
}
