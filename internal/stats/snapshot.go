package stats

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// snapshotFile is the on-disk layout of an aggregated snapshot. JSON
// snapshots decode through the same path since JSON is valid YAML.
type snapshotFile struct {
	Totals struct {
		Processed      int    `yaml:"processed"`
		Invalid        int    `yaml:"invalid"`
		Bytes          int64  `yaml:"bytes"`
		Bandwidth      bool   `yaml:"bandwidth"`
		GenerationTime string `yaml:"generation_time"`
		FileSize       int64  `yaml:"file_size"`
		FilePath       string `yaml:"file_path"`
	} `yaml:"totals"`
	Modules map[string]map[string]int `yaml:"modules"`
}

// LoadSnapshot reads an aggregated YAML or JSON snapshot into a new store
func LoadSnapshot(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes snapshot bytes into a new store
func ParseSnapshot(data []byte) (*Memory, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	store := NewMemory()
	for key, table := range file.Modules {
		module, ok := ModuleByKey(strings.TrimSpace(key))
		if !ok {
			log.Printf("Warning: skipping unknown snapshot module %q", key)
			continue
		}
		for label, hits := range table {
			if hits < 0 {
				return nil, fmt.Errorf("negative hits for %s %q", module.Key(), label)
			}
			store.Set(module, label, hits)
		}
	}

	totals := Totals{
		Processed:      file.Totals.Processed,
		Invalid:        file.Totals.Invalid,
		Bytes:          file.Totals.Bytes,
		BandwidthKnown: file.Totals.Bandwidth,
		FileSize:       file.Totals.FileSize,
		FilePath:       file.Totals.FilePath,
	}
	if file.Totals.GenerationTime != "" {
		d, err := time.ParseDuration(file.Totals.GenerationTime)
		if err != nil {
			return nil, fmt.Errorf("invalid generation_time %q: %w", file.Totals.GenerationTime, err)
		}
		totals.Duration = d
	}
	if totals.FileSize == 0 && totals.FilePath != "" {
		if info, err := os.Stat(totals.FilePath); err == nil {
			totals.FileSize = info.Size()
		}
	}
	store.SetTotals(totals)

	return store, nil
}
