package stats

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Entry is a single label and its hit count within a module
type Entry struct {
	Module Module
	Label  string
	Hits   int
}

// Totals holds the grand totals of one aggregation cycle
type Totals struct {
	Processed      int           // total processed hits
	Invalid        int           // total invalid entries
	Bytes          int64         // total bytes transferred
	BandwidthKnown bool          // whether Bytes was collected
	Duration       time.Duration // processing time
	FileSize       int64         // size of the analyzed log file
	FilePath       string        // path of the analyzed log file
}

// Store is the read side of the aggregation store consumed by the display engine
type Store interface {
	// Top returns up to n entries ordered by hits descending, ties by label
	Top(module Module, n int) []Entry
	// Entries returns a copy of every entry of the module
	Entries(module Module) ([]Entry, error)
	// ModuleTotal returns the sum of hits of the module
	ModuleTotal(module Module) int
	// Len returns the number of distinct labels of the module
	Len(module Module) int
	Totals() Totals
}

// Memory is an in-memory Store filled by snapshot loaders
type Memory struct {
	mutex   sync.RWMutex
	modules map[Module]map[string]int
	totals  Totals
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		modules: make(map[Module]map[string]int),
	}
}

// Add increments the hits of a label
func (s *Memory) Add(module Module, label string, hits int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	table, exists := s.modules[module]
	if !exists {
		table = make(map[string]int)
		s.modules[module] = table
	}
	table[label] += hits
}

// Set overwrites the hits of a label
func (s *Memory) Set(module Module, label string, hits int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	table, exists := s.modules[module]
	if !exists {
		table = make(map[string]int)
		s.modules[module] = table
	}
	table[label] = hits
}

// SetTotals replaces the grand totals
func (s *Memory) SetTotals(t Totals) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.totals = t
}

// Replace swaps the whole content with another store's in one step
func (s *Memory) Replace(other *Memory) {
	other.mutex.RLock()
	modules := make(map[Module]map[string]int, len(other.modules))
	for module, table := range other.modules {
		copied := make(map[string]int, len(table))
		for label, hits := range table {
			copied[label] = hits
		}
		modules[module] = copied
	}
	totals := other.totals
	other.mutex.RUnlock()

	s.mutex.Lock()
	s.modules = modules
	s.totals = totals
	s.mutex.Unlock()
}

func (s *Memory) Top(module Module, n int) []Entry {
	s.mutex.RLock()
	entries := s.entriesLocked(module)
	s.mutex.RUnlock()

	SortByHits(entries)
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func (s *Memory) Entries(module Module) ([]Entry, error) {
	if !module.Valid() {
		return nil, fmt.Errorf("unknown module %d", int(module))
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.entriesLocked(module), nil
}

func (s *Memory) ModuleTotal(module Module) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, hits := range s.modules[module] {
		total += hits
	}
	return total
}

func (s *Memory) Len(module Module) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.modules[module])
}

func (s *Memory) Totals() Totals {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.totals
}

func (s *Memory) entriesLocked(module Module) []Entry {
	table := s.modules[module]
	entries := make([]Entry, 0, len(table))
	for label, hits := range table {
		entries = append(entries, Entry{Module: module, Label: label, Hits: hits})
	}
	return entries
}

// SortByHits orders entries by hits descending, then by label ascending
func SortByHits(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Hits == entries[j].Hits {
			return entries[i].Label < entries[j].Label
		}
		return entries[i].Hits > entries[j].Hits
	})
}

// SortByLabel orders entries by label ascending
func SortByLabel(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
}
