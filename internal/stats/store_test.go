package stats

import (
	"testing"
)

func TestMemoryTopOrdersByHitsThenLabel(t *testing.T) {
	s := NewMemory()
	s.Set(Requests, "/x", 30)
	s.Set(Requests, "/", 120)
	s.Set(Requests, "/y", 50)
	s.Set(Requests, "/b", 30)

	top := s.Top(Requests, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	want := []string{"/", "/y", "/b"}
	for i, label := range want {
		if top[i].Label != label {
			t.Errorf("top[%d]: expected %q, got %q", i, label, top[i].Label)
		}
		if top[i].Module != Requests {
			t.Errorf("top[%d]: expected module Requests, got %v", i, top[i].Module)
		}
	}
}

func TestMemoryTopShortModule(t *testing.T) {
	s := NewMemory()
	s.Set(OS, "Linux", 4)

	if got := s.Top(OS, 6); len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got := s.Top(Browsers, 6); len(got) != 0 {
		t.Fatalf("expected no entries for empty module, got %d", len(got))
	}
}

func TestMemoryTotalsAndLen(t *testing.T) {
	s := NewMemory()
	s.Add(Requests, "/", 100)
	s.Add(Requests, "/", 20)
	s.Add(Requests, "/x", 30)
	s.Add(Requests, "/y", 50)

	if got := s.ModuleTotal(Requests); got != 200 {
		t.Errorf("expected module total 200, got %d", got)
	}
	if got := s.Len(Requests); got != 3 {
		t.Errorf("expected 3 distinct labels, got %d", got)
	}
}

func TestMemoryEntriesIsACopy(t *testing.T) {
	s := NewMemory()
	s.Set(Hosts, "10.0.0.1", 5)

	entries, err := s.Entries(Hosts)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	entries[0].Hits = 999

	again, _ := s.Entries(Hosts)
	if again[0].Hits != 5 {
		t.Fatalf("store was mutated through returned slice: %d", again[0].Hits)
	}
}

func TestMemoryEntriesUnknownModule(t *testing.T) {
	if _, err := NewMemory().Entries(Module(42)); err == nil {
		t.Fatal("expected error for unknown module")
	}
}

func TestMemoryReplace(t *testing.T) {
	s := NewMemory()
	s.Set(Requests, "/old", 1)

	next := NewMemory()
	next.Set(Requests, "/new", 2)
	next.SetTotals(Totals{Processed: 2})

	s.Replace(next)
	next.Set(Requests, "/later", 3)

	if s.Len(Requests) != 1 {
		t.Fatalf("expected 1 label after replace, got %d", s.Len(Requests))
	}
	if top := s.Top(Requests, 1); top[0].Label != "/new" {
		t.Errorf("expected /new, got %q", top[0].Label)
	}
	if s.Totals().Processed != 2 {
		t.Errorf("expected totals to be replaced, got %+v", s.Totals())
	}
}

func TestSortByLabel(t *testing.T) {
	entries := []Entry{{Label: "20100725"}, {Label: "20100723"}, {Label: "20100724"}}
	SortByLabel(entries)
	for i, want := range []string{"20100723", "20100724", "20100725"} {
		if entries[i].Label != want {
			t.Errorf("entries[%d]: expected %s, got %s", i, want, entries[i].Label)
		}
	}
}

func TestModuleMetadata(t *testing.T) {
	if len(AllModules()) != ModuleCount {
		t.Fatalf("expected %d modules, got %d", ModuleCount, len(AllModules()))
	}
	for _, m := range AllModules() {
		if m.Title() == "" || m.Subtitle() == "" || m.Key() == "" {
			t.Errorf("module %d has empty metadata", int(m))
		}
		back, ok := ModuleByKey(m.Key())
		if !ok || back != m {
			t.Errorf("key %q does not round trip to %d", m.Key(), int(m))
		}
	}
	if !UniqueVisitors.IsDateBased() || Requests.IsDateBased() {
		t.Error("only unique visitors is date based")
	}
	if !Hosts.IsAddress() || StatusCodes.IsAddress() {
		t.Error("only hosts is the address module")
	}
	if Module(0).Valid() || Module(12).Valid() {
		t.Error("out of range modules must be invalid")
	}
}
