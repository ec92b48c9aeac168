package stats

import "fmt"

// Module identifies one statistical category shown by the viewer
type Module int

const (
	UniqueVisitors Module = iota + 1
	Requests
	RequestsStatic
	Referrers
	NotFound
	OS
	Browsers
	Hosts
	StatusCodes
	ReferringSites
	Keyphrases
)

// ModuleCount is the number of modules, they are numbered 1..ModuleCount
const ModuleCount = 11

// moduleInfo holds the display strings of a module
type moduleInfo struct {
	key      string // snapshot/database key
	name     string // short name for status line and popups
	title    string // header band
	subtitle string // subheader band
}

var modules = [ModuleCount + 1]moduleInfo{
	{},
	{"unique_visitors", "Unique visitors",
		" Unique visitors per day - Including spiders",
		" HTTP requests having the same IP, same date and same agent will be considered a unique visit"},
	{"requests", "Requests",
		" Requested files - File requests ordered by hits",
		" Top 6 different files requested ordered by hits"},
	{"requests_static", "Static requests",
		" Requested static files - (jpg, png, js, css, swf, ...)",
		" Top 6 different static files ordered by hits"},
	{"referrers", "Referrers",
		" Referrers URLs",
		" Top 6 different referrers ordered by hits"},
	{"not_found", "Not found",
		" HTTP 404 Not Found response code",
		" Top 6 different 404 ordered by hits"},
	{"os", "Operating systems",
		" Operating Systems",
		" Top 6 different Operating Systems ordered by unique hits"},
	{"browsers", "Browsers",
		" Browsers",
		" Top 6 different browsers ordered by unique hits"},
	{"hosts", "Hosts",
		" Hosts",
		" Top 6 different hosts ordered by hits"},
	{"status_codes", "Status codes",
		" HTTP Status Codes",
		" Top 6 different status codes ordered by hits"},
	{"referring_sites", "Referring sites",
		" Top Referring Sites",
		" Top 6 different referring sites ordered by hits"},
	{"keyphrases", "Keyphrases",
		" Top Keyphrases used on Google's search engine",
		" Top 6 different keyphrases ordered by hits"},
}

// AllModules returns every module in display order
func AllModules() []Module {
	out := make([]Module, 0, ModuleCount)
	for m := UniqueVisitors; m <= Keyphrases; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is one of the known modules
func (m Module) Valid() bool {
	return m >= UniqueVisitors && m <= Keyphrases
}

// Key returns the identifier used in snapshots and databases
func (m Module) Key() string {
	if !m.Valid() {
		return ""
	}
	return modules[m].key
}

// Name returns the short display name
func (m Module) Name() string {
	if !m.Valid() {
		return fmt.Sprintf("Module(%d)", int(m))
	}
	return modules[m].name
}

// Title returns the text of the module header band
func (m Module) Title() string {
	if !m.Valid() {
		return ""
	}
	return modules[m].title
}

// Subtitle returns the text of the module subheader band
func (m Module) Subtitle() string {
	if !m.Valid() {
		return ""
	}
	return modules[m].subtitle
}

// IsDateBased reports whether labels of the module are YYYYMMDD dates
func (m Module) IsDateBased() bool { return m == UniqueVisitors }

// IsAddress reports whether labels of the module are network addresses
func (m Module) IsAddress() bool { return m == Hosts }

func (m Module) String() string { return m.Name() }

// ModuleByKey resolves a snapshot key back to its module
func ModuleByKey(key string) (Module, bool) {
	for m := UniqueVisitors; m <= Keyphrases; m++ {
		if modules[m].key == key {
			return m, true
		}
	}
	return 0, false
}
