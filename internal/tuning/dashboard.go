package tuning

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/markusressel/notebot/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Tunable is implemented by subsystems that read live tuning values.
// PullTuning is called once per tick, before the periodic update.
type Tunable interface {
	PullTuning(dashboard *Dashboard)
}

// Dashboard is a named numeric control surface, organized in tabs.
type Dashboard struct {
	tabs cmap.ConcurrentMap[string, *Tab]
}

func NewDashboard() *Dashboard {
	return &Dashboard{
		tabs: cmap.New[*Tab](),
	}
}

// Tab returns the tab with the given name, creating it if it does not exist yet
func (d *Dashboard) Tab(name string) *Tab {
	if tab, ok := d.tabs.Get(name); ok {
		return tab
	}
	d.tabs.SetIfAbsent(name, &Tab{
		name:    name,
		entries: cmap.New[*Entry](),
	})
	tab, _ := d.tabs.Get(name)
	return tab
}

func (d *Dashboard) HasTab(name string) bool {
	return d.tabs.Has(name)
}

// TabNames returns the names of all tabs, sorted
func (d *Dashboard) TabNames() []string {
	names := d.tabs.Keys()
	sort.Strings(names)
	return names
}

// Get returns an existing entry
func (d *Dashboard) Get(tab string, name string) (*Entry, bool) {
	t, ok := d.tabs.Get(tab)
	if !ok {
		return nil, false
	}
	return t.Get(name)
}

// Set updates the value of an existing entry and returns the clamped value
func (d *Dashboard) Set(tab string, name string, value float64) (float64, error) {
	entry, ok := d.Get(tab, name)
	if !ok {
		return 0, fmt.Errorf("no tuning entry %s/%s", tab, name)
	}
	return entry.Set(value), nil
}

// Entries returns all entries of all tabs, sorted by tab and name
func (d *Dashboard) Entries() []*Entry {
	var result []*Entry
	for _, name := range d.TabNames() {
		tab, _ := d.tabs.Get(name)
		result = append(result, tab.Entries()...)
	}
	return result
}

type Tab struct {
	name    string
	entries cmap.ConcurrentMap[string, *Entry]
}

func (t *Tab) GetName() string {
	return t.name
}

// EntryOptions configure a new Entry. A zero range means the value is unbounded.
type EntryOptions struct {
	Min        float64
	Max        float64
	Persistent bool
}

// Add creates a new entry with the given default value.
// If an entry with this name already exists, the existing entry is returned unchanged.
func (t *Tab) Add(name string, defaultValue float64, options EntryOptions) *Entry {
	if entry, ok := t.entries.Get(name); ok {
		return entry
	}

	min, max := options.Min, options.Max
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	entry := &Entry{
		Tab:        t.name,
		Name:       name,
		Min:        min,
		Max:        max,
		Persistent: options.Persistent,
		Default:    defaultValue,
		value:      util.Coerce(defaultValue, min, max),
	}
	t.entries.SetIfAbsent(name, entry)
	entry, _ = t.entries.Get(name)
	return entry
}

func (t *Tab) Has(name string) bool {
	return t.entries.Has(name)
}

func (t *Tab) Get(name string) (*Entry, bool) {
	return t.entries.Get(name)
}

func (t *Tab) Entries() []*Entry {
	names := t.entries.Keys()
	sort.Strings(names)
	var result []*Entry
	for _, name := range names {
		entry, _ := t.entries.Get(name)
		result = append(result, entry)
	}
	return result
}

// Entry is a single named value
type Entry struct {
	Tab        string
	Name       string
	Min        float64
	Max        float64
	Default    float64
	Persistent bool

	mu    sync.RWMutex
	value float64
}

func (e *Entry) Get() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// Set stores the value, clamped to the range of the entry, and returns the stored value
func (e *Entry) Set(value float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = util.Coerce(value, e.Min, e.Max)
	return e.value
}
