// Package filter maintains a named list of filters over a record collection
// and the subset of records that pass all of them.
//
// An Engine is not safe for concurrent use.
package filter

import (
	nt "vista/entity"
	"vista/keypath"
	"vista/predicate"
	"vista/snapshot"
)

// Config is the configurable filter state.
type Config struct {
	Filters []nt.Filter       `yaml:"filters,omitempty"`
	Labels  map[string]string `yaml:"labels,omitempty"`
}

// Engine owns the active filters and the filtered view.
type Engine struct {
	labels   map[string]string
	filters  []nt.Filter
	data     []nt.Record
	filtered []nt.Record
	paths    []keypath.ObjectPath
	tracker  snapshot.Tracker
	revision uint64
}

// Patch carries the fields of a filter to change; nil fields are kept.
type Patch struct {
	Kind  *nt.FilterKind
	Keys  []string
	Value *nt.FilterValue
}

// New creates an engine seeded with configured filters.
func (cfg *Config) New(records []nt.Record) (eng *Engine) {

	eng = &Engine{
		labels: cfg.Labels,
	}
	eng.filters = dedupe(cfg.Filters)

	eng.SetData(records)
	return
}

// SetData replaces the source collection.
// A collection equal by value to the current one changes nothing.
func (eng *Engine) SetData(records []nt.Record) {

	if !eng.tracker.Changed(records) {
		return
	}

	eng.data = snapshot.Copy(records)
	eng.paths = keypath.ObjectPaths(eng.data, eng.labels)
	eng.apply()
}

// Add appends a filter, reporting false when the name is already present.
func (eng *Engine) Add(flt nt.Filter) bool {

	if eng.find(flt.Name) >= 0 {
		return false
	}

	eng.filters = append(eng.filters, flt.Clone())
	eng.apply()
	return true
}

// Delete removes the named filter if present.
func (eng *Engine) Delete(name string) {

	idx := eng.find(name)
	if idx < 0 {
		return
	}

	eng.filters = append(eng.filters[:idx:idx], eng.filters[idx+1:]...)
	eng.apply()
}

// Update merges patch into the named filter; unknown names are ignored.
// The value is stored as given, with no shape coercion.
func (eng *Engine) Update(name string, patch Patch) {

	idx := eng.find(name)
	if idx < 0 {
		return
	}

	f := eng.filters[idx]
	if patch.Kind != nil {
		f.Kind = *patch.Kind
	}
	if patch.Keys != nil {
		f.Keys = append([]string(nil), patch.Keys...)
	}
	if patch.Value != nil {
		f.Value = *patch.Value
	}

	eng.filters[idx] = f
	eng.apply()
}

// Toggle removes the filter if one with its name is present and adds it
// otherwise.
func (eng *Engine) Toggle(flt nt.Filter) {

	if eng.find(flt.Name) >= 0 {
		eng.Delete(flt.Name)
		return
	}
	eng.Add(flt)
}

// Clear removes every filter.
func (eng *Engine) Clear() {

	eng.filters = nil
	eng.apply()
}

// Set replaces the filter list; of repeated names the first wins.
func (eng *Engine) Set(filters []nt.Filter) {

	eng.filters = dedupe(filters)
	eng.apply()
}

// Filtered returns the records passing every filter, in source order.
func (eng *Engine) Filtered() []nt.Record {
	return snapshot.Copy(eng.filtered)
}

// Filters returns a snapshot of the active filters.
func (eng *Engine) Filters() []nt.Filter {

	filters := make([]nt.Filter, len(eng.filters))
	for i, f := range eng.filters {
		filters[i] = f.Clone()
	}
	return filters
}

// IsSelected reports whether a filter with name is active.
func (eng *Engine) IsSelected(name string) bool {
	return eng.find(name) >= 0
}

// Get returns a handle on the named filter.
func (eng *Engine) Get(name string) (Handle, bool) {

	idx := eng.find(name)
	if idx < 0 {
		return nil, false
	}
	return eng.handle(eng.filters[idx]), true
}

// Handles returns a handle per active filter, in order.
func (eng *Engine) Handles() []Handle {

	handles := make([]Handle, len(eng.filters))
	for i, f := range eng.filters {
		handles[i] = eng.handle(f)
	}
	return handles
}

// ByName returns handles keyed by filter name.
func (eng *Engine) ByName() map[string]Handle {

	byName := make(map[string]Handle, len(eng.filters))
	for _, f := range eng.filters {
		byName[f.Name] = eng.handle(f)
	}
	return byName
}

// Revision counts recomputations of the filtered view.
func (eng *Engine) Revision() uint64 {
	return eng.revision
}

// ObjectPaths returns the labeled leaf paths of the first source record.
func (eng *Engine) ObjectPaths() []keypath.ObjectPath {
	return append([]keypath.ObjectPath(nil), eng.paths...)
}

// unexported

func (eng *Engine) apply() {
	eng.filtered = Evaluate(eng.data, eng.filters)
	eng.revision++
}

func (eng *Engine) find(name string) int {
	for i, f := range eng.filters {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// modify runs fn on the stored filter named name and re-applies.
func (eng *Engine) modify(name string, fn func(f *nt.Filter)) {

	idx := eng.find(name)
	if idx < 0 {
		return
	}

	fn(&eng.filters[idx])
	eng.apply()
}

func (eng *Engine) current(name string) (f nt.Filter, ok bool) {

	idx := eng.find(name)
	if idx < 0 {
		return
	}
	return eng.filters[idx].Clone(), true
}

// reshape fits a value to the shape expected by kind.
func reshape(val nt.FilterValue, kind nt.FilterKind) nt.FilterValue {

	switch {
	case kind.IsRange() && !val.IsRange():
		scalar, _ := val.Scalar()
		return nt.Between(predicate.Coerce(scalar), 0)
	case !kind.IsRange() && val.IsRange():
		return nt.Text("")
	}
	return val
}

func dedupe(filters []nt.Filter) []nt.Filter {

	seen := map[string]bool{}
	kept := make([]nt.Filter, 0, len(filters))
	for _, f := range filters {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		kept = append(kept, f.Clone())
	}
	return kept
}
