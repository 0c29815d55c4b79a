// Package sorted orders a record collection by a single key path using a
// comparator chosen per key.
//
// An Engine is not safe for concurrent use.
package sorted

import (
	"slices"

	nt "vista/entity"
	"vista/keypath"
	"vista/snapshot"
)

// Config is the configurable sort state.
type Config struct {
	Key         string                   `yaml:"key,omitempty"`
	Direction   nt.Direction             `yaml:"direction,omitempty"`
	Types       map[string]nt.SortType   `yaml:"types,omitempty"`
	Labels      map[string]string        `yaml:"labels,omitempty"`
	Comparators map[string]nt.Comparator `yaml:"-"`
}

// Engine holds sort state and the sorted view of its data.
type Engine struct {
	types       map[string]nt.SortType
	comparators map[string]nt.Comparator
	labels      map[string]string
	state       State
	data        []nt.Record
	sorted      []nt.Record
	paths       []keypath.ObjectPath
	tracker     snapshot.Tracker
	revision    uint64
}

// New creates an engine; direction defaults to descending.
func (cfg *Config) New(records []nt.Record) (eng *Engine) {

	dir := cfg.Direction
	if dir == "" {
		dir = nt.Descending
	}

	eng = &Engine{
		types:       cfg.Types,
		comparators: cfg.Comparators,
		labels:      cfg.Labels,
		state:       State{Key: cfg.Key, Direction: dir},
	}

	eng.SetData(records)
	return
}

// Dispatch applies an action to the sort state.
func (eng *Engine) Dispatch(act Action) {

	next := Reduce(eng.state, act)
	if next == eng.state {
		return
	}

	eng.state = next
	eng.sort()
}

// SetSortKey sorts by key, descending.
func (eng *Engine) SetSortKey(key string) {
	eng.Dispatch(Action{Type: SetSortKey, Key: key})
}

// RemoveSortKey restores source order.
func (eng *Engine) RemoveSortKey() {
	eng.Dispatch(Action{Type: SetSortKey})
}

// ToggleSortKey sorts by key descending, or when already sorting by key
// removes the key and flips the direction.
func (eng *Engine) ToggleSortKey(key string) {
	eng.Dispatch(Action{Type: ToggleSortKey, Key: key})
}

// SetDirection sets the direction, keeping the key.
func (eng *Engine) SetDirection(dir nt.Direction) {
	eng.Dispatch(Action{Type: SetDirection, Direction: dir})
}

// ToggleDirection flips the direction.
func (eng *Engine) ToggleDirection() {
	eng.Dispatch(Action{Type: ToggleDirection})
}

// SetData replaces the source collection.
// A collection equal by value to the current one changes nothing.
func (eng *Engine) SetData(records []nt.Record) {

	if !eng.tracker.Changed(records) {
		return
	}

	eng.data = snapshot.Copy(records)
	eng.paths = keypath.ObjectPaths(eng.data, eng.labels)
	eng.sort()
}

// Revision counts recomputations of the sorted view.
func (eng *Engine) Revision() uint64 {
	return eng.revision
}

// State returns the current sort state.
func (eng *Engine) State() State {
	return eng.state
}

// Key returns the sort key, empty when unsorted.
func (eng *Engine) Key() string {
	return eng.state.Key
}

// Direction returns the sort direction.
func (eng *Engine) Direction() nt.Direction {
	return eng.state.Direction
}

// Sorted returns the records in sort order.
func (eng *Engine) Sorted() []nt.Record {
	return snapshot.Copy(eng.sorted)
}

// ObjectPaths returns the labeled leaf paths of the first source record.
func (eng *Engine) ObjectPaths() []keypath.ObjectPath {
	return append([]keypath.ObjectPath(nil), eng.paths...)
}

// Comparator returns the comparator used for key.
func (eng *Engine) Comparator(key string) nt.Comparator {

	if cmp, ok := eng.comparators[key]; ok && cmp != nil {
		return cmp
	}
	return Builtin(eng.types[key])
}

// Sort returns a stably sorted copy of records.
func Sort(records []nt.Record, state State, cmp nt.Comparator) []nt.Record {

	out := snapshot.Copy(records)
	if state.Key == "" {
		return out
	}

	slices.SortStableFunc(out, func(x, y nt.Record) int {
		a, b := ComparisonValues(x, y, state.Key, state.Direction)
		return cmp(a, b)
	})
	return out
}

// unexported

func (eng *Engine) sort() {
	eng.sorted = Sort(eng.data, eng.state, eng.Comparator(eng.state.Key))
	eng.revision++
}
