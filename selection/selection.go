// Package selection tracks which records of a collection are selected,
// keyed either by a record id or by position.
//
// Deselecting keeps the key with a false value; only Clear forgets keys.
// A Tracker is not safe for concurrent use.
package selection

import (
	"sort"
	"strconv"

	nt "vista/entity"
	"vista/keypath"
	"vista/snapshot"
)

// Mode is how a record resolves to its selection key.
type Mode string

const (
	ById    Mode = "byId"
	ByIndex Mode = "byIndex"
)

// Config is the configurable selection state.
// With no Mode, records are keyed by id when IdPath or ItemId is set and
// by index otherwise. IdPath defaults to "id".
type Config struct {
	Mode    Mode                   `yaml:"mode,omitempty"`
	IdPath  string                 `yaml:"id_path,omitempty"`
	Initial map[string]bool        `yaml:"initial,omitempty"`
	ItemId  func(nt.Record) string `yaml:"-"`
}

// Tracker holds the selection map for a collection.
type Tracker struct {
	mode     Mode
	itemId   func(nt.Record) string
	selected map[string]bool
	data     []nt.Record
	paths    []keypath.ObjectPath
	tracker  snapshot.Tracker
}

// Item is a record with its selection key and setters bound to that key.
type Item struct {
	Record   nt.Record
	Index    int
	Key      string
	Selected bool
	trk      *Tracker
}

// New creates a tracker seeded with any initial selection.
func (cfg *Config) New(records []nt.Record) (trk *Tracker) {

	trk = &Tracker{
		mode:     cfg.mode(),
		itemId:   cfg.itemId(),
		selected: map[string]bool{},
	}
	for key, val := range cfg.Initial {
		trk.selected[key] = val
	}

	trk.tracker.Changed(records)
	trk.data = snapshot.Copy(records)
	trk.paths = keypath.ObjectPaths(trk.data, nil)
	return
}

// Mode returns the keying mode.
func (trk *Tracker) Mode() Mode {
	return trk.mode
}

// Key resolves an item to its selection key.
func (trk *Tracker) Key(item nt.Record, index int) string {

	if trk.mode == ById {
		return trk.itemId(item)
	}
	return strconv.Itoa(index)
}

// Select marks the item selected.
func (trk *Tracker) Select(item nt.Record, index int) {
	trk.selected[trk.Key(item, index)] = true
}

// Deselect marks the item not selected, keeping its key.
func (trk *Tracker) Deselect(item nt.Record, index int) {
	trk.selected[trk.Key(item, index)] = false
}

// Toggle flips the item's selection.
func (trk *Tracker) Toggle(item nt.Record, index int) {
	key := trk.Key(item, index)
	trk.selected[key] = !trk.selected[key]
}

// IsSelected reports whether the item is selected.
func (trk *Tracker) IsSelected(item nt.Record, index int) bool {
	return trk.selected[trk.Key(item, index)]
}

// SelectAll replaces the selection with every current record.
func (trk *Tracker) SelectAll() {

	trk.selected = make(map[string]bool, len(trk.data))
	for i, rec := range trk.data {
		trk.selected[trk.Key(rec, i)] = true
	}
}

// Clear forgets every key.
func (trk *Tracker) Clear() {
	trk.selected = map[string]bool{}
}

// ToggleSelectAll clears when all records are selected and selects all
// otherwise.
func (trk *Tracker) ToggleSelectAll() {

	if trk.AllSelected() {
		trk.Clear()
		return
	}
	trk.SelectAll()
}

// Count returns the number of selected keys.
func (trk *Tracker) Count() (count int) {

	for _, val := range trk.selected {
		if val {
			count++
		}
	}
	return
}

// Total returns the size of the current collection.
func (trk *Tracker) Total() int {
	return len(trk.data)
}

// AllSelected reports whether the selected count equals the collection
// size, true for an empty collection with nothing selected.
func (trk *Tracker) AllSelected() bool {
	return trk.Count() == trk.Total()
}

// Selected returns a copy of the selection map, false entries included.
func (trk *Tracker) Selected() map[string]bool {

	selected := make(map[string]bool, len(trk.selected))
	for key, val := range trk.selected {
		selected[key] = val
	}
	return selected
}

// Normalised maps each current record's key to the record.
// Of records sharing an id, the last wins.
func (trk *Tracker) Normalised() map[string]nt.Record {

	normal := make(map[string]nt.Record, len(trk.data))
	for i, rec := range trk.data {
		normal[trk.Key(rec, i)] = rec
	}
	return normal
}

// SelectedData returns the selected records in collection order.
// Keys matching no current record are skipped.
func (trk *Tracker) SelectedData() []nt.Record {

	data := []nt.Record{}
	seen := map[string]bool{}
	for i, rec := range trk.data {
		key := trk.Key(rec, i)
		if !trk.selected[key] || seen[key] {
			continue
		}
		seen[key] = true
		data = append(data, rec)
	}
	return data
}

// Items returns each current record with its selection state.
func (trk *Tracker) Items() []Item {

	items := make([]Item, len(trk.data))
	for i, rec := range trk.data {
		key := trk.Key(rec, i)
		items[i] = Item{
			Record:   rec,
			Index:    i,
			Key:      key,
			Selected: trk.selected[key],
			trk:      trk,
		}
	}
	return items
}

// ObjectPaths returns the leaf paths of the first record.
func (trk *Tracker) ObjectPaths() []keypath.ObjectPath {
	return append([]keypath.ObjectPath(nil), trk.paths...)
}

// SetData replaces the collection.
// In index mode the selection follows each record to its new position.
func (trk *Tracker) SetData(records []nt.Record) {

	if !trk.tracker.Changed(records) {
		return
	}

	prev := trk.data
	trk.data = snapshot.Copy(records)
	trk.paths = keypath.ObjectPaths(trk.data, nil)

	if trk.mode == ByIndex {
		trk.selected = Reindex(prev, trk.data, trk.selected)
	}
}

// Select marks the item selected.
func (item Item) Select() {
	item.trk.selected[item.Key] = true
}

// Deselect marks the item not selected.
func (item Item) Deselect() {
	item.trk.selected[item.Key] = false
}

// Toggle flips the item's selection.
func (item Item) Toggle() {
	item.trk.selected[item.Key] = !item.trk.selected[item.Key]
}

// IsSelected reports the item's current selection.
func (item Item) IsSelected() bool {
	return item.trk.selected[item.Key]
}

// Reindex moves index keys from positions in prev to the positions of
// structurally equal records in curr, carrying each value across.
// Records repeated by value are matched in order, each old position taking
// the first new position not yet claimed. Keys that are not indexes of
// prev or whose record is gone are dropped.
func Reindex(prev, curr []nt.Record, selected map[string]bool) map[string]bool {

	positions := map[string][]int{}
	for i, rec := range curr {
		key := snapshot.Canonical(rec)
		positions[key] = append(positions[key], i)
	}

	olds := []int{}
	for key := range selected {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(prev) || strconv.Itoa(idx) != key {
			continue
		}
		olds = append(olds, idx)
	}
	sort.Ints(olds)

	reindexed := map[string]bool{}
	for _, old := range olds {
		key := snapshot.Canonical(prev[old])
		candidates := positions[key]
		if len(candidates) == 0 {
			continue
		}

		positions[key] = candidates[1:]
		reindexed[strconv.Itoa(candidates[0])] = selected[strconv.Itoa(old)]
	}
	return reindexed
}

// unexported

func (cfg *Config) mode() Mode {

	switch {
	case cfg.Mode != "":
		return cfg.Mode
	case cfg.ItemId != nil || cfg.IdPath != "":
		return ById
	}
	return ByIndex
}

func (cfg *Config) itemId() func(nt.Record) string {

	if cfg.ItemId != nil {
		return cfg.ItemId
	}

	path := cfg.IdPath
	if path == "" {
		path = "id"
	}

	resolve := keypath.Resolver(path)
	return func(rec nt.Record) string {
		return nt.Value{Raw: resolve(rec)}.String()
	}
}
