// Package keypath resolves dotted paths such as "price.amount" against
// nested records and enumerates the leaf paths of a record.
//
// Maps are walked by key and sequences by decimal index, so "tags.0"
// addresses the first element of a "tags" sequence. Missing segments
// resolve to nil rather than failing.
package keypath

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	nt "vista/entity"
)

// Separator joins path segments.
const Separator = "."

// ObjectPath is a leaf path paired with its display label.
type ObjectPath struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Resolve returns the value at path, or nil when any segment is missing.
func Resolve(node any, path string) any {
	val, _ := Lookup(node, path)
	return val
}

// Lookup returns the value at path and whether every segment was found.
func Lookup(node any, path string) (val any, ok bool) {

	if path == "" {
		return
	}

	// a literal key containing the separator wins at the root
	if rec, isRec := node.(map[string]any); isRec {
		if val, ok = rec[path]; ok {
			return
		}
	}

	val = node
	for _, seg := range strings.Split(path, Separator) {
		val, ok = child(val, seg)
		if !ok {
			return nil, false
		}
	}
	return
}

// Resolver returns a function resolving path, handy as a sort or id key.
func Resolver(path string) func(nt.Record) any {
	return func(rec nt.Record) any {
		return Resolve(rec, path)
	}
}

// Leaves enumerates every leaf path of node depth first.
//
// Map keys are visited in lexical order and sequence elements by index.
// Any value that is neither a map nor a sequence is a leaf. A scalar root
// yields no paths, as do empty nested maps and sequences.
func Leaves(node any) []string {
	paths := []string{}
	keys, vals, ok := entries(node)
	if !ok {
		return paths
	}

	for i, key := range keys {
		paths = appendLeaves(paths, vals[i], key)
	}
	return paths
}

// Label returns the registered label for path or the path itself.
func Label(labels map[string]string, path string) string {
	if label, ok := labels[path]; ok && label != "" {
		return label
	}
	return path
}

// ObjectPaths labels the leaf paths of the first record.
func ObjectPaths(records []nt.Record, labels map[string]string) []ObjectPath {
	objectPaths := []ObjectPath{}
	if len(records) == 0 {
		return objectPaths
	}

	for _, key := range Leaves(records[0]) {
		objectPaths = append(objectPaths, ObjectPath{
			Key:   key,
			Label: Label(labels, key),
		})
	}
	return objectPaths
}

// unexported

func appendLeaves(paths []string, node any, prefix string) []string {
	keys, vals, ok := entries(node)
	if !ok {
		return append(paths, prefix)
	}

	for i, key := range keys {
		paths = appendLeaves(paths, vals[i], prefix+Separator+key)
	}
	return paths
}

// entries lists the keys and values of a map or sequence in visiting order.
func entries(node any) (keys []string, vals []any, ok bool) {

	switch typed := node.(type) {
	case map[string]any:
		keys = make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		vals = make([]any, len(keys))
		for i, key := range keys {
			vals[i] = typed[key]
		}
		return keys, vals, true

	case []any:
		keys = make([]string, len(typed))
		for i := range typed {
			keys[i] = strconv.Itoa(i)
		}
		return keys, typed, true

	case nil:
		return
	}

	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		vals = make([]any, len(keys))
		for i, key := range keys {
			vals[i] = rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface()
		}
		return keys, vals, true

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return // []byte is a leaf
		}
		for i := 0; i < rv.Len(); i++ {
			keys = append(keys, strconv.Itoa(i))
			vals = append(vals, rv.Index(i).Interface())
		}
		return keys, vals, true

	case reflect.Pointer:
		if rv.IsNil() {
			return
		}
		return entries(rv.Elem().Interface())
	}
	return
}

func child(node any, seg string) (val any, ok bool) {

	switch typed := node.(type) {
	case map[string]any:
		val, ok = typed[seg]
		return
	case []any:
		idx, isIdx := index(seg, len(typed))
		if !isIdx {
			return
		}
		return typed[idx], true
	case nil:
		return
	}

	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		found := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !found.IsValid() {
			return
		}
		return found.Interface(), true

	case reflect.Slice, reflect.Array:
		idx, isIdx := index(seg, rv.Len())
		if !isIdx {
			return
		}
		return rv.Index(idx).Interface(), true

	case reflect.Pointer:
		if rv.IsNil() {
			return
		}
		return child(rv.Elem().Interface(), seg)
	}
	return
}

// index parses seg as a plain decimal index below length.
func index(seg string, length int) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(seg)
	if err != nil || idx >= length {
		return 0, false
	}
	return idx, true
}
