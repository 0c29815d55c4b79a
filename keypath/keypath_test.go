package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "vista/entity"
	"vista/internal/fixture"
)

func TestResolve(t *testing.T) {

	rec := nt.Record{
		"name":  "Emma",
		"price": map[string]any{"amount": "120"},
		"tags":  []any{"a", "b"},
		"typed": map[string]string{"x": "y"},
		"ints":  []int{7, 8},
		"a.b":   "literal",
		"a":     map[string]any{"b": "nested"},
		"empty": nil,
	}

	tests := []struct {
		name string
		path string
		exp  any
		ok   bool
	}{
		{name: "top level", path: "name", exp: "Emma", ok: true},
		{name: "nested map", path: "price.amount", exp: "120", ok: true},
		{name: "sequence index", path: "tags.1", exp: "b", ok: true},
		{name: "index past the end", path: "tags.2"},
		{name: "negative index", path: "tags.-1"},
		{name: "typed map", path: "typed.x", exp: "y", ok: true},
		{name: "typed slice", path: "ints.0", exp: 7, ok: true},
		{name: "literal key with separator", path: "a.b", exp: "literal", ok: true},
		{name: "present nil", path: "empty", ok: true},
		{name: "through a scalar", path: "name.first"},
		{name: "missing", path: "nope.deeper"},
		{name: "empty path"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			val, ok := Lookup(rec, tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.exp, val)
			assert.Equal(t, tc.exp, Resolve(rec, tc.path))
		})
	}
}

func TestResolver(t *testing.T) {

	amount := Resolver("price.amount")
	assert.Equal(t, "1200", amount(fixture.People()[0]))
	assert.Nil(t, amount(nt.Record{}))
}

func TestLeaves(t *testing.T) {

	rec := nt.Record{
		"b": 1,
		"a": map[string]any{"y": []any{1, 2}, "x": map[string]any{}},
		"c": []any{},
	}
	assert.Equal(t, []string{"a.y.0", "a.y.1", "b"}, Leaves(rec))

	assert.Equal(t, []string{}, Leaves(5))
	assert.Equal(t, []string{}, Leaves(nil))

	assert.Equal(t, []string{
		"complexKey", "count", "createdAt", "id", "name", "number", "price.amount", "price.currency",
	}, Leaves(fixture.People()[0]))
}

func TestObjectPaths(t *testing.T) {

	assert.Equal(t, []ObjectPath{}, ObjectPaths(nil, nil))

	records := []nt.Record{
		{"name": "Emma", "price": map[string]any{"amount": "120"}},
		{"other": true},
	}
	assert.Equal(t, []ObjectPath{
		{Key: "name", Label: "name"},
		{Key: "price.amount", Label: "Price"},
	}, ObjectPaths(records, map[string]string{"price.amount": "Price", "other": "Other"}))

	assert.Equal(t, "name", Label(map[string]string{"name": ""}, "name"))
}
