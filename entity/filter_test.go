package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFilterKind(t *testing.T) {

	assert.Equal(t, WithinRange, ParseFilterKind("withinRange"))
	assert.Equal(t, Unknown, ParseFilterKind("sideways"))
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "moreThanOrEqual", MoreThanOrEqual.String())

	assert.True(t, Equal.IsComparison())
	assert.False(t, Includes.IsComparison())
	assert.True(t, OutsideRange.IsRange())
	assert.False(t, LessThan.IsRange())
}

func TestFilterValue(t *testing.T) {

	scalar, ok := FilterValue{}.Scalar()
	assert.True(t, ok)
	assert.Equal(t, "", scalar)

	_, ok = FilterValue{}.Range()
	assert.False(t, ok)

	rng, ok := Between(1, 2.5).Range()
	assert.True(t, ok)
	assert.Equal(t, 1.0, rng.Min())
	assert.Equal(t, 2.5, rng.Max())

	_, ok = Between(1, 2).Scalar()
	assert.False(t, ok)

	assert.Equal(t, "[1, 2.5]", Between(1, 2.5).String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "emm", Text("emm").String())
}

func TestFilterYaml(t *testing.T) {

	data := []byte(`
- name: price
  type: withinRange
  keys: [price.amount]
  value: [100, 2000]
- name: who
  type: includes
  keys: [name]
  value: emm
- name: count
  type: moreThan
  keys: [count]
  value: 42
- name: odd
  type: sideways
  keys: [x]
  value: true
`)

	var filters []Filter
	require.NoError(t, yaml.Unmarshal(data, &filters))

	assert.Equal(t, []Filter{
		{Name: "price", Kind: WithinRange, Keys: []string{"price.amount"}, Value: Between(100, 2000)},
		{Name: "who", Kind: Includes, Keys: []string{"name"}, Value: Text("emm")},
		{Name: "count", Kind: MoreThan, Keys: []string{"count"}, Value: Number(42)},
		{Name: "odd", Kind: Unknown, Keys: []string{"x"}, Value: Text("true")},
	}, filters)

	out, err := yaml.Marshal(filters[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: withinRange")

	var again Filter
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, filters[0], again)

	t.Run("bad values", func(t *testing.T) {

		var flt Filter
		assert.Error(t, yaml.Unmarshal([]byte("value: [1, 2, 3]"), &flt))
		assert.Error(t, yaml.Unmarshal([]byte("value: {a: 1}"), &flt))
	})
}

func TestFilterClone(t *testing.T) {

	orig := Filter{Name: "x", Keys: []string{"a"}}
	dup := orig.Clone()
	dup.Keys[0] = "b"

	assert.Equal(t, "a", orig.Keys[0])
}
