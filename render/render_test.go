package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "vista/entity"
	"vista/internal/fixture"
)

func TestFormat(t *testing.T) {

	tests := []struct {
		name   string
		raw    any
		format string
		exp    string
	}{
		{name: "plain", raw: "GBP", exp: "GBP"},
		{name: "missing", raw: nil, exp: ""},
		{name: "number verb", raw: 3.14159, format: "%.2f", exp: "3.14"},
		{name: "verb on text", raw: "abc", format: "%.2f", exp: "abc"},
		{name: "time layout", raw: "2020-01-02T10:00:00Z", format: "Jan 2 2006", exp: "Jan 2 2020"},
		{name: "layout on number", raw: 12, format: "2006", exp: "12"},
		{name: "layout on text", raw: "nope", format: "2006", exp: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Format(nt.Value{Raw: tt.raw}, tt.format))
		})
	}
}

func TestCells(t *testing.T) {

	columns := []nt.Column{
		{Field: "name", Width: 3},
		{Field: "price.amount", Width: 8},
		{Field: "missing"},
	}

	t.Run("truncates to width", func(t *testing.T) {
		cells := Cells(Row{Record: fixture.People()[0]}, columns, "")

		require.Len(t, cells, 3)
		assert.True(t, strings.HasPrefix(cells[0], "Si"))
		assert.Contains(t, cells[0], "…")
		assert.Equal(t, "1200", cells[1])
		assert.Equal(t, "", cells[2])
	})

	t.Run("marks selected", func(t *testing.T) {
		rec := fixture.People()[3]

		cells := Cells(Row{Record: rec, Selected: true}, columns, "*")
		require.Len(t, cells, 4)
		assert.Equal(t, "*", cells[0])
		assert.Equal(t, "12000", cells[2])

		assert.Equal(t, " ", Cells(Row{Record: rec}, columns, "*")[0])
	})
}

func TestTable(t *testing.T) {

	records := fixture.People()[:2]
	columns := []nt.Column{{Field: "id", Width: 8}, {Field: "count", Label: "Count", Width: 5}}

	out := Table([]Row{{Record: records[0]}, {Record: records[1], Selected: true}}, columns, Options{Cursor: 0, Mark: ">"})

	assert.Contains(t, out, "Count")
	assert.Contains(t, out, "Simon")
	assert.Contains(t, out, "eamon")
	assert.Contains(t, out, "100")
}
