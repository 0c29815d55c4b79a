package vista

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	nt "vista/entity"
	"vista/internal/fixture"
	"vista/sorted"
)

type brokenSource struct{}

func (brokenSource) Name() string { return "broken" }

func (brokenSource) Records(ctx context.Context) ([]nt.Record, error) {
	return nil, errors.New("no records here")
}

func sampleConfig(t *testing.T) *Config {
	t.Helper()

	cfg := &Config{}
	require.NoError(t, yaml.Unmarshal(Sample, cfg))
	return cfg
}

func TestView(t *testing.T) {

	ctx := context.Background()

	t.Run("sample layout", func(t *testing.T) {
		lgr := &fixture.Logger{}
		view, err := sampleConfig(t).New(ctx, &Static{Label: "people", Data: fixture.People()}, lgr)
		require.NoError(t, err)

		assert.Equal(t, "people", view.Name())
		assert.Equal(t, 6, view.Total())
		assert.Equal(t, []string{"eamon", "Emma", "emma2", "Mike", "Simon"}, fixture.Ids(view.Visible()))
		assert.Equal(t, 2, view.Pager().TotalPages())
		assert.Equal(t, []string{"view ready"}, lgr.Infos)

		rows := view.Rows()
		require.Len(t, rows, 4)
		assert.Equal(t, 3, rows[3].Index)
		assert.Equal(t, "Mike", rows[3].Record["id"])

		view.Pager().Next()
		assert.Equal(t, []string{"Simon"}, fixture.Ids(view.Page()))
		assert.Equal(t, 4, view.Rows()[0].Index)
	})

	t.Run("configured columns", func(t *testing.T) {
		view, err := sampleConfig(t).New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		columns := view.Columns()
		require.Len(t, columns, 5)
		assert.Equal(t, "id", columns[0].Header())
		assert.Equal(t, "Price", columns[3].Header())
		assert.Equal(t, 10, columns[3].Width)
	})

	t.Run("derived columns", func(t *testing.T) {
		cfg := &Config{Labels: map[string]string{"count": "Count"}}
		view, err := cfg.New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		columns := view.Columns()
		require.Len(t, columns, 8)
		assert.Equal(t, "Count", columns[1].Header())
		assert.Equal(t, "price.currency", columns[7].Field)
	})

	t.Run("selection by id", func(t *testing.T) {
		view, err := sampleConfig(t).New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		view.Toggle(2)
		view.Toggle(99)
		assert.Equal(t, map[string]bool{"emma2": true}, view.Selection().Selected())

		view.Sort().ToggleDirection()
		assert.Equal(t, []string{"emma2"}, fixture.Ids(view.Selected()))
	})

	t.Run("selection by index survives sort", func(t *testing.T) {
		cfg := &Config{Sort: sorted.Config{Key: "count"}}
		view, err := cfg.New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		require.Equal(t, "Oreo", view.Rows()[0].Record["id"])
		view.Toggle(0)

		view.Sort().SetDirection(nt.Ascending)

		rows := view.Rows()
		require.Len(t, rows, 6)
		assert.Equal(t, "Oreo", rows[5].Record["id"])
		assert.True(t, rows[5].Selected)
		assert.False(t, rows[0].Selected)
		assert.Equal(t, []string{"Oreo"}, fixture.Ids(view.Selected()))
	})

	t.Run("filters narrow and pages follow", func(t *testing.T) {
		view, err := sampleConfig(t).New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		view.Pager().GoTo(2)
		view.Filter().Add(nt.Filter{Name: "Search", Kind: nt.Includes, Keys: []string{"name"}, Value: nt.Text("emm")})

		assert.Equal(t, []string{"Emma", "emma2"}, fixture.Ids(view.Visible()))
		assert.Equal(t, 1, view.Pager().CurrentPage())

		view.Filter().Clear()
		assert.Len(t, view.Visible(), 6)
	})

	t.Run("reads leave engines alone", func(t *testing.T) {
		view, err := sampleConfig(t).New(ctx, &Static{Data: fixture.People()}, &fixture.Logger{})
		require.NoError(t, err)

		filterRev, sortRev := view.Filter().Revision(), view.Sort().Revision()
		first := view.Visible()

		view.Rows()
		view.Page()
		view.Selected()
		assert.Equal(t, first, view.Visible())
		assert.Equal(t, filterRev, view.Filter().Revision())
		assert.Equal(t, sortRev, view.Sort().Revision())

		view.Sort().ToggleDirection()
		assert.Equal(t, sortRev+1, view.Sort().Revision())
		assert.Equal(t, []string{"Simon", "Mike", "emma2", "Emma", "eamon"}, fixture.Ids(view.Visible()))
	})

	t.Run("reload", func(t *testing.T) {
		src := &Static{Data: fixture.People()}
		lgr := &fixture.Logger{}
		view, err := (&Config{}).New(ctx, src, lgr)
		require.NoError(t, err)

		src.Data = src.Data[:2]
		require.NoError(t, view.Reload(ctx))

		assert.Equal(t, 2, view.Total())
		assert.Len(t, view.Page(), 2)
		assert.Equal(t, []string{"view ready", "reloaded"}, lgr.Infos)
	})

	t.Run("source error", func(t *testing.T) {
		_, err := (&Config{}).New(ctx, brokenSource{}, &fixture.Logger{})
		assert.ErrorContains(t, err, "no records here")
	})
}

func TestLoadConfig(t *testing.T) {

	dir := t.TempDir()

	t.Run("sample", func(t *testing.T) {
		path := filepath.Join(dir, "layout.yaml")
		require.NoError(t, os.WriteFile(path, Sample, 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.PageSize)
		assert.Equal(t, "name", cfg.Sort.Key)
		assert.Equal(t, nt.SortAlphaNumeric, cfg.Sort.Types["name"])
		require.Len(t, cfg.Filter.Filters, 1)
		assert.Equal(t, nt.WithinRange, cfg.Filter.Filters[0].Kind)
		assert.Equal(t, nt.Between(100, 200000), cfg.Filter.Filters[0].Value)
	})

	t.Run("default page size", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("labels: {}\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, cfg.PageSize)
	})

	t.Run("misspelled key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("page_sise: 3\n"), 0644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "page_sise")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
