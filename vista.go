// Package vista composes filter, sort, pagination and selection into a
// single view over records from a Source.
package vista

import (
	"context"

	"github.com/pkg/errors"

	nt "vista/entity"
	"vista/filter"
	"vista/paginate"
	"vista/selection"
	"vista/sorted"
)

// Todo: reload on file change when the duck store learns to follow

// Source supplies records.
type Source interface {
	// Name returns the name of the data source
	Name() string
	// Records returns every record in source order
	Records(ctx context.Context) (records []nt.Record, err error)
}

// Row is a record on the current page.
type Row struct {
	// Index is the position within the filtered and sorted records
	Index    int
	Record   nt.Record
	Selected bool
}

// View is a filtered, sorted, paginated and selectable view of a source.
// A View is not safe for concurrent use.
type View struct {
	source    Source
	logger    nt.Logger
	labels    map[string]string
	columns   []nt.Column
	records   []nt.Record
	visible   []nt.Record
	filter    *filter.Engine
	sort      *sorted.Engine
	pager     *paginate.Pager
	selection *selection.Tracker
	filterRev uint64
	sortRev   uint64
}

// New loads records from src and builds the view.
func (cfg *Config) New(ctx context.Context, src Source, lgr nt.Logger) (view *View, err error) {

	records, err := src.Records(ctx)
	if err != nil {
		err = errors.Wrapf(err, "failed to get records from %s", src.Name())
		return
	}

	filterCfg := cfg.Filter
	if filterCfg.Labels == nil {
		filterCfg.Labels = cfg.Labels
	}
	sortCfg := cfg.Sort
	if sortCfg.Labels == nil {
		sortCfg.Labels = cfg.Labels
	}

	size := cfg.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	filterEng := filterCfg.New(records)
	sortEng := sortCfg.New(filterEng.Filtered())
	visible := sortEng.Sorted()

	view = &View{
		source:    src,
		logger:    lgr,
		labels:    cfg.Labels,
		columns:   cfg.Columns,
		records:   records,
		visible:   visible,
		filter:    filterEng,
		sort:      sortEng,
		pager:     paginate.New(visible, size, 1),
		selection: cfg.Selection.New(visible),
		filterRev: filterEng.Revision(),
		sortRev:   sortEng.Revision(),
	}

	lgr.Info(ctx, "view ready", "source", src.Name(), "count", len(records), "visible", len(view.visible))
	return
}

// Reload fetches records from the source again.
func (view *View) Reload(ctx context.Context) (err error) {

	records, err := view.source.Records(ctx)
	if err != nil {
		err = errors.Wrapf(err, "failed to reload records from %s", view.source.Name())
		return
	}

	view.Replace(records)

	view.logger.Info(ctx, "reloaded", "source", view.source.Name(), "count", len(records))
	return
}

// Replace swaps in records fetched from the source elsewhere.
func (view *View) Replace(records []nt.Record) {

	view.records = records
	view.filter.SetData(records)
	view.refresh()
}

// Source returns the view's source.
func (view *View) Source() Source {
	return view.source
}

// Name returns the source name.
func (view *View) Name() string {
	return view.source.Name()
}

// Labels returns the path labels of the layout.
func (view *View) Labels() map[string]string {
	return view.labels
}

// Total returns the number of source records.
func (view *View) Total() int {
	return len(view.records)
}

// Filter returns the filter engine.
func (view *View) Filter() *filter.Engine {
	return view.filter
}

// Sort returns the sort engine.
func (view *View) Sort() *sorted.Engine {
	return view.sort
}

// Pager returns the pager.
func (view *View) Pager() *paginate.Pager {
	view.refresh()
	return view.pager
}

// Selection returns the selection tracker.
func (view *View) Selection() *selection.Tracker {
	view.refresh()
	return view.selection
}

// Visible returns every record passing the filters, in sort order.
func (view *View) Visible() []nt.Record {
	view.refresh()
	return append([]nt.Record(nil), view.visible...)
}

// Page returns the records on the current page.
func (view *View) Page() []nt.Record {
	view.refresh()
	return view.pager.CurrentPageData()
}

// Rows returns the current page with selection state.
func (view *View) Rows() []Row {

	view.refresh()

	offset := view.pager.Offset()
	page := view.pager.CurrentPageData()

	rows := make([]Row, len(page))
	for i, rec := range page {
		rows[i] = Row{
			Index:    offset + i,
			Record:   rec,
			Selected: view.selection.IsSelected(rec, offset+i),
		}
	}
	return rows
}

// Toggle flips selection of the row at index in the visible records.
func (view *View) Toggle(index int) {

	view.refresh()
	if index < 0 || index >= len(view.visible) {
		return
	}
	view.selection.Toggle(view.visible[index], index)
}

// Selected returns the selected visible records.
func (view *View) Selected() []nt.Record {
	view.refresh()
	return view.selection.SelectedData()
}

// unexported

// refresh passes changes down the pipeline, skipping stages whose input
// has not been recomputed since the last pass.
func (view *View) refresh() {

	if rev := view.filter.Revision(); rev != view.filterRev {
		view.filterRev = rev
		view.sort.SetData(view.filter.Filtered())
	}

	rev := view.sort.Revision()
	if rev == view.sortRev {
		return
	}
	view.sortRev = rev

	view.visible = view.sort.Sorted()

	view.pager.SetData(view.visible)
	view.selection.SetData(view.visible)
}
