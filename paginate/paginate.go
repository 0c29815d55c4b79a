// Package paginate splits records into one-indexed pages.
package paginate

import (
	nt "vista/entity"
	"vista/stepper"
)

// Paginate fills pages of size in order, numbering from 1.
// A size below 1 is treated as 1.
func Paginate(records []nt.Record, size int) map[int][]nt.Record {

	size = max(size, 1)

	pages := map[int][]nt.Record{}
	for i, rec := range records {
		num := i/size + 1
		pages[num] = append(pages[num], rec)
	}
	return pages
}

// Pager tracks the current page over a paginated collection.
type Pager struct {
	*stepper.Stepper
	size  int
	pages map[int][]nt.Record
}

// New creates a pager starting at initial, or page 1 when out of range.
func New(records []nt.Record, size, initial int) *Pager {

	pages := Paginate(records, size)
	return &Pager{
		Stepper: stepper.New(len(pages), initial),
		size:    max(size, 1),
		pages:   pages,
	}
}

// SetData repaginates, keeping the current page when it still exists.
func (pgr *Pager) SetData(records []nt.Record) {

	pgr.pages = Paginate(records, pgr.size)
	pgr.SetSteps(len(pgr.pages))
}

// Size returns the page size.
func (pgr *Pager) Size() int {
	return pgr.size
}

// CurrentPage returns the one-indexed current page.
func (pgr *Pager) CurrentPage() int {
	return pgr.Step()
}

// TotalPages returns the number of pages, zero for no records.
func (pgr *Pager) TotalPages() int {
	return len(pgr.pages)
}

// Page returns the records on page num, nil when there is no such page.
func (pgr *Pager) Page(num int) []nt.Record {
	return pgr.pages[num]
}

// Pages returns every page by number.
func (pgr *Pager) Pages() map[int][]nt.Record {

	pages := make(map[int][]nt.Record, len(pgr.pages))
	for num, page := range pgr.pages {
		pages[num] = page
	}
	return pages
}

// CurrentPageData returns the records on the current page.
func (pgr *Pager) CurrentPageData() []nt.Record {
	return pgr.Page(pgr.CurrentPage())
}

// Offset returns the position in the paginated collection of the first
// record on the current page.
func (pgr *Pager) Offset() int {
	return (pgr.CurrentPage() - 1) * pgr.size
}
