package vista

import (
	nt "vista/entity"
	"vista/keypath"
)

// Columns returns the visible configured columns, or when none are
// configured a column per leaf path of the first record.
func (view *View) Columns() (columns []nt.Column) {

	for _, col := range view.columns {
		if col.Hidden {
			continue
		}
		if col.Label == "" {
			col.Label = keypath.Label(view.labels, col.Field)
		}
		columns = append(columns, col)
	}
	if len(view.columns) > 0 {
		return
	}

	for _, path := range view.filter.ObjectPaths() {
		columns = append(columns, nt.Column{
			Field: path.Key,
			Label: path.Label,
		})
	}
	return
}
