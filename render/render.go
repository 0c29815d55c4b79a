// Package render draws records as a lipgloss table.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "vista/entity"
	"vista/keypath"
	"vista/style"
)

// DefaultWidth is used for columns with no width.
const DefaultWidth = 12

// Row is one record to draw.
type Row struct {
	Record   nt.Record
	Selected bool
}

// Options tune a rendering.
type Options struct {
	// Cursor is the highlighted row, -1 for none
	Cursor int
	// Mark prefixes selected rows when set
	Mark string
}

// Table renders rows under columns.
func Table(rows []Row, columns []nt.Column, opts Options) string {

	tbl := table.New()
	style.StyleTable(tbl)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = fmt.Sprintf("%-*s", width(col)+1, truncate(col.Header(), width(col)))
	}
	if opts.Mark != "" {
		headers = append([]string{pad("", opts.Mark)}, headers...)
	}
	tbl.Headers(headers...)

	selected := map[int]bool{}
	for i, row := range rows {
		if row.Selected {
			selected[i] = true
		}
		tbl.Row(Cells(row, columns, opts.Mark)...)
	}

	tbl.StyleFunc(style.RowStyler(opts.Cursor, selected))
	return tbl.String()
}

// Cells formats a row's values for columns.
func Cells(row Row, columns []nt.Column, mark string) []string {

	cells := make([]string, 0, len(columns)+1)
	if mark != "" {
		if row.Selected {
			cells = append(cells, mark)
		} else {
			cells = append(cells, pad("", mark))
		}
	}

	for _, col := range columns {
		val := nt.Value{Raw: keypath.Resolve(row.Record, col.Field)}
		cells = append(cells, truncate(Format(val, col.Format), width(col)))
	}
	return cells
}

// Format renders a value; format is a time layout when the value is a
// time, or a fmt verb such as "%.2f" for numbers.
func Format(val nt.Value, format string) string {

	switch {
	case format == "":
		return val.String()

	case strings.Contains(format, "%"):
		if val.IsNumber() {
			return fmt.Sprintf(format, val.Number())
		}
		return val.String()
	}

	t, err := val.Time()
	if err != nil || val.IsNumber() {
		return val.String()
	}
	return t.Format(format)
}

// unexported

func width(col nt.Column) int {
	if col.Width < 1 {
		return DefaultWidth
	}
	return col.Width
}

func truncate(in string, width int) string {

	if lipgloss.Width(in) <= width {
		return in
	}

	runes := []rune(in)
	if len(runes) > width-1 {
		runes = runes[:max(width-1, 0)]
	}
	ellipsis := style.MutedStyle.Render("…")
	return string(runes) + ellipsis
}

func pad(in, like string) string {
	return fmt.Sprintf("%-*s", lipgloss.Width(like), in)
}
