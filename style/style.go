// Package style holds the lipgloss styles shared by render and browse.
package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true)
	CursorStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer row
	SelectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Amber text
	CursorSelected   = CursorStyle.Foreground(lipgloss.Color("214"))
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	UnStyle          = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc marking the cursor row and selected rows.
// Cursor below zero marks no row.
func RowStyler(cursor int, selected map[int]bool) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return HeaderStyle
		case row == cursor && selected[row]:
			return CursorSelected
		case row == cursor:
			return CursorStyle
		case selected[row]:
			return SelectedStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
