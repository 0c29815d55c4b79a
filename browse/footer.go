package browse

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	nt "vista/entity"
	"vista/style"
)

// RenderFooter renders a footer with status on the left and the source on
// the right.
func RenderFooter(status, source string, width int) string {

	padding := width - lipgloss.Width(status) - lipgloss.Width(source)
	if padding < 1 {
		padding = 1
	}

	return style.FooterStyle.Render(status + strings.Repeat(" ", padding) + source)
}

func (m Model) status() string {

	pager := m.view.Pager()
	sel := m.view.Selection()
	srt := m.view.Sort()

	sortBy := "unsorted"
	if srt.Key() != "" {
		sortBy = fmt.Sprintf("%s %s", srt.Key(), arrow(srt.Direction()))
	}

	return fmt.Sprintf("page %d/%d  rows %d/%d  selected %d  %s",
		pager.CurrentPage(), pager.TotalPages(),
		len(m.view.Visible()), m.view.Total(),
		sel.Count(), sortBy,
	)
}

func arrow(dir nt.Direction) string {
	if dir == nt.Ascending {
		return "↑"
	}
	return "↓"
}
