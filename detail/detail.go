// Package detail shows every leaf path of a single record.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "vista/entity"
	"vista/keypath"
)

// Panel handles the record detail display state.
type Panel struct {
	labels map[string]string
	record nt.Record
	lines  []string // rendered leaves, cached

	Width        int
	height       int
	ScrollOffset int
}

// RecordMsg sets the record shown.
type RecordMsg struct {
	Record nt.Record
}

// SizeMsg sets the panel size.
type SizeMsg struct {
	Width  int
	Height int
}

// New creates a panel labeling paths from labels.
func New(labels map[string]string) Panel {
	return Panel{
		labels: labels,
	}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case RecordMsg:
		pnl.record = msg.Record
		pnl.lines = Lines(msg.Record, pnl.labels)
		pnl.ScrollOffset = 0

	case SizeMsg:
		pnl.Width = msg.Width
		pnl.height = msg.Height
		pnl.ScrollOffset = min(pnl.ScrollOffset, pnl.maxScroll())

	case tea.KeyPressMsg:
		pnl = pnl.Scroll(msg.String())
	}

	return pnl, nil
}

// Scroll moves the visible window for up, down, pgup and pgdown.
func (pnl Panel) Scroll(key string) Panel {

	step := 1
	if key == "pgup" || key == "pgdown" {
		step = max(pnl.height, 1)
	}

	switch key {
	case "up", "k", "pgup":
		pnl.ScrollOffset = max(pnl.ScrollOffset-step, 0)
	case "down", "j", "pgdown":
		pnl.ScrollOffset = min(pnl.ScrollOffset+step, pnl.maxScroll())
	}

	return pnl
}

// Content returns the visible lines.
func (pnl Panel) Content() string {

	if pnl.record == nil {
		return "No record"
	}

	visible := pnl.lines[pnl.ScrollOffset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}
	return strings.Join(visible, "\n")
}

// View renders the detail view
func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Content())
}

// Lines renders one "label  value" line per leaf path of record.
func Lines(record nt.Record, labels map[string]string) []string {

	paths := keypath.Leaves(record)

	names := make([]string, len(paths))
	wide := 0
	for i, path := range paths {
		names[i] = keypath.Label(labels, path)
		wide = max(wide, len(names[i]))
	}

	lines := make([]string, len(paths))
	for i, path := range paths {
		val := nt.Value{Raw: keypath.Resolve(record, path)}
		lines[i] = fmt.Sprintf("%-*s  %s", wide, names[i], val.String())
	}
	return lines
}

// unexported

func (pnl Panel) maxScroll() int {

	if pnl.height < 1 {
		return max(len(pnl.lines)-1, 0)
	}
	return max(len(pnl.lines)-pnl.height, 0)
}
