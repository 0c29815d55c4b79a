// Package browse is a bubbletea model for paging through a view.
package browse

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vista"
	"vista/detail"
	nt "vista/entity"
	"vista/message"
	"vista/render"
	"vista/style"
)

// Todo: edit filters in place, the engine handles are ready for it

const (
	footerHeight = 2
	mark         = "●"
)

// Model is the bubbletea model for the browser.
type Model struct {
	ctx         context.Context
	view        *vista.View
	logger      nt.Logger
	cursor      int // row within the current page
	errorString string
	detail      detail.Panel
	showDetail  bool

	Width  int
	Height int
}

// New creates a browser over view.
func New(ctx context.Context, view *vista.View, lgr nt.Logger) Model {

	return Model{
		ctx:    ctx,
		view:   view,
		logger: lgr,
		detail: detail.New(view.Labels()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.RecordsMsg:
		m.view.Replace(msg.Records)
		m.logger.Info(m.ctx, "reloaded", "count", len(msg.Records))
		return m.clamp(), nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""
		return m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.detail, _ = m.detail.Update(detail.SizeMsg{Width: msg.Width, Height: max(msg.Height-footerHeight, 0)})
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	content := m.detail.Content()
	if !m.showDetail {
		rows := m.view.Rows()
		drawn := make([]render.Row, len(rows))
		for i, row := range rows {
			drawn[i] = render.Row{Record: row.Record, Selected: row.Selected}
		}
		content = render.Table(drawn, m.view.Columns(), render.Options{Cursor: m.cursor, Mark: mark})
	}

	height := max(m.Height-footerHeight, 0)
	screen := lipgloss.NewStyle().Height(height).MaxHeight(height).MaxWidth(m.Width).Render(content)

	footer := RenderFooter(m.status(), m.view.Name(), m.Width)
	if m.errorString != "" {
		footer = style.ErrorStyle.Render(m.errorString)
	}

	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, screen, "", footer))
	view.AltScreen = true
	return view
}

// Cursor returns the index within the view of the row under the cursor.
func (m Model) Cursor() int {
	return m.view.Pager().Offset() + m.cursor
}

// unexported

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {

	if m.showDetail {
		return m.handleDetailKey(key)
	}

	pager := m.view.Pager()

	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "enter":
		page := m.view.Page()
		if m.cursor < len(page) {
			m.detail, _ = m.detail.Update(detail.RecordMsg{Record: page[m.cursor]})
			m.showDetail = true
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if pager.CanGoBackwards() {
			pager.Previous()
			m.cursor = len(pager.CurrentPageData()) - 1
		}

	case "down", "j":
		if m.cursor < len(pager.CurrentPageData())-1 {
			m.cursor++
		} else if pager.CanGoForwards() {
			pager.Next()
			m.cursor = 0
		}

	case "left", "h", "pgup":
		pager.Previous()
		m.cursor = 0

	case "right", "l", "pgdown":
		pager.Next()
		m.cursor = 0

	case "space", " ":
		m.view.Toggle(m.Cursor())

	case "a":
		m.view.Selection().ToggleSelectAll()

	case "s":
		m.cycleSort()

	case "d":
		m.view.Sort().ToggleDirection()

	case "c":
		m.view.Filter().Clear()

	case "r":
		return m, m.reload()
	}

	return m.clamp(), nil
}

// handleDetailKey scrolls the detail panel until it is closed.
func (m Model) handleDetailKey(key string) (tea.Model, tea.Cmd) {

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter", "esc":
		m.showDetail = false
	default:
		m.detail = m.detail.Scroll(key)
	}
	return m, nil
}

// cycleSort moves the sort key to the next column, then to none.
func (m Model) cycleSort() {

	sort := m.view.Sort()
	columns := m.view.Columns()

	next := 0
	for i, col := range columns {
		if col.Field == sort.Key() {
			next = i + 1
		}
	}

	if next >= len(columns) {
		sort.RemoveSortKey()
		return
	}
	sort.SetSortKey(columns[next].Field)
}

// clamp keeps the cursor on the current page.
func (m Model) clamp() Model {

	last := len(m.view.Page()) - 1
	if m.cursor > last {
		m.cursor = max(last, 0)
	}
	return m
}

// reload fetches records off the event loop; the view is updated when
// the records arrive.
func (m Model) reload() tea.Cmd {

	src := m.view.Source()
	return func() tea.Msg {
		records, err := src.Records(m.ctx)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.RecordsMsg{Records: records}
	}
}
