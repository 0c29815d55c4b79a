package browse

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista"
	nt "vista/entity"
	"vista/internal/fixture"
	"vista/message"
)

func newModel(t *testing.T) (Model, *vista.Static) {
	t.Helper()

	ctx := context.Background()
	src := &vista.Static{Label: "people", Data: fixture.People()}
	lgr := &fixture.Logger{}

	view, err := (&vista.Config{PageSize: 2}).New(ctx, src, lgr)
	require.NoError(t, err)

	next, _ := New(ctx, view, lgr).Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	return next.(Model), src
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, key := range keys {
		next, _ := m.handleKey(key)
		m = next.(Model)
	}
	return m
}

func TestNavigate(t *testing.T) {

	m, _ := newModel(t)
	assert.Equal(t, 100, m.Width)

	m = press(t, m, "down")
	assert.Equal(t, 1, m.Cursor())

	m = press(t, m, "down")
	assert.Equal(t, 2, m.view.Pager().CurrentPage())
	assert.Equal(t, 2, m.Cursor())

	m = press(t, m, "up")
	assert.Equal(t, 1, m.view.Pager().CurrentPage())
	assert.Equal(t, 1, m.Cursor())

	m = press(t, m, "right", "right", "right")
	assert.Equal(t, 3, m.view.Pager().CurrentPage())
	assert.Equal(t, 4, m.Cursor())

	m = press(t, m, "down", "down")
	assert.Equal(t, 5, m.Cursor())

	m = press(t, m, "left")
	assert.Equal(t, 2, m.Cursor())
}

func TestSelect(t *testing.T) {

	m, _ := newModel(t)

	m = press(t, m, "down", "space")
	assert.Equal(t, []string{"eamon"}, fixture.Ids(m.view.Selected()))

	m = press(t, m, "a")
	assert.Equal(t, 6, m.view.Selection().Count())

	m = press(t, m, "a")
	assert.Equal(t, 0, m.view.Selection().Count())
}

func TestSortAndFilter(t *testing.T) {

	m, _ := newModel(t)

	m = press(t, m, "s")
	assert.Equal(t, "complexKey", m.view.Sort().Key())
	assert.Equal(t, nt.Descending, m.view.Sort().Direction())

	m = press(t, m, "s", "d")
	assert.Equal(t, "count", m.view.Sort().Key())
	assert.Equal(t, nt.Ascending, m.view.Sort().Direction())
	assert.Equal(t, "Emma", m.view.Page()[0]["id"])
	assert.Contains(t, m.status(), "count ↑")

	m.view.Filter().Add(nt.Filter{Name: "x", Kind: nt.Includes, Keys: []string{"id"}, Value: nt.Text("mike")})
	assert.Contains(t, m.status(), "rows 1/6")

	m = press(t, m, "c")
	assert.Contains(t, m.status(), "rows 6/6")
	assert.Contains(t, m.status(), "page 1/3")
}

func TestReload(t *testing.T) {

	m, src := newModel(t)
	m = press(t, m, "right", "right", "down")

	src.Data = src.Data[:3]
	_, cmd := m.handleKey("r")
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, message.RecordsMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(Model)

	assert.Equal(t, 3, m.view.Total())
	assert.Equal(t, 2, m.view.Pager().CurrentPage())
	assert.Equal(t, 2, m.Cursor())
}

func TestErrorAndQuit(t *testing.T) {

	m, _ := newModel(t)

	next, _ := m.Update(message.ErrorMsg{Err: assert.AnError})
	m = next.(Model)
	assert.Equal(t, assert.AnError.Error(), m.errorString)

	_, cmd := m.handleKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderFooter(t *testing.T) {

	footer := RenderFooter("page 1/1", "people", 30)
	assert.Contains(t, footer, "page 1/1")
	assert.Contains(t, footer, "people")
}

func TestDetail(t *testing.T) {

	m, _ := newModel(t)

	m = press(t, m, "down", "enter")
	require.True(t, m.showDetail)
	assert.Contains(t, m.detail.Content(), "eamon")

	m = press(t, m, "down")
	assert.Equal(t, 1, m.Cursor())

	next, cmd := m.handleKey("esc")
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.showDetail)
}
