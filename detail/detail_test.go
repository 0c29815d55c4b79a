package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "vista/entity"
	"vista/internal/fixture"
)

func TestLines(t *testing.T) {

	rec := nt.Record{
		"name":  "Emma",
		"price": map[string]any{"amount": "120", "currency": "GBP"},
	}

	lines := Lines(rec, map[string]string{"price.amount": "Price"})
	assert.Equal(t, []string{
		"name            Emma",
		"Price           120",
		"price.currency  GBP",
	}, lines)
}

func TestPanel(t *testing.T) {

	pnl := New(nil)
	assert.Equal(t, "No record", pnl.Content())

	pnl, _ = pnl.Update(SizeMsg{Width: 40, Height: 3})
	pnl, _ = pnl.Update(RecordMsg{Record: fixture.People()[0]})
	assert.Equal(t, "complexKey      123444\ncount           100\ncreatedAt       Wed Jul 31 1985 10:33:30 GMT+0100 (British Summer Time)", pnl.Content())

	t.Run("scroll stops at the last full window", func(t *testing.T) {

		down := pnl
		for range 10 {
			down = down.Scroll("down")
		}
		assert.Equal(t, 5, down.ScrollOffset)
		assert.Equal(t, "number          100\nprice.amount    1200\nprice.currency  GBP", down.Content())

		down = down.Scroll("pgup")
		assert.Equal(t, 2, down.ScrollOffset)
		down = down.Scroll("pgup")
		assert.Equal(t, 0, down.ScrollOffset)
	})

	t.Run("new record resets scroll", func(t *testing.T) {

		moved := pnl.Scroll("pgdown")
		assert.Equal(t, 3, moved.ScrollOffset)

		moved, _ = moved.Update(RecordMsg{Record: fixture.People()[1]})
		assert.Equal(t, 0, moved.ScrollOffset)
	})
}
