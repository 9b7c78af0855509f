package giokey

import (
	"testing"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"

	"imecore/internal/ime"
)

func charResult(text string, state key.State) *ime.KeyEventResult {
	return &ime.KeyEventResult{
		Symbol:  ime.KeySymbol('a'),
		Logical: ime.LogicalKey{Kind: ime.LogicalCharacter, Text: text},
		Text:    text,
		State:   state,
	}
}

func TestKeyEvents(t *testing.T) {
	assert.Nil(t, KeyEvents(nil, 0))

	assert.Equal(t, []event.Event{
		key.Event{Name: "A", State: key.Press},
		key.EditEvent{Text: "a"},
	}, KeyEvents(charResult("a", key.Press), 0))

	assert.Equal(t, []event.Event{
		key.Event{Name: "A", Modifiers: key.ModCtrl, State: key.Press},
	}, KeyEvents(charResult("a", key.Press), key.ModCtrl), "shortcuts do not insert")

	assert.Equal(t, []event.Event{
		key.Event{Name: "A", State: key.Release},
	}, KeyEvents(charResult("a", key.Release), 0))

	ret := &ime.KeyEventResult{
		Symbol:  ime.KeyReturn,
		Logical: ime.LogicalKey{Kind: ime.LogicalNamed, Name: key.NameReturn},
		Text:    "\r",
		State:   key.Press,
	}
	assert.Equal(t, []event.Event{key.Event{Name: key.NameReturn, State: key.Press}}, KeyEvents(ret, 0),
		"control characters are not text")
}

func TestEditorCommitsPlainKeys(t *testing.T) {
	f := NewField("")
	e := NewEditor(f)

	e.Key(charResult("é", key.Press), key.ModShift)
	e.Deliver(1, []ime.Event{ime.PreeditEvent{Text: "x", Cursor: &ime.CursorRange{Begin: 1, End: 1}}})

	assert.Equal(t, "é", f.Text())
	assert.Equal(t, "éx", f.Display())
	events := e.Events()
	assert.Equal(t, key.Event{Name: "A", Modifiers: key.ModShift, State: key.Press}, events[0])
	assert.Equal(t, key.EditEvent{Range: rng(0, 0), Text: "é"}, events[1])
	assert.Len(t, events, 7)
	assert.Empty(t, e.Events())
}
