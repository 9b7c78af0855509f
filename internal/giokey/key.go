package giokey

import (
	"unicode"

	"gioui.org/io/event"
	"gioui.org/io/key"

	"imecore/internal/ime"
)

// KeyEvents converts a key result into the events a Gio window would
// dispatch: a key.Event for keys with a name, then a key.EditEvent for
// printable text on press. Shortcut chords never insert text.
func KeyEvents(res *ime.KeyEventResult, mods key.Modifiers) []event.Event {
	if res == nil {
		return nil
	}
	var out []event.Event
	if name := eventName(res); name != "" {
		out = append(out, key.Event{Name: name, Modifiers: mods, State: res.State})
	}
	if res.State != key.Press || res.Text == "" || mods&(key.ModCtrl|key.ModAlt|key.ModSuper) != 0 {
		return out
	}
	text := make([]rune, 0, len(res.Text))
	for _, r := range res.Text {
		if unicode.IsPrint(r) {
			text = append(text, r)
		}
	}
	if len(text) > 0 {
		out = append(out, key.EditEvent{Text: string(text)})
	}
	return out
}

func eventName(res *ime.KeyEventResult) key.Name {
	if res.Logical.Kind == ime.LogicalNamed {
		return res.Logical.Name
	}
	return res.Symbol.Name()
}

// Editor routes key results through a Field: text typed with the input
// method disabled is committed directly, and Gio events are collected for
// the caller.
type Editor struct {
	Field  *Field
	events []event.Event
}

// NewEditor wraps f.
func NewEditor(f *Field) *Editor {
	return &Editor{Field: f}
}

// Deliver implements ime.EventSink for a single surface.
func (e *Editor) Deliver(_ ime.SurfaceID, events []ime.Event) {
	e.events = append(e.events, e.Field.Apply(events)...)
}

// Key handles a key result that was not turned into IME events.
func (e *Editor) Key(res *ime.KeyEventResult, mods key.Modifiers) {
	for _, ev := range KeyEvents(res, mods) {
		if edit, ok := ev.(key.EditEvent); ok {
			e.events = append(e.events, e.Field.commit(edit.Text)...)
			continue
		}
		e.events = append(e.events, ev)
	}
}

// Events returns and clears the collected Gio events.
func (e *Editor) Events() []event.Event {
	out := e.events
	e.events = nil
	return out
}
