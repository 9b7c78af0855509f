// Package giokey applies ordered IME event batches to a text field model
// and reports the changes as Gio key events, the way a Gio editor expects
// them: EditEvent for replacements, SelectionEvent for caret moves and
// SnippetEvent when the visible snippet changes. Gio ranges count runes.
package giokey

import (
	"unicode/utf8"

	"gioui.org/io/event"
	"gioui.org/io/key"

	"imecore/internal/ime"
)

// Field is a single-line text model with an IME composition region. The
// committed text and the preedit are kept apart; the displayed text has
// the preedit spliced in at the caret.
type Field struct {
	text    string
	caret   int // byte offset into text
	anchor  int // byte offset into text
	preedit string
	cursor  *ime.CursorRange
	enabled bool
}

// NewField returns a field holding text with the caret at the end.
func NewField(text string) *Field {
	return &Field{text: text, caret: len(text), anchor: len(text)}
}

// Text returns the committed text.
func (f *Field) Text() string { return f.text }

// Display returns the committed text with the preedit at the caret.
func (f *Field) Display() string {
	return f.text[:f.caret] + f.preedit + f.text[f.caret:]
}

// Enabled reports whether IME input is active.
func (f *Field) Enabled() bool { return f.enabled }

// Preedit returns the composing text and its cursor, nil when hidden.
func (f *Field) Preedit() (string, *ime.CursorRange) { return f.preedit, f.cursor }

// Caret returns the caret and anchor as byte offsets into Text.
func (f *Field) Caret() (caret, anchor int) { return f.caret, f.anchor }

// SetSelection moves the caret and anchor, clamped to character
// boundaries. It is ignored while composing.
func (f *Field) SetSelection(caret, anchor int) {
	if f.preedit != "" {
		return
	}
	f.caret = f.boundary(caret)
	f.anchor = f.boundary(anchor)
}

// Composition returns the preedit region in displayed runes, or
// {-1, -1} when nothing is composing.
func (f *Field) Composition() key.Range {
	if f.preedit == "" {
		return key.Range{Start: -1, End: -1}
	}
	start := f.runes(f.caret)
	return key.Range{Start: start, End: start + utf8.RuneCountInString(f.preedit)}
}

// Selection returns the displayed selection in runes. While composing it
// is the preedit cursor.
func (f *Field) Selection() key.Range {
	if f.preedit != "" {
		start := f.runes(f.caret)
		end := utf8.RuneCountInString(f.preedit)
		if f.cursor == nil {
			return key.Range{Start: start + end, End: start + end}
		}
		return key.Range{
			Start: start + utf8.RuneCountInString(f.preedit[:f.cursor.Begin]),
			End:   start + utf8.RuneCountInString(f.preedit[:f.cursor.End]),
		}
	}
	return key.Range{Start: f.runes(f.anchor), End: f.runes(f.caret)}
}

// Snippet answers a SnippetEvent: the displayed text of r, clamped.
func (f *Field) Snippet(r key.Range) key.Snippet {
	display := []rune(f.Display())
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	r.Start = clamp(r.Start, 0, len(display))
	r.End = clamp(r.End, 0, len(display))
	return key.Snippet{Range: r, Text: string(display[r.Start:r.End])}
}

// SurroundingText returns the committed text around the caret for an
// ime.RequestData update. Long text is windowed around the caret to stay
// within ime.MaxSurroundingTextBytes.
func (f *Field) SurroundingText() (ime.SurroundingText, error) {
	lo, hi := 0, len(f.text)
	if hi-lo > ime.MaxSurroundingTextBytes {
		half := ime.MaxSurroundingTextBytes / 2
		lo = f.boundary(max(0, f.caret-half))
		hi = lo + ime.MaxSurroundingTextBytes
		if hi > len(f.text) {
			hi = len(f.text)
		}
		for hi > lo && hi < len(f.text) && !utf8.RuneStart(f.text[hi]) {
			hi--
		}
	}
	caret := clamp(f.caret, lo, hi) - lo
	anchor := clamp(f.anchor, lo, hi) - lo
	return ime.NewSurroundingText(f.text[lo:hi], caret, anchor)
}

// Apply folds one batch into the field and returns the Gio events that
// describe the change, in order.
func (f *Field) Apply(events []ime.Event) []event.Event {
	var out []event.Event
	for _, ev := range events {
		out = append(out, f.apply(ev)...)
	}
	return out
}

func (f *Field) apply(ev ime.Event) []event.Event {
	switch e := ev.(type) {
	case ime.EnabledEvent:
		f.enabled = true
	case ime.DisabledEvent:
		f.enabled = false
		if f.preedit != "" {
			return f.setPreedit("", nil)
		}
	case ime.StartEvent:
	case ime.DeleteSurroundingEvent:
		return f.deleteSurrounding(e.BeforeBytes, e.AfterBytes)
	case ime.PreeditEvent:
		return f.setPreedit(e.Text, e.Cursor)
	case ime.UpdateEvent:
		if e.Text == "" {
			return f.setPreedit("", nil)
		}
		return f.setPreedit(e.Text, &ime.CursorRange{Begin: e.Cursor, End: e.Cursor})
	case ime.CommitEvent:
		return f.commit(e.Text)
	}
	return nil
}

func (f *Field) setPreedit(text string, cursor *ime.CursorRange) []event.Event {
	if text == "" {
		cursor = nil
	}
	if cursor != nil && (cursor.Begin < 0 || cursor.End > len(text) || cursor.Begin > cursor.End) {
		cursor = nil
	}
	old := f.Composition()
	if old.Start < 0 {
		old = key.Range{Start: f.runes(f.caret), End: f.runes(f.caret)}
	}
	if text == f.preedit && cursorEqual(cursor, f.cursor) {
		return nil
	}
	var out []event.Event
	if text != f.preedit {
		out = append(out, key.EditEvent{Range: old, Text: text})
	}
	f.preedit, f.cursor = text, cursor
	out = append(out, key.SelectionEvent(f.Selection()), f.snippetEvent())
	return out
}

func (f *Field) commit(text string) []event.Event {
	if text == "" {
		return nil
	}
	var out []event.Event
	if f.caret != f.anchor {
		out = append(out, f.deleteSelection())
	}
	at := f.runes(f.caret)
	f.text = f.text[:f.caret] + text + f.text[f.caret:]
	f.caret += len(text)
	f.anchor = f.caret
	out = append(out,
		key.EditEvent{Range: key.Range{Start: at, End: at}, Text: text},
		key.SelectionEvent(f.Selection()),
		f.snippetEvent(),
	)
	return out
}

// deleteSurrounding removes the selection, then before bytes ahead of the
// caret and after bytes behind it. Offsets that split a character are
// widened to the enclosing boundary.
func (f *Field) deleteSurrounding(before, after int) []event.Event {
	var out []event.Event
	if f.caret != f.anchor {
		out = append(out, f.deleteSelection())
	}
	start := f.boundary(f.caret - before)
	end := f.caret + after
	if end > len(f.text) {
		end = len(f.text)
	}
	for end < len(f.text) && !utf8.RuneStart(f.text[end]) {
		end++
	}
	if start == f.caret && end == f.caret {
		return out
	}

	// Delete behind the preedit first so earlier offsets stay valid.
	if end > f.caret {
		out = append(out, key.EditEvent{Range: key.Range{Start: f.displayRunes(f.caret), End: f.displayRunes(end)}})
	}
	if start < f.caret {
		out = append(out, key.EditEvent{Range: key.Range{Start: f.runes(start), End: f.runes(f.caret)}})
	}
	f.text = f.text[:start] + f.text[end:]
	f.caret, f.anchor = start, start
	out = append(out, key.SelectionEvent(f.Selection()), f.snippetEvent())
	return out
}

func (f *Field) deleteSelection() event.Event {
	lo, hi := f.anchor, f.caret
	if lo > hi {
		lo, hi = hi, lo
	}
	ev := key.EditEvent{Range: key.Range{Start: f.runes(lo), End: f.runes(hi)}}
	f.text = f.text[:lo] + f.text[hi:]
	f.caret, f.anchor = lo, lo
	return ev
}

func (f *Field) snippetEvent() event.Event {
	return key.SnippetEvent{Start: 0, End: utf8.RuneCountInString(f.text) + utf8.RuneCountInString(f.preedit)}
}

// runes converts a byte offset into text to a displayed rune index for a
// position at or before the caret.
func (f *Field) runes(off int) int {
	return utf8.RuneCountInString(f.text[:off])
}

// displayRunes is runes for positions at or after the caret, which sit
// behind the preedit on screen.
func (f *Field) displayRunes(off int) int {
	return utf8.RuneCountInString(f.text[:off]) + utf8.RuneCountInString(f.preedit)
}

// boundary clamps off into text and moves it back onto a character start.
func (f *Field) boundary(off int) int {
	off = clamp(off, 0, len(f.text))
	for off > 0 && off < len(f.text) && !utf8.RuneStart(f.text[off]) {
		off--
	}
	return off
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cursorEqual(a, b *ime.CursorRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
