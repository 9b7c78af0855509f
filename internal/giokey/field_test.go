package giokey

import (
	"strings"
	"testing"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/ime"
)

func rng(start, end int) key.Range { return key.Range{Start: start, End: end} }

func TestPreeditThenCommit(t *testing.T) {
	f := NewField("ab")
	assert.Nil(t, f.Apply([]ime.Event{ime.EnabledEvent{}}))
	assert.True(t, f.Enabled())

	got := f.Apply([]ime.Event{
		ime.StartEvent{},
		ime.PreeditEvent{Text: "か", Cursor: &ime.CursorRange{Begin: 3, End: 3}},
	})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(2, 2), Text: "か"},
		key.SelectionEvent(rng(3, 3)),
		key.SnippetEvent(rng(0, 3)),
	}, got)
	assert.Equal(t, "abか", f.Display())
	assert.Equal(t, rng(2, 3), f.Composition())

	got = f.Apply([]ime.Event{ime.PreeditEvent{}, ime.CommitEvent{Text: "課"}})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(2, 3)},
		key.SelectionEvent(rng(2, 2)),
		key.SnippetEvent(rng(0, 2)),
		key.EditEvent{Range: rng(2, 2), Text: "課"},
		key.SelectionEvent(rng(3, 3)),
		key.SnippetEvent(rng(0, 3)),
	}, got)
	assert.Equal(t, "ab課", f.Text())
	assert.Equal(t, rng(-1, -1), f.Composition())
	caret, anchor := f.Caret()
	assert.Equal(t, 5, caret)
	assert.Equal(t, 5, anchor)
}

func TestDeleteSurroundingAroundPreedit(t *testing.T) {
	f := NewField("héllo")
	f.SetSelection(3, 3)
	f.Apply([]ime.Event{ime.PreeditEvent{Text: "x", Cursor: &ime.CursorRange{Begin: 1, End: 1}}})
	require.Equal(t, "héxllo", f.Display())

	got := f.Apply([]ime.Event{ime.DeleteSurroundingEvent{BeforeBytes: 2, AfterBytes: 1}})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(3, 4)},
		key.EditEvent{Range: rng(1, 2)},
		key.SelectionEvent(rng(2, 2)),
		key.SnippetEvent(rng(0, 4)),
	}, got)
	assert.Equal(t, "hlo", f.Text())
	assert.Equal(t, "hxlo", f.Display())
}

func TestDeleteSurroundingClampsAndWidens(t *testing.T) {
	f := NewField("aé")
	// One byte before the end splits é; the whole character goes.
	f.Apply([]ime.Event{ime.DeleteSurroundingEvent{BeforeBytes: 1, AfterBytes: 10}})
	assert.Equal(t, "a", f.Text())

	assert.Nil(t, f.Apply([]ime.Event{ime.DeleteSurroundingEvent{}}))
}

func TestCommitReplacesSelection(t *testing.T) {
	f := NewField("hello")
	f.SetSelection(1, 4)
	assert.Equal(t, rng(4, 1), f.Selection())

	got := f.Apply([]ime.Event{ime.CommitEvent{Text: "J"}})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(1, 4)},
		key.EditEvent{Range: rng(1, 1), Text: "J"},
		key.SelectionEvent(rng(2, 2)),
		key.SnippetEvent(rng(0, 3)),
	}, got)
	assert.Equal(t, "hJo", f.Text())
}

func TestLegacyUpdateHiddenCaretAndDisable(t *testing.T) {
	f := NewField("")
	f.Apply([]ime.Event{ime.EnabledEvent{}})

	got := f.Apply([]ime.Event{ime.UpdateEvent{Text: "ab", Cursor: 1}})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(0, 0), Text: "ab"},
		key.SelectionEvent(rng(1, 1)),
		key.SnippetEvent(rng(0, 2)),
	}, got)

	// Same text, hidden caret: only the selection moves.
	got = f.Apply([]ime.Event{ime.PreeditEvent{Text: "ab"}})
	assert.Equal(t, []event.Event{
		key.SelectionEvent(rng(2, 2)),
		key.SnippetEvent(rng(0, 2)),
	}, got)
	text, cursor := f.Preedit()
	assert.Equal(t, "ab", text)
	assert.Nil(t, cursor)

	// Restating the same preedit changes nothing.
	assert.Empty(t, f.Apply([]ime.Event{ime.PreeditEvent{Text: "ab"}}))

	got = f.Apply([]ime.Event{ime.DisabledEvent{}})
	assert.Equal(t, []event.Event{
		key.EditEvent{Range: rng(0, 2)},
		key.SelectionEvent(rng(0, 0)),
		key.SnippetEvent(rng(0, 0)),
	}, got)
	assert.False(t, f.Enabled())
	assert.Equal(t, "", f.Display())
}

func TestSetSelectionIgnoredWhileComposing(t *testing.T) {
	f := NewField("abc")
	f.Apply([]ime.Event{ime.PreeditEvent{Text: "x"}})
	f.SetSelection(0, 0)
	caret, _ := f.Caret()
	assert.Equal(t, 3, caret)
}

func TestSnippet(t *testing.T) {
	f := NewField("héllo")
	f.SetSelection(1, 1)
	f.Apply([]ime.Event{ime.PreeditEvent{Text: "ü"}})

	assert.Equal(t, key.Snippet{Range: rng(0, 3), Text: "hüé"}, f.Snippet(rng(0, 3)))
	assert.Equal(t, key.Snippet{Range: rng(4, 6), Text: "lo"}, f.Snippet(rng(9, 4)))
}

func TestSurroundingText(t *testing.T) {
	f := NewField("abc")
	f.SetSelection(1, 3)
	st, err := f.SurroundingText()
	require.NoError(t, err)
	assert.Equal(t, "abc", st.Text())
	assert.Equal(t, 1, st.Cursor())
	assert.Equal(t, 3, st.Anchor())

	long := NewField(strings.Repeat("é", 3000))
	st, err = long.SurroundingText()
	require.NoError(t, err)
	assert.Len(t, st.Text(), 2000)
	assert.Equal(t, 2000, st.Cursor())
}
