package ime

import (
	"fmt"
	"strconv"
)

// SurfaceID identifies the window or surface an input context belongs to.
type SurfaceID uint64

// Event is an IME notification delivered to the windowing layer.
type Event interface {
	ImplementsEvent()
}

// EnabledEvent is sent once IME input is enabled for a surface.
type EnabledEvent struct{}

// DisabledEvent is sent once IME input is disabled. No further preedit or
// commit events follow until the next EnabledEvent.
type DisabledEvent struct{}

// StartEvent is sent when the input method begins a composition.
type StartEvent struct{}

// CursorRange is a byte range inside preedit text.
type CursorRange struct {
	Begin, End int
}

// PreeditEvent replaces the preedit. Empty Text with a nil Cursor clears
// it. A nil Cursor on non-empty text means the caret is hidden.
type PreeditEvent struct {
	Text   string
	Cursor *CursorRange
}

// UpdateEvent is the legacy single-caret form of PreeditEvent.
type UpdateEvent struct {
	Text   string
	Cursor int
}

// CommitEvent inserts finished text at the cursor.
type CommitEvent struct {
	Text string
}

// DeleteSurroundingEvent deletes bytes around the cursor. Any selection is
// removed first; offsets are relative to the cursor.
type DeleteSurroundingEvent struct {
	BeforeBytes int
	AfterBytes  int
}

func (EnabledEvent) ImplementsEvent()           {}
func (DisabledEvent) ImplementsEvent()          {}
func (StartEvent) ImplementsEvent()             {}
func (PreeditEvent) ImplementsEvent()           {}
func (UpdateEvent) ImplementsEvent()            {}
func (CommitEvent) ImplementsEvent()            {}
func (DeleteSurroundingEvent) ImplementsEvent() {}

func (EnabledEvent) String() string  { return "Enabled" }
func (DisabledEvent) String() string { return "Disabled" }
func (StartEvent) String() string    { return "Start" }

func (e PreeditEvent) String() string {
	if e.Cursor == nil {
		return fmt.Sprintf("Preedit(%s, None)", strconv.Quote(e.Text))
	}
	return fmt.Sprintf("Preedit(%s, (%d, %d))", strconv.Quote(e.Text), e.Cursor.Begin, e.Cursor.End)
}

func (e UpdateEvent) String() string {
	return fmt.Sprintf("Update(%s, %d)", strconv.Quote(e.Text), e.Cursor)
}

func (e CommitEvent) String() string {
	return fmt.Sprintf("Commit(%s)", strconv.Quote(e.Text))
}

func (e DeleteSurroundingEvent) String() string {
	return fmt.Sprintf("DeleteSurrounding(%d, %d)", e.BeforeBytes, e.AfterBytes)
}

// EventForm selects how preedit updates are reported.
type EventForm uint8

const (
	// FormRange reports PreeditEvent with a cursor byte range.
	FormRange EventForm = iota
	// FormLegacy reports UpdateEvent with a single caret offset.
	FormLegacy
)

// ParseEventForm parses "range" or "legacy".
func ParseEventForm(s string) (EventForm, error) {
	switch s {
	case "", "range":
		return FormRange, nil
	case "legacy":
		return FormLegacy, nil
	}
	return FormRange, fmt.Errorf("unknown event form %q", s)
}

func (f EventForm) String() string {
	if f == FormLegacy {
		return "legacy"
	}
	return "range"
}

// EventSink receives ordered event batches for a surface.
type EventSink interface {
	Deliver(id SurfaceID, events []Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(id SurfaceID, events []Event)

// Deliver calls f.
func (f EventSinkFunc) Deliver(id SurfaceID, events []Event) { f(id, events) }
