package ime

import "strings"

type stagedPreedit struct {
	text   string
	cursor *CursorRange
}

// EventSequencer stages the changes of one transport batch and releases
// them in a fixed order on Flush:
//
//	Start → DeleteSurrounding → Preedit clear → Commit → Preedit
//
// Text fields rely on this order: the old preedit is removed before new
// text is inserted, and insertion happens before the new preedit is shown.
type EventSequencer struct {
	start     bool
	delete    *DeleteSurroundingEvent
	commit    strings.Builder
	hasCommit bool
	preedit   *stagedPreedit
}

// StageStart records that a composition started in this batch.
func (s *EventSequencer) StageStart() {
	s.start = true
}

// StageDelete records a surrounding-text deletion. A later delete in the
// same batch replaces an earlier one.
func (s *EventSequencer) StageDelete(before, after int) {
	s.delete = &DeleteSurroundingEvent{BeforeBytes: before, AfterBytes: after}
}

// StageCommit appends committed text.
func (s *EventSequencer) StageCommit(text string) {
	s.commit.WriteString(text)
	s.hasCommit = true
}

// StagePreedit records the preedit to show after this batch. Empty text
// stages a clear.
func (s *EventSequencer) StagePreedit(text string, cursor *CursorRange) {
	s.preedit = &stagedPreedit{text: text, cursor: cursor}
}

// MoveCursor rewrites the cursor of the staged preedit in place. It
// reports false when no preedit is staged.
func (s *EventSequencer) MoveCursor(cursor *CursorRange) bool {
	if s.preedit == nil {
		return false
	}
	s.preedit.cursor = cursor
	return true
}

// Pending reports whether anything is staged.
func (s *EventSequencer) Pending() bool {
	return s.start || s.delete != nil || s.hasCommit || s.preedit != nil
}

// hasNewPreedit reports whether a non-empty preedit will be shown.
func (s *EventSequencer) hasNewPreedit() bool {
	return s.preedit != nil && s.preedit.text != ""
}

// Flush returns the staged events in order and clears the staging slots.
func (s *EventSequencer) Flush(form EventForm) []Event {
	events := make([]Event, 0, 5)
	if s.start {
		events = append(events, StartEvent{})
	}
	if s.delete != nil {
		events = append(events, *s.delete)
	}
	// Clear the preedit, unless all that follows is a new preedit.
	if s.hasCommit || !s.hasNewPreedit() {
		events = append(events, preeditEvent(form, "", nil))
	}
	if s.hasCommit {
		events = append(events, CommitEvent{Text: s.commit.String()})
	}
	if s.hasNewPreedit() {
		events = append(events, preeditEvent(form, s.preedit.text, s.preedit.cursor))
	}
	s.Reset()
	return events
}

// Reset drops everything staged.
func (s *EventSequencer) Reset() {
	s.start = false
	s.delete = nil
	s.commit.Reset()
	s.hasCommit = false
	s.preedit = nil
}

func preeditEvent(form EventForm, text string, cursor *CursorRange) Event {
	if form == FormLegacy {
		pos := len(text)
		if cursor != nil {
			pos = cursor.End
		}
		if text == "" {
			pos = 0
		}
		return UpdateEvent{Text: text, Cursor: pos}
	}
	if text == "" {
		cursor = nil
	}
	return PreeditEvent{Text: text, Cursor: cursor}
}
