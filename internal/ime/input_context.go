package ime

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Request ordering errors.
var (
	ErrNotEnabled     = errors.New("ime not enabled")
	ErrAlreadyEnabled = errors.New("ime already enabled")
)

// ContextState is the session state of an InputContext.
type ContextState uint8

const (
	StateDisabled ContextState = iota
	// StateIdle is enabled and waiting on the transport.
	StateIdle
	// StateComposing is enabled with a preedit session open.
	StateComposing
)

func (s ContextState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	default:
		return "disabled"
	}
}

// ScalarRange is a half-open range of scalar (rune) indices into preedit.
type ScalarRange struct {
	Start, End int
}

// InputContext is the IME session of one surface. It is owned by that
// surface and is not safe for concurrent use; the Manager serializes
// access.
type InputContext struct {
	id      SurfaceID
	enabled bool
	caps    Capabilities
	data    RequestData

	preedit   []rune
	caret     int // scalar index, -1 when hidden
	composing bool
	visible   bool // a non-empty preedit has been delivered

	seq  EventSequencer
	form EventForm
	log  *slog.Logger
}

// NewInputContext creates a disabled context for a surface.
func NewInputContext(id SurfaceID, form EventForm, log *slog.Logger) *InputContext {
	if log == nil {
		log = slog.Default()
	}
	return &InputContext{
		id:   id,
		form: form,
		log:  log.With("surface", uint64(id)),
	}
}

// State returns the session state.
func (c *InputContext) State() ContextState {
	switch {
	case !c.enabled:
		return StateDisabled
	case c.composing:
		return StateComposing
	default:
		return StateIdle
	}
}

// Enabled reports whether IME input is enabled.
func (c *InputContext) Enabled() bool { return c.enabled }

// Capabilities returns the negotiated capabilities.
func (c *InputContext) Capabilities() Capabilities { return c.caps }

// Data returns the request data currently applied.
func (c *InputContext) Data() RequestData { return c.data }

// Preedit returns the current preedit text and caret scalar index.
func (c *InputContext) Preedit() (string, int) {
	return string(c.preedit), c.caret
}

// SetEventForm changes how preedit updates are reported from the next
// flush on.
func (c *InputContext) SetEventForm(form EventForm) { c.form = form }

// Enable opens the session. Request data was checked against the
// capabilities when req was built.
func (c *InputContext) Enable(req EnableRequest) ([]Event, error) {
	if c.enabled {
		return nil, fmt.Errorf("surface %d: %w", c.id, ErrAlreadyEnabled)
	}
	kept, dropped := req.data.filter(req.caps)
	if dropped != 0 {
		c.log.Warn("dropping request data without matching capability", "fields", dropped.String())
	}
	c.enabled = true
	c.caps = req.caps
	c.data = kept
	c.resetPreedit()
	c.seq.Reset()
	c.log.Debug("ime enabled", "capabilities", c.caps.String())
	return []Event{EnabledEvent{}}, nil
}

// Update applies request data and returns the fields that were applied.
// Fields outside the negotiated capabilities are dropped with a warning.
func (c *InputContext) Update(data RequestData) (RequestData, error) {
	if !c.enabled {
		return RequestData{}, fmt.Errorf("surface %d: %w", c.id, ErrNotEnabled)
	}
	kept, dropped := data.filter(c.caps)
	if dropped != 0 {
		c.log.Warn("ignoring update for feature without capability", "fields", dropped.String(), "capabilities", c.caps.String())
	}
	c.data = c.data.merge(kept)
	return kept, nil
}

// Disable closes the session. It is idempotent and returns nil when the
// context was already disabled.
func (c *InputContext) Disable() []Event {
	if !c.enabled {
		return nil
	}
	var events []Event
	if c.visible {
		events = append(events, preeditEvent(c.form, "", nil))
	}
	events = append(events, DisabledEvent{})

	if c.seq.Pending() {
		c.log.Debug("discarding staged input on disable")
	}
	c.seq.Reset()
	c.resetPreedit()
	c.enabled = false
	c.caps = 0
	c.data = RequestData{}
	c.log.Debug("ime disabled")
	return events
}

// ClearPreedit drops any preedit and staged input, returning the clear event
// needed when a preedit was showing. Used when the transport goes away.
func (c *InputContext) ClearPreedit() []Event {
	c.seq.Reset()
	wasVisible := c.visible
	c.resetPreedit()
	if !c.enabled || !wasVisible {
		return nil
	}
	return []Event{preeditEvent(c.form, "", nil)}
}

func (c *InputContext) resetPreedit() {
	c.preedit = c.preedit[:0]
	c.caret = 0
	c.composing = false
	c.visible = false
}

func (c *InputContext) ready(op string) bool {
	if !c.enabled {
		c.log.Warn("transport callback on disabled context", "op", op)
		return false
	}
	return true
}

// PreeditStart handles the start of a composition.
func (c *InputContext) PreeditStart() {
	if !c.ready("preedit_start") {
		return
	}
	if c.composing {
		return
	}
	c.composing = true
	c.preedit = c.preedit[:0]
	c.caret = 0
	c.seq.StageStart()
}

// PreeditDone handles the end of a composition.
func (c *InputContext) PreeditDone() {
	if !c.ready("preedit_done") {
		return
	}
	c.composing = false
	c.preedit = c.preedit[:0]
	c.caret = 0
	c.seq.StagePreedit("", nil)
}

// PreeditDraw replaces changed with text and moves the caret. caret is a
// scalar index into the new preedit, or -1 to hide it. Out-of-range
// operands drop the whole instruction.
func (c *InputContext) PreeditDraw(caret int, changed ScalarRange, text string) {
	if !c.ready("preedit_draw") {
		return
	}
	if !utf8.ValidString(text) {
		c.log.Warn("dropping preedit draw with invalid UTF-8")
		return
	}
	if changed.Start < 0 || changed.Start > changed.End || changed.End > len(c.preedit) {
		c.log.Warn("dropping preedit draw outside preedit bounds",
			"start", changed.Start, "end", changed.End, "len", len(c.preedit))
		return
	}
	insert := []rune(text)
	newLen := len(c.preedit) - (changed.End - changed.Start) + len(insert)
	if caret < -1 || caret > newLen {
		c.log.Warn("dropping preedit draw with caret out of range", "caret", caret, "len", newLen)
		return
	}
	if !c.composing {
		c.composing = true
		c.seq.StageStart()
	}

	next := make([]rune, 0, newLen)
	next = append(next, c.preedit[:changed.Start]...)
	next = append(next, insert...)
	next = append(next, c.preedit[changed.End:]...)
	c.preedit = next
	c.caret = caret
	c.stagePreedit()
}

// PreeditCaret moves the caret to an absolute scalar index. The move is
// folded into the staged preedit and becomes visible on the next flush.
func (c *InputContext) PreeditCaret(pos int) {
	if !c.ready("preedit_caret") {
		return
	}
	if pos < 0 || pos > len(c.preedit) {
		c.log.Warn("dropping caret move outside preedit", "pos", pos, "len", len(c.preedit))
		return
	}
	c.caret = pos
	if !c.seq.MoveCursor(c.cursorRange()) {
		c.stagePreedit()
	}
}

// Commit stages committed text. An empty commit stages nothing.
func (c *InputContext) Commit(text string) {
	if !c.ready("commit") || text == "" {
		return
	}
	if !utf8.ValidString(text) {
		c.log.Warn("dropping commit with invalid UTF-8")
		return
	}
	c.seq.StageCommit(text)
}

// DeleteSurrounding stages a deletion around the cursor, in bytes. A
// deletion reaching past the known surrounding text is dropped.
func (c *InputContext) DeleteSurrounding(before, after int) {
	if !c.ready("delete_surrounding") {
		return
	}
	if before < 0 || after < 0 {
		c.log.Warn("dropping negative surrounding delete", "before", before, "after", after)
		return
	}
	if st := c.data.SurroundingText; st != nil {
		if before > st.Cursor() || after > len(st.Text())-st.Cursor() {
			c.log.Warn("dropping surrounding delete beyond known text", "before", before, "after", after)
			return
		}
	}
	c.seq.StageDelete(before, after)
}

// Flush releases the staged batch as ordered events.
func (c *InputContext) Flush() []Event {
	if !c.ready("flush") {
		return nil
	}
	newPreedit := c.seq.hasNewPreedit()
	events := c.seq.Flush(c.form)
	c.visible = newPreedit
	if !newPreedit {
		// Anything not restated in this batch is gone.
		c.preedit = c.preedit[:0]
		c.caret = 0
	}
	return events
}

func (c *InputContext) stagePreedit() {
	c.seq.StagePreedit(string(c.preedit), c.cursorRange())
}

// cursorRange converts the scalar caret into a byte range of the preedit.
func (c *InputContext) cursorRange() *CursorRange {
	if c.caret < 0 || len(c.preedit) == 0 {
		return nil
	}
	off := len(string(c.preedit[:c.caret]))
	return &CursorRange{Begin: off, End: off}
}
