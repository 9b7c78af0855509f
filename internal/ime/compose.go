package ime

// ComposeStatus is the state of the current compose sequence.
type ComposeStatus uint8

const (
	// ComposeNothing means no sequence is in progress.
	ComposeNothing ComposeStatus = iota
	// ComposeComposing means a sequence is in progress with no output yet.
	ComposeComposing
	// ComposeComposed means a sequence just completed; Committed holds the text.
	ComposeComposed
	// ComposeCancelled means the sequence was aborted by an incompatible key.
	ComposeCancelled
)

func (s ComposeStatus) String() string {
	switch s {
	case ComposeComposing:
		return "composing"
	case ComposeComposed:
		return "composed"
	case ComposeCancelled:
		return "cancelled"
	default:
		return "nothing"
	}
}

// FeedResult reports how the engine handled a fed symbol.
type FeedResult uint8

const (
	// FeedAccepted means the symbol was consumed; Status reflects its effect.
	FeedAccepted FeedResult = iota
	// FeedIgnored means the symbol is a pure modifier and was not consumed.
	FeedIgnored
	// FeedDisabled means the engine has no table; callers translate keys directly.
	FeedDisabled
)

func (r FeedResult) String() string {
	switch r {
	case FeedIgnored:
		return "ignored"
	case FeedDisabled:
		return "disabled"
	default:
		return "accepted"
	}
}

// ComposeEngine runs compose sequences against a shared ComposeTable.
// One engine tracks one keyboard's sequence; it is not safe for concurrent
// use, but any number of engines may share a table.
type ComposeEngine struct {
	table  *ComposeTable
	node   *composeNode
	status ComposeStatus
	seq    []KeySymbol
	result string
}

// NewComposeEngine creates an engine over table. A nil table yields an
// engine that reports FeedDisabled for its whole lifetime.
func NewComposeEngine(table *ComposeTable) *ComposeEngine {
	e := &ComposeEngine{table: table}
	if table != nil {
		e.node = table.root
	}
	return e
}

// Disabled reports whether the engine is inert. Callers may check this
// once and skip Feed entirely.
func (e *ComposeEngine) Disabled() bool {
	return e.table == nil
}

// Feed advances the sequence with a key press. Release events must not be
// fed.
func (e *ComposeEngine) Feed(sym KeySymbol) FeedResult {
	if e.table == nil {
		return FeedDisabled
	}
	if sym == NoSymbol || sym.IsModifier() {
		return FeedIgnored
	}

	// Composed and Cancelled are terminal for one sequence.
	if e.status == ComposeComposed || e.status == ComposeCancelled {
		e.Reset()
	}

	next := e.node.children[sym]
	switch {
	case next == nil && e.status == ComposeNothing:
		// Not a sequence start; status stays Nothing.
	case next == nil:
		e.status = ComposeCancelled
		e.node = e.table.root
		e.seq = e.seq[:0]
	case next.leaf:
		e.status = ComposeComposed
		e.result = next.result
		e.node = e.table.root
		e.seq = e.seq[:0]
	default:
		e.status = ComposeComposing
		e.node = next
		e.seq = append(e.seq, sym)
	}
	return FeedAccepted
}

// Status returns the current compose status.
func (e *ComposeEngine) Status() ComposeStatus {
	return e.status
}

// Committed returns the finished text. It is only valid while Status is
// ComposeComposed.
func (e *ComposeEngine) Committed() (string, bool) {
	if e.status != ComposeComposed {
		return "", false
	}
	return e.result, true
}

// Pending returns the symbols of the sequence in progress.
func (e *ComposeEngine) Pending() []KeySymbol {
	return append([]KeySymbol(nil), e.seq...)
}

// Placeholder renders the pending sequence for display as preedit: the
// spacing form of each dead key, the character of any other key. Compose
// keys render as nothing.
func (e *ComposeEngine) Placeholder() string {
	var runes []rune
	for _, sym := range e.seq {
		if r, ok := sym.DeadSpacing(); ok {
			runes = append(runes, r)
		} else if r := sym.Rune(); r != 0 {
			runes = append(runes, r)
		}
	}
	return string(runes)
}

// Reset drops any sequence in progress and returns to ComposeNothing.
func (e *ComposeEngine) Reset() {
	e.status = ComposeNothing
	e.result = ""
	e.seq = e.seq[:0]
	if e.table != nil {
		e.node = e.table.root
	}
}

// DeadKeyHint returns the combining character a dead key intends, so a UI
// can render a placeholder. It only answers when the table reports no
// active sequence (status Nothing or Cancelled); while composing the table
// owns the key.
func (e *ComposeEngine) DeadKeyHint(sym KeySymbol) (rune, bool) {
	if e.status == ComposeComposing || e.status == ComposeComposed {
		return 0, false
	}
	return sym.DeadCombining()
}
