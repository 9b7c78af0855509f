package ime

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxSurroundingTextBytes is the largest surrounding text accepted. Wayland
// text-input caps requests at 4000 bytes and the other transports are
// held to the same limit.
const MaxSurroundingTextBytes = 4000

// Surrounding text construction errors.
var (
	ErrTextTooLong       = errors.New("surrounding text too long")
	ErrCursorBadPosition = errors.New("cursor not on a character boundary within the text")
	ErrAnchorBadPosition = errors.New("anchor not on a character boundary within the text")
)

// SurroundingText is the text around the cursor shared with the input
// method. Cursor and anchor are byte offsets on UTF-8 boundaries. The value
// is immutable; updates replace it.
type SurroundingText struct {
	text   string
	cursor int
	anchor int
}

// NewSurroundingText validates and builds a SurroundingText. Length is
// checked first, then cursor, then anchor.
func NewSurroundingText(text string, cursor, anchor int) (SurroundingText, error) {
	if len(text) > MaxSurroundingTextBytes {
		return SurroundingText{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTextTooLong, len(text), MaxSurroundingTextBytes)
	}
	if !isBoundary(text, cursor) {
		return SurroundingText{}, fmt.Errorf("%w: cursor %d in %d bytes", ErrCursorBadPosition, cursor, len(text))
	}
	if !isBoundary(text, anchor) {
		return SurroundingText{}, fmt.Errorf("%w: anchor %d in %d bytes", ErrAnchorBadPosition, anchor, len(text))
	}
	return SurroundingText{text: text, cursor: cursor, anchor: anchor}, nil
}

// isBoundary reports whether off is a code-point boundary of s.
func isBoundary(s string, off int) bool {
	if off < 0 || off > len(s) {
		return false
	}
	if off == len(s) {
		return true
	}
	return utf8.RuneStart(s[off])
}

// Text returns the surrounding text.
func (s SurroundingText) Text() string { return s.text }

// Cursor returns the cursor byte offset.
func (s SurroundingText) Cursor() int { return s.cursor }

// Anchor returns the selection anchor byte offset. It equals Cursor when
// nothing is selected.
func (s SurroundingText) Anchor() int { return s.anchor }

// Selection returns the selected byte range in ascending order.
func (s SurroundingText) Selection() (start, end int) {
	if s.anchor < s.cursor {
		return s.anchor, s.cursor
	}
	return s.cursor, s.anchor
}

// ScalarOffsets converts cursor and anchor to scalar (rune) offsets, the
// unit IBus uses.
func (s SurroundingText) ScalarOffsets() (cursor, anchor int) {
	return utf8.RuneCountInString(s.text[:s.cursor]), utf8.RuneCountInString(s.text[:s.anchor])
}

// BytesAroundCursor converts a scalar-counted range around the cursor into
// byte counts. ok is false when the range leaves the text.
func (s SurroundingText) BytesAroundCursor(beforeScalars, afterScalars int) (before, after int, ok bool) {
	if beforeScalars < 0 || afterScalars < 0 {
		return 0, 0, false
	}
	pos := s.cursor
	for i := 0; i < beforeScalars; i++ {
		if pos == 0 {
			return 0, 0, false
		}
		_, size := utf8.DecodeLastRuneInString(s.text[:pos])
		pos -= size
	}
	before = s.cursor - pos

	pos = s.cursor
	for i := 0; i < afterScalars; i++ {
		if pos == len(s.text) {
			return 0, 0, false
		}
		_, size := utf8.DecodeRuneInString(s.text[pos:])
		pos += size
	}
	after = pos - s.cursor
	return before, after, true
}
