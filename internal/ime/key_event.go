package ime

import (
	"fmt"

	"gioui.org/io/key"
)

// KeyInput is one physical key event as delivered by the windowing layer.
// The keycode-to-symbol mapping happens outside this package.
type KeyInput struct {
	// Code is the platform keycode (XKB keycode on Linux, evdev + 8).
	Code uint32

	// Symbol is the layout-resolved key symbol, NoSymbol if none.
	Symbol KeySymbol

	// Text is the text the key types with modifiers applied, if any.
	// When empty it is derived from Symbol.
	Text string

	// TextWithoutModifiers is the text the key types with only Shift
	// considered.
	TextWithoutModifiers string

	Modifiers key.Modifiers
}

// LogicalKeyKind classifies a LogicalKey.
type LogicalKeyKind uint8

const (
	LogicalUnidentified LogicalKeyKind = iota
	LogicalNamed
	LogicalCharacter
	LogicalDead
)

// LogicalKey is the meaning of a key press after layout and composition.
type LogicalKey struct {
	Kind LogicalKeyKind

	// Name is set for LogicalNamed keys.
	Name key.Name

	// Text is set for LogicalCharacter keys. A completed compose sequence
	// reports its result here.
	Text string

	// Dead is the combining mark a LogicalDead key intends, 0 if unknown.
	Dead rune
}

func (k LogicalKey) String() string {
	switch k.Kind {
	case LogicalNamed:
		return fmt.Sprintf("Named(%s)", k.Name)
	case LogicalCharacter:
		return fmt.Sprintf("Character(%q)", k.Text)
	case LogicalDead:
		if k.Dead == 0 {
			return "Dead(None)"
		}
		return fmt.Sprintf("Dead(%q)", k.Dead)
	default:
		return "Unidentified"
	}
}

// KeyEventResult is the core's interpretation of a KeyInput.
type KeyEventResult struct {
	Code     uint32
	Symbol   KeySymbol
	Location KeyLocation
	Logical  LogicalKey

	// Text is what the key inserts. Empty while a compose sequence is in
	// progress, on cancellation, and when the transport consumed the key.
	Text string

	TextWithoutModifiers string

	State key.State

	// Consumed is set when the active input method took the key.
	Consumed bool
}

// baseLogicalKey derives the logical key from the symbol alone.
func baseLogicalKey(in KeyInput) LogicalKey {
	if in.Symbol.IsDead() {
		r, _ := in.Symbol.DeadCombining()
		return LogicalKey{Kind: LogicalDead, Dead: r}
	}
	if name := in.Symbol.Name(); name != "" && len(name) > 1 {
		return LogicalKey{Kind: LogicalNamed, Name: name}
	}
	if text := keyText(in); text != "" {
		return LogicalKey{Kind: LogicalCharacter, Text: text}
	}
	if name := in.Symbol.Name(); name != "" {
		return LogicalKey{Kind: LogicalNamed, Name: name}
	}
	return LogicalKey{Kind: LogicalUnidentified}
}

// keyText returns the printable text of the key.
func keyText(in KeyInput) string {
	if in.Text != "" {
		return in.Text
	}
	if r := in.Symbol.Rune(); isPrintable(r) {
		return string(r)
	}
	return ""
}

func keyTextWithoutModifiers(in KeyInput) string {
	if in.TextWithoutModifiers != "" {
		return in.TextWithoutModifiers
	}
	return keyText(in)
}

// isPrintable excludes control characters, which gio's xkb backend also
// keeps out of EditEvents.
func isPrintable(r rune) bool {
	return r >= 0x20 && r != 0x7f && !(r >= 0x80 && r < 0xa0)
}
