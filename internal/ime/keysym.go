package ime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gioui.org/io/key"
)

// KeySymbol identifies a logical key press independent of modifiers.
// Values follow the X11 keysym numbering, which every supported transport
// (XKB, IBus, Wayland text-input) already speaks.
type KeySymbol uint32

// NoSymbol means the key produced no symbol.
const NoSymbol KeySymbol = 0

// Named key symbols used by the compose engine and key translation.
const (
	KeyBackSpace KeySymbol = 0xff08
	KeyTab       KeySymbol = 0xff09
	KeyReturn    KeySymbol = 0xff0d
	KeyEscape    KeySymbol = 0xff1b
	KeyDelete    KeySymbol = 0xffff
	KeySpace     KeySymbol = 0x0020
	KeyMultiKey  KeySymbol = 0xff20 // Compose

	KeyHome     KeySymbol = 0xff50
	KeyLeft     KeySymbol = 0xff51
	KeyUp       KeySymbol = 0xff52
	KeyRight    KeySymbol = 0xff53
	KeyDown     KeySymbol = 0xff54
	KeyPageUp   KeySymbol = 0xff55
	KeyPageDown KeySymbol = 0xff56
	KeyEnd      KeySymbol = 0xff57

	KeyISOLeftTab KeySymbol = 0xfe20
	KeyKPSpace    KeySymbol = 0xff80
	KeyKPTab      KeySymbol = 0xff89
	KeyKPEnter    KeySymbol = 0xff8d
	KeyKPEqual    KeySymbol = 0xffbd
	KeyF1         KeySymbol = 0xffbe
	KeyF12        KeySymbol = 0xffc9

	KeyModeSwitch     KeySymbol = 0xff7e
	KeyNumLock        KeySymbol = 0xff7f
	KeyISOLevel3Shift KeySymbol = 0xfe03
	KeyISOLevel5Shift KeySymbol = 0xfe11
	KeyShiftL         KeySymbol = 0xffe1
	KeyShiftR         KeySymbol = 0xffe2
	KeyControlL       KeySymbol = 0xffe3
	KeyControlR       KeySymbol = 0xffe4
	KeyCapsLock       KeySymbol = 0xffe5
	KeyShiftLock      KeySymbol = 0xffe6
	KeyMetaL          KeySymbol = 0xffe7
	KeyMetaR          KeySymbol = 0xffe8
	KeyAltL           KeySymbol = 0xffe9
	KeyAltR           KeySymbol = 0xffea
	KeySuperL         KeySymbol = 0xffeb
	KeySuperR         KeySymbol = 0xffec
	KeyHyperL         KeySymbol = 0xffed
	KeyHyperR         KeySymbol = 0xffee
)

// Dead key symbols.
const (
	KeyDeadGrave       KeySymbol = 0xfe50
	KeyDeadAcute       KeySymbol = 0xfe51
	KeyDeadCircumflex  KeySymbol = 0xfe52
	KeyDeadTilde       KeySymbol = 0xfe53
	KeyDeadMacron      KeySymbol = 0xfe54
	KeyDeadBreve       KeySymbol = 0xfe55
	KeyDeadAbovedot    KeySymbol = 0xfe56
	KeyDeadDiaeresis   KeySymbol = 0xfe57
	KeyDeadAbovering   KeySymbol = 0xfe58
	KeyDeadDoubleacute KeySymbol = 0xfe59
	KeyDeadCaron       KeySymbol = 0xfe5a
	KeyDeadCedilla     KeySymbol = 0xfe5b
	KeyDeadOgonek      KeySymbol = 0xfe5c
)

// unicodeKeysymBase is added to a code point to form a Unicode keysym.
const unicodeKeysymBase = 0x01000000

// deadKey describes the diacritic carried by a dead key. Dead keys that
// select something other than a mark, like dead_currency, have no
// combining rune.
type deadKey struct {
	combining rune
	spacing   rune
}

var deadKeys = map[KeySymbol]deadKey{
	KeyDeadGrave:       {'\u0300', '`'},
	KeyDeadAcute:       {'\u0301', '´'},
	KeyDeadCircumflex:  {'\u0302', '^'},
	KeyDeadTilde:       {'\u0303', '~'},
	KeyDeadMacron:      {'\u0304', '¯'},
	KeyDeadBreve:       {'\u0306', '˘'},
	KeyDeadAbovedot:    {'\u0307', '˙'},
	KeyDeadDiaeresis:   {'\u0308', '¨'},
	KeyDeadAbovering:   {'\u030a', '˚'},
	KeyDeadDoubleacute: {'\u030b', '˝'},
	KeyDeadCaron:       {'\u030c', 'ˇ'},
	KeyDeadCedilla:     {'\u0327', '¸'},
	KeyDeadOgonek:      {'\u0328', '˛'},

	0xfe5d: {'\u0345', '\u037a'}, // dead_iota
	0xfe5e: {'\u3099', '\u309b'}, // dead_voiced_sound
	0xfe5f: {'\u309a', '\u309c'}, // dead_semivoiced_sound
	0xfe60: {'\u0323', '\u0323'}, // dead_belowdot
	0xfe61: {'\u0309', '\u0309'}, // dead_hook
	0xfe62: {'\u031b', '\u031b'}, // dead_horn
	0xfe63: {'\u0335', '/'},      // dead_stroke
	0xfe64: {'\u0313', '\u1fbf'}, // dead_abovecomma
	0xfe65: {'\u0314', '\u1ffe'}, // dead_abovereversedcomma
	0xfe66: {'\u030f', '\u02f5'}, // dead_doublegrave
	0xfe67: {'\u0325', '\u02f3'}, // dead_belowring
	0xfe68: {'\u0331', '\u02cd'}, // dead_belowmacron
	0xfe69: {'\u032d', '\ua788'}, // dead_belowcircumflex
	0xfe6a: {'\u0330', '\u02f7'}, // dead_belowtilde
	0xfe6b: {'\u032e', '\u032e'}, // dead_belowbreve
	0xfe6c: {'\u0324', '\u0324'}, // dead_belowdiaeresis
	0xfe6d: {'\u0311', '\u0311'}, // dead_invertedbreve
	0xfe6e: {'\u0326', ','},      // dead_belowcomma
	0xfe6f: {0, '¤'},             // dead_currency
	0xfe80: {0, 'a'},             // dead_a
	0xfe81: {0, 'A'},             // dead_A
	0xfe82: {0, 'e'},             // dead_e
	0xfe83: {0, 'E'},             // dead_E
	0xfe84: {0, 'i'},             // dead_i
	0xfe85: {0, 'I'},             // dead_I
	0xfe86: {0, 'o'},             // dead_o
	0xfe87: {0, 'O'},             // dead_O
	0xfe88: {0, 'u'},             // dead_u
	0xfe89: {0, 'U'},             // dead_U
	0xfe8a: {0, '\u0259'},        // dead_small_schwa
	0xfe8b: {0, '\u018f'},        // dead_capital_schwa
	0xfe8c: {0, 'µ'},             // dead_greek
	0xfe90: {'\u0332', '_'},      // dead_lowline
	0xfe91: {'\u030d', '\u02c8'}, // dead_aboveverticalline
	0xfe92: {'\u0329', '\u02cc'}, // dead_belowverticalline
	0xfe93: {'\u0338', '\u0338'}, // dead_longsolidusoverlay
}

// Rune converts the symbol to the Unicode scalar it types, or 0 for
// symbols with no direct character (function keys, modifiers, dead keys).
func (s KeySymbol) Rune() rune {
	// Direct mapping for printable ASCII and Latin-1
	if s >= 0x20 && s <= 0x7e {
		return rune(s)
	}
	if s >= 0xa0 && s <= 0xff {
		return rune(s)
	}

	// Unicode keysyms (0x01000000 + codepoint)
	if s >= unicodeKeysymBase+0x20 && s <= unicodeKeysymBase+unicode.MaxRune {
		return rune(s - unicodeKeysymBase)
	}

	switch s {
	case KeyReturn, KeyKPEnter:
		return '\r'
	case KeyTab, KeyKPTab:
		return '\t'
	case KeyKPSpace:
		return ' '
	case KeyBackSpace:
		return '\b'
	case KeyEscape:
		return 0x1b
	case KeyDelete:
		return 0x7f
	}
	// Legacy keysyms for other scripts and symbols.
	return keysymRunes[s]
}

// KeySymbolForRune returns the keysym that types r.
func KeySymbolForRune(r rune) KeySymbol {
	if r >= 0x20 && r <= 0x7e || r >= 0xa0 && r <= 0xff {
		return KeySymbol(r)
	}
	return KeySymbol(unicodeKeysymBase + r)
}

// IsModifier reports whether the symbol is a pure modifier key.
func (s KeySymbol) IsModifier() bool {
	switch {
	case s >= KeyShiftL && s <= KeyHyperR:
		return true
	case s >= 0xfe01 && s <= 0xfe0f: // ISO_Lock .. ISO_Last_Group_Lock
		return true
	case s == KeyISOLevel5Shift || s == 0xfe12 || s == 0xfe13: // ISO_Level5_*
		return true
	case s == KeyModeSwitch || s == KeyNumLock:
		return true
	}
	return false
}

// IsDead reports whether the symbol is a dead diacritic key.
func (s KeySymbol) IsDead() bool {
	_, ok := deadKeys[s]
	return ok
}

// DeadCombining returns the combining mark a dead key applies.
func (s KeySymbol) DeadCombining() (rune, bool) {
	d := deadKeys[s]
	return d.combining, d.combining != 0
}

// DeadSpacing returns the spacing form of the dead key's accent, used as a
// visible placeholder while a sequence is composing.
func (s KeySymbol) DeadSpacing() (rune, bool) {
	d, ok := deadKeys[s]
	return d.spacing, ok
}

// KeyLocation distinguishes keys that share a logical meaning.
type KeyLocation uint8

const (
	LocationStandard KeyLocation = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

func (l KeyLocation) String() string {
	switch l {
	case LocationLeft:
		return "left"
	case LocationRight:
		return "right"
	case LocationNumpad:
		return "numpad"
	default:
		return "standard"
	}
}

// Location derives the key location from the symbol.
func (s KeySymbol) Location() KeyLocation {
	switch s {
	case KeyShiftL, KeyControlL, KeyMetaL, KeyAltL, KeySuperL, KeyHyperL:
		return LocationLeft
	case KeyShiftR, KeyControlR, KeyMetaR, KeyAltR, KeySuperR, KeyHyperR:
		return LocationRight
	}
	if s >= KeyKPSpace && s <= KeyKPEqual {
		return LocationNumpad
	}
	return LocationStandard
}

// Name returns the Gio key name for the symbol, or "" when the symbol
// has no name in that vocabulary.
func (s KeySymbol) Name() key.Name {
	if '0' <= s && s <= '9' || 'A' <= s && s <= 'Z' {
		return key.Name(rune(s))
	}
	if 'a' <= s && s <= 'z' {
		return key.Name(rune(s - 0x20))
	}
	if s >= KeyF1 && s <= KeyF12 {
		return key.Name("F" + strconv.Itoa(int(s-KeyF1)+1))
	}
	switch s {
	case KeyEscape:
		return key.NameEscape
	case KeyLeft:
		return key.NameLeftArrow
	case KeyRight:
		return key.NameRightArrow
	case KeyUp:
		return key.NameUpArrow
	case KeyDown:
		return key.NameDownArrow
	case KeyReturn:
		return key.NameReturn
	case KeyKPEnter:
		return key.NameEnter
	case KeyHome:
		return key.NameHome
	case KeyEnd:
		return key.NameEnd
	case KeyBackSpace:
		return key.NameDeleteBackward
	case KeyDelete:
		return key.NameDeleteForward
	case KeyPageUp:
		return key.NamePageUp
	case KeyPageDown:
		return key.NamePageDown
	case KeyTab, KeyKPTab, KeyISOLeftTab:
		return key.NameTab
	case KeySpace, KeyKPSpace:
		return key.NameSpace
	case KeyShiftL, KeyShiftR:
		return key.NameShift
	case KeyControlL, KeyControlR:
		return key.NameCtrl
	case KeyAltL, KeyAltR:
		return key.NameAlt
	case KeySuperL, KeySuperR:
		return key.NameSuper
	}
	return ""
}

//go:generate go run mkkeysyms.go

var (
	keysymNames   map[string]KeySymbol
	keysymByValue map[KeySymbol]string
	keysymRunes   map[KeySymbol]rune
)

func init() {
	keysymNames = make(map[string]KeySymbol, len(keysymTable))
	keysymByValue = make(map[KeySymbol]string, len(keysymTable))
	keysymRunes = make(map[KeySymbol]rune)
	for _, k := range keysymTable {
		keysymNames[k.name] = k.sym
		// The first name listed for a value is its canonical one.
		if _, ok := keysymByValue[k.sym]; !ok {
			keysymByValue[k.sym] = k.name
		}
		if _, ok := keysymRunes[k.sym]; !ok && k.r != 0 {
			keysymRunes[k.sym] = k.r
		}
	}
}

// ParseKeySymbol resolves a keysym name. Besides X11 names it accepts
// "U00E9" / "U+00E9" Unicode forms and "0xfe51" hex values.
func ParseKeySymbol(name string) (KeySymbol, error) {
	if sym, ok := keysymNames[name]; ok {
		return sym, nil
	}
	if len(name) > 1 && (name[0] == 'U' || name[0] == 'u') {
		hex := strings.TrimPrefix(name[1:], "+")
		if cp, err := strconv.ParseUint(hex, 16, 32); err == nil && cp <= unicode.MaxRune {
			return KeySymbolForRune(rune(cp)), nil
		}
	}
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		if v, err := strconv.ParseUint(name[2:], 16, 32); err == nil {
			return KeySymbol(v), nil
		}
	}
	return NoSymbol, fmt.Errorf("unknown keysym %q", name)
}

func (s KeySymbol) String() string {
	if name, ok := keysymByValue[s]; ok {
		return name
	}
	if s >= unicodeKeysymBase {
		return fmt.Sprintf("U%04X", uint32(s-unicodeKeysymBase))
	}
	return fmt.Sprintf("0x%x", uint32(s))
}
