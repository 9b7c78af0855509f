package ime

import (
	"strings"

	"gioui.org/io/key"
)

// Capabilities is the set of optional features a client negotiates when it
// enables IME input. The set is fixed for one enabled session.
type Capabilities uint8

const (
	CapHintAndPurpose Capabilities = 1 << iota
	CapCursorArea
	CapSurroundingText
)

// NewCapabilities returns an empty capability set.
func NewCapabilities() Capabilities { return 0 }

// WithHintAndPurpose adds the hint-and-purpose feature.
func (c Capabilities) WithHintAndPurpose() Capabilities { return c | CapHintAndPurpose }

// WithCursorArea adds the cursor-area feature.
func (c Capabilities) WithCursorArea() Capabilities { return c | CapCursorArea }

// WithSurroundingText adds the surrounding-text feature.
func (c Capabilities) WithSurroundingText() Capabilities { return c | CapSurroundingText }

// Has reports whether every feature in f is present.
func (c Capabilities) Has(f Capabilities) bool { return c&f == f }

func (c Capabilities) String() string {
	var parts []string
	if c.Has(CapHintAndPurpose) {
		parts = append(parts, "hint_and_purpose")
	}
	if c.Has(CapCursorArea) {
		parts = append(parts, "cursor_area")
	}
	if c.Has(CapSurroundingText) {
		parts = append(parts, "surrounding_text")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Hint describes properties of the text being edited.
type Hint uint16

const (
	HintCompletion Hint = 1 << iota
	HintSpellcheck
	HintAutoCapitalization
	HintLowercase
	HintUppercase
	HintTitlecase
	HintHiddenText
	HintSensitiveData
	HintLatin
	HintMultiline
)

// HintNone means no hints.
const HintNone Hint = 0

// Purpose describes what kind of text is expected.
type Purpose uint8

const (
	PurposeNormal Purpose = iota
	PurposeAlpha
	PurposeDigits
	PurposeNumber
	PurposePhone
	PurposeURL
	PurposeEmail
	PurposeName
	PurposePassword
	PurposePin
	PurposeDate
	PurposeTime
	PurposeDateTime
	PurposeTerminal
)

// InputHint maps the purpose to Gio's on-screen-keyboard hint.
func (p Purpose) InputHint() key.InputHint {
	switch p {
	case PurposeDigits, PurposeNumber, PurposePin, PurposeDate, PurposeTime, PurposeDateTime:
		return key.HintNumeric
	case PurposePhone:
		return key.HintTelephone
	case PurposeURL:
		return key.HintURL
	case PurposeEmail:
		return key.HintEmail
	case PurposePassword:
		return key.HintPassword
	case PurposeAlpha, PurposeName:
		return key.HintText
	default:
		return key.HintAny
	}
}

// Position is a point in surface-local logical coordinates.
type Position struct {
	X, Y float64
}

// Size is an extent in logical coordinates.
type Size struct {
	Width, Height float64
}

// HintAndPurpose pairs the content-type fields.
type HintAndPurpose struct {
	Hint    Hint
	Purpose Purpose
}

// CursorArea is the rectangle the input method should avoid covering.
type CursorArea struct {
	Position Position
	Size     Size
}

// RequestData carries optional per-feature values. Only fields matching
// negotiated capabilities have any effect.
type RequestData struct {
	HintAndPurpose  *HintAndPurpose
	CursorArea      *CursorArea
	SurroundingText *SurroundingText
}

// WithHintAndPurpose sets the content type.
func (d RequestData) WithHintAndPurpose(hint Hint, purpose Purpose) RequestData {
	d.HintAndPurpose = &HintAndPurpose{Hint: hint, Purpose: purpose}
	return d
}

// WithCursorArea sets the cursor area.
func (d RequestData) WithCursorArea(pos Position, size Size) RequestData {
	d.CursorArea = &CursorArea{Position: pos, Size: size}
	return d
}

// WithSurroundingText sets the surrounding text.
func (d RequestData) WithSurroundingText(st SurroundingText) RequestData {
	d.SurroundingText = &st
	return d
}

// Empty reports whether no field is set.
func (d RequestData) Empty() bool {
	return d.HintAndPurpose == nil && d.CursorArea == nil && d.SurroundingText == nil
}

// present returns the capability set matching the populated fields.
func (d RequestData) present() Capabilities {
	var c Capabilities
	if d.HintAndPurpose != nil {
		c |= CapHintAndPurpose
	}
	if d.CursorArea != nil {
		c |= CapCursorArea
	}
	if d.SurroundingText != nil {
		c |= CapSurroundingText
	}
	return c
}

// filter splits d into the fields caps allows and the set of fields it
// dropped.
func (d RequestData) filter(caps Capabilities) (kept RequestData, dropped Capabilities) {
	if d.HintAndPurpose != nil {
		if caps.Has(CapHintAndPurpose) {
			kept.HintAndPurpose = d.HintAndPurpose
		} else {
			dropped |= CapHintAndPurpose
		}
	}
	if d.CursorArea != nil {
		if caps.Has(CapCursorArea) {
			kept.CursorArea = d.CursorArea
		} else {
			dropped |= CapCursorArea
		}
	}
	if d.SurroundingText != nil {
		if caps.Has(CapSurroundingText) {
			kept.SurroundingText = d.SurroundingText
		} else {
			dropped |= CapSurroundingText
		}
	}
	return kept, dropped
}

// merge overlays the populated fields of u onto d.
func (d RequestData) merge(u RequestData) RequestData {
	if u.HintAndPurpose != nil {
		d.HintAndPurpose = u.HintAndPurpose
	}
	if u.CursorArea != nil {
		d.CursorArea = u.CursorArea
	}
	if u.SurroundingText != nil {
		d.SurroundingText = u.SurroundingText
	}
	return d
}

// EnableRequest is a validated request to enable IME input.
type EnableRequest struct {
	caps Capabilities
	data RequestData
}

// NewEnableRequest builds an EnableRequest. ok is false when capabilities
// and initial data disagree on any feature: a capability without its
// initial value, or a value for a capability that was not requested.
func NewEnableRequest(caps Capabilities, data RequestData) (EnableRequest, bool) {
	if data.present() != caps&(CapHintAndPurpose|CapCursorArea|CapSurroundingText) {
		return EnableRequest{}, false
	}
	return EnableRequest{caps: caps, data: data}, true
}

// Capabilities returns the requested capabilities.
func (r EnableRequest) Capabilities() Capabilities { return r.caps }

// Data returns the initial request data.
func (r EnableRequest) Data() RequestData { return r.data }
