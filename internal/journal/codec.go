package journal

import (
	"encoding/json"
	"fmt"

	"imecore/internal/ime"
)

// Event kinds as stored in the journal.
const (
	KindEnabled           = "enabled"
	KindDisabled          = "disabled"
	KindStart             = "start"
	KindPreedit           = "preedit"
	KindUpdate            = "update"
	KindCommit            = "commit"
	KindDeleteSurrounding = "delete_surrounding"
)

// Record is the JSON form of one event.
type Record struct {
	Kind   string           `json:"kind"`
	Text   string           `json:"text,omitempty"`
	Cursor *ime.CursorRange `json:"cursor,omitempty"`
	Caret  int              `json:"caret,omitempty"`
	Before int              `json:"before,omitempty"`
	After  int              `json:"after,omitempty"`
}

// EncodeEvent converts an event to its record.
func EncodeEvent(ev ime.Event) (Record, error) {
	switch e := ev.(type) {
	case ime.EnabledEvent:
		return Record{Kind: KindEnabled}, nil
	case ime.DisabledEvent:
		return Record{Kind: KindDisabled}, nil
	case ime.StartEvent:
		return Record{Kind: KindStart}, nil
	case ime.PreeditEvent:
		r := Record{Kind: KindPreedit, Text: e.Text}
		if e.Cursor != nil {
			c := *e.Cursor
			r.Cursor = &c
		}
		return r, nil
	case ime.UpdateEvent:
		return Record{Kind: KindUpdate, Text: e.Text, Caret: e.Cursor}, nil
	case ime.CommitEvent:
		return Record{Kind: KindCommit, Text: e.Text}, nil
	case ime.DeleteSurroundingEvent:
		return Record{Kind: KindDeleteSurrounding, Before: e.BeforeBytes, After: e.AfterBytes}, nil
	}
	return Record{}, fmt.Errorf("unsupported event %T", ev)
}

// Event converts the record back to an event.
func (r Record) Event() (ime.Event, error) {
	switch r.Kind {
	case KindEnabled:
		return ime.EnabledEvent{}, nil
	case KindDisabled:
		return ime.DisabledEvent{}, nil
	case KindStart:
		return ime.StartEvent{}, nil
	case KindPreedit:
		ev := ime.PreeditEvent{Text: r.Text}
		if r.Cursor != nil {
			c := *r.Cursor
			ev.Cursor = &c
		}
		return ev, nil
	case KindUpdate:
		return ime.UpdateEvent{Text: r.Text, Cursor: r.Caret}, nil
	case KindCommit:
		return ime.CommitEvent{Text: r.Text}, nil
	case KindDeleteSurrounding:
		return ime.DeleteSurroundingEvent{BeforeBytes: r.Before, AfterBytes: r.After}, nil
	}
	return nil, fmt.Errorf("unknown event kind %q", r.Kind)
}

// MarshalEvents encodes a batch as a JSON array.
func MarshalEvents(events []ime.Event) ([]byte, error) {
	records := make([]Record, 0, len(events))
	for _, ev := range events {
		r, err := EncodeEvent(ev)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return json.Marshal(records)
}

// UnmarshalEvents decodes a batch written by MarshalEvents.
func UnmarshalEvents(data []byte) ([]ime.Event, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	events := make([]ime.Event, 0, len(records))
	for _, r := range records {
		ev, err := r.Event()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
