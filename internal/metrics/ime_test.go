package metrics

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/ime"
)

func TestIMESinkCountsBatches(t *testing.T) {
	m := NewIME(nil)
	var got [][]ime.Event
	sink := m.Sink(ime.EventSinkFunc(func(_ ime.SurfaceID, events []ime.Event) {
		got = append(got, events)
	}))

	sink.Deliver(1, []ime.Event{ime.EnabledEvent{}})
	sink.Deliver(1, []ime.Event{
		ime.DeleteSurroundingEvent{BeforeBytes: 1},
		ime.PreeditEvent{},
		ime.CommitEvent{Text: "日"},
	})
	sink.Deliver(1, nil)
	sink.Deliver(1, []ime.Event{ime.DisabledEvent{}})

	require.Len(t, got, 4, "every batch reaches the next sink")
	assert.Equal(t, uint64(3), m.BatchesTotal.Value(), "empty batches are not counted")
	assert.Equal(t, uint64(3), m.CommittedBytes.Value())
	assert.Equal(t, int64(0), m.EnabledSurfaces.Value())
	assert.Equal(t, uint64(1), m.Events[KindCommit].Value())
	assert.Equal(t, uint64(1), m.Events[KindDeleteSurrounding].Value())
	assert.Equal(t, uint64(0), m.Events[KindStart].Value())
	assert.Equal(t, []uint64{2, 2, 3, 3, 3, 3, 3}, m.BatchEvents.Cumulative())
	assert.Equal(t, uint64(3), m.DeliverSeconds.Count())

	snap := m.Registry().Snapshot()
	assert.Equal(t, int64(1), snap[`imecore_events_total{kind="enabled"}`])
	assert.Equal(t, int64(3), snap["imecore_batches_total"])
}

func TestIMESinkWithoutNext(t *testing.T) {
	m := NewIME(nil)
	m.Sink(nil).Deliver(2, []ime.Event{ime.EnabledEvent{}})
	assert.Equal(t, int64(1), m.EnabledSurfaces.Value())
	assert.Equal(t, uint64(0), m.DeliverSeconds.Count())
}

func TestIMEObserveKey(t *testing.T) {
	m := NewIME(NewRegistry("imecore", ""))
	mgr := ime.NewManager(ime.ManagerConfig{ComposeTable: ime.BuiltinComposeTable()}, nil)
	defer mgr.Close()

	feed := func(sym ime.KeySymbol) {
		m.ObserveKey(mgr.FeedKey(1, ime.KeyInput{Symbol: sym}, true))
		m.ObserveKey(mgr.FeedKey(1, ime.KeyInput{Symbol: sym}, false))
	}
	feed(ime.KeyDeadAcute)
	feed(ime.KeySymbol('e'))
	feed(ime.KeySymbol('a'))

	assert.Equal(t, uint64(3), m.KeysTotal.Value(), "releases are not counted")
	assert.Equal(t, uint64(1), m.KeysConsumed.Value())
	assert.Equal(t, uint64(2), m.KeysTyped.Value())

	m.ObserveKey(nil)
	m.ObserveKey(&ime.KeyEventResult{State: key.Press, Consumed: true})
	assert.Equal(t, uint64(4), m.KeysTotal.Value())
	assert.Equal(t, uint64(2), m.KeysConsumed.Value())
}
