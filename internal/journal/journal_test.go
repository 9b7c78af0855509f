package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/ime"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func openTest(t *testing.T) (*Journal, *clock) {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"), Options{Transport: "compose", Form: ime.FormRange})
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	c := &clock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	j.now = c.now
	return j, c
}

func TestCodecRoundTrip(t *testing.T) {
	batch := []ime.Event{
		ime.EnabledEvent{},
		ime.StartEvent{},
		ime.DeleteSurroundingEvent{BeforeBytes: 2, AfterBytes: 1},
		ime.PreeditEvent{},
		ime.CommitEvent{Text: "é"},
		ime.PreeditEvent{Text: "ab", Cursor: &ime.CursorRange{Begin: 0, End: 0}},
		ime.PreeditEvent{Text: "ab"},
		ime.UpdateEvent{Text: "x", Cursor: 1},
		ime.DisabledEvent{},
	}
	data, err := MarshalEvents(batch)
	require.NoError(t, err)
	got, err := UnmarshalEvents(data)
	require.NoError(t, err)
	assert.Equal(t, batch, got)

	_, err = UnmarshalEvents([]byte(`[{"kind":"teleport"}]`))
	assert.Error(t, err)
}

func TestRecordSessionLifecycle(t *testing.T) {
	j, _ := openTest(t)

	require.NoError(t, j.Record(1, []ime.Event{ime.EnabledEvent{}}))
	require.NoError(t, j.Record(1, []ime.Event{ime.StartEvent{}, ime.PreeditEvent{Text: "a", Cursor: &ime.CursorRange{Begin: 1, End: 1}}}))
	require.NoError(t, j.Record(1, []ime.Event{ime.PreeditEvent{}, ime.DisabledEvent{}}))
	require.NoError(t, j.Record(1, nil))

	sessions, err := j.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.Equal(t, ime.SurfaceID(1), s.Surface)
	assert.Equal(t, "compose", s.Transport)
	assert.Equal(t, "range", s.Form)
	assert.Equal(t, 3, s.Batches)
	assert.False(t, s.Open())
	assert.True(t, s.EndedAt.After(s.StartedAt))

	batches, err := j.Batches(s.ID)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	for i, b := range batches {
		assert.Equal(t, i+1, b.Seq)
	}
	assert.Equal(t, []ime.Event{ime.PreeditEvent{}, ime.DisabledEvent{}}, batches[2].Events)
}

func TestRecordSeparatesSurfacesAndSessions(t *testing.T) {
	j, _ := openTest(t)

	require.NoError(t, j.Record(1, []ime.Event{ime.EnabledEvent{}}))
	require.NoError(t, j.Record(2, []ime.Event{ime.CommitEvent{Text: "implicit"}}))
	require.NoError(t, j.Record(1, []ime.Event{ime.DisabledEvent{}}))
	require.NoError(t, j.Record(1, []ime.Event{ime.EnabledEvent{}}))

	sessions, err := j.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	// Newest first.
	assert.Equal(t, ime.SurfaceID(1), sessions[0].Surface)
	assert.True(t, sessions[0].Open())
	assert.Equal(t, ime.SurfaceID(2), sessions[1].Surface)
	assert.True(t, sessions[1].Open())
	assert.False(t, sessions[2].Open())

	limited, err := j.Sessions(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, j.EndSurface(2))
	s, err := j.Session(sessions[1].ID)
	require.NoError(t, err)
	assert.False(t, s.Open())
}

func TestSessionNotFound(t *testing.T) {
	j, _ := openTest(t)
	_, err := j.Session("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = j.Batches("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTeeForwardsAfterRecording(t *testing.T) {
	j, _ := openTest(t)

	var got [][]ime.Event
	sink := j.Tee(ime.EventSinkFunc(func(id ime.SurfaceID, events []ime.Event) {
		sessions, err := j.Sessions(0)
		require.NoError(t, err)
		require.NotEmpty(t, sessions, "recorded before forwarding")
		got = append(got, events)
	}))
	sink.Deliver(4, []ime.Event{ime.EnabledEvent{}})
	sink.Deliver(4, []ime.Event{ime.PreeditEvent{}, ime.CommitEvent{Text: "x"}})

	assert.Equal(t, [][]ime.Event{
		{ime.EnabledEvent{}},
		{ime.PreeditEvent{}, ime.CommitEvent{Text: "x"}},
	}, got)
}

func TestReopenClosesDanglingSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path, Options{})
	require.NoError(t, err)
	require.NoError(t, j.Record(9, []ime.Event{ime.EnabledEvent{}}))
	// Simulate a crash: drop the handle without ending sessions.
	require.NoError(t, j.db.Close())
	j.db = nil

	j2, err := Open(path, Options{})
	require.NoError(t, err)
	defer j2.Close()
	sessions, err := j2.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Open())

	v, err := schemaVersion(j2.db)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion(), v)
}

func TestInspectLeavesOpenSessionsAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	rec, err := Open(path, Options{Transport: "none"})
	require.NoError(t, err)
	defer rec.Close()
	require.NoError(t, rec.Record(4, []ime.Event{ime.EnabledEvent{}}))

	insp, err := Open(path, Options{Inspect: true})
	require.NoError(t, err)
	sessions, err := insp.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Open())
	assert.Error(t, insp.Record(4, []ime.Event{ime.CommitEvent{Text: "a"}}))
	require.NoError(t, insp.Close())

	require.NoError(t, rec.Record(4, []ime.Event{ime.CommitEvent{Text: "b"}}))
	batches, err := rec.Batches(sessions[0].ID)
	require.NoError(t, err)
	assert.Len(t, batches, 2)
}

func TestPrune(t *testing.T) {
	j, c := openTest(t)
	require.NoError(t, j.Record(1, []ime.Event{ime.EnabledEvent{}}))
	require.NoError(t, j.Record(1, []ime.Event{ime.DisabledEvent{}}))
	cutoff := c.now()
	require.NoError(t, j.Record(2, []ime.Event{ime.EnabledEvent{}}))

	n, err := j.Prune(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	sessions, err := j.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, ime.SurfaceID(2), sessions[0].Surface)
}

func TestRecordAfterClose(t *testing.T) {
	j, _ := openTest(t)
	require.NoError(t, j.Ping(context.Background()))
	require.NoError(t, j.Close())
	assert.Error(t, j.Ping(context.Background()))
	assert.Error(t, j.Record(1, []ime.Event{ime.EnabledEvent{}}))
	assert.NoError(t, j.Close())
}
