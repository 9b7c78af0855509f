package ime

import (
	"errors"
	"sync"
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink collects delivered batches.
type recordingSink struct {
	mu      sync.Mutex
	batches map[SurfaceID][][]Event
}

func newRecordingSink() *recordingSink {
	return &recordingSink{batches: make(map[SurfaceID][][]Event)}
}

func (s *recordingSink) Deliver(id SurfaceID, events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[id] = append(s.batches[id], events)
}

func (s *recordingSink) events(id SurfaceID) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []Event
	for _, b := range s.batches[id] {
		all = append(all, b...)
	}
	return all
}

func (s *recordingSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.batches)
}

// fakeTransport records calls and consumes keys on demand.
type fakeTransport struct {
	cb      Callbacks
	opened  []SurfaceID
	closed  []SurfaceID
	updates []RequestData
	consume bool
	down    bool
}

func (f *fakeTransport) Name() string { return "fake" }
func (f *fakeTransport) Open(id SurfaceID, _ Capabilities, _ RequestData) error {
	f.opened = append(f.opened, id)
	return nil
}
func (f *fakeTransport) Update(_ SurfaceID, data RequestData) error {
	f.updates = append(f.updates, data)
	return nil
}
func (f *fakeTransport) Feed(SurfaceID, KeyInput, bool) bool { return f.consume }
func (f *fakeTransport) Close(id SurfaceID)                  { f.closed = append(f.closed, id) }
func (f *fakeTransport) Shutdown() error {
	f.down = true
	return nil
}

func newTestManager(t *testing.T) (*Manager, *fakeTransport, *recordingSink) {
	t.Helper()
	ft := &fakeTransport{}
	sink := newRecordingSink()
	m := NewManager(ManagerConfig{
		ComposeTable: BuiltinComposeTable(),
		Transport: func(cb Callbacks) (Transport, error) {
			ft.cb = cb
			return ft, nil
		},
	}, sink)
	return m, ft, sink
}

func enable(t *testing.T, m *Manager, id SurfaceID) {
	t.Helper()
	req, ok := NewEnableRequest(NewCapabilities(), RequestData{})
	require.True(t, ok)
	require.NoError(t, m.Enable(id, req))
}

func TestManagerScenarioIgnoredUpdateField(t *testing.T) {
	m, ft, sink := newTestManager(t)

	st, err := NewSurroundingText("ab", 2, 2)
	require.NoError(t, err)
	req, ok := NewEnableRequest(NewCapabilities().WithSurroundingText(), RequestData{}.WithSurroundingText(st))
	require.True(t, ok)
	require.NoError(t, m.Enable(1, req))
	assert.Equal(t, []SurfaceID{1}, ft.opened)
	assert.Equal(t, []Event{EnabledEvent{}}, sink.events(1))

	err = m.Update(1, RequestData{}.WithCursorArea(Position{X: 5, Y: 5}, Size{Width: 1, Height: 10}))
	require.NoError(t, err)
	assert.Empty(t, ft.updates, "no native call for an unnegotiated field")

	st2, err := NewSurroundingText("abc", 3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Update(1, RequestData{}.WithSurroundingText(st2)))
	require.Len(t, ft.updates, 1)
	assert.Equal(t, "abc", ft.updates[0].SurroundingText.Text())
}

func TestManagerRequestErrors(t *testing.T) {
	m, _, _ := newTestManager(t)

	err := m.Update(7, RequestData{})
	assert.ErrorIs(t, err, ErrNotEnabled)

	enable(t, m, 7)
	req, _ := NewEnableRequest(NewCapabilities(), RequestData{})
	assert.ErrorIs(t, m.Enable(7, req), ErrAlreadyEnabled)

	m.Disable(7)
	assert.ErrorIs(t, m.Update(7, RequestData{}), ErrNotEnabled)

	// Disable is idempotent, also for unknown surfaces.
	m.Disable(7)
	m.Disable(99)
}

func TestManagerTransportCallbacks(t *testing.T) {
	m, ft, sink := newTestManager(t)
	enable(t, m, 1)
	sink.reset()

	ft.cb.OnPreeditStart(1)
	ft.cb.OnPreeditDraw(1, 1, ScalarRange{}, "a")
	assert.Empty(t, sink.events(1), "nothing is visible before the flush")
	ft.cb.OnFlush(1)
	assert.Equal(t, []Event{StartEvent{}, preedit("a", 1)}, sink.events(1))
	assert.Equal(t, StateComposing, m.State(1))

	sink.reset()
	ft.cb.OnCommit(1, "x")
	ft.cb.OnFlush(1)
	assert.Equal(t, []Event{clearPreedit, CommitEvent{Text: "x"}}, sink.events(1))

	// Callbacks for unknown surfaces are dropped.
	ft.cb.OnCommit(42, "y")
	ft.cb.OnFlush(42)
	assert.Empty(t, sink.events(42))
}

func TestManagerSurfacesAreIndependent(t *testing.T) {
	m, ft, sink := newTestManager(t)
	enable(t, m, 1)
	enable(t, m, 2)
	sink.reset()

	ft.cb.OnPreeditDraw(1, 1, ScalarRange{}, "a")
	ft.cb.OnCommit(2, "b")
	ft.cb.OnFlush(2)
	ft.cb.OnFlush(1)

	assert.Equal(t, []Event{StartEvent{}, preedit("a", 1)}, sink.events(1))
	assert.Equal(t, []Event{clearPreedit, CommitEvent{Text: "b"}}, sink.events(2))
	assert.Equal(t, []SurfaceID{1, 2}, m.Surfaces())
}

func TestManagerDestroySurface(t *testing.T) {
	m, ft, sink := newTestManager(t)
	enable(t, m, 1)
	ft.cb.OnPreeditDraw(1, 1, ScalarRange{}, "a")
	ft.cb.OnFlush(1)
	sink.reset()

	ft.cb.OnSurfaceDestroyed(1)
	assert.Equal(t, []Event{clearPreedit, DisabledEvent{}}, sink.events(1))
	assert.Equal(t, []SurfaceID{1}, ft.closed)
	assert.Empty(t, m.Surfaces())
}

func TestManagerFeedKeyDeadKeys(t *testing.T) {
	m, _, _ := newTestManager(t)

	res := m.FeedKey(1, KeyInput{Code: 48, Symbol: KeyDeadAcute}, true)
	require.NotNil(t, res)
	assert.Empty(t, res.Text)
	assert.Equal(t, LogicalKey{Kind: LogicalDead, Dead: '\u0301'}, res.Logical)

	// Releases never touch the compose engine.
	res = m.FeedKey(1, KeyInput{Code: 48, Symbol: KeyDeadAcute}, false)
	assert.Equal(t, key.Release, res.State)

	res = m.FeedKey(1, KeyInput{Code: 26, Symbol: 'e'}, true)
	assert.Equal(t, "é", res.Text)
	assert.Equal(t, LogicalKey{Kind: LogicalCharacter, Text: "é"}, res.Logical)
	assert.Equal(t, "e", res.TextWithoutModifiers)
	assert.Equal(t, key.Press, res.State)

	// A cancelled sequence types nothing, not even the cancelling key.
	m.FeedKey(1, KeyInput{Code: 48, Symbol: KeyDeadAcute}, true)
	res = m.FeedKey(1, KeyInput{Code: 24, Symbol: 'q'}, true)
	assert.Empty(t, res.Text)

	res = m.FeedKey(1, KeyInput{Code: 24, Symbol: 'q'}, true)
	assert.Equal(t, "q", res.Text)
}

func TestManagerFeedKeyKeepsNoIdleSurfaces(t *testing.T) {
	m, _, _ := newTestManager(t)

	for id := SurfaceID(1); id <= 50; id++ {
		m.FeedKey(id, KeyInput{Code: 38, Symbol: 'a'}, true)
		m.FeedKey(id, KeyInput{Code: 38, Symbol: 'a'}, false)
	}
	assert.Empty(t, m.Surfaces(), "plain typing leaves nothing behind")

	// A pending sequence keeps its entry until it resolves.
	m.FeedKey(7, KeyInput{Code: 48, Symbol: KeyDeadAcute}, true)
	assert.Equal(t, []SurfaceID{7}, m.Surfaces())
	res := m.FeedKey(7, KeyInput{Code: 26, Symbol: 'e'}, true)
	assert.Equal(t, "é", res.Text)
	assert.Empty(t, m.Surfaces())

	// Enabled surfaces stay regardless of typing.
	enable(t, m, 3)
	m.FeedKey(3, KeyInput{Code: 38, Symbol: 'a'}, true)
	assert.Equal(t, []SurfaceID{3}, m.Surfaces())
}

func TestManagerFeedKeyPlain(t *testing.T) {
	m, _, _ := newTestManager(t)

	assert.Nil(t, m.FeedKey(1, KeyInput{}, true))

	res := m.FeedKey(1, KeyInput{Code: 50, Symbol: KeyShiftL}, true)
	assert.Empty(t, res.Text)
	assert.Equal(t, LocationLeft, res.Location)
	assert.Equal(t, LogicalKey{Kind: LogicalNamed, Name: key.NameShift}, res.Logical)

	res = m.FeedKey(1, KeyInput{Code: 36, Symbol: KeyReturn}, true)
	assert.Equal(t, LogicalKey{Kind: LogicalNamed, Name: key.NameReturn}, res.Logical)

	res = m.FeedKey(1, KeyInput{Code: 38, Symbol: 'A', Text: "A", TextWithoutModifiers: "a"}, true)
	assert.Equal(t, "A", res.Text)
	assert.Equal(t, "a", res.TextWithoutModifiers)
}

func TestManagerFeedKeyConsumedByTransport(t *testing.T) {
	m, ft, _ := newTestManager(t)
	ft.consume = true

	// Disabled surfaces never offer keys to the input method.
	res := m.FeedKey(1, KeyInput{Code: 38, Symbol: 'a'}, true)
	assert.False(t, res.Consumed)
	assert.Equal(t, "a", res.Text)

	enable(t, m, 1)
	res = m.FeedKey(1, KeyInput{Code: 38, Symbol: 'a'}, true)
	assert.True(t, res.Consumed)
	assert.Empty(t, res.Text)
}

func TestManagerComposeTransport(t *testing.T) {
	sink := newRecordingSink()
	factory, err := SelectTransport(TransportCompose, TransportConfig{ComposeTable: BuiltinComposeTable()})
	require.NoError(t, err)
	m := NewManager(ManagerConfig{ComposeTable: BuiltinComposeTable(), Transport: factory}, sink)
	assert.Equal(t, TransportCompose, m.TransportName())
	enable(t, m, 1)
	sink.reset()

	res := m.FeedKey(1, KeyInput{Code: 48, Symbol: KeyDeadAcute}, true)
	assert.True(t, res.Consumed)
	assert.Equal(t, []Event{StartEvent{}, preedit("´", 2)}, sink.events(1))

	sink.reset()
	res = m.FeedKey(1, KeyInput{Code: 26, Symbol: 'e'}, true)
	assert.True(t, res.Consumed)
	assert.Empty(t, res.Text, "composed text arrives as a commit")
	assert.Equal(t, []Event{clearPreedit, CommitEvent{Text: "é"}}, sink.events(1))

	sink.reset()
	m.FeedKey(1, KeyInput{Code: 48, Symbol: KeyDeadAcute}, true)
	m.FeedKey(1, KeyInput{Code: 24, Symbol: 'q'}, true)
	assert.Equal(t, []Event{
		StartEvent{}, preedit("´", 2),
		clearPreedit,
	}, sink.events(1))

	sink.reset()
	res = m.FeedKey(1, KeyInput{Code: 38, Symbol: 'a'}, true)
	assert.False(t, res.Consumed)
	assert.Equal(t, "a", res.Text)
	assert.Empty(t, sink.events(1))

	require.NoError(t, m.Close())
}

func TestManagerTransportError(t *testing.T) {
	m, ft, sink := newTestManager(t)
	enable(t, m, 1)
	enable(t, m, 2)
	ft.cb.OnPreeditDraw(1, 1, ScalarRange{}, "a")
	ft.cb.OnFlush(1)
	sink.reset()

	ft.cb.OnTransportError(errors.New("connection reset"))
	assert.True(t, ft.down)
	assert.Equal(t, TransportNone, m.TransportName())
	assert.Equal(t, []Event{clearPreedit}, sink.events(1))
	assert.Empty(t, sink.events(2))
	assert.Equal(t, StateIdle, m.State(1), "the session survives the transport")

	// A second report is a no-op.
	ft.cb.OnTransportError(errors.New("again"))
}

func TestManagerTransportFailsToStart(t *testing.T) {
	m := NewManager(ManagerConfig{
		Transport: func(Callbacks) (Transport, error) { return nil, ErrTransportUnavailable },
	}, nil)
	assert.Equal(t, TransportNone, m.TransportName())
	enable(t, m, 1)
	assert.Equal(t, StateIdle, m.State(1))
}

func TestManagerSetEventForm(t *testing.T) {
	m, ft, sink := newTestManager(t)
	enable(t, m, 1)
	m.SetEventForm(FormLegacy)
	sink.reset()

	ft.cb.OnPreeditDraw(1, 1, ScalarRange{}, "ab")
	ft.cb.OnFlush(1)
	assert.Equal(t, []Event{StartEvent{}, UpdateEvent{Text: "ab", Cursor: 1}}, sink.events(1))
}

func TestSelectTransportUnknown(t *testing.T) {
	_, err := SelectTransport("xim", TransportConfig{})
	assert.Error(t, err)

	f, err := SelectTransport(TransportCompose, TransportConfig{})
	require.NoError(t, err)
	_, err = f(nil)
	assert.ErrorIs(t, err, ErrTransportUnavailable)
}
