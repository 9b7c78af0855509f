package ime

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"gioui.org/io/key"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// ComposeTable drives dead-key composition for keys the input method
	// does not consume. Nil disables composition.
	ComposeTable *ComposeTable

	// Transport builds the native input method transport. Nil means none.
	Transport TransportFactory

	// Form selects how preedit updates are reported.
	Form EventForm

	Logger *slog.Logger
}

// surface is one entry of the Manager's surface table.
type surface struct {
	ctx     *InputContext
	compose *ComposeEngine
}

// Manager owns the input contexts of every surface and routes transport
// callbacks to them by surface id. Events are delivered to the sink
// outside the Manager's lock, in flush order per surface.
type Manager struct {
	mu        sync.Mutex
	surfaces  map[SurfaceID]*surface
	transport Transport
	table     *ComposeTable
	form      EventForm
	sink      EventSink
	log       *slog.Logger
}

// NewManager creates a Manager and starts its transport. A transport that
// fails to start is logged and replaced by no input method.
func NewManager(cfg ManagerConfig, sink EventSink) *Manager {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if sink == nil {
		sink = EventSinkFunc(func(SurfaceID, []Event) {})
	}
	m := &Manager{
		surfaces:  make(map[SurfaceID]*surface),
		table:     cfg.ComposeTable,
		form:      cfg.Form,
		sink:      sink,
		log:       log.With("subsystem", "ime"),
		transport: NoneTransport{},
	}

	if cfg.Transport != nil {
		t, err := cfg.Transport(m)
		if err != nil {
			m.log.Error("input method transport failed to start, continuing without one", "error", err)
			return m
		}
		m.mu.Lock()
		m.transport = t
		m.mu.Unlock()
	}
	return m
}

// TransportName returns the name of the active transport.
func (m *Manager) TransportName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transport.Name()
}

// SetEventForm switches the preedit event form for every surface.
func (m *Manager) SetEventForm(form EventForm) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = form
	for _, s := range m.surfaces {
		s.ctx.SetEventForm(form)
	}
}

// State returns the session state of a surface.
func (m *Manager) State(id SurfaceID) ContextState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.surfaces[id]; ok {
		return s.ctx.State()
	}
	return StateDisabled
}

// Preedit returns the preedit text and caret scalar index of a surface.
func (m *Manager) Preedit(id SurfaceID) (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.surfaces[id]; ok {
		return s.ctx.Preedit()
	}
	return "", 0
}

// Surfaces returns the ids of every surface the Manager holds state for,
// in ascending order.
func (m *Manager) Surfaces() []SurfaceID {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]SurfaceID, 0, len(m.surfaces))
	for id := range m.surfaces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// lookup returns the surface entry, creating it when create is set.
// Callers hold m.mu.
func (m *Manager) lookup(id SurfaceID, create bool) *surface {
	s, ok := m.surfaces[id]
	if !ok && create {
		s = &surface{
			ctx:     NewInputContext(id, m.form, m.log),
			compose: NewComposeEngine(m.table),
		}
		m.surfaces[id] = s
	}
	return s
}

func (m *Manager) deliver(id SurfaceID, events []Event) {
	if len(events) == 0 {
		return
	}
	m.sink.Deliver(id, events)
}

// Enable opens an IME session for the surface and installs a native input
// context for it.
func (m *Manager) Enable(id SurfaceID, req EnableRequest) error {
	m.mu.Lock()
	s := m.lookup(id, true)
	events, err := s.ctx.Enable(req)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	s.compose.Reset()
	caps, data := s.ctx.Capabilities(), s.ctx.Data()
	t := m.transport
	m.mu.Unlock()

	if err := t.Open(id, caps, data); err != nil {
		m.log.Warn("transport could not open input context", "surface", uint64(id), "transport", t.Name(), "error", err)
	}
	m.deliver(id, events)
	return nil
}

// Update applies request data to an enabled surface. Fields without a
// negotiated capability are dropped and never reach the transport.
func (m *Manager) Update(id SurfaceID, data RequestData) error {
	m.mu.Lock()
	s := m.lookup(id, false)
	if s == nil {
		m.mu.Unlock()
		return fmt.Errorf("surface %d: %w", id, ErrNotEnabled)
	}
	applied, err := s.ctx.Update(data)
	t := m.transport
	m.mu.Unlock()
	if err != nil {
		return err
	}
	if applied.Empty() {
		return nil
	}
	if err := t.Update(id, applied); err != nil {
		m.log.Warn("transport update failed", "surface", uint64(id), "transport", t.Name(), "error", err)
	}
	return nil
}

// Disable closes the surface's IME session. Disabling a disabled surface
// does nothing.
func (m *Manager) Disable(id SurfaceID) {
	m.mu.Lock()
	s := m.lookup(id, false)
	if s == nil {
		m.mu.Unlock()
		return
	}
	events := s.ctx.Disable()
	s.compose.Reset()
	t := m.transport
	m.mu.Unlock()

	if events != nil {
		t.Close(id)
	}
	m.deliver(id, events)
}

// DestroySurface disables the surface and forgets it.
func (m *Manager) DestroySurface(id SurfaceID) {
	m.mu.Lock()
	s := m.lookup(id, false)
	if s == nil {
		m.mu.Unlock()
		return
	}
	events := s.ctx.Disable()
	delete(m.surfaces, id)
	t := m.transport
	m.mu.Unlock()

	if events != nil {
		t.Close(id)
	}
	m.deliver(id, events)
}

// FeedKey interprets a key event for the surface. It returns nil for an
// event that carries neither a keycode nor a symbol.
//
// While IME is enabled the transport sees the key first; a consumed key
// inserts no text. Other presses go through the surface's compose engine:
// a key that continues or cancels a sequence inserts nothing, a key that
// completes one inserts the composed text instead of its own.
func (m *Manager) FeedKey(id SurfaceID, in KeyInput, pressed bool) *KeyEventResult {
	if in.Code == 0 && in.Symbol == NoSymbol {
		return nil
	}
	m.mu.Lock()
	s := m.lookup(id, false)
	enabled := s != nil && s.ctx.Enabled()
	t := m.transport
	m.mu.Unlock()

	res := &KeyEventResult{
		Code:                 in.Code,
		Symbol:               in.Symbol,
		Location:             in.Symbol.Location(),
		Logical:              baseLogicalKey(in),
		TextWithoutModifiers: keyTextWithoutModifiers(in),
		State:                key.Release,
	}
	if pressed {
		res.State = key.Press
	}

	// The transport may call back into the Manager before Feed returns.
	if enabled && t.Feed(id, in, pressed) {
		res.Consumed = true
		return res
	}
	if !pressed {
		return res
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s = m.lookup(id, true)
	composeKey(s.compose, in, res)
	// Typing into a surface without a session keeps an entry only while a
	// sequence is pending.
	if !s.ctx.Enabled() && s.compose.Status() != ComposeComposing {
		delete(m.surfaces, id)
	}
	return res
}

func composeKey(eng *ComposeEngine, in KeyInput, res *KeyEventResult) {
	text := keyText(in)
	if eng.Feed(in.Symbol) != FeedAccepted {
		res.Text = text
		return
	}
	switch eng.Status() {
	case ComposeNothing:
		res.Text = text
	case ComposeComposing:
		if res.Logical.Kind != LogicalDead {
			res.Logical = LogicalKey{Kind: LogicalDead}
		}
	case ComposeComposed:
		composed, _ := eng.Committed()
		res.Text = composed
		res.Logical = LogicalKey{Kind: LogicalCharacter, Text: composed}
		eng.Reset()
	case ComposeCancelled:
		// Neither the abandoned sequence nor the cancelling key types.
		if r, ok := eng.DeadKeyHint(in.Symbol); ok {
			res.Logical = LogicalKey{Kind: LogicalDead, Dead: r}
		}
	}
}

// withContext runs fn on the surface's context under the lock, warning
// about callbacks for unknown surfaces.
func (m *Manager) withContext(id SurfaceID, op string, fn func(*InputContext)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.lookup(id, false)
	if s == nil {
		m.log.Warn("transport callback for unknown surface", "surface", uint64(id), "op", op)
		return
	}
	fn(s.ctx)
}

func (m *Manager) OnPreeditStart(id SurfaceID) {
	m.withContext(id, "preedit_start", (*InputContext).PreeditStart)
}

func (m *Manager) OnPreeditDone(id SurfaceID) {
	m.withContext(id, "preedit_done", (*InputContext).PreeditDone)
}

func (m *Manager) OnPreeditDraw(id SurfaceID, caret int, changed ScalarRange, text string) {
	m.withContext(id, "preedit_draw", func(c *InputContext) { c.PreeditDraw(caret, changed, text) })
}

func (m *Manager) OnPreeditCaret(id SurfaceID, pos int) {
	m.withContext(id, "preedit_caret", func(c *InputContext) { c.PreeditCaret(pos) })
}

func (m *Manager) OnCommit(id SurfaceID, text string) {
	m.withContext(id, "commit", func(c *InputContext) { c.Commit(text) })
}

func (m *Manager) OnDeleteSurrounding(id SurfaceID, beforeBytes, afterBytes int) {
	m.withContext(id, "delete_surrounding", func(c *InputContext) { c.DeleteSurrounding(beforeBytes, afterBytes) })
}

// OnFlush releases the surface's staged batch to the sink.
func (m *Manager) OnFlush(id SurfaceID) {
	var events []Event
	m.withContext(id, "flush", func(c *InputContext) { events = c.Flush() })
	m.deliver(id, events)
}

func (m *Manager) OnSurfaceDestroyed(id SurfaceID) {
	m.DestroySurface(id)
}

// OnTransportError drops the failed transport. Every surface keeps its
// session but loses its preedit, and keys are no longer offered to an
// input method.
func (m *Manager) OnTransportError(err error) {
	m.mu.Lock()
	old := m.transport
	if _, none := old.(NoneTransport); none {
		m.mu.Unlock()
		return
	}
	m.transport = NoneTransport{}
	cleared := make(map[SurfaceID][]Event)
	for id, s := range m.surfaces {
		if events := s.ctx.ClearPreedit(); len(events) > 0 {
			cleared[id] = events
		}
	}
	m.mu.Unlock()

	m.log.Error("input method transport failed, continuing without it", "transport", old.Name(), "error", err)
	if err := old.Shutdown(); err != nil {
		m.log.Debug("transport shutdown", "error", err)
	}
	for id, events := range cleared {
		m.deliver(id, events)
	}
}

// Close disables every surface and shuts the transport down.
func (m *Manager) Close() error {
	for _, id := range m.Surfaces() {
		m.DestroySurface(id)
	}
	m.mu.Lock()
	t := m.transport
	m.transport = NoneTransport{}
	m.mu.Unlock()
	return t.Shutdown()
}
