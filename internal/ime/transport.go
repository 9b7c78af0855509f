package ime

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"
)

// Transport names.
const (
	TransportAuto    = "auto"
	TransportIBus    = "ibus"
	TransportCompose = "compose"
	TransportNone    = "none"
)

// ErrTransportUnavailable is returned when a transport cannot be used on
// this system.
var ErrTransportUnavailable = errors.New("transport unavailable")

// Callbacks is the call contract a transport uses to drive input contexts.
// Methods may be called from any goroutine but never concurrently for the
// same surface, and never while the transport holds a lock the Manager
// might wait on.
type Callbacks interface {
	OnPreeditStart(id SurfaceID)
	OnPreeditDone(id SurfaceID)
	OnPreeditDraw(id SurfaceID, caret int, changed ScalarRange, text string)
	OnPreeditCaret(id SurfaceID, pos int)
	OnCommit(id SurfaceID, text string)
	OnDeleteSurrounding(id SurfaceID, beforeBytes, afterBytes int)
	OnFlush(id SurfaceID)
	OnSurfaceDestroyed(id SurfaceID)

	// OnTransportError reports that the transport stopped working. The
	// receiver stops using it.
	OnTransportError(err error)
}

// Transport marshals input context state to one native input method
// protocol.
type Transport interface {
	Name() string

	// Open installs a native input context for the surface.
	Open(id SurfaceID, caps Capabilities, data RequestData) error

	// Update forwards request data already filtered by capabilities.
	Update(id SurfaceID, data RequestData) error

	// Feed offers a key event to the input method. It reports whether the
	// input method consumed it; consumed keys insert no text.
	Feed(id SurfaceID, in KeyInput, pressed bool) bool

	// Close removes the surface's native input context.
	Close(id SurfaceID)

	// Shutdown releases the transport.
	Shutdown() error
}

// TransportFactory builds a transport bound to its callbacks.
type TransportFactory func(cb Callbacks) (Transport, error)

// TransportConfig holds settings for every transport kind.
type TransportConfig struct {
	// IBusAddress overrides IBus address discovery.
	IBusAddress string

	// ClientName is announced to IBus when creating input contexts.
	ClientName string

	// ComposeTable backs the compose transport. Nil leaves it unavailable.
	ComposeTable *ComposeTable

	Logger *slog.Logger
}

func (c TransportConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// SelectTransport returns a factory for the named transport kind. "auto"
// tries each kind in the platform's preference order and settles on the
// first that starts.
func SelectTransport(kind string, cfg TransportConfig) (TransportFactory, error) {
	switch kind {
	case TransportNone:
		return func(Callbacks) (Transport, error) { return NoneTransport{}, nil }, nil
	case TransportCompose:
		return func(cb Callbacks) (Transport, error) {
			return NewComposeTransport(cfg.ComposeTable, cb, cfg.logger())
		}, nil
	case TransportIBus:
		return func(cb Callbacks) (Transport, error) {
			return NewIBusTransport(cfg, cb)
		}, nil
	case "", TransportAuto:
		return func(cb Callbacks) (Transport, error) {
			log := cfg.logger()
			for _, k := range autoTransportOrder() {
				f, _ := SelectTransport(k, cfg)
				t, err := f(cb)
				if err == nil {
					log.Info("selected input method transport", "transport", t.Name())
					return t, nil
				}
				log.Debug("transport not usable", "transport", k, "error", err)
			}
			return NoneTransport{}, nil
		}, nil
	}
	return nil, fmt.Errorf("unknown transport %q", kind)
}

// NoneTransport is the absence of an input method. Keys are never
// consumed and nothing is ever composed by it.
type NoneTransport struct{}

func (NoneTransport) Name() string                                  { return TransportNone }
func (NoneTransport) Open(SurfaceID, Capabilities, RequestData) error { return nil }
func (NoneTransport) Update(SurfaceID, RequestData) error             { return nil }
func (NoneTransport) Feed(SurfaceID, KeyInput, bool) bool             { return false }
func (NoneTransport) Close(SurfaceID)                                 {}
func (NoneTransport) Shutdown() error                                 { return nil }

// composeSurface is the per-surface state of the compose transport.
type composeSurface struct {
	engine  *ComposeEngine
	preedit int // scalar length of the preedit the context holds
}

// ComposeTransport runs a compose table as an input method: pending
// sequences show as preedit, finished ones are committed.
type ComposeTransport struct {
	table *ComposeTable
	cb    Callbacks
	log   *slog.Logger

	mu       sync.Mutex
	surfaces map[SurfaceID]*composeSurface
}

// NewComposeTransport creates a compose transport over table.
func NewComposeTransport(table *ComposeTable, cb Callbacks, log *slog.Logger) (*ComposeTransport, error) {
	if table == nil {
		return nil, fmt.Errorf("compose: %w", ErrTransportUnavailable)
	}
	if log == nil {
		log = slog.Default()
	}
	return &ComposeTransport{
		table:    table,
		cb:       cb,
		log:      log.With("transport", TransportCompose),
		surfaces: make(map[SurfaceID]*composeSurface),
	}, nil
}

func (t *ComposeTransport) Name() string { return TransportCompose }

func (t *ComposeTransport) Open(id SurfaceID, _ Capabilities, _ RequestData) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.surfaces[id] = &composeSurface{engine: NewComposeEngine(t.table)}
	return nil
}

func (t *ComposeTransport) Update(SurfaceID, RequestData) error { return nil }

// Feed runs a press through the surface's compose engine. Callbacks are
// issued after the transport lock is released.
func (t *ComposeTransport) Feed(id SurfaceID, in KeyInput, pressed bool) bool {
	if !pressed {
		return false
	}
	t.mu.Lock()
	s, ok := t.surfaces[id]
	if !ok {
		t.mu.Unlock()
		return false
	}
	if s.engine.Feed(in.Symbol) != FeedAccepted {
		t.mu.Unlock()
		return false
	}

	var calls []func()
	prev := s.preedit
	switch s.engine.Status() {
	case ComposeNothing:
		t.mu.Unlock()
		return false
	case ComposeComposing:
		placeholder := s.engine.Placeholder()
		n := utf8.RuneCountInString(placeholder)
		if prev == 0 {
			calls = append(calls, func() { t.cb.OnPreeditStart(id) })
		}
		calls = append(calls, func() {
			t.cb.OnPreeditDraw(id, n, ScalarRange{Start: 0, End: prev}, placeholder)
		})
		s.preedit = n
	case ComposeComposed:
		text, _ := s.engine.Committed()
		calls = append(calls,
			func() { t.cb.OnPreeditDone(id) },
			func() { t.cb.OnCommit(id, text) },
		)
		s.preedit = 0
	case ComposeCancelled:
		t.log.Debug("compose sequence cancelled", "surface", uint64(id), "symbol", in.Symbol.String())
		calls = append(calls, func() { t.cb.OnPreeditDone(id) })
		s.preedit = 0
	}
	t.mu.Unlock()

	for _, call := range calls {
		call()
	}
	t.cb.OnFlush(id)
	return true
}

func (t *ComposeTransport) Close(id SurfaceID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.surfaces, id)
}

func (t *ComposeTransport) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.surfaces)
	return nil
}
