package metrics

import (
	"time"

	"gioui.org/io/key"

	"imecore/internal/ime"
)

// Event kind label values.
const (
	KindEnabled           = "enabled"
	KindDisabled          = "disabled"
	KindStart             = "start"
	KindPreedit           = "preedit"
	KindUpdate            = "update"
	KindCommit            = "commit"
	KindDeleteSurrounding = "delete_surrounding"
)

var eventKinds = []string{
	KindEnabled, KindDisabled, KindStart, KindPreedit, KindUpdate, KindCommit, KindDeleteSurrounding,
}

// IME holds the core's metrics.
type IME struct {
	registry *Registry

	KeysTotal      *Counter
	KeysConsumed   *Counter
	KeysTyped      *Counter
	BatchesTotal   *Counter
	CommittedBytes *Counter
	Events         map[string]*Counter

	EnabledSurfaces *Gauge

	BatchEvents    *Histogram
	DeliverSeconds *Histogram
}

// NewIME registers the core's metrics. A nil registry gets a private one
// under the "imecore" namespace.
func NewIME(registry *Registry) *IME {
	if registry == nil {
		registry = NewRegistry("imecore", "")
	}
	m := &IME{
		registry: registry,
		KeysTotal: registry.RegisterCounter("keys_total",
			"Key presses fed to the core", nil),
		KeysConsumed: registry.RegisterCounter("keys_consumed_total",
			"Key presses taken by the input method or a compose sequence", nil),
		KeysTyped: registry.RegisterCounter("keys_typed_total",
			"Key presses that inserted text directly", nil),
		BatchesTotal: registry.RegisterCounter("batches_total",
			"Event batches delivered to surfaces", nil),
		CommittedBytes: registry.RegisterCounter("committed_bytes_total",
			"UTF-8 bytes committed by the input method", nil),
		Events: make(map[string]*Counter, len(eventKinds)),
		EnabledSurfaces: registry.RegisterGauge("enabled_surfaces",
			"Surfaces with IME enabled", nil),
		BatchEvents: registry.RegisterHistogram("batch_events",
			"Events per delivered batch", nil, []float64{1, 2, 3, 4, 6, 8}),
		DeliverSeconds: registry.RegisterHistogram("deliver_seconds",
			"Time spent in the downstream event sink", nil, DurationBuckets),
	}
	for _, kind := range eventKinds {
		m.Events[kind] = registry.RegisterCounter("events_total",
			"Events delivered, by kind", Labels{"kind": kind})
	}
	return m
}

// Registry returns the registry the metrics live in.
func (m *IME) Registry() *Registry { return m.registry }

// ObserveKey counts one FeedKey result. Releases and nil results are
// ignored.
func (m *IME) ObserveKey(res *ime.KeyEventResult) {
	if res == nil || res.State != key.Press {
		return
	}
	m.KeysTotal.Inc()
	switch {
	case res.Consumed:
		m.KeysConsumed.Inc()
	case res.Text != "":
		m.KeysTyped.Inc()
	case res.Logical.Kind == ime.LogicalDead:
		// Swallowed by a compose sequence.
		m.KeysConsumed.Inc()
	}
}

// Sink wraps next, counting every batch before passing it on. A nil next
// only counts.
func (m *IME) Sink(next ime.EventSink) ime.EventSink {
	return ime.EventSinkFunc(func(id ime.SurfaceID, events []ime.Event) {
		m.observeBatch(events)
		if next == nil {
			return
		}
		start := time.Now()
		next.Deliver(id, events)
		m.DeliverSeconds.ObserveDuration(time.Since(start))
	})
}

func (m *IME) observeBatch(events []ime.Event) {
	if len(events) == 0 {
		return
	}
	m.BatchesTotal.Inc()
	m.BatchEvents.Observe(float64(len(events)))
	for _, ev := range events {
		kind := eventKind(ev)
		if kind == "" {
			continue
		}
		m.Events[kind].Inc()
		switch e := ev.(type) {
		case ime.EnabledEvent:
			m.EnabledSurfaces.Inc()
		case ime.DisabledEvent:
			m.EnabledSurfaces.Dec()
		case ime.CommitEvent:
			m.CommittedBytes.Add(uint64(len(e.Text)))
		}
	}
}

func eventKind(ev ime.Event) string {
	switch ev.(type) {
	case ime.EnabledEvent:
		return KindEnabled
	case ime.DisabledEvent:
		return KindDisabled
	case ime.StartEvent:
		return KindStart
	case ime.PreeditEvent:
		return KindPreedit
	case ime.UpdateEvent:
		return KindUpdate
	case ime.CommitEvent:
		return KindCommit
	case ime.DeleteSurroundingEvent:
		return KindDeleteSurrounding
	}
	return ""
}
