// Package metrics provides Prometheus-compatible counters, gauges and
// histograms for the IME core, with a text and JSON HTTP endpoint.
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MetricType represents the type of metric.
type MetricType int

const (
	TypeCounter MetricType = iota
	TypeGauge
	TypeHistogram
)

// String returns the Prometheus name of the type.
func (t MetricType) String() string {
	switch t {
	case TypeCounter:
		return "counter"
	case TypeGauge:
		return "gauge"
	case TypeHistogram:
		return "histogram"
	default:
		return "untyped"
	}
}

// Labels are the constant labels of one series.
type Labels map[string]string

// String renders labels in exposition order, {} omitted when empty.
func (l Labels) String() string {
	return l.render("")
}

// render appends extra, which must already be formatted as k="v".
func (l Labels) render(extra string) string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(l)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Quote(l[k]))
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, ",") + "}"
}

type series interface {
	desc() *descriptor
	writeText(w io.Writer)
	jsonValue() map[string]interface{}
}

type descriptor struct {
	name   string
	help   string
	labels Labels
	kind   MetricType
}

func (d *descriptor) desc() *descriptor { return d }

// Counter is a monotonically increasing counter.
type Counter struct {
	descriptor
	value atomic.Uint64
}

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds v.
func (c *Counter) Add(v uint64) { c.value.Add(v) }

// Value returns the current count.
func (c *Counter) Value() uint64 { return c.value.Load() }

func (c *Counter) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s%s %d\n", c.name, c.labels, c.Value())
}

func (c *Counter) jsonValue() map[string]interface{} {
	return map[string]interface{}{"value": c.Value()}
}

// Gauge is a value that can go up and down.
type Gauge struct {
	descriptor
	value atomic.Int64
}

// Set replaces the value.
func (g *Gauge) Set(v int64) { g.value.Store(v) }

// Inc adds one.
func (g *Gauge) Inc() { g.value.Add(1) }

// Dec subtracts one.
func (g *Gauge) Dec() { g.value.Add(-1) }

// Value returns the current value.
func (g *Gauge) Value() int64 { return g.value.Load() }

func (g *Gauge) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s%s %d\n", g.name, g.labels, g.Value())
}

func (g *Gauge) jsonValue() map[string]interface{} {
	return map[string]interface{}{"value": g.Value()}
}

// Histogram tracks the distribution of observed values.
type Histogram struct {
	descriptor
	bounds []float64

	mu     sync.Mutex
	counts []uint64 // per bucket, last is +Inf
	sum    float64
	count  uint64
}

// DurationBuckets are upper bounds in seconds for short operations.
var DurationBuckets = []float64{
	0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
}

// Observe records v in the first bucket whose bound is >= v.
func (h *Histogram) Observe(v float64) {
	idx := sort.SearchFloat64s(h.bounds, v)
	h.mu.Lock()
	h.counts[idx]++
	h.sum += v
	h.count++
	h.mu.Unlock()
}

// ObserveDuration records d in seconds.
func (h *Histogram) ObserveDuration(d time.Duration) {
	h.Observe(d.Seconds())
}

// Count returns the number of observations.
func (h *Histogram) Count() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Sum returns the sum of observations.
func (h *Histogram) Sum() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sum
}

// Cumulative returns the count at or below each bound, +Inf last.
func (h *Histogram) Cumulative() []uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uint64, len(h.counts))
	var running uint64
	for i, n := range h.counts {
		running += n
		out[i] = running
	}
	return out
}

func (h *Histogram) writeText(w io.Writer) {
	cum := h.Cumulative()
	for i, le := range h.bounds {
		fmt.Fprintf(w, "%s_bucket%s %d\n", h.name,
			h.labels.render(`le="`+formatFloat(le)+`"`), cum[i])
	}
	fmt.Fprintf(w, "%s_bucket%s %d\n", h.name, h.labels.render(`le="+Inf"`), cum[len(cum)-1])
	h.mu.Lock()
	sum, count := h.sum, h.count
	h.mu.Unlock()
	fmt.Fprintf(w, "%s_sum%s %s\n", h.name, h.labels, formatFloat(sum))
	fmt.Fprintf(w, "%s_count%s %d\n", h.name, h.labels, count)
}

func (h *Histogram) jsonValue() map[string]interface{} {
	cum := h.Cumulative()
	buckets := make(map[string]uint64, len(cum))
	for i, le := range h.bounds {
		buckets[formatFloat(le)] = cum[i]
	}
	buckets["+Inf"] = cum[len(cum)-1]
	h.mu.Lock()
	defer h.mu.Unlock()
	return map[string]interface{}{"buckets": buckets, "sum": h.sum, "count": h.count}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Registry holds registered series under one namespace.
type Registry struct {
	namespace string
	subsystem string

	mu     sync.RWMutex
	series map[string]series
}

// NewRegistry creates a Registry whose metric names are prefixed with
// namespace and subsystem.
func NewRegistry(namespace, subsystem string) *Registry {
	return &Registry{
		namespace: namespace,
		subsystem: subsystem,
		series:    make(map[string]series),
	}
}

func (r *Registry) fullName(name string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.namespace, r.subsystem, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

// register returns the existing series with the same name and labels, so
// registering twice is harmless. A name reused with another type panics.
func (r *Registry) register(d descriptor, build func(descriptor) series) series {
	d.name = r.fullName(d.name)
	key := d.name + d.labels.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.series[key]; ok {
		if s.desc().kind != d.kind {
			panic(fmt.Sprintf("metrics: %s registered as %s and %s", d.name, s.desc().kind, d.kind))
		}
		return s
	}
	s := build(d)
	r.series[key] = s
	return s
}

// RegisterCounter registers or returns a counter.
func (r *Registry) RegisterCounter(name, help string, labels Labels) *Counter {
	d := descriptor{name: name, help: help, labels: labels, kind: TypeCounter}
	return r.register(d, func(d descriptor) series { return &Counter{descriptor: d} }).(*Counter)
}

// RegisterGauge registers or returns a gauge.
func (r *Registry) RegisterGauge(name, help string, labels Labels) *Gauge {
	d := descriptor{name: name, help: help, labels: labels, kind: TypeGauge}
	return r.register(d, func(d descriptor) series { return &Gauge{descriptor: d} }).(*Gauge)
}

// RegisterHistogram registers or returns a histogram with the given upper
// bounds.
func (r *Registry) RegisterHistogram(name, help string, labels Labels, buckets []float64) *Histogram {
	if buckets == nil {
		buckets = DurationBuckets
	}
	d := descriptor{name: name, help: help, labels: labels, kind: TypeHistogram}
	return r.register(d, func(d descriptor) series {
		bounds := append([]float64(nil), buckets...)
		sort.Float64s(bounds)
		return &Histogram{descriptor: d, bounds: bounds, counts: make([]uint64, len(bounds)+1)}
	}).(*Histogram)
}

// sorted returns series ordered by name then labels, so each family is
// contiguous.
func (r *Registry) sorted() []series {
	r.mu.RLock()
	keys := make([]string, 0, len(r.series))
	for k := range r.series {
		keys = append(keys, k)
	}
	out := make([]series, 0, len(keys))
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, r.series[k])
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].desc().name < out[j].desc().name })
	return out
}

// WritePrometheus writes every series in the Prometheus text format.
func (r *Registry) WritePrometheus(w io.Writer) error {
	var last string
	for _, s := range r.sorted() {
		d := s.desc()
		if d.name != last {
			fmt.Fprintf(w, "# HELP %s %s\n", d.name, d.help)
			fmt.Fprintf(w, "# TYPE %s %s\n", d.name, d.kind)
			last = d.name
		}
		s.writeText(w)
	}
	return nil
}

// WriteJSON writes every series as a JSON array.
func (r *Registry) WriteJSON(w io.Writer) error {
	all := r.sorted()
	out := make([]map[string]interface{}, 0, len(all))
	for _, s := range all {
		d := s.desc()
		v := s.jsonValue()
		v["name"] = d.name
		v["type"] = d.kind.String()
		if len(d.labels) > 0 {
			v["labels"] = d.labels
		}
		out = append(out, v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Snapshot maps each counter and gauge series (name plus labels) to its
// value, and each histogram to its observation count.
func (r *Registry) Snapshot() map[string]int64 {
	snap := make(map[string]int64)
	for _, s := range r.sorted() {
		d := s.desc()
		key := d.name + d.labels.String()
		switch m := s.(type) {
		case *Counter:
			snap[key] = int64(m.Value())
		case *Gauge:
			snap[key] = m.Value()
		case *Histogram:
			snap[d.name+"_count"+d.labels.String()] = int64(m.Count())
		}
	}
	return snap
}

// HTTPHandler serves the registry, as JSON when the client asks for it.
func (r *Registry) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Accept"), "application/json") {
			w.Header().Set("Content-Type", "application/json")
			r.WriteJSON(w)
			return
		}
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		r.WritePrometheus(w)
	})
}
