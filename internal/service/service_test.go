package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/health"
	"imecore/internal/ime"
	"imecore/internal/logging"
	"imecore/internal/metrics"
)

type sink struct {
	mu     sync.Mutex
	events []ime.Event
}

func (s *sink) Deliver(_ ime.SurfaceID, events []ime.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

func (s *sink) all() []ime.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ime.Event(nil), s.events...)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	compose := filepath.Join(dir, "Compose")
	require.NoError(t, os.WriteFile(compose, []byte("<dead_acute> <e> : \"é\" eacute\n"), 0600))
	path := filepath.Join(dir, "config.toml")
	content := "[compose]\nfile = \"" + filepath.ToSlash(compose) + "\"\nbuiltin_fallback = false\n" + body
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testLogger() (*logging.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelDebug
	return logging.NewWithWriter(cfg, buf), buf
}

func enable(t *testing.T, m *ime.Manager, id ime.SurfaceID) {
	t.Helper()
	req, ok := ime.NewEnableRequest(ime.NewCapabilities(), ime.RequestData{})
	require.True(t, ok)
	require.NoError(t, m.Enable(id, req))
}

func TestServiceComposeWithJournal(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[transport]
kind = "compose"

[journal]
enabled = true
path = "`+filepath.ToSlash(filepath.Join(dir, "journal.db"))+`"
`)
	log, _ := testLogger()
	out := &sink{}
	s, err := New(Options{ConfigPath: path, Sink: out, Logger: log})
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.ComposeTable())
	assert.Equal(t, 1, s.ComposeTable().Len())
	assert.Equal(t, ime.TransportCompose, s.Manager().TransportName())

	m := s.Manager()
	enable(t, m, 1)
	m.FeedKey(1, ime.KeyInput{Code: 48, Symbol: ime.KeyDeadAcute}, true)
	m.FeedKey(1, ime.KeyInput{Code: 26, Symbol: 'e'}, true)

	events := out.all()
	require.NotEmpty(t, events)
	assert.Equal(t, ime.EnabledEvent{}, events[0])
	assert.Equal(t, ime.CommitEvent{Text: "é"}, events[len(events)-1])

	sessions, err := s.Journal().Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "compose", sessions[0].Transport)
	assert.Equal(t, 3, sessions[0].Batches)

	s.DestroySurface(1)
	sessions, err = s.Journal().Sessions(0)
	require.NoError(t, err)
	assert.False(t, sessions[0].Open())

	rep := s.Health().Report(context.Background())
	assert.True(t, rep.Ready)
	assert.Equal(t, health.StatusHealthy, rep.Status)
	assert.Equal(t, []string{"compose", "journal", "transport"}, s.Health().Names())
}

func TestServiceMetrics(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[transport]\nkind = \"none\"\n")
	log, _ := testLogger()
	reg := metrics.NewRegistry("imecore", "")
	s, err := New(Options{ConfigPath: path, Logger: log, Metrics: reg})
	require.NoError(t, err)
	defer s.Close()

	enable(t, s.Manager(), 1)
	s.FeedKey(1, ime.KeyInput{Symbol: ime.KeyDeadAcute}, true)
	s.FeedKey(1, ime.KeyInput{Symbol: ime.KeyDeadAcute}, false)
	s.FeedKey(1, ime.KeyInput{Symbol: 'e'}, true)

	snap := reg.Snapshot()
	assert.Equal(t, int64(2), snap["imecore_keys_total"])
	assert.Equal(t, int64(1), snap["imecore_keys_consumed_total"])
	assert.Equal(t, int64(1), snap["imecore_keys_typed_total"])
	assert.Equal(t, int64(1), snap["imecore_enabled_surfaces"])
	assert.Same(t, reg, s.Metrics().Registry())
}

func TestServiceWithoutJournal(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[transport]\nkind = \"none\"\n")
	log, _ := testLogger()
	s, err := New(Options{ConfigPath: path, Logger: log})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Journal())
	assert.Equal(t, ime.TransportNone, s.Manager().TransportName())
	assert.Equal(t, "none", s.Config().Transport.Kind)
}

func TestServiceMissingComposeTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[compose]
file = "`+filepath.ToSlash(filepath.Join(dir, "absent"))+`"
builtin_fallback = false

[transport]
kind = "compose"
`), 0600))

	log, buf := testLogger()
	s, err := New(Options{ConfigPath: path, Logger: log})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.ComposeTable())
	assert.Equal(t, ime.TransportNone, s.Manager().TransportName())
	assert.Contains(t, buf.String(), "compose table unavailable")

	results := s.Health().Check(context.Background())
	assert.Equal(t, health.StatusDegraded, results["transport"].Status)
	assert.Equal(t, health.StatusDegraded, results["compose"].Status)
	assert.Equal(t, health.StatusDegraded, s.Health().Overall(results))
}

func TestServiceInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[events]\nform = \"sideways\"\n"), 0600))
	_, err := New(Options{ConfigPath: path})
	assert.Error(t, err)
}

func TestServiceHotReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[transport]\nkind = \"none\"\n[logging]\nlevel = \"info\"\n")
	log, buf := testLogger()
	log.SetLevel(logging.LevelInfo)

	s, err := New(Options{ConfigPath: path, Logger: log, Watch: true})
	require.NoError(t, err)
	defer s.Close()

	writeConfig(t, dir, "[transport]\nkind = \"none\"\n[logging]\nlevel = \"debug\"\n[events]\nform = \"legacy\"\n")

	require.Eventually(t, func() bool {
		return s.Config().Events.Form == "legacy"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, logging.LevelDebug, log.Level())
	assert.Contains(t, buf.String(), "event form changed")

	// A legacy-form flush reports UpdateEvent.
	enable(t, s.Manager(), 5)
	s.Manager().OnPreeditDraw(5, 1, ime.ScalarRange{}, "a")
	text, caret := s.Manager().Preedit(5)
	assert.Equal(t, "a", text)
	assert.Equal(t, 1, caret)
}

func TestLogConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[logging]\nlevel = \"warn\"\nformat = \"json\"\nmax_size_mb = 7\n")
	log, _ := testLogger()
	s, err := New(Options{ConfigPath: path, Logger: log})
	require.NoError(t, err)
	defer s.Close()

	lc, err := LogConfig(s.Config().Logging)
	require.NoError(t, err)
	assert.Equal(t, logging.LevelWarn, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, int64(7), lc.MaxSize)
	assert.Equal(t, "imecore", lc.Component)
}
