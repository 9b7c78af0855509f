package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasError bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, level)
			assert.Equal(t, strings.TrimSuffix(strings.ToLower(test.input), "ing"), LevelString(level))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.Equal(t, "imecore", cfg.Component)
	assert.Contains(t, cfg.FilePath, "imecore")
}

func TestUnknownOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "syslog"
	_, err := New(cfg)
	assert.Error(t, err)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestJSONOutputAndRedaction(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	logger := NewWithWriter(cfg, &buf)

	logger.WithSurface(7).Info("commit", "commit_text", "hunter2", "bytes", 7)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "imecore", lines[0]["component"])
	assert.Equal(t, float64(7), lines[0]["surface"])
	assert.Equal(t, "[REDACTED]", lines[0]["commit_text"])
	assert.Equal(t, float64(7), lines[0]["bytes"])
}

func TestShouldRedact(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"text", true},
		{"preedit", true},
		{"Preedit_Text", true},
		{"password", true},
		{"auth_token", true},
		{"surface", false},
		{"before_bytes", false},
		{"transport", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, shouldRedact(test.key, DefaultRedactPatterns), test.key)
	}
}

func TestSetLevelReachesChildren(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	logger := NewWithWriter(cfg, &buf)
	child := logger.WithComponent("manager")

	child.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.Level())
	child.Debug("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "manager", lines[0]["subsystem"])
}

func TestFileOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = filepath.Join(t.TempDir(), "logs", "imecore.log")

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestFileRotatorRotatesOnSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	r, err := NewFileRotator(&Config{FilePath: path, MaxSize: 1, MaxBackups: 2})
	require.NoError(t, err)

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i := 0; i < 4; i++ {
		n, err := r.Write(chunk)
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}
	require.NoError(t, r.Close())

	backups, err := r.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 2, "oldest backup pruned")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestFileRotatorRotatesDaily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	r, err := NewFileRotator(&Config{FilePath: path, MaxSize: 1, MaxBackups: 5, Compress: true})
	require.NoError(t, err)

	day := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return day }
	r.opened = day
	_, err = r.Write([]byte("one\n"))
	require.NoError(t, err)

	day = day.Add(2 * time.Hour)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	backups, err := r.Backups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".log.gz"), backups[0])
}

func TestCrashHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	logger := NewWithWriter(cfg, &buf)
	h := NewCrashHandler(t.TempDir(), "test", logger.Logger)

	func() {
		defer h.Recover("signal loop", map[string]any{"surface": 3})
		panic("boom")
	}()

	reports, err := h.Reports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "boom", reports[0].PanicValue)
	assert.Equal(t, "signal loop", reports[0].Where)
	assert.Equal(t, "test", reports[0].Version)
	assert.Contains(t, reports[0].StackTrace, "logging.TestCrashHandler")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestCrashHandlerGo(t *testing.T) {
	h := NewCrashHandler(t.TempDir(), "", NewWithWriter(DefaultConfig(), &bytes.Buffer{}).Logger)
	done := make(chan struct{})
	h.Go("worker", func() {
		defer close(done)
		panic("worker failed")
	})
	<-done

	assert.Eventually(t, func() bool {
		reports, _ := h.Reports()
		return len(reports) == 1
	}, time.Second, 10*time.Millisecond)
}
