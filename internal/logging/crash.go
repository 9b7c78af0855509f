package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"sync"
	"time"
)

// CrashReport is written for every recovered panic.
type CrashReport struct {
	Timestamp    time.Time      `json:"timestamp"`
	Version      string         `json:"version,omitempty"`
	GOOS         string         `json:"goos"`
	GOARCH       string         `json:"goarch"`
	NumGoroutine int            `json:"num_goroutine"`
	Where        string         `json:"where"`
	PanicValue   string         `json:"panic_value"`
	StackTrace   string         `json:"stack_trace"`
	Context      map[string]any `json:"context,omitempty"`
}

// CrashHandler recovers panics in long-lived goroutines, logs them and
// writes a JSON report to Dir.
type CrashHandler struct {
	Dir     string
	Version string
	Log     *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// DefaultCrashDir returns the crash directory next to the default log file.
func DefaultCrashDir() string {
	return filepath.Join(filepath.Dir(defaultLogPath()), "crashes")
}

// NewCrashHandler returns a handler writing into dir.
func NewCrashHandler(dir, version string, log *slog.Logger) *CrashHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CrashHandler{Dir: dir, Version: version, Log: log, now: time.Now}
}

// Go runs fn in a goroutine, recording instead of propagating a panic.
func (h *CrashHandler) Go(where string, fn func()) {
	go func() {
		defer h.Recover(where, nil)
		fn()
	}()
}

// Recover must be deferred directly. It swallows the panic after
// reporting it.
func (h *CrashHandler) Recover(where string, ctx map[string]any) {
	if r := recover(); r != nil {
		h.Handle(where, r, ctx)
	}
}

// Handle records a panic value and returns the report written.
func (h *CrashHandler) Handle(where string, value any, ctx map[string]any) CrashReport {
	h.mu.Lock()
	defer h.mu.Unlock()

	report := CrashReport{
		Timestamp:    h.now().UTC(),
		Version:      h.Version,
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumGoroutine: runtime.NumGoroutine(),
		Where:        where,
		PanicValue:   fmt.Sprint(value),
		StackTrace:   string(debug.Stack()),
		Context:      ctx,
	}
	path, err := h.write(report)
	if err != nil {
		h.Log.Error("panic recovered", "where", where, "panic", report.PanicValue, "report_error", err)
		return report
	}
	h.Log.Error("panic recovered", "where", where, "panic", report.PanicValue, "report", path)
	return report
}

func (h *CrashHandler) write(report CrashReport) (string, error) {
	if h.Dir == "" {
		return "", fmt.Errorf("no crash directory")
	}
	if err := os.MkdirAll(h.Dir, 0750); err != nil {
		return "", fmt.Errorf("create crash dir: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal crash report: %w", err)
	}
	name := fmt.Sprintf("crash-%s.json", report.Timestamp.Format("20060102-150405.000000000"))
	path := filepath.Join(h.Dir, name)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}
	return path, nil
}

// Reports reads the stored reports, oldest first.
func (h *CrashHandler) Reports() ([]CrashReport, error) {
	files, err := filepath.Glob(filepath.Join(h.Dir, "crash-*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	reports := make([]CrashReport, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			continue
		}
		var r CrashReport
		if json.Unmarshal(data, &r) == nil {
			reports = append(reports, r)
		}
	}
	return reports, nil
}
