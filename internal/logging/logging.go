// Package logging provides structured logging with slog for imecore.
//
// Features:
//   - Runtime-adjustable log levels (debug, info, warn, error)
//   - JSON and text output formats
//   - File output with size and daily rotation
//   - Per-component and per-surface child loggers
//   - Redaction of typed text and other sensitive attributes
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Level represents a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Format is the output format (text or json).
	Format Format

	// Output is where logs go: "stdout", "stderr", "file", or "both".
	Output string

	// FilePath is the path to the log file (when Output includes file).
	FilePath string

	// MaxSize is the maximum size in megabytes before rotation.
	MaxSize int64

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int

	// Compress determines if rotated files should be gzipped.
	Compress bool

	// AddSource adds source file and line to log entries.
	AddSource bool

	// RedactPatterns are attribute key fragments whose values are replaced.
	RedactPatterns []string

	// Component is attached to every record.
	Component string
}

// DefaultRedactPatterns cover committed and composing text, which is
// whatever the user typed.
var DefaultRedactPatterns = []string{"text", "preedit", "commit", "password", "secret", "token"}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:          LevelInfo,
		Format:         FormatText,
		Output:         "stderr",
		FilePath:       defaultLogPath(),
		MaxSize:        10,
		MaxAge:         14,
		MaxBackups:     3,
		Compress:       true,
		RedactPatterns: DefaultRedactPatterns,
		Component:      "imecore",
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "imecore.log")
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "imecore", "imecore.log")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "imecore", "logs", "imecore.log")
		}
		return filepath.Join(home, "AppData", "Local", "imecore", "logs", "imecore.log")
	default:
		if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
			return filepath.Join(dir, "imecore", "imecore.log")
		}
		return filepath.Join(home, ".local", "state", "imecore", "imecore.log")
	}
}

// Logger wraps slog.Logger with a shared, adjustable level and the
// writers it owns.
type Logger struct {
	*slog.Logger
	config  *Config
	level   *slog.LevelVar
	rotator *FileRotator
	closers []io.Closer
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger, creating it on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		l, err := New(DefaultConfig())
		if err != nil {
			l = Discard()
		}
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = l
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger and slog's default.
func SetDefault(l *Logger) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	slog.SetDefault(l.Logger)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	level := new(slog.LevelVar)
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})),
		config: DefaultConfig(),
		level:  level,
	}
}

// New creates a logger from cfg.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Logger{config: cfg, level: new(slog.LevelVar)}
	l.level.Set(cfg.Level)

	w, err := l.setupWriters()
	if err != nil {
		return nil, err
	}
	return l.withHandler(w), nil
}

// NewWithWriter creates a logger that writes to w instead of the
// configured output.
func NewWithWriter(cfg *Config, w io.Writer) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Logger{config: cfg, level: new(slog.LevelVar)}
	l.level.Set(cfg.Level)
	return l.withHandler(w)
}

func (l *Logger) withHandler(w io.Writer) *Logger {
	cfg := l.config
	opts := &slog.HandlerOptions{
		Level:     l.level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if shouldRedact(a.Key, cfg.RedactPatterns) {
				return slog.String(a.Key, "[REDACTED]")
			}
			return a
		},
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	l.Logger = logger
	return l
}

func (l *Logger) setupWriters() (io.Writer, error) {
	var writers []io.Writer

	switch l.config.Output {
	case "stdout":
		writers = append(writers, os.Stdout)
	case "", "stderr":
		writers = append(writers, os.Stderr)
	case "file", "both":
		rotator, err := NewFileRotator(l.config)
		if err != nil {
			return nil, fmt.Errorf("create file rotator: %w", err)
		}
		l.rotator = rotator
		l.closers = append(l.closers, rotator)
		writers = append(writers, rotator)
		if l.config.Output == "both" {
			writers = append(writers, os.Stderr)
		}
	default:
		return nil, fmt.Errorf("unknown log output %q", l.config.Output)
	}

	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

// SetLevel changes the minimum level of this logger and every child
// derived from it.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// WithComponent returns a child logger tagged with a subsystem name.
func (l *Logger) WithComponent(component string) *Logger {
	return l.derive(l.Logger.With("subsystem", component))
}

// WithSurface returns a child logger tagged with a surface id.
func (l *Logger) WithSurface(id uint64) *Logger {
	return l.derive(l.Logger.With("surface", id))
}

// WithSession returns a child logger tagged with a journal session id.
func (l *Logger) WithSession(id string) *Logger {
	return l.derive(l.Logger.With("session", id))
}

func (l *Logger) derive(s *slog.Logger) *Logger {
	return &Logger{Logger: s, config: l.config, level: l.level}
}

// Close releases any files the logger owns.
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

// Sync flushes the log file, if any.
func (l *Logger) Sync() error {
	if l.rotator != nil {
		return l.rotator.Sync()
	}
	return nil
}

func shouldRedact(key string, patterns []string) bool {
	lower := strings.ToLower(key)
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// LevelString returns the lowercase name of a level.
func LevelString(level Level) string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return level.String()
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", s)
	}
}
