package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidConfig is returned when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a single validation problem.
type ValidationError struct {
	Field   string
	Message string
	Warning bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for i := range e {
		msgs = append(msgs, e[i].Error())
	}
	return strings.Join(msgs, "; ")
}

// Warnings returns only the non-fatal entries.
func (e ValidationErrors) Warnings() ValidationErrors {
	var out ValidationErrors
	for _, v := range e {
		if v.Warning {
			out = append(out, v)
		}
	}
	return out
}

// Errors returns only the fatal entries.
func (e ValidationErrors) Errors() ValidationErrors {
	var out ValidationErrors
	for _, v := range e {
		if !v.Warning {
			out = append(out, v)
		}
	}
	return out
}

// HasErrors reports whether any entry is fatal.
func (e ValidationErrors) HasErrors() bool {
	return len(e.Errors()) > 0
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig and the fatal ValidationErrors. Warnings are ignored.
func (c *Config) Validate() error {
	if errs := c.Check().Errors(); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

// Check returns every validation problem, warnings included.
func (c *Config) Check() ValidationErrors {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	warn := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Warning: true})
	}

	if c.Version < 1 || c.Version > Version {
		add("version", "unsupported version %d (current: %d)", c.Version, Version)
	}

	if c.Compose.File != "" {
		if _, err := os.Stat(c.Compose.File); err != nil {
			warn("compose.file", "%v", err)
		}
	}
	if c.Compose.File == "" && c.Compose.XLocaleDir == "" && !c.Compose.BuiltinFallback {
		add("compose", "no compose table source: set file, xlocale_dir or builtin_fallback")
	}

	switch c.Transport.Kind {
	case "auto", "ibus", "compose", "none":
	default:
		add("transport.kind", "invalid transport: %s (valid: auto, ibus, compose, none)", c.Transport.Kind)
	}
	if c.Transport.Kind == "compose" && c.Compose.File == "" && c.Compose.XLocaleDir == "" && !c.Compose.BuiltinFallback {
		add("transport.kind", "compose transport needs a compose table")
	}

	switch c.Events.Form {
	case "range", "legacy":
	default:
		add("events.form", "invalid event form: %s (valid: range, legacy)", c.Events.Form)
	}

	errs = append(errs, validateLogging(&c.Logging)...)

	if c.Journal.Enabled && c.Journal.Path == "" {
		add("journal.path", "path is required when the journal is enabled")
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", l.Level),
		})
	}

	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format: %s (valid: text, json)", l.Format),
		})
	}

	switch l.Output {
	case "stdout", "stderr":
	case "file", "both":
		if l.FilePath == "" {
			errs = append(errs, ValidationError{
				Field:   "logging.file_path",
				Message: fmt.Sprintf("file path is required when output is %q", l.Output),
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("invalid log output: %s (valid: stdout, stderr, file, both)", l.Output),
		})
	}

	if l.MaxSizeMB < 1 {
		errs = append(errs, ValidationError{Field: "logging.max_size_mb", Message: "max size must be at least 1 MB"})
	}
	if l.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "logging.max_backups", Message: "max backups cannot be negative"})
	}
	if l.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{Field: "logging.max_age_days", Message: "max age cannot be negative"})
	}

	return errs
}
