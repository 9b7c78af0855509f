// Package config handles configuration loading and validation for imecore.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Version is the current configuration schema version.
const Version = 1

// EnvPrefix prefixes every environment override.
const EnvPrefix = "IMECORE_"

// Config holds the complete imecore configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Compose configures the compose table shared by every surface.
	Compose ComposeConfig `toml:"compose" json:"compose" yaml:"compose"`

	// Transport selects and configures the engine transport.
	Transport TransportConfig `toml:"transport" json:"transport" yaml:"transport"`

	// Events configures how batches are delivered to the application.
	Events EventsConfig `toml:"events" json:"events" yaml:"events"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// Journal configures the on-disk event journal.
	Journal JournalConfig `toml:"journal" json:"journal" yaml:"journal"`

	mu sync.RWMutex `toml:"-" json:"-" yaml:"-"`
}

// ComposeConfig locates the compose table.
type ComposeConfig struct {
	// File is an explicit Compose file. Empty means locale lookup.
	File string `toml:"file" json:"file" yaml:"file"`

	// Locale overrides LC_ALL/LC_CTYPE/LANG for table lookup.
	Locale string `toml:"locale" json:"locale" yaml:"locale"`

	// XLocaleDir is the root of the X11 locale tree.
	XLocaleDir string `toml:"xlocale_dir" json:"xlocale_dir" yaml:"xlocale_dir"`

	// BuiltinFallback uses the bundled table when no file can be loaded.
	BuiltinFallback bool `toml:"builtin_fallback" json:"builtin_fallback" yaml:"builtin_fallback"`
}

// TransportConfig selects the engine transport.
type TransportConfig struct {
	// Kind is "auto", "ibus", "compose" or "none".
	Kind string `toml:"kind" json:"kind" yaml:"kind"`

	// IBusAddress overrides IBUS_ADDRESS and the address file.
	IBusAddress string `toml:"ibus_address" json:"ibus_address" yaml:"ibus_address"`

	// ClientName is sent when creating IBus input contexts.
	ClientName string `toml:"client_name" json:"client_name" yaml:"client_name"`
}

// EventsConfig selects the preedit event form.
type EventsConfig struct {
	// Form is "range" or "legacy".
	Form string `toml:"form" json:"form" yaml:"form"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout", "stderr", "file" or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file when Output includes a file.
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`

	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of old log files to keep.
	MaxBackups int `toml:"max_backups" json:"max_backups" yaml:"max_backups"`

	// MaxAgeDays is the maximum age of log files in days.
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days" yaml:"max_age_days"`

	// Compress gzips rotated logs.
	Compress bool `toml:"compress" json:"compress" yaml:"compress"`
}

// JournalConfig holds event journal configuration.
type JournalConfig struct {
	// Enabled records every flushed batch.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `toml:"path" json:"path" yaml:"path"`
}

// DefaultConfig returns a configuration that works without any file.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Compose: ComposeConfig{
			XLocaleDir:      "/usr/share/X11/locale",
			BuiltinFallback: true,
		},
		Transport: TransportConfig{
			Kind:       "auto",
			ClientName: "imecore",
		},
		Events: EventsConfig{
			Form: "range",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			FilePath:   filepath.Join(PlatformLogDir(), "imecore.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Journal: JournalConfig{
			Path: filepath.Join(PlatformDataDir(), "journal.db"),
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(PlatformConfigDir(), "config.toml")
}

// Load reads configuration from path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation, for tools that report problems
// instead of failing on them.
func Read(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// Parse decodes data in the given format ("toml", "json", "yaml") over
// the defaults. JSON and YAML documents are checked against the schema
// first.
func Parse(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml", "":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode TOML: unknown key %q", undecoded[0].String())
		}
	case "json":
		if err := ValidateSchema(data, "json"); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case "yaml", "yml":
		if err := ValidateSchema(data, "yaml"); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies IMECORE_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	c.mu.Lock()
	defer c.mu.Unlock()

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	str("COMPOSE_FILE", &c.Compose.File)
	str("COMPOSE_LOCALE", &c.Compose.Locale)
	str("XLOCALE_DIR", &c.Compose.XLocaleDir)
	str("TRANSPORT", &c.Transport.Kind)
	str("IBUS_ADDRESS", &c.Transport.IBusAddress)
	str("EVENT_FORM", &c.Events.Form)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("LOG_OUTPUT", &c.Logging.Output)
	str("LOG_PATH", &c.Logging.FilePath)
	boolean("JOURNAL", &c.Journal.Enabled)
	str("JOURNAL_PATH", &c.Journal.Path)
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		Version:   c.Version,
		Compose:   c.Compose,
		Transport: c.Transport,
		Events:    c.Events,
		Logging:   c.Logging,
		Journal:   c.Journal,
	}
}

// Save writes the configuration as TOML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode TOML: %w", err)
	}
	return nil
}
