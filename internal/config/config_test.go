package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "auto", cfg.Transport.Kind)
	assert.Equal(t, "range", cfg.Events.Form)
	assert.True(t, cfg.Compose.BuiltinFallback)
	assert.False(t, cfg.Journal.Enabled)
	assert.True(t, strings.HasSuffix(cfg.Journal.Path, "journal.db"))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("IMECORE_CONFIG_DIR", "/tmp/imecore-test")
	assert.Equal(t, filepath.Join("/tmp/imecore-test", "config.toml"), ConfigPath())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Transport, cfg.Transport)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
version = 1

[compose]
locale = "de_DE.UTF-8"
builtin_fallback = false

[transport]
kind = "compose"

[events]
form = "legacy"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", cfg.Compose.Locale)
	assert.False(t, cfg.Compose.BuiltinFallback)
	assert.Equal(t, "compose", cfg.Transport.Kind)
	assert.Equal(t, "legacy", cfg.Events.Form)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "imecore", cfg.Transport.ClientName)
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[transport]\nkinds = \"ibus\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport.kinds")
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json",
		`{"version": 1, "transport": {"kind": "none"}, "journal": {"enabled": true, "path": "/tmp/j.db"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Transport.Kind)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.Path)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
version: 1
events:
  form: legacy
logging:
  max_size_mb: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Events.Form)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
}

func TestSchemaRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name   string
		format string
		doc    string
	}{
		{"unknown section", "json", `{"widgets": {}}`},
		{"bad enum", "json", `{"transport": {"kind": "xim"}}`},
		{"wrong type", "yaml", "journal:\n  enabled: \"yes\"\n"},
		{"below minimum", "yaml", "logging:\n  max_size_mb: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema([]byte(tt.doc), tt.format)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	assert.NoError(t, ValidateSchema([]byte(`{"events": {"form": "range"}}`), "json"))
	assert.NoError(t, ValidateSchema([]byte(""), "yaml"))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transport.Kind = "xim"
	cfg.Events.Form = "both"
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = ""
	cfg.Compose.File = filepath.Join(t.TempDir(), "missing.Compose")

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)

	all := cfg.Check()
	fields := map[string]bool{}
	for _, e := range all.Errors() {
		fields[e.Field] = true
	}
	assert.Equal(t, map[string]bool{
		"transport.kind":    true,
		"events.form":       true,
		"logging.file_path": true,
	}, fields)

	require.Len(t, all.Warnings(), 1)
	assert.Equal(t, "compose.file", all.Warnings()[0].Field)
}

func TestReadSkipsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[events]\nform = \"both\"\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "both", cfg.Events.Form)
	assert.True(t, cfg.Check().HasErrors())
}

func TestValidateNoComposeSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compose.XLocaleDir = ""
	cfg.Compose.BuiltinFallback = false
	cfg.Transport.Kind = "compose"

	errs := cfg.Check()
	assert.True(t, errs.HasErrors())
	assert.Len(t, errs, 2)
}

func TestValidateJournal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("IMECORE_TRANSPORT", "none")
	t.Setenv("IMECORE_EVENT_FORM", "legacy")
	t.Setenv("IMECORE_LOG_LEVEL", "warn")
	t.Setenv("IMECORE_JOURNAL", "true")
	t.Setenv("IMECORE_JOURNAL_PATH", "/tmp/x.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Transport.Kind)
	assert.Equal(t, "legacy", cfg.Events.Form)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/x.db", cfg.Journal.Path)
}

func TestInvalidEnvOverrideFailsLoad(t *testing.T) {
	t.Setenv("IMECORE_TRANSPORT", "carrier-pigeon")
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transport.Kind = "ibus"
	cfg.Transport.IBusAddress = "unix:path=/tmp/ibus"
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Clone().Transport, loaded.Transport)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IMECORE_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())
	assert.Equal(t, "", FindConfigFile())

	writeFile(t, dir, "config.yaml", "version: 1\n")
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FindConfigFile())
}

func TestLoaderWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[events]\nform = \"range\"\n")

	l := NewLoader(path)
	l.SetDebounce(10 * time.Millisecond)
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan [2]string, 1)
	l.OnChange(func(old, new *Config) {
		select {
		case changed <- [2]string{old.Events.Form, new.Events.Form}:
		default:
		}
	})
	require.NoError(t, l.Watch())
	defer l.Close()

	writeFile(t, dir, "config.toml", "[events]\nform = \"legacy\"\n")

	select {
	case got := <-changed:
		assert.Equal(t, [2]string{"range", "legacy"}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.Equal(t, "legacy", l.Config().Events.Form)
}

func TestLoaderReloadKeepsOldConfigOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[logging]\nlevel = \"debug\"\n")
	l := NewLoader(path)
	_, err := l.Load()
	require.NoError(t, err)

	writeFile(t, dir, "config.toml", "[logging]\nlevel = \"loud\"\n")
	assert.ErrorIs(t, l.Reload(), ErrInvalidConfig)
	assert.Equal(t, "debug", l.Config().Logging.Level)
}
