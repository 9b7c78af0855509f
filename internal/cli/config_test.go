package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/config"
)

// writeConfigFile writes a TOML config that uses the built-in compose
// table and logs nowhere near the user's state directory.
func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[compose]\nbuiltin_fallback = true\nxlocale_dir = \"" + filepath.ToSlash(filepath.Join(dir, "none")) + "\"\n" +
		"[logging]\noutput = \"stderr\"\n" + body
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestConfigCheck(t *testing.T) {
	path := writeConfigFile(t, "")
	out, err := execute(t, "--config", path, "config", "check")
	require.NoError(t, err)
	assert.Contains(t, out, path+": ok")
}

func TestConfigCheckReportsProblems(t *testing.T) {
	path := writeConfigFile(t, "[events]\nform = \"both\"\n")
	t.Setenv("IMECORE_COMPOSE_FILE", filepath.Join(t.TempDir(), "missing"))

	out, err := execute(t, "--format", "json", "--config", path, "config", "check")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var res CheckResult
	decode(t, out, &res)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "events.form", res.Errors[0].Field)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "compose.file", res.Warnings[0].Field)
}

func TestConfigCheckUndecodable(t *testing.T) {
	path := writeConfigFile(t, "[nonsense]\nkey = 1\n")
	_, err := execute(t, "--config", path, "config", "check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigShow(t *testing.T) {
	path := writeConfigFile(t, "[transport]\nkind = \"compose\"\n")

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `kind = "compose"`)

	out, err = execute(t, "--format", "json", "--config", path, "config", "show")
	require.NoError(t, err)
	var cfg config.Config
	decode(t, out, &cfg)
	assert.Equal(t, "compose", cfg.Transport.Kind)
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Equal(t, string(config.Schema()), out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Transport, cfg.Transport)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}
