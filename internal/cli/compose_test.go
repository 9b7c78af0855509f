package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDeadKey(t *testing.T) {
	out, err := execute(t, "--format", "json", "compose", "--builtin", "dead_acute", "e")
	require.NoError(t, err)

	var res ComposeResult
	decode(t, out, &res)
	assert.Equal(t, "builtin", res.Table)
	assert.Positive(t, res.Entries)
	assert.Equal(t, []ComposeStep{
		{Key: "dead_acute", Status: "composing", Pending: "´"},
		{Key: "e", Status: "composed", Text: "é"},
	}, res.Steps)
	assert.Equal(t, "é", res.Output)
}

func TestComposeMultiKey(t *testing.T) {
	out, err := execute(t, "--format", "json", "compose", "--builtin", "Multi_key", "o", "e")
	require.NoError(t, err)

	var res ComposeResult
	decode(t, out, &res)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, "composing", res.Steps[0].Status)
	assert.Equal(t, "o", res.Steps[1].Pending)
	assert.Equal(t, "œ", res.Output)
}

func TestComposeCancelAndPassthrough(t *testing.T) {
	out, err := execute(t, "--format", "json", "compose", "--builtin", "a", "dead_acute", "x")
	require.NoError(t, err)

	var res ComposeResult
	decode(t, out, &res)
	assert.Equal(t, []ComposeStep{
		{Key: "a", Status: "nothing", Text: "a"},
		{Key: "dead_acute", Status: "composing", Pending: "´"},
		{Key: "x", Status: "cancelled"},
	}, res.Steps)
	assert.Equal(t, "a", res.Output)
}

func TestComposeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Compose")
	require.NoError(t, os.WriteFile(path, []byte("<dead_grave> <a> : \"à\" agrave\n"), 0600))

	out, err := execute(t, "compose", "--file", path, "dead_grave", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 sequences)")
	assert.Contains(t, out, `output: "à"`)
}

func TestComposeErrors(t *testing.T) {
	_, err := execute(t, "compose", "--builtin", "not_a_key")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "compose", "--file", filepath.Join(t.TempDir(), "missing"), "a")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "compose")
	assert.Error(t, err, "at least one key is required")
}
