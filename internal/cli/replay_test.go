package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/journal"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

const sessionScript = `
text: "ab"
steps:
  - op: enable
    capabilities: [surrounding_text]
  - op: preedit_start
  - op: preedit_draw
    text: "か"
  - op: flush
  - op: expect
    text: "ab"
    preedit: "か"
  - op: commit
    text: "日"
  - op: delete_surrounding
    before: 1
  - op: flush
  - op: expect
    text: "a日"
    preedit: ""
  - op: key
    key: dead_acute
  - op: key
    key: e
  - op: expect
    text: "a日é"
  - op: disable
`

func TestReplaySession(t *testing.T) {
	out, err := execute(t, "--format", "json", "replay", writeScript(t, sessionScript))
	require.NoError(t, err)

	var res ReplayResult
	decode(t, out, &res)
	assert.Equal(t, "none", res.Transport)
	assert.Equal(t, "range", res.Form)
	require.Len(t, res.Steps, 13)

	assert.Equal(t, []string{"Enabled"}, res.Steps[0].Events)
	assert.Empty(t, res.Steps[1].Events)
	assert.Empty(t, res.Steps[2].Events, "callbacks are staged until flush")
	assert.Equal(t, []string{"Start", `Preedit("か", (3, 3))`}, res.Steps[3].Events)
	assert.Equal(t, []string{"DeleteSurrounding(1, 0)", `Preedit("", None)`, `Commit("日")`}, res.Steps[7].Events)
	assert.Equal(t, "", res.Steps[9].Typed)
	assert.Equal(t, "é", res.Steps[10].Typed)
	assert.Equal(t, []string{"Disabled"}, res.Steps[12].Events)

	assert.Empty(t, res.Failures)
	assert.Equal(t, []ReplaySurface{{Surface: 1, Text: "a日é"}}, res.Surfaces)
}

func TestReplayLegacyForm(t *testing.T) {
	script := `
form: legacy
steps:
  - op: enable
  - op: preedit_draw
    text: "か"
  - op: flush
`
	out, err := execute(t, "--format", "json", "replay", writeScript(t, script))
	require.NoError(t, err)

	var res ReplayResult
	decode(t, out, &res)
	assert.Equal(t, "legacy", res.Form)
	assert.Equal(t, []string{"Start", `Update("か", 3)`}, res.Steps[2].Events)
}

func TestReplayComposeTransport(t *testing.T) {
	out, err := execute(t, "replay", "--transport", "compose", filepath.Join("testdata", "compose_session.yaml"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "replay_compose", []byte(out))
}

func TestReplayGioEvents(t *testing.T) {
	script := `
steps:
  - op: enable
  - op: commit
    text: "hi"
  - op: flush
`
	out, err := execute(t, "--format", "json", "replay", "--gio", writeScript(t, script))
	require.NoError(t, err)

	var res ReplayResult
	decode(t, out, &res)
	require.Len(t, res.Steps, 3)
	assert.Contains(t, res.Steps[2].Gio, `Edit([0,0) "hi")`)
	assert.Contains(t, res.Steps[2].Gio, "Selection(2,2)")
}

func TestReplayExpectationFailure(t *testing.T) {
	script := `
steps:
  - op: enable
  - op: commit
    text: "a"
  - op: flush
  - op: expect
    text: "b"
`
	out, err := execute(t, "replay", writeScript(t, script))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `FAIL step 4: text = "a", want "b"`)
}

func TestReplayRecordsJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	script := `
steps:
  - op: enable
  - op: commit
    text: "a"
  - op: flush
  - op: disable
`
	_, err := execute(t, "replay", "--record", db, writeScript(t, script))
	require.NoError(t, err)

	j, err := journal.Open(db, journal.Options{Inspect: true})
	require.NoError(t, err)
	defer j.Close()
	sessions, err := j.Sessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "none", sessions[0].Transport)
	assert.Equal(t, 3, sessions[0].Batches)
	assert.False(t, sessions[0].Open())
}

func TestReplayScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown key", "steps:\n  - op: enable\n    colour: red\n"},
		{"unknown op", "steps:\n  - op: explode\n"},
		{"bad key symbol", "steps:\n  - op: key\n    key: nope_nope\n"},
		{"bad capability", "steps:\n  - op: enable\n    capabilities: [telepathy]\n"},
		{"update before enable", "steps:\n  - op: update\n"},
		{"bad changed range", "steps:\n  - op: enable\n  - op: preedit_draw\n    changed: [1]\n"},
		{"bad form", "form: sideways\nsteps: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "replay", writeScript(t, tt.script))
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}

	_, err := execute(t, "replay", "--transport", "ibus", writeScript(t, "steps: []\n"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
