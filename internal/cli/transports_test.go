package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imecore/internal/ime"
)

func TestTransportsCommand(t *testing.T) {
	out, err := execute(t, "transports")
	require.NoError(t, err)
	assert.Contains(t, out, "compose")
	assert.Contains(t, out, "auto: ")
	assert.Contains(t, out, ime.TransportNone+"\n", "auto always ends with none")
}

func TestTransportsCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "transports")
	require.NoError(t, err)

	var list TransportList
	decode(t, out, &list)
	require.Len(t, list.Platforms, len(ime.SupportedPlatforms))
	assert.Equal(t, ime.TransportIBus, list.Platforms[0].Transport)
	require.NotEmpty(t, list.AutoOrder)
	assert.Equal(t, ime.TransportNone, list.AutoOrder[len(list.AutoOrder)-1])
}
