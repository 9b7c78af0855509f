package ime

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeySymbol(t *testing.T) {
	tests := []struct {
		name string
		want KeySymbol
	}{
		{"a", 0x61},
		{"E", 0x45},
		{"dead_acute", KeyDeadAcute},
		{"Multi_key", KeyMultiKey},
		{"space", KeySpace},
		{"U00E9", 0xe9},
		{"U+20AC", unicodeKeysymBase + 0x20ac},
		{"0xfe51", KeyDeadAcute},
		{"F5", KeyF1 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeySymbol(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKeySymbol("no_such_key")
	assert.Error(t, err)
}

func TestKeySymbolString(t *testing.T) {
	assert.Equal(t, "dead_acute", KeyDeadAcute.String())
	assert.Equal(t, "a", KeySymbol('a').String())
	assert.Equal(t, "U0416", KeySymbolForRune('Ж').String())

	// String output parses back to the same symbol.
	for _, sym := range []KeySymbol{KeyDeadTilde, KeyReturn, KeyShiftL, 'z', KeySymbolForRune('ж')} {
		back, err := ParseKeySymbol(sym.String())
		require.NoError(t, err)
		assert.Equal(t, sym, back)
	}
}

func TestKeySymbolRune(t *testing.T) {
	tests := []struct {
		sym  KeySymbol
		want rune
	}{
		{'a', 'a'},
		{0xe9, 'é'},
		{KeySymbolForRune('€'), '€'},
		{KeyReturn, '\r'},
		{KeyDeadAcute, 0},
		{KeyShiftL, 0},
		{KeyF1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sym.Rune(), "symbol %s", tt.sym)
	}
}

func TestKeySymbolClassification(t *testing.T) {
	assert.True(t, KeyShiftL.IsModifier())
	assert.True(t, KeyISOLevel3Shift.IsModifier())
	assert.False(t, KeySymbol('a').IsModifier())
	assert.False(t, KeyDeadAcute.IsModifier())

	assert.True(t, KeyDeadGrave.IsDead())
	assert.False(t, KeyMultiKey.IsDead())

	r, ok := KeyDeadAcute.DeadCombining()
	require.True(t, ok)
	assert.Equal(t, '\u0301', r)
	r, ok = KeyDeadAcute.DeadSpacing()
	require.True(t, ok)
	assert.Equal(t, '´', r)
}

func TestKeySymbolLocationAndName(t *testing.T) {
	assert.Equal(t, LocationLeft, KeyShiftL.Location())
	assert.Equal(t, LocationRight, KeyControlR.Location())
	assert.Equal(t, LocationNumpad, KeyKPEnter.Location())
	assert.Equal(t, LocationStandard, KeySymbol('a').Location())

	assert.Equal(t, key.Name("A"), KeySymbol('a').Name())
	assert.Equal(t, key.NameReturn, KeyReturn.Name())
	assert.Equal(t, key.NameEnter, KeyKPEnter.Name())
	assert.Equal(t, key.Name("F12"), KeyF12.Name())
	assert.Equal(t, key.Name(""), KeyDeadAcute.Name())
}

func TestParseKeySymbolFullTable(t *testing.T) {
	tests := []struct {
		name string
		want KeySymbol
		r    rune
	}{
		{"aacute", 0xe1, 'á'},
		{"udiaeresis", 0xfc, 'ü'},
		{"KP_Divide", 0xffaf, 0},
		{"Greek_alpha", 0x7e1, 'α'},
		{"Cyrillic_zhe", 0x6d6, 'ж'},
		{"kana_KA", 0x4b6, 'カ'},
		{"EuroSign", 0x20ac, '€'},
		{"ohorn", KeySymbolForRune('ơ'), 'ơ'},
		{"dead_belowdot", 0xfe60, 0},
		{"dead_perispomeni", KeyDeadTilde, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeySymbol(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.r, got.Rune())
		})
	}

	// Aliases print as the first name listed for their value.
	assert.Equal(t, "dead_tilde", KeyDeadTilde.String())
	assert.Equal(t, "Prior", KeyPageUp.String())
	assert.Equal(t, "dead_abovecomma", KeySymbol(0xfe64).String())
}

func TestExtendedDeadKeys(t *testing.T) {
	for _, name := range []string{"dead_belowdot", "dead_hook", "dead_horn", "dead_iota", "dead_currency", "dead_greek", "dead_a"} {
		sym, err := ParseKeySymbol(name)
		require.NoError(t, err)
		assert.True(t, sym.IsDead(), name)
		_, ok := sym.DeadSpacing()
		assert.True(t, ok, name)
	}

	r, ok := KeySymbol(0xfe60).DeadCombining()
	require.True(t, ok)
	assert.Equal(t, '\u0323', r)

	_, ok = KeySymbol(0xfe6f).DeadCombining()
	assert.False(t, ok, "dead_currency selects symbols, not a mark")
}
