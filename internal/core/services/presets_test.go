package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deglyph/deglyph/internal/core/domain"
)

func presetChain(t *testing.T, name string) domain.Chain {
	t.Helper()
	set, err := Preset(name)
	require.NoError(t, err)
	chain, err := set.Chain()
	require.NoError(t, err)
	return chain
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("rot13")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
	assert.Contains(t, err.Error(), "mathalpha")
}

func TestPreset_AllBuild(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			chain := presetChain(t, name)
			assert.NotEmpty(t, chain)
		})
	}
}

func TestPresetNames_StableAndComplete(t *testing.T) {
	names := PresetNames()

	assert.Equal(t, []string{"caesar", "mathalpha", "swapcase"}, names)
	assert.Contains(t, names, DefaultPreset)
}

func TestPreset_Mathalpha(t *testing.T) {
	chain := presetChain(t, "mathalpha")

	// ASCII short-circuits through the filter.
	assert.Equal(t, "Hello", chain.MapString("Hello"))
	// Bold, italic and fraktur variants all collapse onto plain letters.
	assert.Equal(t, "ABC", chain.MapString("\U0001D400\U0001D401\U0001D402"))
	assert.Equal(t, "abc", chain.MapString("\U0001D41A\U0001D41B\U0001D41C"))
	assert.Equal(t, "A", chain.MapString("\U0001D56C"))
	assert.Equal(t, "a", chain.MapString("\U0001D586"))
}

func TestPreset_Swapcase(t *testing.T) {
	chain := presetChain(t, "swapcase")

	assert.Equal(t, "hELLO, wORLD!", chain.MapString("Hello, World!"))
}

func TestPreset_Caesar(t *testing.T) {
	chain := presetChain(t, "caesar")

	assert.Equal(t, "ifmmp", chain.MapString("hello"))
	assert.Equal(t, "AbC", chain.MapString("ZaB"))
}
