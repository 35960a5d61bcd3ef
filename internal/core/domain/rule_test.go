package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Translator_Range(t *testing.T) {
	rule := Rule{Kind: RuleKindRange, Source: 'a', Target: 'A', Size: 26}

	tr, err := rule.Translator()

	require.NoError(t, err)
	out, ok := tr.Translate('b')
	require.True(t, ok)
	assert.Equal(t, 'B', out)
}

func TestRule_Translator_Multirange(t *testing.T) {
	rule := Rule{Kind: RuleKindMultirange, Source: 0x1D400, Target: 'A', Size: 26, Slice: 52, Iters: 5}

	tr, err := rule.Translator()

	require.NoError(t, err)
	out, ok := tr.Translate(0x1D400)
	require.True(t, ok)
	assert.Equal(t, 'A', out)
}

func TestRule_Translator_Lookup(t *testing.T) {
	rule := Rule{Kind: RuleKindLookup, SourceSeq: []rune("ог"), TargetSeq: []rune("or")}

	tr, err := rule.Translator()

	require.NoError(t, err)
	out, ok := tr.Translate('о')
	require.True(t, ok)
	assert.Equal(t, 'o', out)
}

func TestRule_Translator_ASCIIFilter(t *testing.T) {
	rule := Rule{Kind: RuleKindASCIIFilter}

	tr, err := rule.Translator()

	require.NoError(t, err)
	out, ok := tr.Translate('x')
	require.True(t, ok)
	assert.Equal(t, 'x', out)
}

func TestRule_Translator_UnknownKind(t *testing.T) {
	rule := Rule{Kind: "regex"}

	tr, err := rule.Translator()

	require.Error(t, err)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, ErrUnknownRuleKind)
}

func TestRule_Translator_ErrorCarriesRuleName(t *testing.T) {
	rule := Rule{Name: "swap-lower", Kind: RuleKindRange, Source: 'a', Target: 'A', Size: 0}

	_, err := rule.Translator()

	require.Error(t, err)
	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "swap-lower", re.Rule)
	assert.Equal(t, "size", re.Field)
}

func TestRuleSet_Chain_OrderIsDocumentOrder(t *testing.T) {
	rs := RuleSet{
		Rules: []Rule{
			{Kind: RuleKindRange, Source: 'a', Target: 'x', Size: 1},
			{Kind: RuleKindRange, Source: 'a', Target: 'y', Size: 1},
		},
	}

	chain, err := rs.Chain()

	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, 'x', chain.Map('a'))
}

func TestRuleSet_Chain_ASCIIFilterPrepended(t *testing.T) {
	rs := RuleSet{
		UseASCIIFilter: true,
		Rules: []Rule{
			{Kind: RuleKindRange, Source: 'a', Target: 'A', Size: 26},
		},
	}

	chain, err := rs.Chain()

	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.IsType(t, (*ASCIIFilter)(nil), chain[0])
	assert.Equal(t, "Hello", chain.MapString("Hello"))
}

func TestRuleSet_Chain_PropagatesConstructionError(t *testing.T) {
	rs := RuleSet{
		Rules: []Rule{
			{Kind: RuleKindRange, Source: 'a', Target: 'A', Size: 26},
			{Name: "broken", Kind: RuleKindMultirange, Source: 'a', Target: 'A', Size: 26, Slice: 10, Iters: 3},
		},
	}

	chain, err := rs.Chain()

	require.Error(t, err)
	assert.Nil(t, chain)
	assert.ErrorIs(t, err, ErrInvalidRule)
	assert.Contains(t, err.Error(), "broken")
}

func TestRuleSet_Chain_Empty(t *testing.T) {
	chain, err := RuleSet{}.Chain()

	require.NoError(t, err)
	assert.Empty(t, chain)
	assert.Equal(t, "déjà vu", chain.MapString("déjà vu"))
}
