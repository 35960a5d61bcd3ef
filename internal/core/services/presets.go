package services

import (
	"fmt"
	"sort"

	"github.com/deglyph/deglyph/internal/core/domain"
)

// Built-in rule sets, usable without a configuration file. Each is a
// RuleSet rather than a Chain so `deglyph rules` can describe presets the
// same way it describes loaded files.
var presets = map[string]domain.RuleSet{
	// mathalpha folds the Mathematical Alphanumeric Symbols block onto
	// plain A-Z/a-z. Uppercase and lowercase alphabets alternate every 26
	// codepoints, so each multirange skips the other case via slice 52.
	"mathalpha": {
		UseASCIIFilter: true,
		Rules: []domain.Rule{
			{Name: "math-upper", Kind: domain.RuleKindMultirange, Source: 0x1D400, Target: 'A', Size: 26, Slice: 52, Iters: 5},
			{Name: "math-lower", Kind: domain.RuleKindMultirange, Source: 0x1D41A, Target: 'a', Size: 26, Slice: 52, Iters: 5},
			{Name: "math-fraktur-upper", Kind: domain.RuleKindMultirange, Source: 0x1D56C, Target: 'A', Size: 26, Slice: 52, Iters: 5},
			{Name: "math-fraktur-lower", Kind: domain.RuleKindMultirange, Source: 0x1D586, Target: 'a', Size: 26, Slice: 52, Iters: 5},
		},
	},
	// swapcase exchanges ASCII upper and lower case.
	"swapcase": {
		Rules: []domain.Rule{
			{Name: "lower-to-upper", Kind: domain.RuleKindRange, Source: 'a', Target: 'A', Size: 26},
			{Name: "upper-to-lower", Kind: domain.RuleKindRange, Source: 'A', Target: 'a', Size: 26},
		},
	},
	// caesar rotates ASCII letters right by one.
	"caesar": {
		Rules: []domain.Rule{
			{Name: "lower-shift", Kind: domain.RuleKindRange, Source: 'a', Target: 'b', Size: 25},
			{Name: "lower-wrap", Kind: domain.RuleKindRange, Source: 'z', Target: 'a', Size: 1},
			{Name: "upper-shift", Kind: domain.RuleKindRange, Source: 'A', Target: 'B', Size: 25},
			{Name: "upper-wrap", Kind: domain.RuleKindRange, Source: 'Z', Target: 'A', Size: 1},
		},
	},
}

// DefaultPreset is used when neither a rule file nor a preset is given.
const DefaultPreset = "mathalpha"

// Preset returns the built-in rule set with the given name.
func Preset(name string) (domain.RuleSet, error) {
	set, ok := presets[name]
	if !ok {
		return domain.RuleSet{}, fmt.Errorf("%w: %q (available: %v)", domain.ErrUnknownPreset, name, PresetNames())
	}
	return set, nil
}

// PresetNames lists the built-in rule sets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
