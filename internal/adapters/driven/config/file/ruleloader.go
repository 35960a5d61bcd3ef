package file

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/deglyph/deglyph/internal/core/domain"
	"github.com/deglyph/deglyph/internal/core/ports/driven"
	"github.com/deglyph/deglyph/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.RuleSource = (*Loader)(nil)

// Loader reads translator rules from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given rule file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the rule file path.
func (l *Loader) Path() string {
	return l.path
}

// document mirrors the TOML schema. Rules decode into a slice, so chain
// order is document order with no map-iteration dependence.
type document struct {
	Global globalSection `toml:"global"`
	Rules  []ruleSection `toml:"rules"`
}

type globalSection struct {
	UseASCIIFilter bool `toml:"use_ascii_filter"`
}

type ruleSection struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Source string `toml:"source"`
	Target string `toml:"target"`
	Size   int    `toml:"size"`
	Slice  int    `toml:"slice"`
	Iters  int    `toml:"iters"`
}

// Load parses the rule file into typed records.
func (l *Loader) Load(_ context.Context) (*domain.RuleSet, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	set := &domain.RuleSet{
		UseASCIIFilter: doc.Global.UseASCIIFilter,
		Rules:          make([]domain.Rule, 0, len(doc.Rules)),
	}
	for i, sect := range doc.Rules {
		rule, err := parseRule(sect, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.path, err)
		}
		set.Rules = append(set.Rules, rule)
	}

	if len(set.Rules) == 0 && !set.UseASCIIFilter {
		logger.Warn("no rules declared in %s", l.path)
	}
	logger.Info("loaded %d rules from %s", len(set.Rules), l.path)
	return set, nil
}

// parseRule converts one [[rules]] entry into a typed record.
func parseRule(sect ruleSection, index int) (domain.Rule, error) {
	name := sect.Name
	if name == "" {
		name = fmt.Sprintf("#%d", index+1)
	}
	rule := domain.Rule{Name: name}

	if sect.Type == "" {
		return domain.Rule{}, fmt.Errorf("rule %s: missing field %q", name, "type")
	}

	switch domain.RuleKind(sect.Type) {
	case domain.RuleKindRange, domain.RuleKindMultirange:
		rule.Kind = domain.RuleKind(sect.Type)
		source, err := parseChar(sect.Source)
		if err != nil {
			return domain.Rule{}, fmt.Errorf("rule %s: field %q: %w", name, "source", err)
		}
		target, err := parseChar(sect.Target)
		if err != nil {
			return domain.Rule{}, fmt.Errorf("rule %s: field %q: %w", name, "target", err)
		}
		rule.Source = source
		rule.Target = target
		rule.Size = sect.Size
		rule.Slice = sect.Slice
		rule.Iters = sect.Iters
	case domain.RuleKindLookup:
		rule.Kind = domain.RuleKindLookup
		if sect.Source == "" || sect.Target == "" {
			return domain.Rule{}, fmt.Errorf("rule %s: lookup requires %q and %q", name, "source", "target")
		}
		rule.SourceSeq = []rune(sect.Source)
		rule.TargetSeq = []rune(sect.Target)
	case domain.RuleKindASCIIFilter:
		rule.Kind = domain.RuleKindASCIIFilter
	default:
		return domain.Rule{}, fmt.Errorf("rule %s: %w: %q", name, domain.ErrUnknownRuleKind, sect.Type)
	}

	return rule, nil
}

var escapePattern = regexp.MustCompile(`^\\u\{([0-9a-fA-F]{1,6})\}$`)

// parseChar resolves a character field: either exactly one character, or a
// codepoint escape in the form \u{1D400}.
func parseChar(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value (one character or \\u{XXXX} escape)")
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	m := escapePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid character %q (one character or \\u{XXXX} escape)", s)
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint escape %q: %w", s, err)
	}
	r := rune(v)
	if r > unicode.MaxRune || utf16.IsSurrogate(r) {
		return 0, fmt.Errorf("escape %q is not a valid Unicode scalar value", s)
	}
	return r, nil
}
