package domain

import (
	"errors"
	"fmt"
)

// RuleKind identifies one of the four rule families.
type RuleKind string

const (
	RuleKindRange       RuleKind = "range"
	RuleKindMultirange  RuleKind = "multirange"
	RuleKindLookup      RuleKind = "lookup"
	RuleKindASCIIFilter RuleKind = "ascii_filter"
)

// Rule is a typed, validated rule record as produced by a RuleSource.
// Only the fields for the record's kind are meaningful: Source/Target/Size
// for range, plus Slice/Iters for multirange, SourceSeq/TargetSeq for
// lookup, and nothing for ascii_filter.
type Rule struct {
	// Name identifies the rule in the declarative source, for error
	// messages. May be empty.
	Name string

	// Kind selects the rule family.
	Kind RuleKind

	// Source is the first codepoint of the source block (range, multirange).
	Source rune

	// Target is the first codepoint of the target block (range, multirange).
	Target rune

	// Size is the length of each mapped block (range, multirange).
	Size int

	// Slice is the spacing between repeated sub-blocks (multirange).
	Slice int

	// Iters is the number of repeated sub-blocks (multirange).
	Iters int

	// SourceSeq and TargetSeq are the paired codepoint tables (lookup).
	SourceSeq []rune
	TargetSeq []rune
}

// Translator constructs the translator described by the record. Construction
// is the final guard: any invariant violation surfaces here as a RuleError
// carrying the rule's name.
func (r Rule) Translator() (Translator, error) {
	var (
		t   Translator
		err error
	)
	switch r.Kind {
	case RuleKindRange:
		t, err = NewRange(r.Source, r.Target, r.Size)
	case RuleKindMultirange:
		t, err = NewMultirange(r.Source, r.Target, r.Size, r.Slice, r.Iters)
	case RuleKindLookup:
		t, err = NewLookup(r.SourceSeq, r.TargetSeq)
	case RuleKindASCIIFilter:
		t = NewASCIIFilter()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownRuleKind, r.Kind)
	}
	if err != nil {
		var re *RuleError
		if errors.As(err, &re) && re.Rule == "" {
			re.Rule = r.Name
		}
		return nil, err
	}
	return t, nil
}

// RuleSet is a parsed configuration document: an ordered list of rule
// records plus the global options that affect chain assembly.
type RuleSet struct {
	// UseASCIIFilter prepends an ASCIIFilter to the chain so plain ASCII
	// text short-circuits before any declared rule.
	UseASCIIFilter bool

	// Rules are the declared records in document order, which is chain
	// order.
	Rules []Rule
}

// Chain constructs the immutable chain described by the set. It fails on
// the first record that violates a construction invariant.
func (rs RuleSet) Chain() (Chain, error) {
	chain := make(Chain, 0, len(rs.Rules)+1)
	if rs.UseASCIIFilter {
		chain = append(chain, NewASCIIFilter())
	}
	for _, rule := range rs.Rules {
		t, err := rule.Translator()
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return chain, nil
}
