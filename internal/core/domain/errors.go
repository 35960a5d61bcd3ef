package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent rule construction and configuration failures.
// Evaluation never fails: a constructed Translator is total, and a Chain
// always produces a replacement or the input itself.
var (
	// ErrInvalidRule indicates a rule was constructed with parameters that
	// violate its invariants (zero-size range, mismatched lookup tables,
	// a target block outside valid scalar space, ...).
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownRuleKind indicates a rule record carries a kind the engine
	// does not recognise.
	ErrUnknownRuleKind = errors.New("unknown rule kind")

	// ErrUnknownPreset indicates a built-in chain name does not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

// RuleError is a construction-time configuration error. It names the
// offending field and value so the declarative source can be corrected
// without reading code. Rule is filled in by the configuration loader;
// it is empty when a constructor is called with literal parameters.
type RuleError struct {
	// Rule is the name of the rule in the configuration source.
	Rule string

	// Field is the parameter that violated an invariant.
	Field string

	// Value is the offending value, already formatted for display.
	Value string

	// Err is the underlying sentinel (usually ErrInvalidRule).
	Err error
}

func (e *RuleError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("rule %s: %v: %s = %s", e.Rule, e.Err, e.Field, e.Value)
	}
	return fmt.Sprintf("%v: %s = %s", e.Err, e.Field, e.Value)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// invalidRule builds a RuleError around ErrInvalidRule.
func invalidRule(field, format string, args ...any) *RuleError {
	return &RuleError{
		Field: field,
		Value: fmt.Sprintf(format, args...),
		Err:   ErrInvalidRule,
	}
}
