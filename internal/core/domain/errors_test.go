package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleError_Error_WithRuleName(t *testing.T) {
	err := &RuleError{
		Rule:  "math-upper",
		Field: "slice",
		Value: "10 (must be at least size 26)",
		Err:   ErrInvalidRule,
	}

	assert.Equal(t, "rule math-upper: invalid rule: slice = 10 (must be at least size 26)", err.Error())
}

func TestRuleError_Error_WithoutRuleName(t *testing.T) {
	err := &RuleError{
		Field: "size",
		Value: "0 (must be at least 1)",
		Err:   ErrInvalidRule,
	}

	assert.Equal(t, "invalid rule: size = 0 (must be at least 1)", err.Error())
}

func TestRuleError_Unwrap(t *testing.T) {
	err := &RuleError{Field: "size", Value: "0", Err: ErrInvalidRule}

	assert.ErrorIs(t, err, ErrInvalidRule)
	assert.True(t, errors.Is(err, ErrInvalidRule))
}
