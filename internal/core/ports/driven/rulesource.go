package driven

import (
	"context"

	"github.com/deglyph/deglyph/internal/core/domain"
)

// RuleSource loads an ordered set of typed rule records from a declarative
// source (a configuration file, literal parameters, a built-in preset).
// The source resolves its own syntax (character literals, escapes, field
// types) and reports its own parse errors; the domain constructors remain
// the final guard on rule invariants.
type RuleSource interface {
	// Load parses the source into a RuleSet. Rule order in the source is
	// chain order.
	Load(ctx context.Context) (*domain.RuleSet, error)
}
