package driving

import (
	"context"
	"io"

	"github.com/deglyph/deglyph/internal/core/domain"
)

// Normalizer applies a fixed translator chain to text. Implementations are
// stateless per character and never fail at evaluation time; only stream
// I/O can surface errors.
type Normalizer interface {
	// Normalize decodes r into codepoints, maps each through the chain,
	// and re-encodes the result to w.
	Normalize(ctx context.Context, r io.Reader, w io.Writer) error

	// NormalizeString maps each codepoint of s through the chain.
	NormalizeString(s string) string

	// Chain returns the chain being applied.
	Chain() domain.Chain
}
