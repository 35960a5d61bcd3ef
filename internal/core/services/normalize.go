package services

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/deglyph/deglyph/internal/core/domain"
	"github.com/deglyph/deglyph/internal/core/ports/driven"
	"github.com/deglyph/deglyph/internal/core/ports/driving"
	"github.com/deglyph/deglyph/internal/logger"
)

// Ensure NormalizeService implements the interface.
var _ driving.Normalizer = (*NormalizeService)(nil)

// NormalizeService applies one immutable translator chain to text.
// The chain is fixed at construction; evaluation holds no per-character
// state, so one service may serve any number of calls concurrently.
type NormalizeService struct {
	chain domain.Chain
}

// NewNormalizeService creates a service around an already-built chain.
func NewNormalizeService(chain domain.Chain) *NormalizeService {
	return &NormalizeService{chain: chain}
}

// NewNormalizeServiceFromSource loads rule records from src and builds the
// chain once. Construction errors from invalid rule parameters surface
// here; the returned service never fails afterwards.
func NewNormalizeServiceFromSource(ctx context.Context, src driven.RuleSource) (*NormalizeService, error) {
	set, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	chain, err := set.Chain()
	if err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}
	logger.Debug("built chain with %d translators", len(chain))
	return &NormalizeService{chain: chain}, nil
}

// Chain returns the chain being applied.
func (s *NormalizeService) Chain() domain.Chain {
	return s.chain
}

// Transformer wraps the chain as a transform.Transformer. runes.Map
// decodes UTF-8 into runes before mapping, so multi-byte characters are
// never split; ill-formed bytes arrive as utf8.RuneError.
func (s *NormalizeService) Transformer() transform.Transformer {
	return runes.Map(s.chain.Map)
}

// Normalize streams r through the chain into w with bounded memory.
// Each codepoint is mapped independently; output length in codepoints
// equals input length. Only I/O can fail.
func (s *NormalizeService) Normalize(ctx context.Context, r io.Reader, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := io.Copy(w, transform.NewReader(r, s.Transformer()))
	if err != nil {
		return fmt.Errorf("normalize stream: %w", err)
	}
	logger.Debug("normalized %d bytes", n)
	return nil
}

// NormalizeString maps each codepoint of s through the chain.
func (s *NormalizeService) NormalizeString(in string) string {
	return s.chain.MapString(in)
}
