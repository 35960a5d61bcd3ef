package domain

import "strings"

// Chain is an ordered, immutable list of translators. Evaluation is
// first-match: the earliest rule that matches wins, even when a later rule
// is more specific. A chain is assembled once and shared read-only; it is
// safe for concurrent use.
type Chain []Translator

// Map applies the chain to a single codepoint. It returns the first
// replacement produced by a matching rule, or r itself when no rule
// matches. It never fails.
func (c Chain) Map(r rune) rune {
	for _, t := range c {
		if out, ok := t.Translate(r); ok {
			return out
		}
	}
	return r
}

// MapString applies the chain to each codepoint of s independently and
// returns the re-encoded result. The string is decoded into runes first;
// mapping raw bytes would corrupt multi-byte characters.
func (c Chain) MapString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(c.Map(r))
	}
	return b.String()
}
