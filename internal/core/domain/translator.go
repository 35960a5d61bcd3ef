package domain

import (
	"fmt"
	"unicode"
)

// Translator is a single codepoint-mapping rule: a pure, total partial
// function from one codepoint to an optional replacement.
//
// Translate reports the replacement for r and whether the rule matched.
// It must never fail: a codepoint outside the rule's domain yields
// (0, false), never an error or a partial result. Translators hold no
// mutable state and are safe for concurrent use.
type Translator interface {
	Translate(r rune) (rune, bool)
}

// Compile-time interface checks.
var (
	_ Translator = (*Range)(nil)
	_ Translator = (*Multirange)(nil)
	_ Translator = (*Lookup)(nil)
	_ Translator = (*ASCIIFilter)(nil)
)

// validBlock reports whether every codepoint in [start, start+size-1] is a
// valid Unicode scalar value, i.e. the block stays at or below MaxRune and
// does not touch the surrogate range. The end is computed in int64: a rune
// is only int32, and converting an oversized size first would wrap and let
// an invalid block slip through.
func validBlock(start rune, size int64) bool {
	end := int64(start) + size - 1
	if start < 0 || end > unicode.MaxRune {
		return false
	}
	// Surrogates have no valid encoding; a block straddling them could
	// produce an unrepresentable result for a mid-block input.
	return !(int64(start) <= int64(surrogateMax) && end >= int64(surrogateMin))
}

const (
	surrogateMin = rune(0xD800)
	surrogateMax = rune(0xDFFF)
)

// Range maps a contiguous block of codepoints onto another contiguous
// block, preserving relative offset. A Range from 'a' to 'A' of size 26
// uppercases the ASCII alphabet.
type Range struct {
	source rune
	target rune
	size   int
}

// NewRange builds a Range rule covering size codepoints starting at source,
// mapped onto the block of the same size starting at target. It fails when
// size is zero or either block leaves valid Unicode scalar space.
func NewRange(source, target rune, size int) (*Range, error) {
	if size < 1 {
		return nil, invalidRule("size", "%d (must be at least 1)", size)
	}
	if !validBlock(source, int64(size)) {
		return nil, invalidRule("source", "%U + %d leaves valid scalar space", source, size)
	}
	if !validBlock(target, int64(size)) {
		return nil, invalidRule("target", "%U + %d leaves valid scalar space", target, size)
	}
	return &Range{source: source, target: target, size: size}, nil
}

// Translate maps r to target + (r - source) when r falls inside the source
// block.
func (t *Range) Translate(r rune) (rune, bool) {
	if r < t.source || r > t.source+rune(t.size)-1 {
		return 0, false
	}
	return t.target + (r - t.source), true
}

func (t *Range) String() string {
	return fmt.Sprintf("range %U..%U -> %U", t.source, t.source+rune(t.size)-1, t.target)
}

// Multirange maps several equally spaced repetitions of one block onto a
// single target block. Unicode lays out stylistic alphabets this way: the
// Mathematical Alphanumeric Symbols block repeats A-Z every 52 codepoints
// (bold, italic, bold italic, script, ...), so one Multirange with size 26
// and slice 52 collapses five uppercase variants at once.
type Multirange struct {
	source rune
	target rune
	size   int
	slice  int
	iters  int
}

// NewMultirange builds a Multirange rule: iters sub-blocks of length size,
// spaced slice apart, starting at source, all mapped onto the block of
// length size starting at target. It fails when size is zero, slice is
// smaller than size (no offset could ever match), iters is zero, or the
// source domain or target block leaves valid Unicode scalar space.
func NewMultirange(source, target rune, size, slice, iters int) (*Multirange, error) {
	if size < 1 {
		return nil, invalidRule("size", "%d (must be at least 1)", size)
	}
	if slice < size {
		return nil, invalidRule("slice", "%d (must be at least size %d)", slice, size)
	}
	if iters < 1 {
		return nil, invalidRule("iters", "%d (must be at least 1)", iters)
	}
	if !validBlock(source, int64(slice)*int64(iters)) {
		return nil, invalidRule("source", "%U + %d*%d leaves valid scalar space", source, slice, iters)
	}
	if !validBlock(target, int64(size)) {
		return nil, invalidRule("target", "%U + %d leaves valid scalar space", target, size)
	}
	return &Multirange{source: source, target: target, size: size, slice: slice, iters: iters}, nil
}

// Translate maps r to target + offset where offset is r's position within
// its sub-block. Codepoints in the gap between sub-blocks do not match.
func (t *Multirange) Translate(r rune) (rune, bool) {
	if r < t.source || r > t.source+rune(t.slice*t.iters)-1 {
		return 0, false
	}
	offset := (r - t.source) % rune(t.slice)
	if offset >= rune(t.size) {
		return 0, false
	}
	return t.target + offset, true
}

func (t *Multirange) String() string {
	return fmt.Sprintf("multirange %U size %d slice %d iters %d -> %U",
		t.source, t.size, t.slice, t.iters, t.target)
}

// Lookup maps an arbitrary, non-contiguous set of codepoints through an
// indexed table. It is the catch-all for homoglyph sets that no range
// arithmetic can express, such as Cyrillic lookalikes of Latin letters.
type Lookup struct {
	table map[rune]rune
}

// NewLookup builds a Lookup rule pairing source[i] with target[i]. It fails
// when the two sequences differ in length. When a source codepoint appears
// more than once, the first declared pair wins.
func NewLookup(source, target []rune) (*Lookup, error) {
	if len(source) != len(target) {
		return nil, invalidRule("source", "%d codepoints, target has %d (lengths must match)",
			len(source), len(target))
	}
	table := make(map[rune]rune, len(source))
	for i, r := range source {
		if _, ok := table[r]; ok {
			continue
		}
		table[r] = target[i]
	}
	return &Lookup{table: table}, nil
}

// Translate returns the table entry for r, if any.
func (t *Lookup) Translate(r rune) (rune, bool) {
	out, ok := t.table[r]
	if !ok {
		return 0, false
	}
	return out, true
}

// Len returns the number of distinct source codepoints in the table.
func (t *Lookup) Len() int {
	return len(t.table)
}

func (t *Lookup) String() string {
	return fmt.Sprintf("lookup %d pairs", len(t.table))
}

// ASCIIFilter passes ASCII through unchanged as a matched result and
// rejects everything else. Placed first in a chain it lets plain ASCII
// text short-circuit before any real rule runs; it maps nothing.
type ASCIIFilter struct{}

// NewASCIIFilter builds an ASCIIFilter. It never fails.
func NewASCIIFilter() *ASCIIFilter {
	return &ASCIIFilter{}
}

// Translate returns r unchanged for codepoints 0-127.
func (t *ASCIIFilter) Translate(r rune) (rune, bool) {
	if r > unicode.MaxASCII || r < 0 {
		return 0, false
	}
	return r, true
}

func (t *ASCIIFilter) String() string {
	return "ascii-filter"
}
