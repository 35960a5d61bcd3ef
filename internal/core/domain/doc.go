// Package domain defines the core types for deglyph.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Translator: A single codepoint-mapping rule
//   - Chain: An ordered list of translators evaluated first-match
//   - Rule: A typed, declarative rule record produced by a RuleSource
//   - RuleSet: A parsed configuration document (rules plus global options)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
//     (the golang.org/x/text stream plumbing lives in services)
package domain
