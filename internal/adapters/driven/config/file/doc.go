// Package file loads declarative translator rules from a TOML file.
//
// The file is parsed in one pass into typed records; chain order follows
// document order of the [[rules]] array. Character fields accept a single
// character or a \u{XXXX} codepoint escape.
//
//	[global]
//	use_ascii_filter = true
//
//	[[rules]]
//	name = "math-bold-upper"
//	type = "multirange"
//	source = "\\u{1D400}"
//	target = "A"
//	size = 26
//	slice = 52
//	iters = 5
//
//	[[rules]]
//	name = "cyrillic-lookalikes"
//	type = "lookup"
//	source = "аеорсух"
//	target = "aeopcyx"
//
// The package implements the driven.RuleSource port. It reports parse
// errors (missing field, bad escape, unknown type) with rule context; the
// domain constructors remain the final guard on rule invariants.
package file
