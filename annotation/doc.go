// Package annotation finds comment-embedded markers in document lines and
// computes the line ranges they mask.
//
// Four marker forms are recognized:
//
//   - NEXT masks the line after the marker line.
//   - START and END mask a block.
//   - INLINE masks the line carrying it.
//
// A [Dialect] fixes the literal marker tokens and a [Policy] controlling how
// blocks are bounded and whether markers must sit inside a comment. Two
// dialects are built in:
//
//   - [Hide] uses the @stream-hide-* markers. Blocks include their marker
//     lines and markers match anywhere on a line.
//   - [Guard] uses the @stream-guard-* markers. Blocks cover only the lines
//     between the markers, and when comment prefixes are supplied a marker only
//     counts if a prefix occurs before it on the same line.
//
// Scanning is a single forward pass with call-local state:
//
//	lines := []string{
//		"// @stream-guard-next",
//		`const token = "hunter2"`,
//	}
//	ranges := annotation.Guard.Scan(lines, []string{"//"})
//	// ranges == []Range{{Start: 1, End: 1}}
//
// The comment check only looks at the order of the prefix and the marker on a
// line; a prefix inside a string literal ahead of the marker still counts.
// Malformed input (an END with no open block, a START never closed, a NEXT on
// the last line) is never an error and simply masks nothing.
package annotation
