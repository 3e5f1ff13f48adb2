package annotation

import "strings"

// Scan returns the ranges masked by the markers in lines.
//
// Ranges are emitted in the order their closing condition is reached: at the
// END line for blocks, at the marker line for INLINE, and at the following
// line for NEXT. prefixes lists comment prefixes for the document's language.
// It is ignored unless the dialect's [Policy.Scoped] is set.
func (d Dialect) Scan(lines, prefixes []string) []Range {
	if !d.Policy.Scoped {
		prefixes = nil
	}

	var (
		ranges      []Range
		pendingNext bool
		blockStart  = -1
	)

	for i, line := range lines {
		switch {
		case inComment(line, d.Markers.Start, prefixes):
			blockStart = i

		case inComment(line, d.Markers.End, prefixes):
			if blockStart < 0 {
				continue
			}

			if r, ok := d.blockRange(blockStart, i); ok {
				ranges = append(ranges, r)
			}

			blockStart = -1

		case inComment(line, d.Markers.Next, prefixes):
			pendingNext = true

		case inComment(line, d.Markers.Inline, prefixes):
			ranges = append(ranges, Line(i))
			pendingNext = false

		case pendingNext:
			ranges = append(ranges, Line(i))
			pendingNext = false
		}
	}

	// A NEXT on the last line has nothing to mask; pendingNext is dropped.

	return ranges
}

// blockRange computes the range for a block opened at start and closed at
// end. Content-only blocks with no lines between the markers yield no range.
func (d Dialect) blockRange(start, end int) (Range, bool) {
	if d.Policy.InclusiveBounds {
		return Range{Start: start, End: end}, true
	}

	r := Range{Start: start + 1, End: end - 1}
	if r.Start > r.End {
		return Range{}, false
	}

	return r, true
}

// inComment reports whether token occurs in line and, when prefixes is
// non-empty, whether any prefix occurs before the token's first occurrence.
func inComment(line, token string, prefixes []string) bool {
	idx := strings.Index(line, token)
	if idx < 0 {
		return false
	}

	if len(prefixes) == 0 {
		return true
	}

	before := line[:idx]
	for _, p := range prefixes {
		if strings.Contains(before, p) {
			return true
		}
	}

	return false
}
