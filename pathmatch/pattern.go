package pathmatch

import "strings"

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentWildcard
	segmentGlobstar
)

// segment is one precompiled slash-separated pattern segment.
type segment struct {
	text string
	kind segmentKind
}

// Pattern is a compiled glob pattern.
//
// Create instances with [Compile]. The zero value matches nothing. Safe for
// concurrent use.
type Pattern struct {
	source   string
	segments []segment
	hasSlash bool
}

// Compile compiles a glob pattern. Every string is a valid pattern.
func Compile(pattern string) Pattern {
	parts := strings.Split(pattern, "/")

	p := Pattern{
		source:   pattern,
		segments: make([]segment, 0, len(parts)),
		hasSlash: len(parts) > 1,
	}

	for _, part := range parts {
		switch {
		case part == "**":
			// Consecutive globstars are equivalent to one.
			if n := len(p.segments); n > 0 && p.segments[n-1].kind == segmentGlobstar {
				continue
			}

			p.segments = append(p.segments, segment{text: part, kind: segmentGlobstar})
		case strings.Contains(part, "*"):
			p.segments = append(p.segments, segment{text: part, kind: segmentWildcard})
		default:
			p.segments = append(p.segments, segment{text: part, kind: segmentLiteral})
		}
	}

	return p
}

// String returns the source pattern.
func (p Pattern) String() string {
	return p.source
}

// Match reports whether the full normalized path matches p.
func (p Pattern) Match(path string) bool {
	return p.matchSegments(strings.Split(Normalize(path), "/"))
}

// MatchBase reports whether the final segment of path matches p. Patterns
// containing a slash never match a basename.
func (p Pattern) MatchBase(path string) bool {
	if p.hasSlash {
		return false
	}

	return p.matchSegments([]string{Base(path)})
}

// matchSegments matches the compiled segments against path segments.
// Results are memoized per (pattern index, path index), which bounds the work
// by len(p.segments) * len(parts) segment comparisons.
func (p Pattern) matchSegments(parts []string) bool {
	cols := len(parts) + 1
	memo := make([]int8, (len(p.segments)+1)*cols)

	var match func(pi, si int) bool
	match = func(pi, si int) bool {
		cell := &memo[pi*cols+si]
		if *cell != 0 {
			return *cell > 0
		}

		var ok bool

		switch {
		case pi == len(p.segments):
			ok = si == len(parts)
		case p.segments[pi].kind == segmentGlobstar:
			// Zero segments, or consume one and stay on the globstar.
			ok = match(pi+1, si) || (si < len(parts) && match(pi, si+1))
		default:
			ok = si < len(parts) && matchSegment(p.segments[pi], parts[si]) && match(pi+1, si+1)
		}

		*cell = -1
		if ok {
			*cell = 1
		}

		return ok
	}

	return match(0, 0)
}

// matchSegment matches one compiled segment against one path segment.
func matchSegment(seg segment, part string) bool {
	if seg.kind == segmentLiteral {
		return seg.text == part
	}

	return matchWildcard(seg.text, part)
}

// matchWildcard matches a pattern where "*" matches any run of bytes against
// input, which never contains a slash.
func matchWildcard(pattern, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && pattern[pIdx] != '*' && pattern[pIdx] == input[sIdx] {
			pIdx++
			sIdx++

			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			starPattern = pIdx
			starInput = sIdx
			pIdx++

			continue
		}

		if starPattern >= 0 {
			// Backtrack: let the last star consume one more byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput

			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
