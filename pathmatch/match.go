package pathmatch

import (
	"path"
	"strings"
)

// Normalize converts backslash separators to forward slashes and lexically
// cleans the result, so "./src\\secrets\\" becomes "src/secrets" and
// "src/../secrets" becomes "secrets". Empty input and "." both yield "".
func Normalize(name string) string {
	if strings.Contains(name, `\`) {
		name = strings.ReplaceAll(name, `\`, "/")
	}

	if name == "" {
		return ""
	}

	name = path.Clean(name)
	if name == "." {
		return ""
	}

	return name
}

// Base returns the final segment of the normalized path.
func Base(path string) string {
	path = Normalize(path)
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}

// MatchesAny reports whether any pattern matches the file path, either by
// basename or by full path. An empty pattern list never matches.
func MatchesAny(path string, patterns []string) bool {
	for _, raw := range patterns {
		p := Compile(raw)
		if p.MatchBase(path) || p.Match(path) {
			return true
		}
	}

	return false
}

// MatchesFolder reports whether any pattern matches the full folder path.
// Unlike [MatchesAny] there is no basename comparison, so a bare name only
// matches a top-level folder of that name.
func MatchesFolder(path string, patterns []string) bool {
	for _, raw := range patterns {
		if Compile(raw).Match(path) {
			return true
		}
	}

	return false
}

// Set is a compiled list of patterns.
//
// Create instances with [NewSet]. Immutable and safe for concurrent use.
type Set struct {
	patterns []Pattern
}

// NewSet compiles patterns into a [Set].
func NewSet(patterns ...string) Set {
	s := Set{patterns: make([]Pattern, 0, len(patterns))}
	for _, p := range patterns {
		s.patterns = append(s.patterns, Compile(p))
	}

	return s
}

// Len returns the number of patterns in s.
func (s Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the source patterns of s.
func (s Set) Patterns() []string {
	out := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		out = append(out, p.String())
	}

	return out
}

// MatchesAny is like the package-level [MatchesAny] using the patterns of s.
func (s Set) MatchesAny(path string) bool {
	for _, p := range s.patterns {
		if p.MatchBase(path) || p.Match(path) {
			return true
		}
	}

	return false
}

// MatchesFolder is like the package-level [MatchesFolder] using the patterns
// of s.
func (s Set) MatchesFolder(path string) bool {
	for _, p := range s.patterns {
		if p.Match(path) {
			return true
		}
	}

	return false
}

// MatchesWithin reports whether path itself or any of its ancestor
// directories satisfies [Set.MatchesFolder]. For "a/b/c.txt" the candidates
// are "a", "a/b" and "a/b/c.txt".
func (s Set) MatchesWithin(path string) bool {
	if len(s.patterns) == 0 {
		return false
	}

	path = Normalize(path)

	for i := 0; i < len(path); i++ {
		if path[i] == '/' && i > 0 && s.MatchesFolder(path[:i]) {
			return true
		}
	}

	return s.MatchesFolder(path)
}
