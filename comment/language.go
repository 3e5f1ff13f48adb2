package comment

import (
	"path"
	"slices"
	"strings"
)

// Block holds the delimiters of a block comment.
type Block struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

// IsZero reports whether no block comment syntax is configured.
func (b Block) IsZero() bool {
	return b.Start == "" && b.End == ""
}

// Language describes the comment syntax of one language.
type Language struct {
	// ID is the unique language identifier, e.g. "typescript".
	ID string `json:"id" yaml:"id"`
	// DisplayName is a human-readable name, e.g. "TypeScript".
	DisplayName string `json:"display_name" yaml:"display_name"`
	// SingleLine lists single-line comment prefixes in priority order.
	SingleLine []string `json:"single_line,omitempty" yaml:"single_line,omitempty"`
	// Block is the block comment syntax, if any.
	Block Block `json:"block,omitzero" yaml:"block,omitempty"`
	// Extensions lists file extensions (with the leading dot) or exact
	// basenames used to infer this language from a path.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// clone returns a deep copy of l.
func (l Language) clone() Language {
	l.SingleLine = slices.Clone(l.SingleLine)
	l.Extensions = slices.Clone(l.Extensions)

	return l
}

// matchesPath reports whether the path's basename or extension is listed in
// l.Extensions.
func (l Language) matchesPath(p string) bool {
	base := path.Base(strings.ReplaceAll(p, `\`, "/"))
	ext := path.Ext(base)

	for _, e := range l.Extensions {
		if e == base || (ext != "" && strings.EqualFold(e, ext)) {
			return true
		}
	}

	return false
}
