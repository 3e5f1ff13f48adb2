package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.jacobcolvin.com/streamguard/annotation"
	"go.jacobcolvin.com/streamguard/comment"
)

// DefaultReplacement is the placeholder text shown in place of masked lines.
const DefaultReplacement = "[ 🔴 HIDDEN ]"

// ErrInvalidSettings indicates settings that cannot be used.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings control which files and lines are masked.
type Settings struct {
	// CommentPrefixes overrides the single-line comment prefixes of
	// languages, keyed by language ID.
	CommentPrefixes map[string][]string `json:"comment_prefixes,omitempty" yaml:"comment_prefixes,omitempty"`
	// Replacement is the text rendered in place of masked lines.
	Replacement string `json:"replacement" yaml:"replacement"`
	// HiddenFilePatterns lists glob patterns for files masked entirely.
	HiddenFilePatterns []string `json:"hidden_file_patterns" yaml:"hidden_file_patterns"`
	// HiddenFolders lists glob patterns for folders whose contents are
	// masked entirely.
	HiddenFolders []string `json:"hidden_folders" yaml:"hidden_folders"`
	// Dialects lists the annotation dialects to scan for, by name.
	Dialects []string `json:"dialects" yaml:"dialects"`
	// Languages registers additional languages, or replaces built-in ones
	// with the same ID.
	Languages []comment.Language `json:"languages,omitempty" yaml:"languages,omitempty"`
	// Enabled turns masking on. Nothing is masked while it is false.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Default returns the default [Settings]: masking disabled, no hidden paths,
// [DefaultReplacement] and every dialect.
func Default() Settings {
	return Settings{
		Replacement:        DefaultReplacement,
		HiddenFilePatterns: []string{},
		HiddenFolders:      []string{},
		Dialects:           annotation.Names(),
	}
}

// Validate reports every problem with s. The returned error wraps
// [ErrInvalidSettings].
func (s Settings) Validate() error {
	var errs []error

	for _, name := range s.Dialects {
		if _, ok := annotation.Lookup(name); !ok {
			errs = append(errs, fmt.Errorf("unknown dialect %q, expected one of: %v", name, annotation.Names()))
		}
	}

	for i, lang := range s.Languages {
		if lang.ID == "" {
			errs = append(errs, fmt.Errorf("languages[%d]: empty id", i))
		}
	}

	for _, id := range slices.Sorted(maps.Keys(s.CommentPrefixes)) {
		if id == "" {
			errs = append(errs, errors.New("comment_prefixes: empty language id"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}

	return nil
}

// clone returns a deep copy of s.
func (s Settings) clone() Settings {
	s.HiddenFilePatterns = slices.Clone(s.HiddenFilePatterns)
	s.HiddenFolders = slices.Clone(s.HiddenFolders)
	s.Dialects = slices.Clone(s.Dialects)
	s.Languages = slices.Clone(s.Languages)

	if s.CommentPrefixes != nil {
		prefixes := make(map[string][]string, len(s.CommentPrefixes))
		for id, p := range s.CommentPrefixes {
			prefixes[id] = slices.Clone(p)
		}

		s.CommentPrefixes = prefixes
	}

	return s
}
