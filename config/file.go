package config

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/streamguard/comment"
)

// ErrInvalidYAML indicates a settings document that could not be decoded.
var ErrInvalidYAML = errors.New("invalid yaml")

// File is the decoded form of one settings document. Nil fields were not
// present in the document and leave lower-priority values untouched when
// merged.
type File struct {
	Enabled            *bool               `yaml:"enabled"`
	Replacement        *string             `yaml:"replacement"`
	CommentPrefixes    map[string][]string `yaml:"comment_prefixes"`
	HiddenFilePatterns []string            `yaml:"hidden_file_patterns"`
	HiddenFolders      []string            `yaml:"hidden_folders"`
	Dialects           []string            `yaml:"dialects"`
	Languages          []comment.Language  `yaml:"languages"`
}

// ParseFile decodes a settings document. Unknown keys are rejected. Empty
// input decodes to an empty [File]. Errors wrap [ErrInvalidYAML].
func ParseFile(data []byte) (File, error) {
	var f File

	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}

	err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	return f, nil
}

// Parse decodes a settings document and applies it over [Default]. The
// result is validated. Empty input returns the defaults.
func Parse(data []byte) (Settings, error) {
	f, err := ParseFile(data)
	if err != nil {
		return Settings{}, err
	}

	s := Merge(Default(), f)

	err = s.Validate()
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Merge returns base with every field present in override applied on top.
// Slices and maps present in override replace those of base rather than
// being combined with them.
func Merge(base Settings, override File) Settings {
	s := base.clone()

	if override.Enabled != nil {
		s.Enabled = *override.Enabled
	}

	if override.Replacement != nil {
		s.Replacement = *override.Replacement
	}

	if override.CommentPrefixes != nil {
		s.CommentPrefixes = make(map[string][]string, len(override.CommentPrefixes))
		for id, prefixes := range override.CommentPrefixes {
			s.CommentPrefixes[id] = slices.Clone(prefixes)
		}
	}

	if override.HiddenFilePatterns != nil {
		s.HiddenFilePatterns = slices.Clone(override.HiddenFilePatterns)
	}

	if override.HiddenFolders != nil {
		s.HiddenFolders = slices.Clone(override.HiddenFolders)
	}

	if override.Dialects != nil {
		s.Dialects = slices.Clone(override.Dialects)
	}

	if override.Languages != nil {
		s.Languages = slices.Clone(override.Languages)
	}

	return s
}

// setKey decodes data as an ordered mapping, sets key to value and encodes
// the result. Other keys keep their values and order.
func setKey(data []byte, key string, value any) ([]byte, error) {
	var doc yaml.MapSlice

	if len(bytes.TrimSpace(data)) > 0 {
		err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
	}

	found := false

	for i := range doc {
		if k, ok := doc[i].Key.(string); ok && k == key {
			doc[i].Value = value
			found = true
		}
	}

	if !found {
		doc = append(doc, yaml.MapItem{Key: key, Value: value})
	}

	out, err := yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}

	return out, nil
}
