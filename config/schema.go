package config

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/streamguard/annotation"
)

const (
	typeArray   = "array"
	typeBoolean = "boolean"
	typeObject  = "object"
	typeString  = "string"
)

// Schema returns a JSON Schema (draft 7) describing a settings file.
func Schema() *jsonschema.Schema {
	stringList := func(description string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Type:        typeArray,
			Description: description,
			Items:       &jsonschema.Schema{Type: typeString},
		}
	}

	dialects := make([]any, 0, len(annotation.Names()))
	for _, name := range annotation.Names() {
		dialects = append(dialects, name)
	}

	language := &jsonschema.Schema{
		Type:     typeObject,
		Required: []string{"id"},
		Properties: map[string]*jsonschema.Schema{
			"id": {
				Type:        typeString,
				Description: "Language identifier, e.g. typescript.",
				MinLength:   jsonschema.Ptr(1),
			},
			"display_name": {
				Type:        typeString,
				Description: "Human-readable language name.",
			},
			"single_line": stringList("Single-line comment prefixes in priority order."),
			"block": {
				Type:        typeObject,
				Description: "Block comment delimiters.",
				Properties: map[string]*jsonschema.Schema{
					"start": {Type: typeString},
					"end":   {Type: typeString},
				},
				PropertyOrder:        []string{"start", "end"},
				AdditionalProperties: falseSchema(),
			},
			"extensions": stringList("File extensions (with the leading dot) or exact basenames."),
		},
		PropertyOrder:        []string{"id", "display_name", "single_line", "block", "extensions"},
		AdditionalProperties: falseSchema(),
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "streamguard settings",
		Description: "Controls which files and annotated lines streamguard masks.",
		Type:        typeObject,
		Properties: map[string]*jsonschema.Schema{
			"enabled": {
				Type:        typeBoolean,
				Description: "Turns masking on.",
				Default:     defaultValue(false),
			},
			"replacement": {
				Type:        typeString,
				Description: "Text shown in place of masked lines.",
				Default:     defaultValue(DefaultReplacement),
			},
			"hidden_file_patterns": stringList("Glob patterns for files masked entirely."),
			"hidden_folders":       stringList("Glob patterns for folders whose contents are masked entirely."),
			"dialects": {
				Type:        typeArray,
				Description: "Annotation dialects to scan for.",
				Items:       &jsonschema.Schema{Type: typeString, Enum: dialects},
				Default:     defaultValue(annotation.Names()),
			},
			"comment_prefixes": {
				Type:                 typeObject,
				Description:          "Single-line comment prefixes by language identifier.",
				AdditionalProperties: stringList(""),
			},
			"languages": {
				Type:        typeArray,
				Description: "Additional languages, replacing built-ins with the same id.",
				Items:       language,
			},
		},
		PropertyOrder: []string{
			"enabled",
			"replacement",
			"hidden_file_patterns",
			"hidden_folders",
			"dialects",
			"comment_prefixes",
			"languages",
		},
		AdditionalProperties: falseSchema(),
	}
}

// falseSchema returns a schema that matches nothing.
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// defaultValue converts a Go value to a JSON Schema default.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}
