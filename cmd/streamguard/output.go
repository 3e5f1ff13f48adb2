package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// registerOutputFlag adds --output to cmd, accepting one of formats. The
// first format is the default.
func registerOutputFlag(cmd *cobra.Command, p *string, formats ...string) {
	cmd.Flags().StringVarP(p, "output", "o", formats[0], fmt.Sprintf("output format, one of: %v", formats))

	err := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
}

func checkOutput(format string, formats ...string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("%w: %q, expected one of: %v", ErrUnknownOutput, format, formats)
	}

	return nil
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	var (
		out []byte
		err error
	)

	switch format {
	case outputYAML:
		out, err = yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
