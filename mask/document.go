package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrReadDocument indicates a document that could not be read.
var ErrReadDocument = errors.New("read document")

// SplitLines splits text into lines, accepting LF and CRLF terminators. A
// terminator at the end of text does not start another line, so "a\nb\n"
// has two lines. Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// ReadDocument reads the file at path from fs into a [Document]. The
// language is left empty so that it is inferred from the path.
func ReadDocument(fs afero.Fs, path string) (Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	return Document{
		Path:  path,
		Lines: SplitLines(string(data)),
	}, nil
}
