package mask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.jacobcolvin.com/streamguard/annotation"
)

// ErrRender indicates that rendered output could not be written.
var ErrRender = errors.New("render")

// Render writes lines to w, each followed by "\n". Lines inside any of
// ranges are replaced by their leading whitespace followed by replacement.
// Ranges may overlap and may extend past the last line.
func Render(w io.Writer, lines []string, ranges []annotation.Range, replacement string) error {
	masked := make([]bool, len(lines))
	for _, r := range ranges {
		for i := max(r.Start, 0); i <= r.End && i < len(lines); i++ {
			masked[i] = true
		}
	}

	bw := bufio.NewWriter(w)

	for i, line := range lines {
		if masked[i] {
			line = Indent(line) + replacement
		}

		_, err := bw.WriteString(line)
		if err == nil {
			err = bw.WriteByte('\n')
		}

		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrRender, i+1, err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	return nil
}

// Indent returns the leading spaces and tabs of line.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
