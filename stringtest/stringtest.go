// Package stringtest builds text fixtures for tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//	) // -> "line1\r\nline2"
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Input removes the common indentation from a raw string literal so that
// fixtures can be indented along with the surrounding code. One leading
// newline and one trailing whitespace-only line are dropped, and
// whitespace-only lines become empty.
//
// Example:
//
//	src := stringtest.Input(`
//		// @stream-hide-next
//		const key = "abc";
//	`) // -> "// @stream-hide-next\nconst key = \"abc\";"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")

	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	indent := ""
	first := true

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			indent = lead
			first = false

			continue
		}

		indent = commonPrefix(indent, lead)
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines, "\n")
}

// Lines is like [Input] but returns the lines. An input containing only
// whitespace has no lines.
func Lines(s string) []string {
	s = Input(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
