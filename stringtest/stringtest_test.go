package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/streamguard/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line": {
			input: "API_KEY=abc",
			want:  "API_KEY=abc",
		},
		"leading and trailing newline": {
			input: "\nAPI_KEY=abc\n",
			want:  "API_KEY=abc",
		},
		"common indent spaces": {
			input: `
    # @stream-guard-next
    API_KEY=abc`,
			want: "# @stream-guard-next\nAPI_KEY=abc",
		},
		"common indent tabs": {
			input: "\n\t// @stream-hide-start\n\tsecret\n\t// @stream-hide-end",
			want:  "// @stream-hide-start\nsecret\n// @stream-hide-end",
		},
		"varying indent": {
			input: `
    func f() {
      key := "abc" // @stream-hide-inline
    }`,
			want: "func f() {\n  key := \"abc\" // @stream-hide-inline\n}",
		},
		"whitespace-only lines": {
			input: "\n    a\n    \n    b",
			want:  "a\n\nb",
		},
		"trailing indented line": {
			input: "\n\t\ta\n\t\tb\n\t",
			want:  "a\nb",
		},
		"extra leading newline is kept": {
			input: "\n\na\nb",
			want:  "\na\nb",
		},
		"extra trailing newline is kept": {
			input: "a\nb\n\n",
			want:  "a\nb\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Input(tc.input))
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty string": {
			input: "",
			want:  nil,
		},
		"whitespace only": {
			input: "\n\t\t\n\t",
			want:  nil,
		},
		"indented fixture": {
			input: `
				// @stream-guard-start
				if ok {
					key := "abc"
				}
				// @stream-guard-end
			`,
			want: []string{
				"// @stream-guard-start",
				"if ok {",
				"\tkey := \"abc\"",
				"}",
				"// @stream-guard-end",
			},
		},
		"keeps blank lines": {
			input: "\n  a\n\n  b\n",
			want:  []string{"a", "", "b"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Lines(tc.input))
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		lf    string
		crlf  string
	}{
		"empty input": {
			input: nil,
			lf:    "",
			crlf:  "",
		},
		"single string": {
			input: []string{"a"},
			lf:    "a",
			crlf:  "a",
		},
		"three strings": {
			input: []string{"a", "b", "c"},
			lf:    "a\nb\nc",
			crlf:  "a\r\nb\r\nc",
		},
		"with empty string": {
			input: []string{"a", "", "c"},
			lf:    "a\n\nc",
			crlf:  "a\r\n\r\nc",
		},
		"already contains newlines": {
			input: []string{"a\nb", "c"},
			lf:    "a\nb\nc",
			crlf:  "a\nb\r\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.lf, stringtest.JoinLF(tc.input...))
			assert.Equal(t, tc.crlf, stringtest.JoinCRLF(tc.input...))
		})
	}
}
