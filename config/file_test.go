package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/stringtest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  func() config.Settings
		err   error
		input string
	}{
		"empty": {
			input: "",
			want:  config.Default,
		},
		"whitespace only": {
			input: "\n  \n",
			want:  config.Default,
		},
		"all fields": {
			input: stringtest.JoinLF(
				"enabled: true",
				"replacement: '***'",
				"hidden_file_patterns:",
				"  - .env",
				"  - '*.pem'",
				"hidden_folders:",
				"  - secrets",
				"dialects: [guard]",
				"comment_prefixes:",
				"  terraform: ['#', '//']",
				"languages:",
				"  - id: jsonnet",
				"    display_name: Jsonnet",
				"    single_line: ['//', '#']",
				"    block:",
				"      start: /*",
				"      end: '*/'",
				"    extensions: [.jsonnet, .libsonnet]",
			),
			want: func() config.Settings {
				return config.Settings{
					Enabled:            true,
					Replacement:        "***",
					HiddenFilePatterns: []string{".env", "*.pem"},
					HiddenFolders:      []string{"secrets"},
					Dialects:           []string{"guard"},
					CommentPrefixes: map[string][]string{
						"terraform": {"#", "//"},
					},
					Languages: []comment.Language{{
						ID:          "jsonnet",
						DisplayName: "Jsonnet",
						SingleLine:  []string{"//", "#"},
						Block:       comment.Block{Start: "/*", End: "*/"},
						Extensions:  []string{".jsonnet", ".libsonnet"},
					}},
				}
			},
		},
		"partial document keeps defaults": {
			input: "enabled: true\n",
			want: func() config.Settings {
				s := config.Default()
				s.Enabled = true

				return s
			},
		},
		"unknown key": {
			input: "enable: true\n",
			err:   config.ErrInvalidYAML,
		},
		"unknown nested key": {
			input: stringtest.JoinLF(
				"languages:",
				"  - id: x",
				"    prefixes: ['//']",
			),
			err: config.ErrInvalidYAML,
		},
		"syntax error": {
			input: "hidden_folders: [secrets\n",
			err:   config.ErrInvalidYAML,
		},
		"wrong type": {
			input: "enabled: [true]\n",
			err:   config.ErrInvalidYAML,
		},
		"unknown dialect": {
			input: "dialects: [hide, redact]\n",
			err:   config.ErrInvalidSettings,
		},
		"language without id": {
			input: stringtest.JoinLF(
				"languages:",
				"  - display_name: Nameless",
			),
			err: config.ErrInvalidSettings,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.Parse([]byte(tc.input))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want(), got)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	enabled := false
	replacement := ""

	base := config.Settings{
		Enabled:            true,
		Replacement:        "base",
		HiddenFilePatterns: []string{"*.pem"},
		HiddenFolders:      []string{"secrets"},
		Dialects:           []string{"hide", "guard"},
		CommentPrefixes:    map[string][]string{"go": {"//"}},
	}

	t.Run("empty override", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, base, config.Merge(base, config.File{}))
	})

	t.Run("explicit zero values replace", func(t *testing.T) {
		t.Parallel()

		got := config.Merge(base, config.File{
			Enabled:     &enabled,
			Replacement: &replacement,
		})

		assert.False(t, got.Enabled)
		assert.Empty(t, got.Replacement)
		assert.Equal(t, base.HiddenFilePatterns, got.HiddenFilePatterns)
	})

	t.Run("slices and maps replace", func(t *testing.T) {
		t.Parallel()

		got := config.Merge(base, config.File{
			HiddenFilePatterns: []string{".env"},
			HiddenFolders:      []string{},
			Dialects:           []string{"guard"},
			CommentPrefixes:    map[string][]string{"lua": {"--"}},
		})

		assert.Equal(t, []string{".env"}, got.HiddenFilePatterns)
		assert.Empty(t, got.HiddenFolders)
		assert.Equal(t, []string{"guard"}, got.Dialects)
		assert.Equal(t, map[string][]string{"lua": {"--"}}, got.CommentPrefixes)
	})

	t.Run("base is not modified", func(t *testing.T) {
		t.Parallel()

		got := config.Merge(base, config.File{})
		got.HiddenFilePatterns[0] = "changed"
		got.CommentPrefixes["go"][0] = "changed"

		assert.Equal(t, "*.pem", base.HiddenFilePatterns[0])
		assert.Equal(t, "//", base.CommentPrefixes["go"][0])
	})
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	f, err := config.ParseFile([]byte("enabled: false\n"))
	require.NoError(t, err)
	require.NotNil(t, f.Enabled)
	assert.False(t, *f.Enabled)
	assert.Nil(t, f.Replacement)
	assert.Nil(t, f.HiddenFilePatterns)

	f, err = config.ParseFile(nil)
	require.NoError(t, err)
	assert.Equal(t, config.File{}, f)
}
