package comment_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/streamguard/comment"
)

func TestRegistryGet(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()

	tcs := map[string]struct {
		id     string
		want   comment.Language
		wantOK bool
	}{
		"typescript": {
			id: "typescript",
			want: comment.Language{
				ID:          "typescript",
				DisplayName: "TypeScript",
				SingleLine:  []string{"//"},
				Block:       comment.Block{Start: "/*", End: "*/"},
			},
			wantOK: true,
		},
		"lua": {
			id: "lua",
			want: comment.Language{
				ID:          "lua",
				DisplayName: "Lua",
				SingleLine:  []string{"--"},
				Block:       comment.Block{Start: "--[[", End: "]]"},
			},
			wantOK: true,
		},
		"unknown language": {
			id:     "unknown-lang-xyz",
			wantOK: false,
		},
		"lookup is case sensitive": {
			id:     "TypeScript",
			wantOK: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := reg.Get(tc.id)
			require.Equal(t, tc.wantOK, ok)

			if !tc.wantOK {
				return
			}

			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.DisplayName, got.DisplayName)
			assert.Equal(t, tc.want.SingleLine, got.SingleLine)
			assert.Equal(t, tc.want.Block, got.Block)
		})
	}
}

func TestRegistryPrefixes(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()

	tcs := map[string]struct {
		id   string
		want []string
	}{
		"typescript": {
			id:   "typescript",
			want: []string{"//"},
		},
		"lua": {
			id:   "lua",
			want: []string{"--"},
		},
		"python": {
			id:   "python",
			want: []string{"#"},
		},
		"html is block only": {
			id:   "html",
			want: []string{"<!--"},
		},
		"css is block only": {
			id:   "css",
			want: []string{"/*"},
		},
		"unknown language": {
			id:   "unknown-lang",
			want: []string{"//", "#", "--"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, reg.Prefixes(tc.id))
		})
	}
}

func TestRegistryPrefixesNoSyntax(t *testing.T) {
	t.Parallel()

	reg := comment.NewRegistry(comment.Language{ID: "plain", DisplayName: "Plain"})

	assert.Equal(t, comment.FallbackPrefixes(), reg.Prefixes("plain"))
}

func TestRegistryOrder(t *testing.T) {
	t.Parallel()

	reg := comment.NewRegistry(
		comment.Language{ID: "a", SingleLine: []string{"//"}},
		comment.Language{ID: "b", SingleLine: []string{"#"}},
	)
	reg.Register(comment.Language{ID: "c", SingleLine: []string{"--"}})
	reg.Register(comment.Language{ID: "a", DisplayName: "A", SingleLine: []string{";"}})

	assert.Equal(t, []string{"a", "b", "c"}, reg.IDs())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].DisplayName)
	assert.Equal(t, []string{";"}, all[0].SingleLine)
}

func TestDefaultRegistryContents(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()
	ids := reg.IDs()

	assert.NotEmpty(t, ids)
	assert.Contains(t, ids, "typescript")
	assert.Contains(t, ids, "lua")
	assert.Equal(t, "typescript", ids[0])
	assert.Len(t, reg.All(), len(ids))
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()
	reg.Register(comment.Language{
		ID:          "haskell",
		DisplayName: "Haskell",
		SingleLine:  []string{"--"},
		Block:       comment.Block{Start: "{-", End: "-}"},
	})

	got, ok := reg.Get("haskell")
	require.True(t, ok)
	assert.Equal(t, "Haskell", got.DisplayName)
	assert.Equal(t, []string{"--"}, got.SingleLine)
	assert.Equal(t, "haskell", reg.IDs()[len(reg.IDs())-1])
}

func TestRegistryApplyOverrides(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()
	before, ok := reg.Get("javascript")
	require.True(t, ok)

	reg.ApplyOverrides(map[string][]string{
		"javascript": {"//", "#"},
		"mylang":     {"%%"},
	})

	js, ok := reg.Get("javascript")
	require.True(t, ok)
	assert.Equal(t, []string{"//", "#"}, js.SingleLine)
	assert.Equal(t, before.DisplayName, js.DisplayName)
	assert.Equal(t, before.Block, js.Block)

	mine, ok := reg.Get("mylang")
	require.True(t, ok)
	assert.Equal(t, "mylang", mine.ID)
	assert.Equal(t, "mylang", mine.DisplayName)
	assert.Equal(t, []string{"%%"}, mine.SingleLine)
	assert.True(t, mine.Block.IsZero())
	assert.Equal(t, []string{"%%"}, reg.Prefixes("mylang"))
}

func TestRegistryReturnsCopies(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()

	got, ok := reg.Get("go")
	require.True(t, ok)

	got.SingleLine[0] = "XX"

	prefixes := reg.Prefixes("go")
	prefixes[0] = "YY"

	assert.Equal(t, []string{"//"}, reg.Prefixes("go"))

	overrides := map[string][]string{"go": {"//"}}
	reg.ApplyOverrides(overrides)
	overrides["go"][0] = "ZZ"

	assert.Equal(t, []string{"//"}, reg.Prefixes("go"))
}

func TestRegistryForPath(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()

	tcs := map[string]struct {
		path   string
		wantID string
	}{
		"go file": {
			path:   "cmd/main.go",
			wantID: "go",
		},
		"windows path": {
			path:   `src\app\index.ts`,
			wantID: "typescript",
		},
		"dockerfile basename": {
			path:   "build/Dockerfile",
			wantID: "dockerfile",
		},
		"dotenv": {
			path:   "src/.env",
			wantID: "dotenv",
		},
		"markup": {
			path:   "docs/index.html",
			wantID: "html",
		},
		"unknown extension": {
			path:   "data/blob.bin",
			wantID: "",
		},
		"no extension": {
			path:   "LICENSE",
			wantID: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := reg.ForPath(tc.path)
			if tc.wantID == "" {
				assert.False(t, ok)

				return
			}

			require.True(t, ok)
			assert.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := comment.DefaultRegistry()

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				if i%4 == 0 {
					reg.ApplyOverrides(map[string][]string{"python": {"#"}})
				}

				assert.Equal(t, []string{"#"}, reg.Prefixes("python"))
				assert.NotEmpty(t, reg.All())
			}
		}()
	}

	wg.Wait()
}
