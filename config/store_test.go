package config_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/stringtest"
)

const (
	workspacePath = "/work/.streamguard.yaml"
	globalPath    = "/home/user/.config/streamguard/config.yaml"
)

// lockedFs rejects writes to a single path.
type lockedFs struct {
	afero.Fs

	path string
}

func (fs lockedFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == fs.path && flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return fs.Fs.OpenFile(name, flag, perm)
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func readFile(t *testing.T, fs afero.Fs, path string) config.File {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	f, err := config.ParseFile(data)
	require.NoError(t, err)

	return f
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		files map[string]string
		want  func() config.Settings
		err   error
	}{
		"no files": {
			want: config.Default,
		},
		"global only": {
			files: map[string]string{
				globalPath: "enabled: true\nhidden_file_patterns: [.env]\n",
			},
			want: func() config.Settings {
				s := config.Default()
				s.Enabled = true
				s.HiddenFilePatterns = []string{".env"}

				return s
			},
		},
		"workspace overrides global": {
			files: map[string]string{
				globalPath:    "enabled: true\nreplacement: global\nhidden_folders: [secrets]\n",
				workspacePath: "enabled: false\nhidden_folders: [private]\n",
			},
			want: func() config.Settings {
				s := config.Default()
				s.Replacement = "global"
				s.HiddenFolders = []string{"private"}

				return s
			},
		},
		"invalid workspace file": {
			files: map[string]string{
				workspacePath: "enabled: [\n",
			},
			err: config.ErrInvalidYAML,
		},
		"invalid merged settings": {
			files: map[string]string{
				globalPath: "dialects: [nope]\n",
			},
			err: config.ErrInvalidSettings,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			for path, content := range tc.files {
				writeFile(t, fs, path, content)
			}

			got, err := config.NewStore(fs, workspacePath, globalPath).Load()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want(), got)
		})
	}
}

func TestStoreSetEnabled(t *testing.T) {
	t.Parallel()

	t.Run("writes workspace", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		store := config.NewStore(fs, workspacePath, globalPath)

		scope, err := store.SetEnabled(true)
		require.NoError(t, err)
		assert.Equal(t, config.ScopeWorkspace, scope)

		f := readFile(t, fs, workspacePath)
		require.NotNil(t, f.Enabled)
		assert.True(t, *f.Enabled)

		exists, err := afero.Exists(fs, globalPath)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("preserves other keys", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, workspacePath, stringtest.Input(`
			replacement: "***"
			enabled: true
			hidden_file_patterns:
			  - .env
			  - "*.pem"
			comment_prefixes:
			  terraform: ["#"]
		`))

		_, err := config.NewStore(fs, workspacePath, globalPath).SetEnabled(false)
		require.NoError(t, err)

		f := readFile(t, fs, workspacePath)
		require.NotNil(t, f.Enabled)
		require.NotNil(t, f.Replacement)
		assert.False(t, *f.Enabled)
		assert.Equal(t, "***", *f.Replacement)
		assert.Equal(t, []string{".env", "*.pem"}, f.HiddenFilePatterns)
		assert.Equal(t, map[string][]string{"terraform": {"#"}}, f.CommentPrefixes)
	})

	t.Run("falls back to global", func(t *testing.T) {
		t.Parallel()

		mem := afero.NewMemMapFs()
		fs := lockedFs{Fs: mem, path: workspacePath}
		writeFile(t, mem, globalPath, "replacement: global\n")

		scope, err := config.NewStore(fs, workspacePath, globalPath).SetEnabled(true)
		require.NoError(t, err)
		assert.Equal(t, config.ScopeGlobal, scope)

		f := readFile(t, mem, globalPath)
		require.NotNil(t, f.Enabled)
		assert.True(t, *f.Enabled)
		require.NotNil(t, f.Replacement)
		assert.Equal(t, "global", *f.Replacement)
	})

	t.Run("invalid workspace file is not overwritten", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, workspacePath, "enabled: [\n")

		scope, err := config.NewStore(fs, workspacePath, globalPath).SetEnabled(true)
		require.NoError(t, err)
		assert.Equal(t, config.ScopeGlobal, scope)

		data, err := afero.ReadFile(fs, workspacePath)
		require.NoError(t, err)
		assert.Equal(t, "enabled: [\n", string(data))
	})

	t.Run("no workspace path", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()

		scope, err := config.NewStore(fs, "", globalPath).SetEnabled(true)
		require.NoError(t, err)
		assert.Equal(t, config.ScopeGlobal, scope)
	})

	t.Run("both scopes fail", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		_, err := config.NewStore(fs, workspacePath, globalPath).SetEnabled(true)
		require.ErrorIs(t, err, config.ErrWriteSettings)
		assert.ErrorContains(t, err, string(config.ScopeWorkspace))
		assert.ErrorContains(t, err, string(config.ScopeGlobal))
	})
}

func TestStoreToggle(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := config.NewStore(fs, workspacePath, globalPath)

	enabled, scope, err := store.Toggle()
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, config.ScopeWorkspace, scope)

	enabled, _, err = store.Toggle()
	require.NoError(t, err)
	assert.False(t, enabled)

	s, err := store.Load()
	require.NoError(t, err)
	assert.False(t, s.Enabled)
}

func TestStorePath(t *testing.T) {
	t.Parallel()

	store := config.NewStore(afero.NewMemMapFs(), workspacePath, globalPath)

	assert.Equal(t, workspacePath, store.Path(config.ScopeWorkspace))
	assert.Equal(t, globalPath, store.Path(config.ScopeGlobal))
}
