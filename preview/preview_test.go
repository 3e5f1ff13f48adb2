package preview_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/log"
	"go.jacobcolvin.com/streamguard/mask"
	"go.jacobcolvin.com/streamguard/preview"
)

func guardedDoc() mask.Document {
	return mask.Document{
		Path: "app.ts",
		Lines: []string{
			"const a = 1;",
			"// @stream-guard-next",
			"const key = 'abc';",
		},
	}
}

func enabledSettings() config.Settings {
	s := config.Default()
	s.Enabled = true

	return s
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Stream Mode ON", preview.StatusText(true))
	assert.Equal(t, "Stream Mode OFF", preview.StatusText(false))
}

func TestModelRender(t *testing.T) {
	t.Parallel()

	m := preview.New(guardedDoc(), enabledSettings(), comment.DefaultRegistry())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	out := m.Render()
	assert.Contains(t, out, "Stream Mode ON")
	assert.Contains(t, out, "app.ts")
	assert.Contains(t, out, "1 masked")
	assert.Contains(t, out, "const a = 1;")
	assert.Contains(t, out, config.DefaultReplacement)
	assert.NotContains(t, out, "'abc'")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestModelToggle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		saveErr     error
		wantMessage string
		save        bool
		start       bool
		wantEnabled bool
	}{
		"local toggle off": {
			start:       true,
			wantEnabled: false,
		},
		"local toggle on": {
			start:       false,
			wantEnabled: true,
		},
		"saved toggle off": {
			save:        true,
			start:       true,
			wantEnabled: false,
		},
		"saved toggle on": {
			save:        true,
			start:       false,
			wantEnabled: true,
		},
		"save error": {
			save:        true,
			saveErr:     errors.New("read-only"),
			start:       true,
			wantMessage: "toggle failed: read-only",
			wantEnabled: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var saved []bool

			var opts []preview.Option
			if tc.save {
				opts = append(opts, preview.WithToggle(func(enabled bool) error {
					saved = append(saved, enabled)

					return tc.saveErr
				}))
			}

			settings := config.Default()
			settings.Enabled = tc.start

			m := preview.New(guardedDoc(), settings, comment.DefaultRegistry(), opts...)
			require.Equal(t, tc.start, m.Enabled())

			assert.Nil(t, m.HandleKey("t"))
			assert.Equal(t, tc.wantEnabled, m.Enabled())

			if tc.save {
				// The saved value is the negation of what was on screen.
				assert.Equal(t, []bool{!tc.start}, saved)
			}

			out := m.Render()
			assert.Contains(t, out, preview.StatusText(tc.wantEnabled))
			assert.Equal(t, tc.wantEnabled, strings.Contains(out, config.DefaultReplacement))
			assert.Equal(t, !tc.wantEnabled, strings.Contains(out, "'abc'"))

			if tc.wantMessage != "" {
				assert.Contains(t, out, tc.wantMessage)
			}
		})
	}
}

func TestModelToggleTwice(t *testing.T) {
	t.Parallel()

	var saved []bool

	m := preview.New(guardedDoc(), enabledSettings(), comment.DefaultRegistry(),
		preview.WithToggle(func(enabled bool) error {
			saved = append(saved, enabled)

			return nil
		}),
	)

	m.HandleKey("t")
	m.HandleKey("t")

	assert.Equal(t, []bool{false, true}, saved)
	assert.True(t, m.Enabled())
}

func TestModelMaskOptions(t *testing.T) {
	t.Parallel()

	s := enabledSettings()
	s.HiddenFolders = []string{"secrets"}

	doc := mask.Document{Path: "/work/secrets/key.txt", Lines: []string{"KEY=1"}}

	m := preview.New(doc, s, comment.DefaultRegistry())
	assert.False(t, m.Result().WholeFile)

	m = preview.New(doc, s, comment.DefaultRegistry(), preview.WithMaskOptions(mask.WithRoot("/work")))
	assert.True(t, m.Result().WholeFile)
	assert.NotContains(t, m.Render(), "KEY=1")
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	m := preview.New(guardedDoc(), enabledSettings(), comment.DefaultRegistry())

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		cmd := m.HandleKey(key)
		require.NotNil(t, cmd, key)
		assert.IsType(t, tea.QuitMsg{}, cmd(), key)
	}

	assert.Nil(t, m.HandleKey("x"))
}

func TestModelScroll(t *testing.T) {
	t.Parallel()

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	m := preview.New(mask.Document{Path: "notes.txt", Lines: lines}, enabledSettings(), comment.DefaultRegistry())

	// Three body lines fit above the status line.
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})

	steps := []struct {
		key  string
		want int
	}{
		{key: "k", want: 0},
		{key: "down", want: 1},
		{key: "j", want: 2},
		{key: "up", want: 1},
		{key: "G", want: 7},
		{key: "j", want: 7},
		{key: "g", want: 0},
		{key: "pgdown", want: 3},
		{key: "end", want: 7},
		{key: "pgup", want: 4},
		{key: "home", want: 0},
	}

	for _, step := range steps {
		m.HandleKey(step.key)
		assert.Equal(t, step.want, m.Offset(), step.key)
	}

	m.HandleKey("G")

	out := m.Render()
	assert.Contains(t, out, "line 7")
	assert.Contains(t, out, "line 9")
	assert.NotContains(t, out, "line 6")

	// Growing the window pulls the offset back so the last page stays full.
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 0, m.Offset())
}

func TestModelLogs(t *testing.T) {
	t.Parallel()

	pub := log.NewPublisher()
	sub := pub.Subscribe()

	m := preview.New(guardedDoc(), enabledSettings(), comment.DefaultRegistry(), preview.WithLogs(sub))

	cmd := m.Init()
	require.NotNil(t, cmd)

	_, err := pub.Write([]byte("settings reloaded\n"))
	require.NoError(t, err)

	_, next := m.Update(cmd())
	assert.NotNil(t, next)
	assert.Contains(t, m.Render(), "settings reloaded")

	require.NoError(t, pub.Close())
	assert.Nil(t, next())
}

func TestModelWithoutLogs(t *testing.T) {
	t.Parallel()

	m := preview.New(guardedDoc(), enabledSettings(), comment.DefaultRegistry())
	assert.Nil(t, m.Init())
}

func TestModelWholeFile(t *testing.T) {
	t.Parallel()

	s := enabledSettings()
	s.HiddenFilePatterns = []string{".env"}

	m := preview.New(mask.Document{Path: ".env", Lines: []string{"A=1", "B=2"}}, s, comment.DefaultRegistry())

	out := m.Render()
	assert.Contains(t, out, "whole file")
	assert.Contains(t, out, "2 masked")
	assert.NotContains(t, out, "A=1")
	assert.Equal(t, 2, m.Result().Lines())
}
