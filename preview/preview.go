// Package preview shows a masked document in an interactive terminal view
// with a stream mode toggle.
package preview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/log"
	"go.jacobcolvin.com/streamguard/mask"
)

// ErrNotTerminal indicates that stdout is not a terminal.
var ErrNotTerminal = errors.New("preview requires a terminal")

// StatusText returns the status line label for the given stream mode.
func StatusText(enabled bool) string {
	if enabled {
		return "Stream Mode ON"
	}

	return "Stream Mode OFF"
}

// ToggleFunc persists a new stream mode. It is called with the negation of
// the mode currently shown.
type ToggleFunc func(enabled bool) error

// Option configures a [Model].
type Option func(*Model)

// WithToggle sets the function called when stream mode is toggled. Without
// it, toggling only affects the preview.
func WithToggle(fn ToggleFunc) Option {
	return func(m *Model) {
		m.toggle = fn
	}
}

// WithMaskOptions sets options passed to [mask.New] on every re-mask.
func WithMaskOptions(opts ...mask.Option) Option {
	return func(m *Model) {
		m.maskOpts = opts
	}
}

// WithLogs shows the most recent line of sub in the status line.
func WithLogs(sub *log.Subscription) Option {
	return func(m *Model) {
		m.logs = sub
	}
}

// logMsg carries one log line.
type logMsg string

var statusStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

// Model is the Bubble Tea model of the preview.
//
// Create instances with [New].
type Model struct {
	registry *comment.Registry
	toggle   ToggleFunc
	logs     *log.Subscription
	maskOpts []mask.Option
	message  string
	doc      mask.Document
	lines    []string
	result   mask.Result
	settings config.Settings
	offset   int
	width    int
	height   int
}

// New creates a [Model] previewing doc with settings. The registry is
// passed to [mask.New].
func New(doc mask.Document, settings config.Settings, registry *comment.Registry, opts ...Option) *Model {
	m := &Model{
		registry: registry,
		doc:      doc,
		settings: settings,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.remask()

	return m
}

// Enabled reports whether stream mode is on.
func (m *Model) Enabled() bool {
	return m.settings.Enabled
}

// Result returns the masking result currently shown.
func (m *Model) Result() mask.Result {
	return m.result
}

// Offset returns the index of the first visible line.
func (m *Model) Offset() int {
	return m.offset
}

// Init starts waiting for log lines, if any.
func (m *Model) Init() tea.Cmd {
	return m.waitForLog()
}

// Update handles key presses, resizes and log lines.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.HandleKey(msg.String())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll(0)

	case logMsg:
		m.message = string(msg)

		return m, m.waitForLog()
	}

	return m, nil
}

// HandleKey applies the action bound to key, in the notation of
// [tea.Key.String].
func (m *Model) HandleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "t":
		m.toggleStreamMode()
	case "j", "down":
		m.scroll(1)
	case "k", "up":
		m.scroll(-1)
	case "pgdown", "space":
		m.scroll(m.pageSize())
	case "pgup":
		m.scroll(-m.pageSize())
	case "g", "home":
		m.scroll(-len(m.lines))
	case "G", "end":
		m.scroll(len(m.lines))
	}

	return nil
}

// View renders the visible lines and the status line.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true

	return v
}

// Render returns the text shown by [Model.View].
func (m *Model) Render() string {
	var sb strings.Builder

	lines := m.lines[m.offset:]
	if n := m.pageSize(); n < len(lines) {
		lines = lines[:n]
	}

	body := lipgloss.NewStyle()
	if m.width > 0 {
		body = body.MaxWidth(m.width)
	}

	for _, line := range lines {
		sb.WriteString(body.Render(line))
		sb.WriteByte('\n')
	}

	status := statusStyle
	if m.width > 0 {
		status = status.Width(m.width).MaxWidth(m.width).MaxHeight(1)
	}

	sb.WriteString(status.Render(m.statusLine()))

	return sb.String()
}

func (m *Model) statusLine() string {
	parts := []string{
		StatusText(m.settings.Enabled),
		m.doc.Path,
		fmt.Sprintf("%d masked", m.result.Lines()),
	}

	if m.result.WholeFile {
		parts = append(parts, "whole file")
	}

	if m.message != "" {
		parts = append(parts, m.message)
	}

	return " " + strings.Join(parts, " | ")
}

// toggleStreamMode negates the mode on screen. With a [ToggleFunc], the new
// mode is shown only once it has been saved.
func (m *Model) toggleStreamMode() {
	enabled := !m.settings.Enabled

	if m.toggle != nil {
		err := m.toggle(enabled)
		if err != nil {
			m.message = fmt.Sprintf("toggle failed: %v", err)

			return
		}

		m.message = ""
	}

	m.settings.Enabled = enabled
	m.remask()
}

func (m *Model) remask() {
	m.result = mask.New(m.settings, m.registry, m.maskOpts...).Mask(m.doc)

	var sb strings.Builder

	// Writes to a strings.Builder cannot fail.
	//nolint:errcheck
	mask.Render(&sb, m.doc.Lines, m.result.Ranges, m.settings.Replacement)

	m.lines = mask.SplitLines(sb.String())
	m.scroll(0)
}

// pageSize returns the number of body lines that fit above the status line.
func (m *Model) pageSize() int {
	if m.height <= 0 {
		return len(m.lines)
	}

	return max(m.height-1, 1)
}

// scroll moves the view by delta lines, keeping the last page full.
func (m *Model) scroll(delta int) {
	maxOffset := max(len(m.lines)-m.pageSize(), 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}

func (m *Model) waitForLog() tea.Cmd {
	if m.logs == nil {
		return nil
	}

	sub := m.logs

	return func() tea.Msg {
		line, ok := <-sub.C()
		if !ok {
			return nil
		}

		return logMsg(line)
	}
}

// Run shows m full screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running preview: %w", err)
	}

	return nil
}
