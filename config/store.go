package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrReadSettings indicates a settings file that exists but could not be
	// read.
	ErrReadSettings = errors.New("read settings")
	// ErrWriteSettings indicates that settings could not be written to any
	// scope.
	ErrWriteSettings = errors.New("write settings")
)

// Scope identifies which settings file a value was written to.
type Scope string

const (
	// ScopeWorkspace is the per-project settings file.
	ScopeWorkspace Scope = "workspace"
	// ScopeGlobal is the per-user settings file.
	ScopeGlobal Scope = "global"
)

// DefaultWorkspacePath is the workspace settings file, relative to the
// working directory.
const DefaultWorkspacePath = ".streamguard.yaml"

// DefaultGlobalPath returns the global settings file under the user
// configuration directory ($XDG_CONFIG_HOME on Linux). It returns an empty
// string when no configuration directory can be determined.
func DefaultGlobalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "streamguard", "config.yaml")
}

// Store reads and writes the workspace and global settings files.
//
// Create instances with [NewStore].
type Store struct {
	fs        afero.Fs
	workspace string
	global    string
}

// NewStore creates a [Store] over fs. Either path may be empty to disable
// that scope.
func NewStore(fs afero.Fs, workspace, global string) *Store {
	return &Store{
		fs:        fs,
		workspace: workspace,
		global:    global,
	}
}

// Path returns the file used for scope, which may be empty.
func (s *Store) Path(scope Scope) string {
	if scope == ScopeGlobal {
		return s.global
	}

	return s.workspace
}

// Load reads the global file and then the workspace file, merging both over
// [Default]. Missing files are skipped. The merged settings are validated.
func (s *Store) Load() (Settings, error) {
	settings := Default()

	for _, path := range []string{s.global, s.workspace} {
		f, ok, err := s.readFile(path)
		if err != nil {
			return Settings{}, err
		}

		if !ok {
			continue
		}

		settings = Merge(settings, f)
	}

	err := settings.Validate()
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// SetEnabled persists enabled to the workspace file, falling back to the
// global file when the workspace file cannot be written. Other keys of the
// written file are preserved. It returns the scope that was written. When
// neither scope can be written, the error wraps [ErrWriteSettings].
func (s *Store) SetEnabled(enabled bool) (Scope, error) {
	wsErr := s.setKey(s.workspace, "enabled", enabled)
	if wsErr == nil {
		return ScopeWorkspace, nil
	}

	slog.Warn("cannot write workspace settings, falling back to global",
		slog.String("path", s.workspace),
		slog.Any("error", wsErr),
	)

	globalErr := s.setKey(s.global, "enabled", enabled)
	if globalErr == nil {
		return ScopeGlobal, nil
	}

	return "", fmt.Errorf("%w: %w", ErrWriteSettings, errors.Join(
		fmt.Errorf("%s: %w", ScopeWorkspace, wsErr),
		fmt.Errorf("%s: %w", ScopeGlobal, globalErr),
	))
}

// Toggle loads the current settings, flips Enabled and persists the new
// value with [Store.SetEnabled]. It returns the new value and the scope
// written.
func (s *Store) Toggle() (bool, Scope, error) {
	settings, err := s.Load()
	if err != nil {
		return false, "", err
	}

	enabled := !settings.Enabled

	scope, err := s.SetEnabled(enabled)
	if err != nil {
		return settings.Enabled, "", err
	}

	return enabled, scope, nil
}

func (s *Store) readFile(path string) (File, bool, error) {
	if path == "" {
		return File{}, false, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, false, nil
	}

	if err != nil {
		return File{}, false, fmt.Errorf("%w: %w", ErrReadSettings, err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return File{}, false, fmt.Errorf("%s: %w", path, err)
	}

	return f, true, nil
}

func (s *Store) setKey(path, key string, value any) error {
	if path == "" {
		return errors.New("no settings file configured")
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrReadSettings, err)
	}

	out, err := setKey(data, key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		err = s.fs.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}

	err = afero.WriteFile(s.fs, path, out, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
