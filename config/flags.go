package config

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/streamguard/annotation"
)

// Flags holds CLI flag names for settings, allowing callers to customize flag
// names while keeping sensible defaults via [NewConfig].
type Flags struct {
	// Settings file flag names.
	Config       string
	GlobalConfig string

	// Override flag names.
	Enabled     string
	Replacement string
	HideFile    string
	HideFolder  string
	Dialect     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for settings.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Load] to read the settings files and
// apply the flags on top.
type Config struct {
	flagSet *pflag.FlagSet

	Flags Flags

	// Settings file paths.
	Path       string
	GlobalPath string

	// Overrides, applied only when the flag is set.
	Replacement string
	HideFiles   []string
	HideFolders []string
	Dialects    []string
	Enabled     bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Config:       "config",
		GlobalConfig: "global-config",
		Enabled:      "enabled",
		Replacement:  "replacement",
		HideFile:     "hide-file",
		HideFolder:   "hide-folder",
		Dialect:      "dialect",
	}

	return f.NewConfig()
}

// RegisterFlags adds settings flags to the given [*pflag.FlagSet]. The flag
// set is retained so that [Config.Apply] can tell which flags were set.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	c.flagSet = flags

	flags.StringVar(&c.Path, c.Flags.Config, DefaultWorkspacePath, "workspace settings file")
	flags.StringVar(&c.GlobalPath, c.Flags.GlobalConfig, DefaultGlobalPath(), "global settings file")
	flags.BoolVar(&c.Enabled, c.Flags.Enabled, false, "enable masking, overriding the settings files")
	flags.StringVar(&c.Replacement, c.Flags.Replacement, DefaultReplacement, "text shown in place of masked lines")
	flags.StringArrayVar(&c.HideFiles, c.Flags.HideFile, nil, "additional glob pattern for files to mask entirely")
	flags.StringArrayVar(&c.HideFolders, c.Flags.HideFolder, nil, "additional glob pattern for folders to mask entirely")
	flags.StringSliceVar(&c.Dialects, c.Flags.Dialect, nil,
		fmt.Sprintf("annotation dialects to scan for, any of: %s", annotation.Names()))
}

// RegisterCompletions registers shell completions for settings flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	yamlFiles := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{c.Flags.Config, c.Flags.GlobalConfig} {
		err := cmd.RegisterFlagCompletionFunc(name, yamlFiles)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	for _, name := range []string{c.Flags.Replacement, c.Flags.HideFile, c.Flags.HideFolder} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Dialect,
		cobra.FixedCompletions(annotation.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Dialect, err)
	}

	return nil
}

// Apply overlays the flags that were set on the command line onto s.
// Hidden file and folder patterns are appended; every other flag replaces
// the corresponding setting.
func (c *Config) Apply(s Settings) Settings {
	s = s.clone()

	if c.flagSet == nil {
		return s
	}

	if c.flagSet.Changed(c.Flags.Enabled) {
		s.Enabled = c.Enabled
	}

	if c.flagSet.Changed(c.Flags.Replacement) {
		s.Replacement = c.Replacement
	}

	if c.flagSet.Changed(c.Flags.HideFile) {
		s.HiddenFilePatterns = append(s.HiddenFilePatterns, c.HideFiles...)
	}

	if c.flagSet.Changed(c.Flags.HideFolder) {
		s.HiddenFolders = append(s.HiddenFolders, c.HideFolders...)
	}

	if c.flagSet.Changed(c.Flags.Dialect) {
		s.Dialects = slices.Clone(c.Dialects)
	}

	return s
}

// NewStore creates a [Store] over fs for the configured settings files.
func (c *Config) NewStore(fs afero.Fs) *Store {
	return NewStore(fs, c.Path, c.GlobalPath)
}

// Load reads the settings files from fs, applies the flags with
// [Config.Apply] and validates the result.
func (c *Config) Load(fs afero.Fs) (Settings, error) {
	s, err := c.NewStore(fs).Load()
	if err != nil {
		return Settings{}, err
	}

	s = c.Apply(s)

	err = s.Validate()
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}
