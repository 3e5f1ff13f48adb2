package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Values a [Config] starts with.
const (
	DefaultLevel  = LevelInfo
	DefaultFormat = FormatText
)

// Flags names the CLI flags read into a [Config].
type Flags struct {
	Level  string
	Format string
}

// NewConfig returns a [Config] bound to the flag names in f, preset to
// [DefaultLevel] and [DefaultFormat].
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:  f,
		Level:  string(DefaultLevel),
		Format: string(DefaultFormat),
	}
}

// Config holds the log level and format chosen on the command line. The
// values stay strings until a logger is built, so an invalid flag is
// reported by [Config.NewLogger] or [Config.NewHandler] rather than during
// flag parsing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] for the --log-level and --log-format flags.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds the level and format flags to flags, defaulting to the
// values currently in c.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions completes the level and format flags of cmd with
// their accepted values.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, flag := range []struct {
		name   string
		values []string
	}{
		{name: c.Flags.Level, values: GetAllLevelStrings()},
		{name: c.Flags.Format, values: GetAllFormatStrings()},
	} {
		err := cmd.RegisterFlagCompletionFunc(flag.name,
			cobra.FixedCompletions(flag.values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag.name, err)
		}
	}

	return nil
}

// NewHandler parses the configured level and format with
// [NewHandlerFromStrings] and returns a [Handler] writing to w.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// NewLogger returns a [slog.Logger] backed by [Config.NewHandler].
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	h, err := c.NewHandler(w)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}
