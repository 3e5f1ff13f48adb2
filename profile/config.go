package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling, allowing callers to customize
// flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile    string
	HeapProfile   string
	AllocsProfile string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profile output paths. Empty paths disable the profile, so a
// zero Config profiles nothing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	CPUProfile    string
	HeapProfile   string
	AllocsProfile string
}

// NewConfig creates a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:    "cpu-profile",
		HeapProfile:   "heap-profile",
		AllocsProfile: "allocs-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write a CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write a heap profile to file on exit")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, "", "write an allocs profile to file on exit")
}

// RegisterCompletions completes profile flags with ".prof" files.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	profFiles := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"prof", "pprof"}, cobra.ShellCompDirectiveFilterFileExt
	}

	for _, name := range []string{c.Flags.CPUProfile, c.Flags.HeapProfile, c.Flags.AllocsProfile} {
		err := cmd.RegisterFlagCompletionFunc(name, profFiles)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Enabled reports whether any profile is requested.
func (c *Config) Enabled() bool {
	return c.CPUProfile != "" || c.HeapProfile != "" || c.AllocsProfile != ""
}
