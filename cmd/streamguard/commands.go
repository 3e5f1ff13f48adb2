package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/streamguard/annotation"
	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/log"
	"go.jacobcolvin.com/streamguard/mask"
	"go.jacobcolvin.com/streamguard/preview"
	"go.jacobcolvin.com/streamguard/version"
	"go.jacobcolvin.com/streamguard/watch"
)

func (a *app) newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask [flags] <file>...",
		Short: "Print files with masked lines replaced",
		Long: `Print each file with every masked line replaced by the replacement text,
keeping its indentation. Use "-" to read from stdin. When several files are
given, each is preceded by a "==> path <==" header.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.masker()
			if err != nil {
				return err
			}

			docs, err := a.readDocuments(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for i, doc := range docs {
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}

					fmt.Fprintf(out, "==> %s <==\n", doc.Path)
				}

				res := m.Mask(doc)

				err := mask.Render(out, doc.Lines, res.Ranges, m.Replacement())
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	a.registerLanguageFlag(cmd)

	return cmd
}

// fileRanges is the ranges command output for one file.
type fileRanges struct {
	Path        string             `json:"path"         yaml:"path"`
	Ranges      []annotation.Range `json:"ranges"       yaml:"ranges"`
	MaskedLines int                `json:"masked_lines" yaml:"masked_lines"`
	WholeFile   bool               `json:"whole_file"   yaml:"whole_file"`
}

func (a *app) newRangesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ranges [flags] <file>...",
		Short: "Print the masked line ranges of files",
		Long: `Print the zero-based, inclusive line ranges that would be masked in each
file. Use "-" to read from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := checkOutput(output, outputJSON, outputYAML)
			if err != nil {
				return err
			}

			m, err := a.masker()
			if err != nil {
				return err
			}

			docs, err := a.readDocuments(cmd, args)
			if err != nil {
				return err
			}

			results := make([]fileRanges, 0, len(docs))

			for _, doc := range docs {
				res := m.Mask(doc)

				ranges := res.Ranges
				if ranges == nil {
					ranges = []annotation.Range{}
				}

				results = append(results, fileRanges{
					Path:        doc.Path,
					Ranges:      ranges,
					MaskedLines: res.Lines(),
					WholeFile:   res.WholeFile,
				})
			}

			return writeStructured(cmd.OutOrStdout(), output, results)
		},
	}

	registerOutputFlag(cmd, &output, outputJSON, outputYAML)
	a.registerLanguageFlag(cmd)

	return cmd
}

// pathState is the check command output for one path.
type pathState struct {
	Path   string `json:"path"   yaml:"path"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

func (a *app) newCheckCmd() *cobra.Command {
	var (
		output string
		fail   bool
	)

	cmd := &cobra.Command{
		Use:   "check [flags] <path>...",
		Short: "Report which paths are masked entirely",
		Long: `Report for each path whether it matches a hidden file pattern or lies in a
hidden folder. Paths need not exist. They are lexically cleaned, and absolute
paths are matched relative to the directory holding the workspace settings
file. Stream mode does not affect the result.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := checkOutput(output, outputText, outputJSON, outputYAML)
			if err != nil {
				return err
			}

			m, err := a.masker()
			if err != nil {
				return err
			}

			states := make([]pathState, 0, len(args))
			hidden := 0

			for _, p := range args {
				s := pathState{Path: p, Hidden: m.HidesPath(p)}
				if s.Hidden {
					hidden++
				}

				states = append(states, s)
			}

			switch output {
			case outputText:
				out := cmd.OutOrStdout()

				for _, s := range states {
					state := "visible"
					if s.Hidden {
						state = "hidden"
					}

					fmt.Fprintf(out, "%s: %s\n", s.Path, state)
				}

			default:
				err := writeStructured(cmd.OutOrStdout(), output, states)
				if err != nil {
					return err
				}
			}

			if fail && hidden > 0 {
				return fmt.Errorf("%w: %d of %d", ErrHiddenPaths, hidden, len(states))
			}

			return nil
		},
	}

	registerOutputFlag(cmd, &output, outputText, outputJSON, outputYAML)
	cmd.Flags().BoolVar(&fail, "fail", false, "exit with status 1 if any path is hidden")

	return cmd
}

func (a *app) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [flags] <file>",
		Short: "Show a masked file in an interactive terminal view",
		Long: `Show a masked file full screen. Press t to toggle stream mode, which is
saved to the settings files, j/k or the arrow keys to scroll and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.cfg.Load(a.fs)
			if err != nil {
				return err
			}

			docs, err := a.readDocuments(cmd, args)
			if err != nil {
				return err
			}

			store := a.cfg.NewStore(a.fs)
			save := func(enabled bool) error {
				scope, err := store.SetEnabled(enabled)
				if err != nil {
					return err
				}

				slog.Info("stream mode saved",
					slog.Bool("enabled", enabled),
					slog.String("scope", string(scope)),
				)

				return nil
			}

			// Log lines are shown in the status line while the preview owns
			// the terminal.
			pub := log.NewPublisher()
			defer pub.Close() //nolint:errcheck // Close never fails.

			sub := pub.Subscribe()
			defer sub.Close()

			logger, err := a.logCfg.NewLogger(pub)
			if err != nil {
				return err
			}

			prev := slog.Default()
			slog.SetDefault(logger)

			defer slog.SetDefault(prev)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := preview.New(docs[0], settings, comment.DefaultRegistry(),
				preview.WithToggle(save),
				preview.WithLogs(sub),
				preview.WithMaskOptions(a.maskOptions()...),
			)

			return preview.Run(ctx, m)
		},
	}

	a.registerLanguageFlag(cmd)

	return cmd
}

func (a *app) newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [flags] <file>...",
		Short: "Re-mask files whenever they change",
		Long: `Mask each file once, then again every time it is written, logging the
masked ranges. Stops on interrupt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.masker()
			if err != nil {
				return err
			}

			w := watch.New(m, watch.WithDebounce(debounce))

			err = w.Add(args...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return w.Run(ctx, func(path string, res mask.Result) {
				slog.Info("masked",
					slog.String("path", path),
					slog.Int("masked_lines", res.Lines()),
					slog.Bool("whole_file", res.WholeFile),
					slog.String("ranges", formatRanges(res.Ranges)),
				)
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce,
		"how long a file must stay unchanged before it is re-masked")

	return cmd
}

func formatRanges(ranges []annotation.Range) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, r.String())
	}

	return strings.Join(parts, ",")
}

func (a *app) newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip stream mode on or off",
		Long: `Flip the enabled setting and save it to the workspace settings file, or to
the global settings file if the workspace file cannot be written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.cfg.NewStore(a.fs)

			enabled, scope, err := store.Toggle()
			if err != nil {
				return err
			}

			printStreamMode(cmd, store, enabled, scope)

			return nil
		},
	}
}

func (a *app) newSetEnabledCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.cfg.NewStore(a.fs)

			scope, err := store.SetEnabled(enabled)
			if err != nil {
				return err
			}

			printStreamMode(cmd, store, enabled, scope)

			return nil
		},
	}
}

func printStreamMode(cmd *cobra.Command, store *config.Store, enabled bool, scope config.Scope) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (saved to %s settings %s)\n",
		preview.StatusText(enabled), scope, store.Path(scope))
}

func (a *app) newLanguagesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List known languages and their comment syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := checkOutput(output, outputText, outputJSON, outputYAML)
			if err != nil {
				return err
			}

			m, err := a.masker()
			if err != nil {
				return err
			}

			langs := m.Registry().All()

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, langs)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPREFIXES\tBLOCK\tEXTENSIONS")

			for _, l := range langs {
				block := ""
				if !l.Block.IsZero() {
					block = l.Block.Start + " " + l.Block.End
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.DisplayName,
					strings.Join(l.SingleLine, " "), block, strings.Join(l.Extensions, " "))
			}

			err = tw.Flush()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	registerOutputFlag(cmd, &output, outputText, outputJSON, outputYAML)

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the settings files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(config.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := checkOutput(output, outputText, outputJSON, outputYAML)
			if err != nil {
				return err
			}

			info := version.Get()

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, info)
			}

			fmt.Fprint(cmd.OutOrStdout(), info.String())

			return nil
		},
	}

	registerOutputFlag(cmd, &output, outputText, outputJSON, outputYAML)

	return cmd
}
