// Package main provides the CLI entry point for streamguard, a tool that
// masks sensitive lines of source files before they are shown on screen.
//
// Lines are selected with comment annotations such as
// "// @stream-guard-next", and whole files or folders with glob patterns in
// the settings files.
//
// # Usage
//
//	streamguard mask [flags] <file>...
//	streamguard ranges [flags] <file>...
//	streamguard check [flags] <path>...
//	streamguard preview [flags] <file>
//	streamguard watch [flags] <file>...
//	streamguard toggle | enable | disable
//	streamguard languages | schema | version
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/log"
	"go.jacobcolvin.com/streamguard/mask"
	"go.jacobcolvin.com/streamguard/profile"
)

var (
	// ErrHiddenPaths indicates that check found fully masked paths.
	ErrHiddenPaths = errors.New("hidden paths found")
	// ErrUnknownOutput indicates an unsupported --output value.
	ErrUnknownOutput = errors.New("unknown output format")
	// ErrWriteOutput indicates that output could not be written.
	ErrWriteOutput = errors.New("write output")
)

func main() {
	a := newApp(afero.NewOsFs())

	err := a.rootCmd().Execute()

	// Profiles are written even when the command fails.
	err = errors.Join(err, a.session.Stop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by all subcommands.
type app struct {
	fs         afero.Fs
	logCfg     *log.Config
	cfg        *config.Config
	profileCfg *profile.Config
	session    *profile.Session
	language   string
}

func newApp(fs afero.Fs) *app {
	return &app{
		fs:         fs,
		logCfg:     log.NewConfig(),
		cfg:        config.NewConfig(),
		profileCfg: profile.NewConfig(),
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	return newApp(fs).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streamguard",
		Short: "Mask sensitive lines of source files",
		Long: `streamguard hides annotated lines and sensitive files while code is shown
on a stream or screen share. Lines are selected with comment annotations
(@stream-hide-* or @stream-guard-*), files and folders with glob patterns.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.logCfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(logger)

			a.session, err = a.profileCfg.Start(a.fs)

			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.session.Stop()
		},
	}

	a.logCfg.RegisterFlags(rootCmd.PersistentFlags())
	a.cfg.RegisterFlags(rootCmd.PersistentFlags())
	a.profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		a.newMaskCmd(),
		a.newRangesCmd(),
		a.newCheckCmd(),
		a.newPreviewCmd(),
		a.newWatchCmd(),
		a.newToggleCmd(),
		a.newSetEnabledCmd("enable", "Turn stream mode on", true),
		a.newSetEnabledCmd("disable", "Turn stream mode off", false),
		a.newLanguagesCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.cfg.RegisterCompletions,
		a.profileCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

// masker loads the settings and builds a [mask.Masker] from them.
func (a *app) masker() (*mask.Masker, error) {
	settings, err := a.cfg.Load(a.fs)
	if err != nil {
		return nil, err
	}

	return mask.New(settings, comment.DefaultRegistry(), a.maskOptions()...), nil
}

// maskOptions matches absolute paths relative to the directory holding the
// workspace settings file.
func (a *app) maskOptions() []mask.Option {
	root, err := filepath.Abs(filepath.Dir(a.cfg.Path))
	if err != nil {
		slog.Warn("resolving workspace root", slog.Any("error", err))

		return nil
	}

	return []mask.Option{mask.WithRoot(root)}
}

// readDocuments reads every path, or stdin for "-".
func (a *app) readDocuments(cmd *cobra.Command, paths []string) ([]mask.Document, error) {
	docs := make([]mask.Document, 0, len(paths))

	for _, p := range paths {
		var (
			doc mask.Document
			err error
		)

		if p == "-" {
			doc, err = readStdin(cmd.InOrStdin())
		} else {
			doc, err = mask.ReadDocument(a.fs, p)
		}

		if err != nil {
			return nil, err
		}

		doc.LanguageID = a.language
		docs = append(docs, doc)
	}

	return docs, nil
}

func readStdin(r io.Reader) (mask.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mask.Document{}, fmt.Errorf("%w: stdin: %w", mask.ErrReadDocument, err)
	}

	return mask.Document{Path: "-", Lines: mask.SplitLines(string(data))}, nil
}

// registerLanguageFlag adds --language to cmd, completed with the built-in
// language IDs.
func (a *app) registerLanguageFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.language, "language", "",
		"language ID used to find comment prefixes, instead of inferring it from the path")

	err := cmd.RegisterFlagCompletionFunc("language",
		cobra.FixedCompletions(comment.DefaultRegistry().IDs(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
}
