// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and severity levels ([LevelError], [LevelWarn], [LevelInfo],
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or use
// [Config] with CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a logger
// once flags are parsed:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
//
// While a full-screen terminal UI owns the terminal, log output written to
// stderr would corrupt the display. A [Publisher] collects log lines instead
// and hands them to subscribers, such as the UI's status line:
//
//	pub := log.NewPublisher()
//	slog.SetDefault(slog.New(log.NewHandler(pub, log.LevelWarn, log.FormatLogfmt)))
//
//	sub := pub.Subscribe()
//	for line := range sub.C() {
//		// Show line.
//	}
package log
