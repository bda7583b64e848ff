package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tstamp/internal/args"
	"github.com/hlop3z/tstamp/internal/cli"
	"github.com/hlop3z/tstamp/internal/timestamp"
)

const flagDebug = "debug"

// run executes one tstamp invocation and returns the process exit code.
func run(argv []string, stdout, stderr io.Writer, clock timestamp.Clock) int {
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}

	rootCmd := newRootCmd(clock)
	rootCmd.SetArgs(argv)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return reportError(stderr, err)
	}
	return exitOK
}

// newRootCmd builds the tstamp command tree. clock supplies the current time
// for --from now.
func newRootCmd(clock timestamp.Clock) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:     "tstamp [input]",
		Short:   "Converts Unix timestamps to human-readable dates and back",
		Long:    `tstamp reads the current time or a Unix timestamp in seconds, milliseconds or nanoseconds and prints it as Unix time or as an RFC 2822 / RFC 3339 date in UTC.`,
		Version: version,

		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, positional []string) error {
			logger := newLogger(cmd.ErrOrStderr(), debug)

			res, err := args.FromFlags(cmd.Flags(), positional)
			if err != nil {
				return err
			}
			logger.Debug("resolved arguments",
				"input", res.Input.String(),
				"value", res.Value,
				"output", res.Output.String())

			if len(res.IgnoredArgs) > 0 {
				warnIgnored(cmd.ErrOrStderr(), res.IgnoredArgs)
			}

			instant, err := timestamp.ResolveString(res.Input, res.Value, clock)
			if err != nil {
				return err
			}
			logger.Debug("resolved instant", "sec", instant.Sec, "nsec", instant.Nsec)

			fmt.Fprintln(cmd.OutOrStdout(), timestamp.Format(instant, res.Output))
			return nil
		},
	}

	args.Register(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&debug, flagDebug, false, "Log argument resolution to stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return args.FlagError(err)
	})
	rootCmd.SetVersionTemplate("tstamp {{.Version}}\n")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(cmd.OutOrStdout(), cmd.Long+"\n\n"+cmd.UsageString())
			return
		}
		renderHelp(cmd.OutOrStdout())
	})

	rootCmd.ValidArgsFunction = cobra.NoFileCompletions
	err := rootCmd.RegisterFlagCompletionFunc(args.FlagFrom,
		cobra.FixedCompletions(timestamp.InputKeywords, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		panic(err) // --from is registered above, so this is a programming error
	}

	rootCmd.AddCommand(completionCmd())

	return rootCmd
}

// newLogger returns a text logger on w. Only warnings are shown unless debug
// is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// warnIgnored tells the user that positional values were dropped because the
// input mode reads the clock.
func warnIgnored(w io.Writer, ignored []string) {
	defer cli.Use(cli.DetectConfig(w))()
	fmt.Fprint(w, cli.FormatWarning(
		fmt.Sprintf("ignoring input value '%s'", strings.Join(ignored, " ")),
		cli.WithNotes("the current time is used when --from is 'now'"),
		cli.WithHelps("pass --from secs, millis or nanos to convert the value"),
	))
}
