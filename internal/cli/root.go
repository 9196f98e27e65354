// Package cli defines the command-line interface for jiratrack.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/jiratrack/internal/logging"
)

const (
	// defaultDays is the default look-back window in days.
	defaultDays = 7
	// defaultMaxResults is the default search result cap.
	defaultMaxResults = 100
	// defaultConcurrency is the default size of the comment-fetch pool.
	defaultConcurrency = 4

	version = "0.1.0"
)

// Options stores the report parameters collected from flags.
type Options struct {
	User        string
	Days        int
	MaxResults  int
	SortBy      string
	EnvFile     string
	StylesPath  string
	NoColor     bool
	Concurrency int
	LogLevel    logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		Days:        defaultDays,
		MaxResults:  defaultMaxResults,
		SortBy:      "ticket",
		Concurrency: defaultConcurrency,
		LogLevel:    logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command. jiratrack has no
// subcommands; the report runs directly on the root.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jiratrack",
		Short:   "jiratrack reports the Jira tickets a user worked on recently",
		Long:    "jiratrack queries a Jira server for tickets assigned to a user within a recent time window, marks the ones the user commented on, and prints a color-coded summary table.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.User, "user", "u", "", "User to report tickets for (required)")
	cmd.Flags().IntVarP(&opts.Days, "days", "d", defaultDays, "Number of days to look back (7, 14, ...)")
	cmd.Flags().IntVarP(&opts.MaxResults, "max-results", "m", defaultMaxResults, "Maximum number of tickets to fetch")
	cmd.Flags().StringVarP(&opts.SortBy, "sort-by", "s", "ticket", "Sort column (ticket, summary, status, interacted)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Path to a .env file with JIRA_* variables")
	cmd.Flags().StringVar(&opts.StylesPath, "config", "", "Path to a YAML file overriding the status color classes")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", defaultConcurrency, "Parallel comment fetches (1 = fully sequential)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
