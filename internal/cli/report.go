package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/codex-k8s/jiratrack/internal/config"
	"github.com/codex-k8s/jiratrack/internal/jiraapi"
	"github.com/codex-k8s/jiratrack/internal/report"
)

// runReport drives the whole pipeline: validate flags, load config, open the
// Jira session, fetch tickets, build rows and render the table. Flag and sort
// problems fail before any network call; everything else propagates to main.
func runReport(cmd *cobra.Command, opts *Options) error {
	logger := LoggerFromContext(cmd.Context())

	if strings.TrimSpace(opts.User) == "" {
		return fmt.Errorf("a user is required (-u/--user)")
	}
	if opts.Days < 1 {
		return fmt.Errorf("--days must be a positive number, got %d", opts.Days)
	}
	if opts.MaxResults < 1 {
		return fmt.Errorf("--max-results must be a positive number, got %d", opts.MaxResults)
	}

	sortField, err := report.ParseSortField(opts.SortBy)
	if err != nil {
		return err
	}

	styles, err := config.LoadStyles(opts.StylesPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client, err := jiraapi.NewClient(ctx, logger, cfg)
	if err != nil {
		return err
	}

	tickets, err := client.SearchAssigned(ctx, opts.User, opts.Days, opts.MaxResults)
	if err != nil {
		return err
	}
	logger.Debug("tickets fetched", "count", len(tickets))

	rows, err := report.BuildRows(ctx, client, tickets, opts.User, opts.Concurrency)
	if err != nil {
		return err
	}
	report.SortRows(rows, sortField)

	if opts.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	return report.Render(cmd.OutOrStdout(), rows, report.NewClassifier(styles), opts.User, opts.Days)
}
