package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/runoshun/issue-import/internal/app"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/infra/logging"
	"github.com/runoshun/issue-import/internal/tui"
	"github.com/runoshun/issue-import/internal/usecase"
	"github.com/spf13/cobra"
)

// runProgressFunc renders progress while the import runs. Tests replace it.
var runProgressFunc = tui.Run

// isTerminalFunc decides whether stderr can show the progress display.
var isTerminalFunc = isTerminal

// importOptions holds the flags of the import command.
type importOptions struct {
	githubToken   string
	shortcutToken string
	project       string
	repo          string
	state         string
	githubURL     string
	shortcutURL   string
	reportPath    string
	dryRun        bool
	noProgress    bool
	verbose       bool
}

// overrides converts the flags into settings that take precedence over
// every other source.
func (o *importOptions) overrides() domain.Settings {
	return domain.Settings{
		GitHub: domain.GitHubSettings{
			Token:   o.githubToken,
			Repo:    o.repo,
			State:   o.state,
			BaseURL: o.githubURL,
		},
		Shortcut: domain.ShortcutSettings{
			Token:   o.shortcutToken,
			Project: o.project,
			BaseURL: o.shortcutURL,
		},
	}
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import issues into a Shortcut project",
		Long: `Import every issue of a GitHub repository into a Shortcut project.

The story type is taken from the first label naming a bug or a chore;
other issues become features. Stories are created in batches of 10.
A failing batch is reported and does not stop the others.

When no repository is configured, the origin remote of the current git
repository is used.`,
		Example: `  issue-import import --repo octo/hello --project 123 --state open
  issue-import import --state all --dry-run
  issue-import import --state closed --report import.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, c, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.githubToken, "github-token", "", "GitHub API token")
	f.StringVar(&opts.shortcutToken, "shortcut-token", "", "Shortcut API token")
	f.StringVarP(&opts.project, "project", "p", "", "Shortcut project id")
	f.StringVarP(&opts.repo, "repo", "r", "", "GitHub repository (owner/repo)")
	f.StringVarP(&opts.state, "state", "s", "", "Issue state to import: open, closed or all")
	f.StringVar(&opts.githubURL, "github-url", "", "GitHub Enterprise API base URL")
	f.StringVar(&opts.shortcutURL, "shortcut-url", "", "Shortcut API base URL")
	f.StringVar(&opts.reportPath, "report", "", "Write a YAML import report to this file")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Fetch and map issues without creating stories")
	f.BoolVar(&opts.noProgress, "no-progress", false, "Print plain lines instead of a progress spinner")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Also print per-batch results")

	return cmd
}

func runImport(cmd *cobra.Command, c *app.Container, opts *importOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	minLevel := domain.LevelInfo
	if opts.verbose {
		minLevel = domain.LevelDebug
	}
	console := newConsoleReporter(stderr, minLevel)

	loaded, err := c.LoadSettingsUseCase().Execute(ctx, usecase.LoadSettingsInput{
		Overrides: opts.overrides(),
		Dir:       c.Config.Dir,
	})
	if err != nil {
		return err
	}
	settings := loaded.Settings
	for _, w := range settings.Warnings {
		console.Report(domain.Warnf("%s", w))
	}

	cfg := domain.ImportConfigFrom(settings)
	if violations := cfg.Validate(); len(violations) > 0 {
		return &domain.ConfigError{Violations: violations}
	}
	if loaded.RepoDetected {
		console.Report(domain.Infof("Using repository %s from the origin remote", settings.GitHub.Repo))
	}

	runID := uuid.NewString()
	logger := c.OpenLogger(settings)
	defer func() { _ = logger.Close() }()
	fileReporter := logging.NewReporter(logger, runID, "import")
	for _, w := range settings.Warnings {
		fileReporter.Report(domain.Warnf("%s", w))
	}

	var out *usecase.ImportIssuesOutput
	work := func(ctx context.Context, r domain.Reporter) error {
		uc, err := c.ImportIssuesUseCase(settings, logging.Tee{fileReporter, r})
		if err != nil {
			return err
		}
		out, err = uc.Execute(ctx, usecase.ImportIssuesInput{
			Config: cfg,
			RunID:  runID,
			DryRun: opts.dryRun,
		})
		return err
	}

	if !opts.noProgress && isTerminalFunc(stderr) {
		err = runProgressFunc(ctx, stderr, minLevel, work)
	} else {
		err = work(ctx, console)
	}

	if out != nil {
		if opts.dryRun && out.Summary.Err == nil {
			printStories(stdout, out.Stories)
		}
		if opts.reportPath != "" {
			if werr := c.Reports.Write(opts.reportPath, out.Summary); werr != nil {
				console.Report(domain.Warnf("write report: %v", werr))
			} else {
				console.Report(domain.Infof("Report written to %s", opts.reportPath))
			}
		}
	}

	// Project and fetch failures were already reported and do not fail
	// the process. A broken display may have hidden them, so it does.
	switch {
	case err == nil:
		return nil
	case domain.IsFatal(err), out == nil, errors.Is(err, tui.ErrDisplay):
		return err
	default:
		return nil
	}
}

// printStories lists the stories a dry run would create.
func printStories(w io.Writer, stories []domain.Story) {
	if len(stories) == 0 {
		_, _ = fmt.Fprintln(w, "No issues to import.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TYPE\tNAME\tLABELS\tSOURCE")
	for _, s := range stories {
		names := make([]string, len(s.Labels))
		for i, l := range s.Labels {
			names[i] = l.Name
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.StoryType, s.Name, strings.Join(names, ","), s.ExternalID)
	}
	_ = tw.Flush()
}
