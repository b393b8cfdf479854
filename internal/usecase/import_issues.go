// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/runoshun/issue-import/internal/domain"
)

// ImportIssuesInput contains the parameters of one import run.
type ImportIssuesInput struct {
	Config domain.ImportConfig
	RunID  string // Generated when empty
	DryRun bool   // Resolve, fetch and map, but submit nothing
}

// ImportIssuesOutput contains the result of an import run.
type ImportIssuesOutput struct {
	Summary *domain.ImportSummary
	Project *domain.Project // nil when resolution failed
	Stories []domain.Story  // Mapped stories, populated in dry-run mode
}

// ImportIssues is the use case that sequences fetch, map and submit.
type ImportIssues struct {
	source      domain.IssueSource
	destination domain.StoryDestination
	reporter    domain.Reporter
	clock       domain.Clock
	submitter   *SubmitStories
	newRunID    func() string
}

// NewImportIssues creates a new ImportIssues use case.
func NewImportIssues(
	source domain.IssueSource,
	destination domain.StoryDestination,
	reporter domain.Reporter,
	clock domain.Clock,
) *ImportIssues {
	return &ImportIssues{
		source:      source,
		destination: destination,
		reporter:    reporter,
		clock:       clock,
		submitter:   NewSubmitStories(destination, reporter),
		newRunID:    uuid.NewString,
	}
}

// Execute runs the import.
//
// A *domain.ConfigError is returned before any network call when the
// configuration is invalid. Project resolution and fetch failures are
// reported once and returned together with a summary. Batch failures are
// recorded in the summary and do not produce an error.
func (uc *ImportIssues) Execute(ctx context.Context, in ImportIssuesInput) (*ImportIssuesOutput, error) {
	if violations := in.Config.Validate(); len(violations) > 0 {
		return nil, &domain.ConfigError{Violations: violations}
	}

	// Validate guarantees both parse.
	repo, _ := domain.ParseRepoRef(in.Config.Repo)
	state, _ := domain.ParseIssueState(in.Config.State)

	runID := in.RunID
	if runID == "" {
		runID = uc.newRunID()
	}
	summary := &domain.ImportSummary{
		RunID:     runID,
		Repo:      repo.String(),
		ProjectID: in.Config.ProjectID,
		State:     string(state),
		StartedAt: uc.clock.Now(),
		DryRun:    in.DryRun,
	}
	out := &ImportIssuesOutput{Summary: summary}

	uc.reporter.Report(domain.Infof("Resolving Shortcut project %s", in.Config.ProjectID))
	project, err := uc.destination.GetProject(ctx, in.Config.ProjectID)
	if err != nil {
		return out, uc.fail(summary, &domain.ProjectResolutionError{ProjectID: in.Config.ProjectID, Err: err})
	}
	out.Project = project

	uc.reporter.Report(domain.Infof("Fetching %s issues from %s", state, repo))
	issues, err := uc.source.ListIssues(ctx, repo, state)
	if err != nil {
		var fetchErr *domain.FetchError
		if !errors.As(err, &fetchErr) {
			fetchErr = &domain.FetchError{Repo: repo, Err: err}
		}
		return out, uc.fail(summary, fetchErr)
	}

	stories := domain.MapIssues(project.ID, issues)
	summary.Fetched = len(stories)
	summary.Mapped = len(stories)

	if in.DryRun {
		out.Stories = stories
		summary.FinishedAt = uc.clock.Now()
		uc.reporter.Report(domain.Infof("Dry run: %d issues would be imported into %s", len(stories), projectName(project)))
		return out, nil
	}

	uc.reporter.Report(domain.Infof("Importing %d issues into %s", len(stories), projectName(project)))
	submitted, err := uc.submitter.Execute(ctx, SubmitStoriesInput{Stories: stories})
	if err != nil {
		return out, uc.fail(summary, err)
	}
	summary.Batches = submitted.Outcomes
	summary.Imported = submitted.Imported
	summary.FinishedAt = uc.clock.Now()

	done := domain.Infof("Imported %d of %d issues", summary.Imported, summary.Mapped)
	if failed := submitted.Failed(); failed > 0 {
		done = domain.Warnf("Imported %d of %d issues (%d of %d batches failed)",
			summary.Imported, summary.Mapped, failed, len(submitted.Outcomes))
	}
	uc.reporter.Report(done)

	return out, nil
}

// fail records and reports a run-level failure.
func (uc *ImportIssues) fail(summary *domain.ImportSummary, err error) error {
	summary.Err = err
	summary.FinishedAt = uc.clock.Now()
	uc.reporter.Report(domain.ErrorEvent(err))
	return err
}

func projectName(p *domain.Project) string {
	if p.Name == "" {
		return "project " + strconv.FormatInt(p.ID, 10)
	}
	return p.Name
}
