package domain

import (
	"context"
	"time"
)

// IssueSource lists issues from the source tracker.
type IssueSource interface {
	// ListIssues returns every issue in the repository matching state,
	// following pagination until exhausted. Pull requests are excluded.
	ListIssues(ctx context.Context, repo RepoRef, state IssueState) ([]Issue, error)
}

// StoryDestination is the destination project-management tool.
type StoryDestination interface {
	// GetProject resolves a project identifier.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// CreateStories bulk-creates stories and returns the created count
	// confirmed by the destination.
	CreateStories(ctx context.Context, stories []Story) (int, error)
}

// Project is a resolved destination project.
type Project struct {
	Name string
	ID   int64
}

// Reporter receives progress and failure events for the user.
type Reporter interface {
	Report(event Event)
}

// ConfigLoader loads settings from config files and the environment.
type ConfigLoader interface {
	// Load returns the merged settings (defaults <- global <- repo <- env).
	Load() (*Settings, error)
}

// CredentialStore persists API tokens outside config files.
type CredentialStore interface {
	// Get returns the stored token, or "" with no error when none is stored.
	Get(service CredentialService) (string, error)

	// Set stores a token.
	Set(service CredentialService, token string) error

	// Delete removes a stored token.
	Delete(service CredentialService) error
}

// RepoDetector infers the source repository from the working directory.
type RepoDetector interface {
	// DetectRepo returns "owner/repo" of the origin remote, or "" when unknown.
	DetectRepo(dir string) (string, error)
}

// ReportWriter persists the summary of an import run.
type ReportWriter interface {
	Write(path string, summary *ImportSummary) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
