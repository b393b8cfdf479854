// Package app provides the dependency injection container for the application.
package app

import (
	"net/http"

	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/infra/config"
	"github.com/runoshun/issue-import/internal/infra/credential"
	"github.com/runoshun/issue-import/internal/infra/github"
	"github.com/runoshun/issue-import/internal/infra/gitremote"
	"github.com/runoshun/issue-import/internal/infra/logging"
	"github.com/runoshun/issue-import/internal/infra/report"
	"github.com/runoshun/issue-import/internal/infra/shortcut"
	"github.com/runoshun/issue-import/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	Dir             string // Working directory
	GlobalConfigDir string // Path to global config directory (e.g., ~/.config/issue-import)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader domain.ConfigLoader
	Credentials  domain.CredentialStore
	Repos        domain.RepoDetector
	Reports      domain.ReportWriter
	Clock        domain.Clock

	// Adapter factories. The API clients need the resolved tokens, so they
	// are built per run.
	NewSource      func(s *domain.Settings) (domain.IssueSource, error)
	NewDestination func(s *domain.Settings) domain.StoryDestination

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) *Container {
	cfg := Config{
		Dir:             dir,
		GlobalConfigDir: config.DefaultGlobalConfigDir(),
	}
	httpClient := &http.Client{}

	return &Container{
		ConfigLoader: config.NewLoaderWithGlobalDir(cfg.Dir, cfg.GlobalConfigDir),
		Credentials:  credential.NewStore(cfg.GlobalConfigDir),
		Repos:        gitremote.NewDetector(),
		Reports:      report.NewWriter(),
		Clock:        domain.RealClock{},
		NewSource: func(s *domain.Settings) (domain.IssueSource, error) {
			return github.NewClientWithHTTP(httpClient, s.GitHub.Token, s.GitHub.BaseURL)
		},
		NewDestination: func(s *domain.Settings) domain.StoryDestination {
			return shortcut.NewClientWithHTTP(httpClient, s.Shortcut.BaseURL, s.Shortcut.Token)
		},
		Config: cfg,
	}
}

// Deps holds the dependencies accepted by NewWithDeps.
type Deps struct {
	ConfigLoader domain.ConfigLoader
	Credentials  domain.CredentialStore
	Repos        domain.RepoDetector
	Reports      domain.ReportWriter
	Clock        domain.Clock
	Source       domain.IssueSource
	Destination  domain.StoryDestination
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, deps Deps) *Container {
	clock := deps.Clock
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Container{
		ConfigLoader:   deps.ConfigLoader,
		Credentials:    deps.Credentials,
		Repos:          deps.Repos,
		Reports:        deps.Reports,
		Clock:          clock,
		NewSource:      func(*domain.Settings) (domain.IssueSource, error) { return deps.Source, nil },
		NewDestination: func(*domain.Settings) domain.StoryDestination { return deps.Destination },
		Config:         cfg,
	}
}

// OpenLogger returns the file logger configured by s. Callers close it.
func (c *Container) OpenLogger(s *domain.Settings) *logging.Logger {
	return logging.New(s.Log.Dir, logging.ParseLevel(s.Log.Level))
}

// UseCase factory methods

// LoadSettingsUseCase returns a new LoadSettings use case.
func (c *Container) LoadSettingsUseCase() *usecase.LoadSettings {
	return usecase.NewLoadSettings(c.ConfigLoader, c.Credentials, c.Repos)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.LoadSettingsUseCase())
}

// SetCredentialUseCase returns a new SetCredential use case.
func (c *Container) SetCredentialUseCase() *usecase.SetCredential {
	return usecase.NewSetCredential(c.Credentials)
}

// DeleteCredentialUseCase returns a new DeleteCredential use case.
func (c *Container) DeleteCredentialUseCase() *usecase.DeleteCredential {
	return usecase.NewDeleteCredential(c.Credentials)
}

// ImportIssuesUseCase returns a new ImportIssues use case talking to the
// services configured by s.
func (c *Container) ImportIssuesUseCase(s *domain.Settings, reporter domain.Reporter) (*usecase.ImportIssues, error) {
	source, err := c.NewSource(s)
	if err != nil {
		return nil, err
	}
	return usecase.NewImportIssues(source, c.NewDestination(s), reporter, c.Clock), nil
}
