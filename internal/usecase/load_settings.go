package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-import/internal/domain"
)

// LoadSettingsInput contains the parameters for resolving settings.
type LoadSettingsInput struct {
	Overrides domain.Settings // Values given on the command line
	Dir       string          // Working directory used for repository detection
}

// LoadSettingsOutput contains the effective settings.
type LoadSettingsOutput struct {
	Settings     *domain.Settings
	RepoDetected bool // Repo was taken from the git origin remote
}

// LoadSettings resolves settings from flags, environment, config files,
// the credential store and the working directory, in that precedence.
type LoadSettings struct {
	loader      domain.ConfigLoader
	credentials domain.CredentialStore
	repos       domain.RepoDetector
}

// NewLoadSettings creates a new LoadSettings use case.
// credentials and repos may be nil.
func NewLoadSettings(loader domain.ConfigLoader, credentials domain.CredentialStore, repos domain.RepoDetector) *LoadSettings {
	return &LoadSettings{
		loader:      loader,
		credentials: credentials,
		repos:       repos,
	}
}

// Execute returns the effective settings. Missing values are left empty;
// validation happens when the import runs.
func (uc *LoadSettings) Execute(_ context.Context, in LoadSettingsInput) (*LoadSettingsOutput, error) {
	settings, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settings.Merge(&in.Overrides)

	uc.fillToken(settings, domain.CredentialGitHub, &settings.GitHub.Token)
	uc.fillToken(settings, domain.CredentialShortcut, &settings.Shortcut.Token)

	out := &LoadSettingsOutput{Settings: settings}
	if settings.GitHub.Repo == "" && uc.repos != nil && in.Dir != "" {
		repo, err := uc.repos.DetectRepo(in.Dir)
		if err != nil {
			settings.Warnings = append(settings.Warnings, fmt.Sprintf("detect repository: %v", err))
		} else if repo != "" {
			settings.GitHub.Repo = repo
			out.RepoDetected = true
		}
	}

	return out, nil
}

// fillToken reads a token from the credential store when none is configured.
// Store failures become warnings; a missing token is reported by validation.
func (uc *LoadSettings) fillToken(settings *domain.Settings, service domain.CredentialService, dst *string) {
	if *dst != "" || uc.credentials == nil {
		return
	}
	token, err := uc.credentials.Get(service)
	if err != nil {
		settings.Warnings = append(settings.Warnings, fmt.Sprintf("read %s token from keyring: %v", service, err))
		return
	}
	*dst = token
}
