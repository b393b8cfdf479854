package usecase

import (
	"context"

	"github.com/runoshun/issue-import/internal/domain"
)

// ShowConfigInput contains the parameters for showing configuration.
type ShowConfigInput struct {
	Dir string
}

// ShowConfigOutput contains the effective settings with tokens masked.
type ShowConfigOutput struct {
	Settings     *domain.Settings
	RepoDetected bool
}

// ShowConfig is the use case for displaying the effective configuration.
type ShowConfig struct {
	settings *LoadSettings
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(settings *LoadSettings) *ShowConfig {
	return &ShowConfig{settings: settings}
}

// Execute loads settings and masks every token.
func (uc *ShowConfig) Execute(ctx context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	loaded, err := uc.settings.Execute(ctx, LoadSettingsInput{Dir: in.Dir})
	if err != nil {
		return nil, err
	}
	s := *loaded.Settings
	s.GitHub.Token = domain.MaskToken(s.GitHub.Token)
	s.Shortcut.Token = domain.MaskToken(s.Shortcut.Token)

	return &ShowConfigOutput{Settings: &s, RepoDetected: loaded.RepoDetected}, nil
}
