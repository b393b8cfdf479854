package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validImportConfig() ImportConfig {
	return ImportConfig{
		GitHubToken:   "gh",
		ShortcutToken: "sc",
		ProjectID:     "123",
		Repo:          "octo/hello",
		State:         "open",
	}
}

func TestImportConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ImportConfig)
		want   []Violation
	}{
		{"valid", func(*ImportConfig) {}, nil},
		{"missing project only", func(c *ImportConfig) { c.ProjectID = "" }, []Violation{ViolationMissingProject}},
		{"whitespace token", func(c *ImportConfig) { c.GitHubToken = "  " }, []Violation{ViolationMissingGitHubToken}},
		{"bad repo", func(c *ImportConfig) { c.Repo = "hello" }, []Violation{ViolationInvalidRepo}},
		{"bad state", func(c *ImportConfig) { c.State = "merged" }, []Violation{ViolationInvalidState}},
		{"uppercase state ok", func(c *ImportConfig) { c.State = "ALL" }, nil},
		{
			"everything missing",
			func(c *ImportConfig) { *c = ImportConfig{} },
			[]Violation{
				ViolationMissingGitHubToken,
				ViolationMissingShortcutToken,
				ViolationMissingProject,
				ViolationMissingRepo,
				ViolationInvalidState,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validImportConfig()
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, cfg.Validate())
		})
	}
}

func TestViolation_Message(t *testing.T) {
	assert.Contains(t, ViolationMissingProject.Message(), "project")
	assert.Equal(t, "custom", Violation("custom").Message())
}

func TestSettings_Merge(t *testing.T) {
	base := NewDefaultSettings()
	base.Merge(&Settings{
		GitHub:   GitHubSettings{Repo: "octo/hello", State: "open"},
		Warnings: []string{"w1"},
	})
	base.Merge(&Settings{
		GitHub:   GitHubSettings{State: "closed", Token: " "},
		Shortcut: ShortcutSettings{Project: "7"},
		Warnings: []string{"w2"},
	})

	assert.Equal(t, "octo/hello", base.GitHub.Repo)
	assert.Equal(t, "closed", base.GitHub.State)
	assert.Equal(t, "", base.GitHub.Token, "blank values do not override")
	assert.Equal(t, "7", base.Shortcut.Project)
	assert.Equal(t, DefaultShortcutURL, base.Shortcut.BaseURL)
	assert.Equal(t, "info", base.Log.Level)
	assert.Equal(t, []string{"w1", "w2"}, base.Warnings)
}

func TestImportConfigFrom(t *testing.T) {
	s := &Settings{
		GitHub:   GitHubSettings{Token: "gh", Repo: "o/r", State: "all"},
		Shortcut: ShortcutSettings{Token: "sc", Project: "9"},
	}
	assert.Equal(t, ImportConfig{
		GitHubToken:   "gh",
		ShortcutToken: "sc",
		ProjectID:     "9",
		Repo:          "o/r",
		State:         "all",
	}, ImportConfigFrom(s))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", MaskToken(""))
	assert.Equal(t, "****", MaskToken("abc"))
	assert.Equal(t, "********6789", MaskToken("ghp_123456789"))
}
