package domain

import (
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the global config file.
const ConfigFileName = "config.toml"

// RepoConfigFileName is the name of the per-directory config file.
const RepoConfigFileName = ".issue-import.toml"

// LogFileName is the name of the log file inside the log directory.
const LogFileName = "issue-import.log"

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "issue-import")
}

// DefaultShortcutURL is the Shortcut REST API base.
const DefaultShortcutURL = "https://api.app.shortcut.com/api/v3"

// Settings is the merged configuration from files, keyring and environment.
type Settings struct {
	GitHub   GitHubSettings
	Shortcut ShortcutSettings
	Log      LogSettings
	Warnings []string // Unknown keys and other non-fatal issues found while loading
}

// GitHubSettings holds the [github] section.
type GitHubSettings struct {
	Token   string `toml:"token"`
	Repo    string `toml:"repo"`
	State   string `toml:"state"`
	BaseURL string `toml:"base_url"` // GitHub Enterprise API base; empty = api.github.com
}

// ShortcutSettings holds the [shortcut] section.
type ShortcutSettings struct {
	Token   string `toml:"token"`
	Project string `toml:"project"`
	BaseURL string `toml:"base_url"`
}

// LogSettings holds the [log] section.
type LogSettings struct {
	Level string `toml:"level"` // debug, info, warn, error
	Dir   string `toml:"dir"`   // Empty disables the log file
}

// NewDefaultSettings returns settings with built-in defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		Shortcut: ShortcutSettings{BaseURL: DefaultShortcutURL},
		Log:      LogSettings{Level: "info"},
	}
}

// Merge overlays non-empty fields of other onto s. Warnings are appended.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	overlay(&s.GitHub.Token, other.GitHub.Token)
	overlay(&s.GitHub.Repo, other.GitHub.Repo)
	overlay(&s.GitHub.State, other.GitHub.State)
	overlay(&s.GitHub.BaseURL, other.GitHub.BaseURL)
	overlay(&s.Shortcut.Token, other.Shortcut.Token)
	overlay(&s.Shortcut.Project, other.Shortcut.Project)
	overlay(&s.Shortcut.BaseURL, other.Shortcut.BaseURL)
	overlay(&s.Log.Level, other.Log.Level)
	overlay(&s.Log.Dir, other.Log.Dir)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

func overlay(dst *string, src string) {
	if strings.TrimSpace(src) != "" {
		*dst = src
	}
}

// ImportConfig is the configuration of one import run.
type ImportConfig struct {
	GitHubToken   string
	ShortcutToken string
	ProjectID     string
	Repo          string
	State         string
}

// ImportConfigFrom extracts the import configuration from settings.
func ImportConfigFrom(s *Settings) ImportConfig {
	return ImportConfig{
		GitHubToken:   s.GitHub.Token,
		ShortcutToken: s.Shortcut.Token,
		ProjectID:     s.Shortcut.Project,
		Repo:          s.GitHub.Repo,
		State:         s.GitHub.State,
	}
}

// Violation identifies a broken configuration rule.
type Violation string

// Configuration rules.
const (
	ViolationMissingGitHubToken   Violation = "missing-github-token"
	ViolationMissingShortcutToken Violation = "missing-shortcut-token"
	ViolationMissingProject       Violation = "missing-project"
	ViolationMissingRepo          Violation = "missing-repo"
	ViolationInvalidRepo          Violation = "invalid-repo"
	ViolationInvalidState         Violation = "invalid-state"
)

var violationMessages = map[Violation]string{
	ViolationMissingGitHubToken:   "a GitHub token is required (--github-token, GITHUB_TOKEN or 'issue-import auth set github')",
	ViolationMissingShortcutToken: "a Shortcut token is required (--shortcut-token, SHORTCUT_API_TOKEN or 'issue-import auth set shortcut')",
	ViolationMissingProject:       "a Shortcut project id is required (--project or SHORTCUT_PROJECT)",
	ViolationMissingRepo:          "a GitHub repository is required (--repo or GITHUB_REPO)",
	ViolationInvalidRepo:          "the GitHub repository must look like owner/repo",
	ViolationInvalidState:         "the issue state must be one of open, closed or all",
}

// Message returns the user-facing text for the violation.
func (v Violation) Message() string {
	if msg, ok := violationMessages[v]; ok {
		return msg
	}
	return string(v)
}

// Validate returns every violated rule, in a stable order.
// An empty result means the configuration is usable.
func (c ImportConfig) Validate() []Violation {
	var violations []Violation
	if strings.TrimSpace(c.GitHubToken) == "" {
		violations = append(violations, ViolationMissingGitHubToken)
	}
	if strings.TrimSpace(c.ShortcutToken) == "" {
		violations = append(violations, ViolationMissingShortcutToken)
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		violations = append(violations, ViolationMissingProject)
	}
	if strings.TrimSpace(c.Repo) == "" {
		violations = append(violations, ViolationMissingRepo)
	} else if _, err := ParseRepoRef(c.Repo); err != nil {
		violations = append(violations, ViolationInvalidRepo)
	}
	if _, err := ParseIssueState(c.State); err != nil {
		violations = append(violations, ViolationInvalidState)
	}
	return violations
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}
