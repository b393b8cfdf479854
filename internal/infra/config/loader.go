// Package config loads issue-import settings from TOML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-import/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads settings from the global config file, the per-directory
// config file, a .env file and the process environment.
type Loader struct {
	dir           string // Working directory holding .issue-import.toml and .env
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-import)
}

// NewLoader creates a new Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:           dir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dir, globalConfDir string) *Loader {
	return &Loader{
		dir:           dir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns $XDG_CONFIG_HOME/issue-import, falling back
// to ~/.config/issue-import. It returns "" when no home directory is known.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// envSettings is decoded from the process environment.
type envSettings struct {
	GitHubToken     string `envconfig:"GITHUB_TOKEN"`
	GitHubRepo      string `envconfig:"GITHUB_REPO"`
	GitHubState     string `envconfig:"GITHUB_STATE"`
	GitHubURL       string `envconfig:"GITHUB_API_URL"`
	ShortcutToken   string `envconfig:"SHORTCUT_API_TOKEN"`
	ShortcutProject string `envconfig:"SHORTCUT_PROJECT"`
	ShortcutURL     string `envconfig:"SHORTCUT_API_URL"`
	LogLevel        string `envconfig:"ISSUE_IMPORT_LOG_LEVEL"`
}

// Load returns the merged settings.
// Precedence, lowest first: defaults, global file, repo file, environment.
func (l *Loader) Load() (*domain.Settings, error) {
	base := domain.NewDefaultSettings()
	if l.globalConfDir != "" {
		base.Log.Dir = filepath.Join(l.globalConfDir, "logs")
	}

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	base.Merge(global)

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	base.Merge(repo)

	env, err := l.loadEnv()
	if err != nil {
		return nil, err
	}
	base.Merge(env)

	return base, nil
}

// LoadGlobal returns only the global configuration file.
func (l *Loader) LoadGlobal() (*domain.Settings, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the per-directory configuration file.
func (l *Loader) LoadRepo() (*domain.Settings, error) {
	return l.loadFile(filepath.Join(l.dir, domain.RepoConfigFileName))
}

// loadEnv loads <dir>/.env into the process environment without overriding
// variables already set, then decodes the environment.
func (l *Loader) loadEnv() (*domain.Settings, error) {
	envFile := filepath.Join(l.dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	var env envSettings
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return &domain.Settings{
		GitHub: domain.GitHubSettings{
			Token:   env.GitHubToken,
			Repo:    env.GitHubRepo,
			State:   env.GitHubState,
			BaseURL: env.GitHubURL,
		},
		Shortcut: domain.ShortcutSettings{
			Token:   env.ShortcutToken,
			Project: env.ShortcutProject,
			BaseURL: env.ShortcutURL,
		},
		Log: domain.LogSettings{Level: env.LogLevel},
	}, nil
}

// loadFile loads settings from a TOML file.
func (l *Loader) loadFile(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToSettings(raw), nil
}

// convertRawToSettings converts the raw map to settings and collects warnings.
func convertRawToSettings(raw map[string]any) *domain.Settings {
	res := &domain.Settings{}
	sections := map[string]map[string]*string{
		"github": {
			"token":    &res.GitHub.Token,
			"repo":     &res.GitHub.Repo,
			"state":    &res.GitHub.State,
			"base_url": &res.GitHub.BaseURL,
		},
		"shortcut": {
			"token":    &res.Shortcut.Token,
			"project":  &res.Shortcut.Project,
			"base_url": &res.Shortcut.BaseURL,
		},
		"log": {
			"level": &res.Log.Level,
			"dir":   &res.Log.Dir,
		},
	}

	var warnings []string
	for section, value := range raw {
		fields, known := sections[section]
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}
		for k, v := range m {
			dst, known := fields[k]
			if !known {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
				continue
			}
			switch val := v.(type) {
			case string:
				*dst = val
			case int64:
				// project = 123 is as natural as project = "123"
				*dst = fmt.Sprintf("%d", val)
			default:
				warnings = append(warnings, fmt.Sprintf("[%s].%s must be a string", section, k))
			}
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}
