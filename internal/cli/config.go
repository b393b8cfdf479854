package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-import/internal/app"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// effectiveConfig is the TOML shape printed by config show.
type effectiveConfig struct {
	GitHub   domain.GitHubSettings   `toml:"github"`
	Shortcut domain.ShortcutSettings `toml:"shortcut"`
	Log      domain.LogSettings      `toml:"log"`
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging the global config file,
.issue-import.toml, the environment and the OS keyring. Tokens are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{
				Dir: c.Config.Dir,
			})
			if err != nil {
				return err
			}
			s := out.Settings

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "# Loaded from:")
			if c.Config.GlobalConfigDir != "" {
				_, _ = fmt.Fprintf(w, "# - %s/%s\n", c.Config.GlobalConfigDir, domain.ConfigFileName)
			}
			_, _ = fmt.Fprintf(w, "# - %s/%s\n", c.Config.Dir, domain.RepoConfigFileName)
			if out.RepoDetected {
				_, _ = fmt.Fprintln(w, "# github.repo detected from the origin remote")
			}
			_, _ = fmt.Fprintln(w)

			data, err := toml.Marshal(effectiveConfig{GitHub: s.GitHub, Shortcut: s.Shortcut, Log: s.Log})
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, _ = w.Write(data)

			if len(s.Warnings) > 0 {
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "# Warnings:")
				for _, warning := range s.Warnings {
					_, _ = fmt.Fprintf(w, "# - %s\n", warning)
				}
			}
			return nil
		},
	}
}
