// Package cli provides the command-line interface for issue-import.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/issue-import/internal/app"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupImport = "import"
	groupSetup  = "setup"
)

// NewRootCommand creates the root command for issue-import.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "issue-import",
		Short: "Import GitHub issues into Shortcut",
		Long: `issue-import copies the issues of a GitHub repository into a Shortcut
project. Each issue becomes one story; pull requests are skipped.

Tokens, repository and project come from flags, the environment (or a .env
file), .issue-import.toml, the global config file or the OS keyring.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupImport, Title: "Import Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupImport

	authCmd := newAuthCommand(c)
	authCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(importCmd, authCmd, configCmd)

	return root
}

// PrintError writes err for the user. Configuration errors produce one
// line per violated rule.
func PrintError(w io.Writer, err error) {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		for _, v := range cfgErr.Violations {
			_, _ = fmt.Fprintf(w, "error: %s\n", v.Message())
		}
		return
	}
	_, _ = fmt.Fprintf(w, "error: %v\n", err)
}
