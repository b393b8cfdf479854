package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/runoshun/issue-import/internal/app"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/usecase"
	"github.com/spf13/cobra"
)

// promptTokenFunc asks for a token on the terminal. Tests replace it.
var promptTokenFunc = promptToken

// newAuthCommand creates the auth command.
func newAuthCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API tokens in the OS keyring",
		Long: `Manage the GitHub and Shortcut API tokens stored in the OS keyring.

Stored tokens are used when no token is given by flag, environment or
config file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newAuthSetCommand(c))
	cmd.AddCommand(newAuthDeleteCommand(c))

	return cmd
}

// newAuthSetCommand creates the auth set subcommand.
func newAuthSetCommand(c *app.Container) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:       "set <github|shortcut>",
		Short:     "Store an API token",
		Long:      `Store an API token. Without --token the token is prompted for, or read from stdin when it is not a terminal.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.CredentialGitHub), string(domain.CredentialShortcut)},
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := domain.ParseCredentialService(args[0])
			if err != nil {
				return err
			}

			if token == "" {
				token, err = readToken(cmd.InOrStdin(), service)
				if err != nil {
					return err
				}
			}

			if err := c.SetCredentialUseCase().Execute(cmd.Context(), usecase.SetCredentialInput{
				Service: service,
				Token:   token,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored %s token\n", service)
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Token to store")

	return cmd
}

// newAuthDeleteCommand creates the auth delete subcommand.
func newAuthDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:       "delete <github|shortcut>",
		Aliases:   []string{"rm"},
		Short:     "Remove a stored API token",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.CredentialGitHub), string(domain.CredentialShortcut)},
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := domain.ParseCredentialService(args[0])
			if err != nil {
				return err
			}

			if err := c.DeleteCredentialUseCase().Execute(cmd.Context(), usecase.DeleteCredentialInput{
				Service: service,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s token\n", service)
			return nil
		},
	}
}

// readToken prompts on a terminal and reads the first line otherwise.
func readToken(in io.Reader, service domain.CredentialService) (string, error) {
	if isTerminal(in) {
		return promptTokenFunc(service)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptToken(service domain.CredentialService) (string, error) {
	var token string
	err := huh.NewInput().
		Title(fmt.Sprintf("%s API token", titleCase(string(service)))).
		Description("Stored in the OS keyring").
		EchoMode(huh.EchoModePassword).
		Value(&token).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return domain.ErrEmptyToken
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt for token: %w", err)
	}
	return token, nil
}

func titleCase(s string) string {
	switch s {
	case string(domain.CredentialGitHub):
		return "GitHub"
	case string(domain.CredentialShortcut):
		return "Shortcut"
	}
	return s
}
