package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/increase/internal/auth"
	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/fivetwenty-io/increase/pkg/increaseclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an Increase API key",
		Long:  "Verify an API key against the API and save it to the config file. Defaults to the sandbox environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := viper.GetString("environment")
			if environment == "" {
				environment = constants.EnvironmentSandbox
			}

			if apiKey == "" {
				key, err := promptAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = key
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			client, err := increaseclient.New(&increase.Config{
				APIKey:      apiKey,
				Environment: environment,
				BaseURL:     viper.GetString("base_url"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Listing a single account is the cheapest authenticated call.
			_, err = client.Accounts().List(commandContext(cmd), increase.AccountListParams{}.WithLimit(1))
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			manager := auth.NewConfigTokenManager(NewConfigPersister(), environment, "")

			err = manager.Store(apiKey)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s. API key saved to %s\n", environment, configFilePath())

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (prompted for when omitted)")

	return cmd
}

func promptAPIKey(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrNotATerminal
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

	key, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	return strings.TrimSpace(string(key)), nil
}
