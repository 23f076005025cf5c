package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the increase command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "increase",
		Short: "Increase banking API CLI",
		Long: `A command-line interface for the Increase banking API.

Manage accounts, cards, entities, transactions and transfers from the
terminal. Run 'increase login' to store an API key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.increase/config.yml)")
	flags.String("api-key", "", "API key")
	flags.StringP("environment", "e", "", "environment (production, sandbox)")
	flags.String("base-url", "", "API base URL, overrides --environment")
	flags.StringP("output", "o", constants.OutputFormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log every request and response")
	flags.Bool("no-color", false, "disable colored output")

	for key, flag := range map[string]string{
		"config":      "config",
		"api_key":     "api-key",
		"environment": "environment",
		"base_url":    "base-url",
		"output":      "output",
		"verbose":     "verbose",
		"no_color":    "no-color",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	viper.Set("cli_version", version)

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewAccountsCommand())
	rootCmd.AddCommand(NewCardsCommand())
	rootCmd.AddCommand(NewEntitiesCommand())
	rootCmd.AddCommand(NewTransactionsCommand())
	rootCmd.AddCommand(NewTransfersCommand())

	return rootCmd
}

// initConfig wires the config file and INCREASE_* environment variables into
// viper. A missing config file is not an error.
func initConfig() error {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".increase"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	if viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
