package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey      string `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
	BaseURL     string `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	Output      string `json:"output,omitempty"      yaml:"output,omitempty"`
	NoColor     bool   `json:"no_color"              yaml:"no_color"`
}

// configKeys maps each settable key to its setter.
var configKeys = map[string]func(config *Config, value string) error{
	"api_key": func(config *Config, value string) error {
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value

		return nil
	},
	"environment": func(config *Config, value string) error {
		if value != constants.EnvironmentProduction && value != constants.EnvironmentSandbox {
			return fmt.Errorf("%w: %q", constants.ErrInvalidEnv, value)
		}

		config.Environment = value

		return nil
	},
	"base_url": func(config *Config, value string) error {
		config.BaseURL = value

		return nil
	},
	"output": func(config *Config, value string) error {
		switch value {
		case constants.OutputFormatTable, constants.OutputFormatJSON, constants.OutputFormatYAML:
			config.Output = value

			return nil
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	},
	"no_color": func(config *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("no_color must be true or false: %w", err)
		}

		config.NoColor = b

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.increase/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = Masked
			}

			return render(cmd.OutOrStdout(), config, func(w io.Writer) error {
				return renderDetails(w, [][]string{
					{"API Key", valueOrNA(config.APIKey)},
					{"Environment", valueOrNA(config.Environment)},
					{"Base URL", valueOrNA(config.BaseURL)},
					{"Output", valueOrNA(config.Output)},
					{"No Color", strconv.FormatBool(config.NoColor)},
					{"Config File", configFilePath()},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_key, environment, base_url, output or no_color",
		Args:  cobra.ExactArgs(2), //nolint:mnd // KEY and VALUE
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			set, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config := loadConfig()

			err := set(config, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			viper.Set(key, value)

			shown := value
			if key == "api_key" {
				shown = Masked
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, shown)

			return nil
		},
	}
}

func valueOrNA(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

func loadConfig() *Config {
	return &Config{
		APIKey:      viper.GetString("api_key"),
		Environment: viper.GetString("environment"),
		BaseURL:     viper.GetString("base_url"),
		Output:      viper.GetString("output"),
		NoColor:     viper.GetBool("no_color"),
	}
}

// configFilePath is the file in use, the --config flag, or ~/.increase/config.yml.
func configFilePath() string {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile
	}

	if configFile := viper.GetString("config"); configFile != "" {
		return configFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".increase", "config.yml")
	}

	return filepath.Join(home, ".increase", "config.yml")
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
