package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the postman command with every command group attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "postman",
		Short: "Postman API CLI",
		Long: `A command-line interface for the Postman public API.

It manages collections, environments, workspaces, Spec Hub specs, mocks and
monitors, and can sync local OpenAPI or AsyncAPI files into a spec.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.postman/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Postman API key (overrides keyring and config)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default https://api.getpostman.com)")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringP("query", "q", "", "jq expression applied to the JSON response")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")

	for _, name := range []string{"config", "api-key", "base-url", "output", "query", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewMeCommand())
	rootCmd.AddCommand(NewCollectionsCommand())
	rootCmd.AddCommand(NewEnvironmentsCommand())
	rootCmd.AddCommand(NewWorkspacesCommand())
	rootCmd.AddCommand(NewSpecsCommand())
	rootCmd.AddCommand(NewMocksCommand())
	rootCmd.AddCommand(NewMonitorsCommand())
	rootCmd.AddCommand(NewSyncCommand())

	return rootCmd
}

func initConfig() error {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := configDirectory()
		if err != nil {
			return err
		}

		// Search config in ~/.postman/config.yaml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// POSTMAN_API_KEY, POSTMAN_BASE_URL, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}

		return nil
	}

	// a missing default config file is fine, an explicit one is not
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("reading config file: %w", err)
}

func configDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}
