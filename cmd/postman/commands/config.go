package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// readSecret reads a secret without echo when stdin is a terminal. Tests
// replace it.
var readSecret = func(in io.Reader) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the stored API key and show the effective configuration",
	}

	cmd.AddCommand(newConfigSetAPIKeyCommand())
	cmd.AddCommand(newConfigClearAPIKeyCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api-key [API_KEY]",
		Short: "Store the API key in the OS keyring",
		Long: `Store a Postman API key in the OS keyring.

Without an argument the key is read from stdin, without echo on a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

				secret, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				apiKey = secret
			}

			apiKey = strings.TrimSpace(apiKey)

			err := storeAPIKey(apiKey)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key %s stored in keyring\n", maskSecret(apiKey))

			return nil
		},
	}
}

func newConfigClearAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-api-key",
		Short: "Remove the API key from the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := deleteStoredAPIKey()
			if err != nil {
				return err
			}

			if !removed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No API key stored")

				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key removed from keyring")

			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// show must work before a key is stored or when no keyring exists
			apiKey, source, err := resolveAPIKey()
			if err != nil && !errors.Is(err, constants.ErrNoAPIKey) && !errors.Is(err, constants.ErrKeyringUnavailable) {
				return err
			}

			maskedKey := constants.NotAvailable
			if apiKey != "" {
				maskedKey = maskSecret(apiKey)
			}

			baseURL := viper.GetString("base-url")
			if baseURL == "" {
				baseURL = postman.DefaultBaseURL
			}

			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				configFile = constants.NotAvailable
			}

			current := map[string]interface{}{
				"api_key":        maskedKey,
				"api_key_source": source,
				"base_url":       baseURL,
				"output":         viper.GetString("output"),
				"config_file":    configFile,
			}

			return render(cmd.OutOrStdout(), current, &tableView{
				Columns: []column{
					{Header: "API Key", Field: "api_key"},
					{Header: "API Key Source", Field: "api_key_source"},
					{Header: "Base URL", Field: "base_url"},
					{Header: "Output", Field: "output"},
					{Header: "Config File", Field: "config_file"},
				},
			})
		},
	}
}
