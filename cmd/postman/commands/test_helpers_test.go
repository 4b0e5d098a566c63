package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/99designs/keyring"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const testAPIKey = "PMAK-0123456789abcdef"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// executeCommand runs the CLI with args against a fresh viper instance and
// an empty home directory. Tests using it must not run in parallel.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("POSTMAN_API_KEY", "")
	t.Setenv("POSTMAN_BASE_URL", "")

	rootCmd := NewRootCommand("1.2.3", "abc1234", "2026-01-01")

	var stdout, stderr bytes.Buffer

	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

// useMemoryKeyring swaps the OS keyring for an in-memory one.
func useMemoryKeyring(t *testing.T, items ...keyring.Item) keyring.Keyring {
	t.Helper()

	ring := keyring.NewArrayKeyring(items)
	original := openKeyring
	openKeyring = func(keyring.Config) (keyring.Keyring, error) {
		return ring, nil
	}

	t.Cleanup(func() { openKeyring = original })

	return ring
}

func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}
