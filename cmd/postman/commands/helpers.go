package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

// DeleteConfig holds configuration for a delete command.
type DeleteConfig struct {
	Use        string
	Short      string
	Long       string
	EntityType string
	DeleteFunc func(ctx context.Context, client postman.Client, id string) (*postman.Response, error)
}

// createDeleteCommand creates a generic delete command.
func createDeleteCommand(config DeleteConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !force && !confirm(cmd, fmt.Sprintf("Really delete %s '%s'? (y/N): ", config.EntityType, id)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			_, err = config.DeleteFunc(cmd.Context(), client, id)
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", config.EntityType, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted %s '%s'\n", config.EntityType, id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

// confirm prints prompt and reports whether the user answered yes.
func confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == constants.ConfirmationYes
}

// optionalInt returns nil for zero so the flag is left out of the query.
func optionalInt(value int) *int {
	if value == 0 {
		return nil
	}

	return postman.Int(value)
}
