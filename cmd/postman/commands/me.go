package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCommand creates the me command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Long:  "Display the user that owns the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Users().Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "user",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Username", Field: "username"},
					{Header: "Email", Field: "email"},
					{Header: "Full Name", Field: "fullName"},
					{Header: "Team", Field: "teamName"},
				},
			})
		},
	}
}
