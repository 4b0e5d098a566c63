package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

// NewEnvironmentsCommand creates the environments command group.
func NewEnvironmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"environment", "env"},
		Short:   "Manage environments",
		Long:    "List, inspect and delete Postman environments",
	}

	cmd.AddCommand(newEnvironmentsListCommand())
	cmd.AddCommand(newEnvironmentsGetCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:        "delete ENVIRONMENT_ID",
		Short:      "Delete an environment",
		Long:       "Delete a Postman environment",
		EntityType: "environment",
		DeleteFunc: func(ctx context.Context, client postman.Client, id string) (*postman.Response, error) {
			return client.Environments().Delete(ctx, id)
		},
	}))

	return cmd
}

func newEnvironmentsListCommand() *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Environments().List(cmd.Context(), workspaceID)
			if err != nil {
				return fmt.Errorf("failed to list environments: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "environments",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "UID", Field: "uid"},
					{Header: "Public", Field: "isPublic"},
					{Header: "Updated", Field: "updatedAt"},
				},
				Empty: "No environments found",
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "only environments in this workspace")

	return cmd
}

func newEnvironmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENVIRONMENT_ID",
		Short: "Get an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Environments().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get environment: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "environment",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Owner", Field: "owner"},
					{Header: "Public", Field: "isPublic"},
					{Header: "Variables", Field: "values"},
					{Header: "Updated", Field: "updatedAt"},
				},
			})
		},
	}
}
