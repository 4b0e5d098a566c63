package commands

import (
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

// NewWorkspacesCommand creates the workspaces command group.
func NewWorkspacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"workspace", "ws"},
		Short:   "Manage workspaces",
		Long:    "List and inspect Postman workspaces",
	}

	cmd.AddCommand(newWorkspacesListCommand())
	cmd.AddCommand(newWorkspacesGetCommand())

	return cmd
}

func newWorkspacesListCommand() *cobra.Command {
	var workspaceType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			var opts *postman.WorkspaceListOptions
			if workspaceType != "" {
				opts = &postman.WorkspaceListOptions{Type: workspaceType}
			}

			resp, err := client.Workspaces().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "workspaces",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Type", Field: "type"},
					{Header: "Visibility", Field: "visibility"},
				},
				Empty: "No workspaces found",
			})
		},
	}

	cmd.Flags().StringVar(&workspaceType, "type", "", "workspace type: personal, team, private, public or partner")

	return cmd
}

func newWorkspacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get WORKSPACE_ID",
		Short: "Get a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Workspaces().Get(cmd.Context(), args[0], "")
			if err != nil {
				return fmt.Errorf("failed to get workspace: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "workspace",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Type", Field: "type"},
					{Header: "Visibility", Field: "visibility"},
					{Header: "Description", Field: "description"},
					{Header: "Created By", Field: "createdBy"},
				},
			})
		},
	}
}
