package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

// NewSpecsCommand creates the specs command group.
func NewSpecsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specs",
		Aliases: []string{"spec"},
		Short:   "Manage API specifications",
		Long:    "List, inspect and delete specifications in the Spec Hub",
	}

	cmd.AddCommand(newSpecsListCommand())
	cmd.AddCommand(newSpecsGetCommand())
	cmd.AddCommand(newSpecsFilesCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:        "delete SPEC_ID",
		Short:      "Delete a specification",
		Long:       "Delete a specification and all of its files",
		EntityType: "spec",
		DeleteFunc: func(ctx context.Context, client postman.Client, id string) (*postman.Response, error) {
			return client.Specs().Delete(ctx, id)
		},
	}))

	return cmd
}

func newSpecsListCommand() *cobra.Command {
	var (
		workspaceID string
		limit       int
		cursor      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List specifications in a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Specs().List(cmd.Context(), &postman.SpecListOptions{
				WorkspaceID: workspaceID,
				Cursor:      cursor,
				Limit:       optionalInt(limit),
			})
			if err != nil {
				return fmt.Errorf("failed to list specs: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "specs",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Type", Field: "type"},
					{Header: "Updated", Field: "updatedAt"},
				},
				Empty: "No specs found",
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "workspace ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of specs")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func newSpecsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SPEC_ID",
		Short: "Get a specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Specs().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get spec: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Type", Field: "type"},
					{Header: "Created By", Field: "createdBy"},
					{Header: "Updated", Field: "updatedAt"},
				},
			})
		},
	}
}

func newSpecsFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files SPEC_ID",
		Short: "List the files of a specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Specs().ListFiles(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list spec files: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "files",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Path", Field: "path"},
					{Header: "Type", Field: "type"},
					{Header: "Updated", Field: "updatedAt"},
				},
				Empty: "No files found",
			})
		},
	}
}
