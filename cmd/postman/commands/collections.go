package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

var collectionColumns = []column{
	{Header: "ID", Field: "id"},
	{Header: "Name", Field: "name"},
	{Header: "UID", Field: "uid"},
	{Header: "Owner", Field: "owner"},
	{Header: "Updated", Field: "updatedAt"},
}

// NewCollectionsCommand creates the collections command group.
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"collection", "col"},
		Short:   "Manage collections",
		Long:    "List, inspect, fork and delete Postman collections",
	}

	cmd.AddCommand(newCollectionsListCommand())
	cmd.AddCommand(newCollectionsGetCommand())
	cmd.AddCommand(newCollectionsForkCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:        "delete COLLECTION_ID",
		Short:      "Delete a collection",
		Long:       "Delete a Postman collection",
		EntityType: "collection",
		DeleteFunc: func(ctx context.Context, client postman.Client, id string) (*postman.Response, error) {
			return client.Collections().Delete(ctx, id)
		},
	}))

	return cmd
}

func newCollectionsListCommand() *cobra.Command {
	var (
		workspaceID string
		name        string
		limit       int
		offset      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Collections().List(cmd.Context(), &postman.CollectionListOptions{
				WorkspaceID: workspaceID,
				Name:        name,
				Limit:       optionalInt(limit),
				Offset:      optionalInt(offset),
			})
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key:     "collections",
				Columns: collectionColumns,
				Empty:   "No collections found",
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "only collections in this workspace")
	cmd.Flags().StringVar(&name, "name", "", "filter by collection name")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of collections")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of collections to skip")

	return cmd
}

func newCollectionsGetCommand() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "get COLLECTION_ID",
		Short: "Get a collection",
		Long:  "Display a collection. Table output shows its info block; use -o json for the full document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			var opts *postman.CollectionGetOptions
			if model != "" {
				opts = &postman.CollectionGetOptions{Model: model}
			}

			resp, err := client.Collections().Get(cmd.Context(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to get collection: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "collection",
				Columns: []column{
					{Header: "ID", Field: "info._postman_id"},
					{Header: "Name", Field: "info.name"},
					{Header: "UID", Field: "info.uid"},
					{Header: "Schema", Field: "info.schema"},
					{Header: "Updated", Field: "info.updatedAt"},
				},
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "response model, e.g. minimal")

	return cmd
}

func newCollectionsForkCommand() *cobra.Command {
	var (
		workspaceID string
		label       string
	)

	cmd := &cobra.Command{
		Use:   "fork COLLECTION_ID",
		Short: "Fork a collection into a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Collections().Fork(cmd.Context(), args[0], workspaceID, label)
			if err != nil {
				return fmt.Errorf("failed to fork collection: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key:     "collection",
				Columns: collectionColumns,
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "destination workspace ID")
	cmd.Flags().StringVar(&label, "label", "", "fork label")
	_ = cmd.MarkFlagRequired("workspace")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}
