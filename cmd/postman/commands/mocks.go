package commands

import (
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
)

var mockColumns = []column{
	{Header: "ID", Field: "id"},
	{Header: "Name", Field: "name"},
	{Header: "Collection", Field: "collection"},
	{Header: "URL", Field: "mockUrl"},
	{Header: "Private", Field: "config.private"},
}

// NewMocksCommand creates the mocks command group.
func NewMocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mocks",
		Aliases: []string{"mock"},
		Short:   "Manage mock servers",
		Long:    "List, inspect, publish and unpublish mock servers",
	}

	cmd.AddCommand(newMocksListCommand())
	cmd.AddCommand(newMocksGetCommand())
	cmd.AddCommand(newMocksPublishCommand(true))
	cmd.AddCommand(newMocksPublishCommand(false))

	return cmd
}

func newMocksListCommand() *cobra.Command {
	var (
		workspaceID string
		teamID      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mock servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Mocks().List(cmd.Context(), &postman.MockListOptions{
				TeamID:      teamID,
				WorkspaceID: workspaceID,
			})
			if err != nil {
				return fmt.Errorf("failed to list mocks: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key:     "mocks",
				Columns: mockColumns,
				Empty:   "No mock servers found",
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "only mocks in this workspace")
	cmd.Flags().StringVar(&teamID, "team", "", "only mocks owned by this team")

	return cmd
}

func newMocksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MOCK_ID",
		Short: "Get a mock server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Mocks().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mock: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key:     "mock",
				Columns: mockColumns,
			})
		},
	}
}

func newMocksPublishCommand(publish bool) *cobra.Command {
	use, short, verb := "publish MOCK_ID", "Make a mock server public", "published"
	if !publish {
		use, short, verb = "unpublish MOCK_ID", "Make a mock server private", "unpublished"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			if publish {
				_, err = client.Mocks().Publish(cmd.Context(), args[0])
			} else {
				_, err = client.Mocks().Unpublish(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to update mock: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully %s mock '%s'\n", verb, args[0])

			return nil
		},
	}
}
