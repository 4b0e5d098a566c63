package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMonitorsCommand creates the monitors command group.
func NewMonitorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "monitors",
		Aliases: []string{"monitor"},
		Short:   "Manage monitors",
		Long:    "List, inspect and run Postman monitors",
	}

	cmd.AddCommand(newMonitorsListCommand())
	cmd.AddCommand(newMonitorsGetCommand())
	cmd.AddCommand(newMonitorsRunCommand())

	return cmd
}

func newMonitorsListCommand() *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List monitors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Monitors().List(cmd.Context(), workspaceID)
			if err != nil {
				return fmt.Errorf("failed to list monitors: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "monitors",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "UID", Field: "uid"},
					{Header: "Owner", Field: "owner"},
				},
				Empty: "No monitors found",
			})
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "only monitors in this workspace")

	return cmd
}

func newMonitorsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MONITOR_ID",
		Short: "Get a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Monitors().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get monitor: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "monitor",
				Columns: []column{
					{Header: "ID", Field: "id"},
					{Header: "Name", Field: "name"},
					{Header: "Collection", Field: "collectionUid"},
					{Header: "Environment", Field: "environmentUid"},
					{Header: "Schedule", Field: "schedule.cron"},
					{Header: "Next Run", Field: "schedule.nextRun"},
					{Header: "Last Status", Field: "lastRun.status"},
				},
			})
		},
	}
}

func newMonitorsRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run MONITOR_ID",
		Short: "Run a monitor now",
		Long:  "Run a monitor and wait for the run summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Monitors().Run(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to run monitor: %w", err)
			}

			return renderResponse(cmd.OutOrStdout(), resp, &tableView{
				Key: "run",
				Columns: []column{
					{Header: "Status", Field: "info.status"},
					{Header: "Started", Field: "info.startedAt"},
					{Header: "Finished", Field: "info.finishedAt"},
					{Header: "Requests", Field: "stats.requests.total"},
					{Header: "Failed Assertions", Field: "stats.assertions.failed"},
				},
			})
		},
	}
}
