package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the postman CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := map[string]interface{}{
				"version": version,
				"commit":  commit,
				"built":   date,
			}

			return render(cmd.OutOrStdout(), versionInfo, &tableView{
				Columns: []column{
					{Header: "Version", Field: "version"},
					{Header: "Commit", Field: "commit"},
					{Header: "Built", Field: "built"},
				},
			})
		},
	}
}
