package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// List returns the list command.
func List() *cobra.Command {
	var (
		configPath string
		ids        []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List compute nodes across all zones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), configPath, ids)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "Restrict the listing to the given node identifiers")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
