package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// Images returns the images command.
//
// The images command lists the resolvable image catalog: the configured
// project's own images followed by the shared public projects, in lookup
// order.
func Images() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "List resolvable boot images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Images(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
