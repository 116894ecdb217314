package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// Profiles returns the profiles command.
func Profiles() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available hardware profiles across all zones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Profiles(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
