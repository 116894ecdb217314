package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// Reboot returns the reboot command.
func Reboot() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "reboot ID",
		Short: "Reboot a compute node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Reboot(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
