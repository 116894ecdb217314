package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes a node and, when the node was created with a
// disposable boot disk, the boot disk afterwards.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy ID",
		Short: "Destroy a compute node",
		Long: `Destroy deletes a node identified by its zone/name pair.

The instance is deleted first; if its metadata marks the boot disk as
disposable, the disk is deleted once the instance is gone.

Example:
  gcenode destroy us-central1-a/web-1 -c gcenode.yaml

WARNING: This operation is irreversible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Destroy(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
