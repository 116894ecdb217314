package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcenode/cmd/gcenode/handlers"
)

// Create returns the create command.
//
// The create command provisions a new node: it resolves the image and
// hardware profile, creates a boot disk when none is supplied, creates the
// instance, and tags it for firewall exposure of the requested ports.
func Create() *cobra.Command {
	var (
		configPath string
		opts       handlers.CreateOptions
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a compute node",
		Long: `Create provisions a new compute node.

A boot disk named NAME-boot-disk is created from the resolved image and
attached as the first disk. The image is looked up in the configured
project first, then in the shared public image projects.

Inbound ports are opened by tagging the node with per-port firewall tags
derived from the provisioning group.

Example:
  gcenode create web-1 -c gcenode.yaml --group web --port 22 --port 80 --nat --wait`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.Create(cmd.Context(), configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	cmd.Flags().StringVar(&opts.Group, "group", "default", "Provisioning group; firewall tags are derived from it")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Image identifier (defaults to the configured image)")
	cmd.Flags().StringVar(&opts.MachineType, "machine-type", "", "Hardware profile (defaults to the configured one)")
	cmd.Flags().Int64Var(&opts.BootDiskSizeGB, "boot-disk-size", 0, "Boot disk size in GiB (default 10)")
	cmd.Flags().BoolVar(&opts.KeepBootDisk, "keep-boot-disk", false, "Keep the boot disk when the node is destroyed")
	cmd.Flags().BoolVar(&opts.EnableNAT, "nat", false, "Attach a public one-to-one NAT address")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "Block until the node is running")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "Explicit network tags")
	cmd.Flags().IntSliceVar(&opts.Ports, "port", nil, "Inbound ports to open via firewall tags")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
