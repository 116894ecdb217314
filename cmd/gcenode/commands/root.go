// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gcenode CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcenode",
		Short: "Manage compute node lifecycles on Google Compute Engine",
	}

	cmd.AddCommand(Create())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(List())
	cmd.AddCommand(Reboot())

	// Catalog commands
	cmd.AddCommand(Images())
	cmd.AddCommand(Profiles())
	cmd.AddCommand(Version())

	return cmd
}
