// Package main is the entry point for the gcenode CLI.
//
// gcenode is a command-line tool for managing compute node lifecycles on
// Google Compute Engine: boot-disk-backed creation, tag-driven firewall
// exposure, destruction with disk cleanup, and catalog inspection.
//
// Commands: create, destroy, list, reboot, images, profiles.
//
// For detailed usage information, run:
//
//	gcenode --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/gcenode/cmd/gcenode/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
