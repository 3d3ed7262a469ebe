// ABOUTME: Root command wiring all Anchor subcommands
// ABOUTME: Running with no subcommand starts the interactive companion
package commands

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anchor",
		Short: "Anchor — a recovery support companion",
		Long: `Anchor is a recovery support companion: a private journal, coping tools,
scripture, community fellowship, and an AI support line, all on your own device.

Run with no arguments to start the companion.`,
		RunE: runApp,
	}

	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	root.AddCommand(NewRunCmd())
	root.AddCommand(NewProfileCmd())
	root.AddCommand(NewResourcesCmd())
	root.AddCommand(NewVersionCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
