package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VERSION is the published version.
const VERSION = "v0.1.0"

// VersionCmd builds the 'version' subcommand.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", APP, VERSION)
		},
	}
}
