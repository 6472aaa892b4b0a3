package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vorocell/vorocell/internal/debug"
)

var debugFlag bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "vorocell",
	Short: "build Voronoi diagrams and offset their cells",
	Long: `vorocell computes a planar Voronoi diagram from a list of 2D sites
and shrinks or inflates the resulting cell polygons by a signed offset,
cleaning up the self-intersections the offset introduces.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Enabled = debugFlag
	},
}

// Execute runs RootCmd (whose subcommands register themselves in their
// files' init functions), printing any error and exiting with status 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log sweep and offset internals to stderr")
}
