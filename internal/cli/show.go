// internal/cli/show.go
package sidenav

import (
	"github.com/spf13/cobra"
)

// showCmd implements 'show', which renders a parsed fragment for humans.
// With --jsonMode the parsed structure is emitted as JSON instead; with
// --debug the raw parsed model is dumped as well.
var showCmd = &cobra.Command{
	Use:   "show <fragment>",
	Short: "Render a sidebar fragment",
	Long: `The 'show' command parses a sidebar fragment and renders it as a
category-grouped listing with plain-text descriptions. Subcommands show
other application state, e.g. 'show config'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runShow(cmd.OutOrStdout(), args[0], JSONModeEnabled(), DebugEnabled())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
