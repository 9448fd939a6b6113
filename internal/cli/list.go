// internal/cli/list.go
package sidenav

import (
	"github.com/spf13/cobra"
)

var listCategory string

// listCmd implements 'list', which enumerates the symbols of one fragment or
// of every fragment under a documentation root, with their category and a
// plain-text one-line description.
var listCmd = &cobra.Command{
	Use:   "list [fragment|docroot]",
	Short: "List the symbols in sidebar fragments",
	Long: `The 'list' command enumerates every symbol a fragment (or every fragment
under a documentation root) describes, grouped by page, one line per symbol.
The --category flag restricts the listing to a single category such as
"trait" or "struct".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args, GetConfig())
		if err != nil {
			return err
		}
		return runList(cmd.Context(), cmd.OutOrStdout(), target, listCategory, JSONModeEnabled())
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", `restrict to one category (e.g. "trait")`)
	rootCmd.AddCommand(listCmd)
}
