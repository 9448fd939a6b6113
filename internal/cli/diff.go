// internal/cli/diff.go
package sidenav

import (
	"fmt"

	"github.com/spf13/cobra"
)

// diffCmd implements 'diff', which compares the fragment a rebuild
// superseded with its replacement and reports entry-level changes.
var diffCmd = &cobra.Command{
	Use:   "diff <old-fragment> <new-fragment>",
	Short: "Compare two sidebar fragments",
	Long: `The 'diff' command compares two fragments of the same page, typically the
one a documentation rebuild superseded and its replacement, and reports the
symbols that were added, removed, or re-described. The exit status is
non-zero when the fragments differ.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := runDiff(cmd.OutOrStdout(), args[0], args[1], JSONModeEnabled())
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("fragments differ (%d change(s))", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
