// internal/cli/lint.go
package sidenav

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lintCmd implements 'lint', which checks one fragment file or every
// fragment under a documentation root against the sidebar schema and the
// fragment invariants.
var lintCmd = &cobra.Command{
	Use:   "lint [fragment|docroot]",
	Short: "Validate sidebar fragments",
	Long: `The 'lint' command validates sidebar index fragments: the JSON payload must
match the sidebar schema, every entry must be a unique (name, description)
pair within its category, and with --strict every category must be one the
documentation generator is known to emit. Given a directory it lints every
sidebar-items.js file beneath it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args, GetConfig())
		if err != nil {
			return err
		}
		problems, err := runLint(cmd.Context(), cmd.OutOrStdout(), target, StrictEnabled())
		if err != nil {
			return err
		}
		if problems > 0 {
			return fmt.Errorf("lint found %d problem(s)", problems)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
