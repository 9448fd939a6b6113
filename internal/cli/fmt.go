// internal/cli/fmt.go
package sidenav

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fmtWrite bool
	fmtCheck bool
)

// fmtCmd implements 'fmt', which rewrites a fragment into the canonical
// single-line form: sections in the fixed category order, stable escaping,
// trailing semicolon.
var fmtCmd = &cobra.Command{
	Use:   "fmt <fragment>",
	Short: "Rewrite a fragment in canonical form",
	Long: `The 'fmt' command parses a sidebar fragment and re-serializes it
canonically. By default the result is printed to stdout; --write rewrites
the file in place, and --check exits non-zero when the file is not already
canonical without touching it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changed, err := runFmt(cmd.OutOrStdout(), args[0], fmtWrite, fmtCheck)
		if err != nil {
			return err
		}
		if fmtCheck && changed {
			return fmt.Errorf("%s is not in canonical form", args[0])
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit non-zero if the file is not canonical")
	rootCmd.AddCommand(fmtCmd)
}
