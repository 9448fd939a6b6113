// internal/cli/browse.go
package sidenav

import (
	"github.com/mwiater/sidenav/tui"
	"github.com/spf13/cobra"
)

// browseCmd implements 'browse', which opens the interactive fragment
// browser over a single fragment or a whole documentation root.
var browseCmd = &cobra.Command{
	Use:   "browse [fragment|docroot]",
	Short: "Browse sidebar fragments interactively",
	Long: `The 'browse' command opens a full-screen browser over the sidebar
fragments of a documentation tree: pick a page, pick a symbol, read its
description and cross references. This is an authoring aid for inspecting
what a documentation rebuild produced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args, GetConfig())
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), GetConfig(), target)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
