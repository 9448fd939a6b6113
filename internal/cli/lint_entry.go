// internal/cli/lint_entry.go
package sidenav

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mwiater/sidenav/internal/logging"
	"github.com/mwiater/sidenav/internal/sidebar"
)

var (
	lintErrLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	lintWarnLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	lintOKLabel   = color.New(color.FgGreen).SprintFunc()
)

// runLint lints a single fragment file or every fragment under a directory.
// It returns the number of problems found; the error return is reserved for
// failures that prevent linting at all.
func runLint(ctx context.Context, out io.Writer, target string, strict bool) (int, error) {
	if isDir(target) {
		return lintTree(ctx, out, target, strict)
	}
	return lintFile(out, target, strict)
}

// lintFile validates one fragment: schema first, then the ordered decode
// with its invariant checks, then the category audit.
func lintFile(out io.Writer, path string, strict bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read fragment %q: %w", path, err)
	}

	problems := 0
	if err := sidebar.ValidateFragment(data); err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", lintErrLabel("ERROR"), path, err)
		return 1, nil
	}

	idx, err := sidebar.Parse(data)
	if err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", lintErrLabel("ERROR"), path, err)
		return 1, nil
	}

	problems += lintCategories(out, path, idx, strict)
	if problems == 0 {
		fmt.Fprintf(out, "%s %s (%d categories, %d entries)\n", lintOKLabel("OK"), path, len(idx.Categories()), idx.Len())
	}
	logging.LogFragment("lint", path, len(idx.Categories()), idx.Len())
	return problems, nil
}

// lintTree scans a docroot and reports every parse diagnostic plus the
// category audit of every healthy fragment.
func lintTree(ctx context.Context, out io.Writer, root string, strict bool) (int, error) {
	tree, err := scanDocroot(ctx, root, GetConfig())
	if err != nil {
		return 0, err
	}

	problems := 0
	for _, d := range tree.Diagnostics() {
		fmt.Fprintf(out, "%s %s: %v\n", lintErrLabel("ERROR"), d.Page, d.Err)
		problems++
	}
	for _, page := range tree.Pages() {
		problems += lintCategories(out, page, tree.Fragment(page), strict)
	}
	if problems == 0 {
		fmt.Fprintf(out, "%s %d page(s), %d entries\n", lintOKLabel("OK"), len(tree.Pages()), tree.TotalEntries())
	}
	logging.LogFragment("lint", root, len(tree.Pages()), tree.TotalEntries())
	return problems, nil
}

// lintCategories audits a fragment's category keys. Unknown categories are
// warnings, promoted to problems under strict.
func lintCategories(out io.Writer, page string, idx *sidebar.Index, strict bool) int {
	problems := 0
	for _, c := range unknownCategories(idx) {
		if strict {
			fmt.Fprintf(out, "%s %s: unknown category %q\n", lintErrLabel("ERROR"), page, c)
			problems++
		} else {
			fmt.Fprintf(out, "%s %s: unknown category %q\n", lintWarnLabel("WARN"), page, c)
		}
	}
	return problems
}
