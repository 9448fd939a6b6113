// internal/cli/list_entry.go
package sidenav

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mwiater/sidenav/internal/logging"
	"github.com/mwiater/sidenav/internal/sidebar"
	"github.com/mwiater/sidenav/internal/util"
)

// nameColumnWidth aligns the description column in listings.
const nameColumnWidth = 24

// listRow is one symbol in list output.
type listRow struct {
	Page        string           `json:"page,omitempty"`
	Category    sidebar.Category `json:"category"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// runList enumerates symbols from a fragment file or a docroot.
func runList(ctx context.Context, out io.Writer, target, category string, jsonMode bool) error {
	rows, err := collectRows(ctx, target, category)
	if err != nil {
		return err
	}

	if jsonMode {
		if err := json.NewEncoder(out).Encode(rows); err != nil {
			return err
		}
	} else {
		lastPage := ""
		for _, r := range rows {
			if r.Page != "" && r.Page != lastPage {
				fmt.Fprintf(out, "%s\n", r.Page)
				lastPage = r.Page
			}
			name := fmt.Sprintf("%-*s", nameColumnWidth, r.Name)
			fmt.Fprintf(out, "  %-9s %s %s\n", r.Category, name, util.TruncateRunes(r.Description, descriptionWidth))
		}
		fmt.Fprintf(out, "%d symbol(s)\n", len(rows))
	}

	logging.LogFragment("list", target, 0, len(rows))
	return nil
}

// collectRows gathers list rows from either a single fragment or a scanned
// tree, applying the optional category filter.
func collectRows(ctx context.Context, target, category string) ([]listRow, error) {
	filter := sidebar.Category(category)

	if isDir(target) {
		tree, err := scanDocroot(ctx, target, GetConfig())
		if err != nil {
			return nil, err
		}
		var rows []listRow
		for _, page := range tree.Pages() {
			rows = append(rows, fragmentRows(page, tree.Fragment(page), filter)...)
		}
		return rows, nil
	}

	idx, err := loadFragmentFile(target)
	if err != nil {
		return nil, err
	}
	return fragmentRows("", idx, filter), nil
}

// fragmentRows flattens one fragment into list rows.
func fragmentRows(page string, idx *sidebar.Index, filter sidebar.Category) []listRow {
	var rows []listRow
	for _, s := range idx.Sections() {
		if filter != "" && s.Category != filter {
			continue
		}
		for _, e := range s.Entries {
			rows = append(rows, listRow{
				Page:        page,
				Category:    s.Category,
				Name:        e.Name,
				Description: e.PlainDescription(),
			})
		}
	}
	return rows
}
