// internal/cli/diff_entry.go
package sidenav

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/sidenav/internal/doctree"
	"github.com/mwiater/sidenav/internal/logging"
)

var (
	diffAddLabel    = color.New(color.FgGreen).SprintFunc()
	diffRemoveLabel = color.New(color.FgRed).SprintFunc()
	diffChangeLabel = color.New(color.FgYellow).SprintFunc()
)

// diffRow is one change in JSON-mode diff output.
type diffRow struct {
	Kind           string `json:"kind"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	OldDescription string `json:"oldDescription,omitempty"`
	NewDescription string `json:"newDescription,omitempty"`
}

// runDiff compares two fragment files and reports the number of changes.
func runDiff(out io.Writer, oldPath, newPath string, jsonMode bool) (int, error) {
	oldIdx, err := loadFragmentFile(oldPath)
	if err != nil {
		return 0, err
	}
	newIdx, err := loadFragmentFile(newPath)
	if err != nil {
		return 0, err
	}

	changes := doctree.Diff(oldIdx, newIdx)

	if jsonMode {
		rows := make([]diffRow, len(changes))
		for i, c := range changes {
			rows[i] = diffRow{
				Kind:           c.Kind.String(),
				Category:       string(c.Category),
				Name:           c.Name,
				OldDescription: c.OldDescription,
				NewDescription: c.NewDescription,
			}
		}
		if err := json.NewEncoder(out).Encode(rows); err != nil {
			return 0, err
		}
	} else {
		for _, c := range changes {
			line := c.String()
			switch c.Kind {
			case doctree.EntryAdded:
				line = diffAddLabel(line)
			case doctree.EntryRemoved:
				line = diffRemoveLabel(line)
			default:
				line = diffChangeLabel(line)
			}
			fmt.Fprintln(out, line)
		}
		if len(changes) == 0 {
			fmt.Fprintln(out, "fragments are identical")
		}
	}

	logging.LogEvent("diff %s -> %s: %d change(s)", oldPath, newPath, len(changes))
	return len(changes), nil
}
