// internal/cli/show_entry.go
package sidenav

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
	"github.com/mwiater/sidenav/internal/logging"
	"github.com/mwiater/sidenav/internal/sidebar"
	"github.com/mwiater/sidenav/internal/util"
)

// descriptionWidth bounds the rendered description column.
const descriptionWidth = 72

var (
	showTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	showCategoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	showNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	showDescStyle     = lipgloss.NewStyle().Faint(true)
)

// jsonEntry is the JSON-mode projection of one entry.
type jsonEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CrossRefs   []string `json:"crossRefs,omitempty"`
}

// jsonFragment is the JSON-mode projection of a fragment.
type jsonFragment struct {
	Path       string                           `json:"path"`
	Categories map[sidebar.Category][]jsonEntry `json:"categories"`
	Entries    int                              `json:"entries"`
}

// runShow renders one fragment to out in either human or JSON form.
func runShow(out io.Writer, path string, jsonMode, debug bool) error {
	idx, err := loadFragmentFile(path)
	if err != nil {
		return err
	}

	if debug {
		pp.Fprintln(out, idx.Sections())
	}

	if jsonMode {
		if err := json.NewEncoder(out).Encode(fragmentJSON(path, idx)); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, renderFragment(path, idx))
	}

	logging.LogFragment("show", path, len(idx.Categories()), idx.Len())
	return nil
}

// fragmentJSON builds the JSON-mode projection of a fragment.
func fragmentJSON(path string, idx *sidebar.Index) jsonFragment {
	frag := jsonFragment{
		Path:       path,
		Categories: make(map[sidebar.Category][]jsonEntry, len(idx.Categories())),
		Entries:    idx.Len(),
	}
	for _, s := range idx.Sections() {
		entries := make([]jsonEntry, len(s.Entries))
		for i, e := range s.Entries {
			entries[i] = jsonEntry{
				Name:        e.Name,
				Description: e.PlainDescription(),
				CrossRefs:   e.CrossRefs(),
			}
		}
		frag.Categories[s.Category] = entries
	}
	return frag
}

// renderFragment renders the fragment as a category-grouped listing.
func renderFragment(path string, idx *sidebar.Index) string {
	var b strings.Builder
	b.WriteString(showTitleStyle.Render(path))
	fmt.Fprintf(&b, "  (%d entries)\n", idx.Len())

	for _, s := range idx.Sections() {
		b.WriteString("\n")
		b.WriteString(showCategoryStyle.Render(string(s.Category)))
		b.WriteString("\n")
		for _, e := range s.Entries {
			b.WriteString("  ")
			b.WriteString(showNameStyle.Render(e.Name))
			b.WriteString("\n")
			desc := util.WrapToWidth(e.PlainDescription(), descriptionWidth)
			for _, line := range strings.Split(desc, "\n") {
				b.WriteString("    ")
				b.WriteString(showDescStyle.Render(line))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
