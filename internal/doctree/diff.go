// internal/doctree/diff.go
package doctree

import (
	"fmt"
	"sort"

	"github.com/mwiater/sidenav/internal/sidebar"
)

// ChangeKind classifies a single entry-level difference between two
// fragments.
type ChangeKind int

const (
	// EntryAdded means the symbol exists only in the new fragment.
	EntryAdded ChangeKind = iota
	// EntryRemoved means the symbol exists only in the old fragment.
	EntryRemoved
	// EntryChanged means the symbol exists in both but the description
	// differs.
	EntryChanged
)

// String returns the short verb used in diff output.
func (k ChangeKind) String() string {
	switch k {
	case EntryAdded:
		return "added"
	case EntryRemoved:
		return "removed"
	case EntryChanged:
		return "changed"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes one difference between two fragments of the same page.
type Change struct {
	Kind           ChangeKind
	Category       sidebar.Category
	Name           string
	OldDescription string
	NewDescription string
}

// String renders the change as a one-line report row.
func (c Change) String() string {
	switch c.Kind {
	case EntryChanged:
		return fmt.Sprintf("~ %s %s: %q -> %q", c.Category, c.Name, c.OldDescription, c.NewDescription)
	case EntryAdded:
		return fmt.Sprintf("+ %s %s", c.Category, c.Name)
	default:
		return fmt.Sprintf("- %s %s", c.Category, c.Name)
	}
}

// Diff compares the fragment a rebuild superseded with its replacement and
// reports entry-level changes. Categories are visited in a deterministic
// order (the union of both sides, sorted); within a category, additions and
// description changes follow the new fragment's entry order and removals
// follow the old fragment's.
func Diff(oldIdx, newIdx *sidebar.Index) []Change {
	cats := map[sidebar.Category]bool{}
	for _, c := range oldIdx.Categories() {
		cats[c] = true
	}
	for _, c := range newIdx.Categories() {
		cats[c] = true
	}
	ordered := make([]sidebar.Category, 0, len(cats))
	for c := range cats {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var changes []Change
	for _, cat := range ordered {
		oldEntries := oldIdx.Entries(cat)
		newEntries := newIdx.Entries(cat)

		oldByName := make(map[string]sidebar.Entry, len(oldEntries))
		for _, e := range oldEntries {
			oldByName[e.Name] = e
		}
		newByName := make(map[string]sidebar.Entry, len(newEntries))
		for _, e := range newEntries {
			newByName[e.Name] = e
		}

		for _, e := range newEntries {
			if old, ok := oldByName[e.Name]; !ok {
				changes = append(changes, Change{Kind: EntryAdded, Category: cat, Name: e.Name, NewDescription: e.Description})
			} else if old.Description != e.Description {
				changes = append(changes, Change{
					Kind:           EntryChanged,
					Category:       cat,
					Name:           e.Name,
					OldDescription: old.Description,
					NewDescription: e.Description,
				})
			}
		}
		for _, e := range oldEntries {
			if _, ok := newByName[e.Name]; !ok {
				changes = append(changes, Change{Kind: EntryRemoved, Category: cat, Name: e.Name, OldDescription: e.Description})
			}
		}
	}
	return changes
}
