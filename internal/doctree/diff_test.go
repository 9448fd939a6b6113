// internal/doctree/diff_test.go
package doctree

import (
	"testing"

	"github.com/mwiater/sidenav/internal/sidebar"
)

// mustParse decodes a fragment or fails the test.
func mustParse(t *testing.T, src string) *sidebar.Index {
	t.Helper()
	idx, err := sidebar.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return idx
}

// TestDiff tests the fragment diff used to inspect rebuild supersession. It
// verifies that additions, removals, and description changes are all
// reported, attributed to the right category, and emitted in deterministic
// order.
func TestDiff(t *testing.T) {
	oldIdx := mustParse(t, `{"enum":[["Closest","old description"]],"trait":[["Length","Something with a length."],["Scale","Resize an item."]]}`)
	newIdx := mustParse(t, `{"enum":[["Closest","new description"]],"trait":[["Length","Something with a length."],["Translate","Move an item."]]}`)

	changes := Diff(oldIdx, newIdx)
	want := []Change{
		{Kind: EntryChanged, Category: sidebar.CategoryEnum, Name: "Closest", OldDescription: "old description", NewDescription: "new description"},
		{Kind: EntryAdded, Category: sidebar.CategoryTrait, Name: "Translate", NewDescription: "Move an item."},
		{Kind: EntryRemoved, Category: sidebar.CategoryTrait, Name: "Scale", OldDescription: "Resize an item."},
	}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d: %v", len(want), len(changes), changes)
	}
	for i, w := range want {
		if changes[i] != w {
			t.Errorf("change %d: expected %+v, got %+v", i, w, changes[i])
		}
	}
}

// TestDiffIdentical tests that identical fragments produce no changes, which
// is how 'sidenav diff' decides to report a clean rebuild.
func TestDiffIdentical(t *testing.T) {
	a := mustParse(t, `{"trait":[["Length","l"]]}`)
	b := mustParse(t, `{"trait":[["Length","l"]]}`)
	if changes := Diff(a, b); len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}
}

// TestDiffWholeCategory tests that a category present on only one side
// reports every entry of that category as added or removed.
func TestDiffWholeCategory(t *testing.T) {
	oldIdx := mustParse(t, `{"trait":[["Length","l"]]}`)
	newIdx := mustParse(t, `{"struct":[["Arc","a"],["Line","li"]],"trait":[["Length","l"]]}`)

	changes := Diff(oldIdx, newIdx)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(changes), changes)
	}
	for _, c := range changes {
		if c.Kind != EntryAdded || c.Category != sidebar.CategoryStruct {
			t.Errorf("unexpected change: %+v", c)
		}
	}
}

// TestChangeString tests the one-line rendering of each change kind.
func TestChangeString(t *testing.T) {
	added := Change{Kind: EntryAdded, Category: sidebar.CategoryStruct, Name: "Arc"}
	if got := added.String(); got != "+ struct Arc" {
		t.Errorf("added: got %q", got)
	}
	removed := Change{Kind: EntryRemoved, Category: sidebar.CategoryTrait, Name: "Scale"}
	if got := removed.String(); got != "- trait Scale" {
		t.Errorf("removed: got %q", got)
	}
	changed := Change{Kind: EntryChanged, Category: sidebar.CategoryEnum, Name: "Closest", OldDescription: "a", NewDescription: "b"}
	if got := changed.String(); got != `~ enum Closest: "a" -> "b"` {
		t.Errorf("changed: got %q", got)
	}
}
