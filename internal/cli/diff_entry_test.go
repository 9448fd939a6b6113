// internal/cli/diff_entry_test.go
package sidenav

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestRunDiff tests comparing two fragment files: the change count is
// returned for the exit status, and each change renders as one report line.
func TestRunDiff(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFragment(t, dir, "old.js",
		`initSidebarItems({"trait":[["Length","Something with a length."],["Scale","Resize an item."]]});`)
	newPath := writeFragment(t, dir, "new.js",
		`initSidebarItems({"trait":[["Length","Something with a length."],["Translate","Move an item."]]});`)

	var out bytes.Buffer
	n, err := runDiff(&out, oldPath, newPath, false)
	if err != nil {
		t.Fatalf("runDiff() failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 changes, got %d: %s", n, out.String())
	}
	text := out.String()
	if !strings.Contains(text, "+ trait Translate") {
		t.Errorf("expected addition line, got: %s", text)
	}
	if !strings.Contains(text, "- trait Scale") {
		t.Errorf("expected removal line, got: %s", text)
	}
}

// TestRunDiffIdentical tests that identical fragments report zero changes
// and say so.
func TestRunDiffIdentical(t *testing.T) {
	dir := t.TempDir()
	a := writeFragment(t, dir, "a.js", `initSidebarItems({"trait":[["Length","l"]]});`)
	b := writeFragment(t, dir, "b.js", `initSidebarItems({"trait":[["Length","l"]]});`)

	var out bytes.Buffer
	n, err := runDiff(&out, a, b, false)
	if err != nil {
		t.Fatalf("runDiff() failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 changes, got %d", n)
	}
	if !strings.Contains(out.String(), "identical") {
		t.Errorf("expected identical notice, got: %s", out.String())
	}
}

// TestRunDiffJSON tests JSON output mode for diff reports.
func TestRunDiffJSON(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFragment(t, dir, "old.js", `{"enum":[["Closest","old"]]}`)
	newPath := writeFragment(t, dir, "new.js", `{"enum":[["Closest","new"]]}`)

	var out bytes.Buffer
	n, err := runDiff(&out, oldPath, newPath, true)
	if err != nil {
		t.Fatalf("runDiff() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 change, got %d", n)
	}

	var rows []diffRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(rows) != 1 || rows[0].Kind != "changed" || rows[0].Name != "Closest" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].OldDescription != "old" || rows[0].NewDescription != "new" {
		t.Fatalf("descriptions not carried: %+v", rows[0])
	}
}
