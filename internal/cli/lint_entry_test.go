// internal/cli/lint_entry_test.go
package sidenav

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// TestRunLintFile tests linting a single fragment: a valid fragment reports
// zero problems and an OK line, schema violations and invariant breaches
// each count as a problem, and unknown categories warn by default but fail
// under strict.
func TestRunLintFile(t *testing.T) {
	dir := t.TempDir()

	valid := writeFragment(t, dir, "valid.js",
		`initSidebarItems({"enum":[["Closest","The result of a <code>ClosestPoint::closest_point()</code> query."]]});`)
	var out bytes.Buffer
	problems, err := runLint(context.Background(), &out, valid, false)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 0 {
		t.Fatalf("expected 0 problems, got %d: %s", problems, out.String())
	}
	if !strings.Contains(out.String(), "OK") {
		t.Errorf("expected OK line, got: %s", out.String())
	}

	badShape := writeFragment(t, dir, "badshape.js", `initSidebarItems({"enum":[["Closest"]]});`)
	out.Reset()
	problems, err = runLint(context.Background(), &out, badShape, false)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 1 {
		t.Fatalf("expected 1 problem, got %d", problems)
	}
	if !strings.Contains(out.String(), "ERROR") {
		t.Errorf("expected ERROR line, got: %s", out.String())
	}

	dup := writeFragment(t, dir, "dup.js", `{"trait":[["Length","a"],["Length","b"]]}`)
	out.Reset()
	if problems, _ = runLint(context.Background(), &out, dup, false); problems != 1 {
		t.Fatalf("duplicate symbol: expected 1 problem, got %d", problems)
	}

	unknown := writeFragment(t, dir, "unknown.js", `{"widget":[["W","w"]]}`)
	out.Reset()
	problems, err = runLint(context.Background(), &out, unknown, false)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 0 {
		t.Fatalf("lenient mode: expected 0 problems, got %d", problems)
	}
	if !strings.Contains(out.String(), "WARN") {
		t.Errorf("expected WARN line, got: %s", out.String())
	}

	out.Reset()
	problems, err = runLint(context.Background(), &out, unknown, true)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 1 {
		t.Fatalf("strict mode: expected 1 problem, got %d", problems)
	}
}

// TestRunLintTree tests linting a documentation root: healthy pages pass,
// broken fragments surface as per-page errors, and the problem count drives
// the exit status.
func TestRunLintTree(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "doc/geo/sidebar-items.js",
		`initSidebarItems({"mod":[["algorithms","Geometric algorithms."]]});`)
	writeFragment(t, dir, "doc/geo/algorithms/sidebar-items.js",
		`initSidebarItems({"trait":[["Length","Something with a length."]]});`)

	var out bytes.Buffer
	problems, err := runLint(context.Background(), &out, dir+"/doc/geo", false)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 0 {
		t.Fatalf("expected 0 problems, got %d: %s", problems, out.String())
	}
	if !strings.Contains(out.String(), "2 page(s)") {
		t.Errorf("expected page summary, got: %s", out.String())
	}

	writeFragment(t, dir, "doc/geo/broken/sidebar-items.js", `initSidebarItems({"enum":[]});`)
	out.Reset()
	problems, err = runLint(context.Background(), &out, dir+"/doc/geo", false)
	if err != nil {
		t.Fatalf("runLint() failed: %v", err)
	}
	if problems != 1 {
		t.Fatalf("expected 1 problem, got %d: %s", problems, out.String())
	}
	if !strings.Contains(out.String(), "broken") {
		t.Errorf("expected the broken page to be named, got: %s", out.String())
	}
}
