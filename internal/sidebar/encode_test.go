// internal/sidebar/encode_test.go
package sidebar

import (
	"bytes"
	"strings"
	"testing"
)

// TestEncodeRoundTrip tests that parsing a fragment, encoding it, and
// parsing the result yields an identical mapping. Round-trip stability is
// the core guarantee of the canonical form: the data is immutable and
// declarative, so serialization must never lose or reorder entries.
func TestEncodeRoundTrip(t *testing.T) {
	idx, err := Parse([]byte(geometryFragment))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	again, err := Parse(idx.EncodeWrapped())
	if err != nil {
		t.Fatalf("Parse() of encoded fragment failed: %v", err)
	}
	if !idx.Equal(again) {
		t.Fatalf("round trip changed the index:\n first: %s\nsecond: %s", idx.Encode(), again.Encode())
	}
}

// TestEncodeStable tests that the canonical encoding is a fixed point:
// encoding, parsing, and encoding again produces byte-identical output.
// This is what lets 'fmt --check' compare bytes instead of structures.
func TestEncodeStable(t *testing.T) {
	idx, err := Parse([]byte(geometryFragment))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	first := idx.Encode()

	again, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse() of encoded payload failed: %v", err)
	}
	second := again.Encode()

	if !bytes.Equal(first, second) {
		t.Fatalf("canonical encoding is not stable:\n first: %s\nsecond: %s", first, second)
	}
}

// TestEncodeCanonicalOrder tests that sections are emitted in the fixed
// category order regardless of source order, that unknown categories sort
// after known ones, and that entry order within a section is untouched.
func TestEncodeCanonicalOrder(t *testing.T) {
	src := `{"trait":[["Length","l"],["Bounded","b"]],"widget":[["W","w"]],"enum":[["Closest","c"]],"struct":[["ApproximatedArc","a"]]}`
	idx, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	got := string(idx.Encode())
	want := `{"struct":[["ApproximatedArc","a"]],"enum":[["Closest","c"]],"trait":[["Length","l"],["Bounded","b"]],"widget":[["W","w"]]}`
	if got != want {
		t.Fatalf("canonical encoding mismatch:\n got: %s\nwant: %s", got, want)
	}
}

// TestEncodeWrapped tests that the wrapped form carries the exact call
// syntax the generator emits, on a single line with a trailing semicolon.
func TestEncodeWrapped(t *testing.T) {
	idx, err := Parse([]byte(`{"enum":[["Closest","c"]]}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	out := string(idx.EncodeWrapped())
	if !strings.HasPrefix(out, "initSidebarItems({") {
		t.Errorf("wrapped output missing call prefix: %s", out)
	}
	if !strings.HasSuffix(out, "});") {
		t.Errorf("wrapped output missing call suffix: %s", out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("wrapped output must be a single line: %q", out)
	}
}

// TestEncodePreservesMarkup tests that HTML markup and special characters
// inside descriptions survive encoding verbatim instead of being escaped to
// <-style sequences, and that embedded quotes are escaped correctly.
func TestEncodePreservesMarkup(t *testing.T) {
	idx := &Index{}
	if err := idx.Add(CategoryEnum, Entry{
		Name:        "Closest",
		Description: `The result of a <code>ClosestPoint::closest_point()</code> "query".`,
	}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	out := string(idx.Encode())
	if !strings.Contains(out, "<code>ClosestPoint::closest_point()</code>") {
		t.Errorf("markup was escaped: %s", out)
	}
	if !strings.Contains(out, `\"query\"`) {
		t.Errorf("quotes were not escaped: %s", out)
	}

	again, err := Parse([]byte(out))
	if err != nil {
		t.Fatalf("Parse() of encoded payload failed: %v", err)
	}
	if !idx.Equal(again) {
		t.Fatal("round trip with markup changed the index")
	}
}
