// internal/doctree/doctree.go
// Package doctree discovers and holds the sidebar fragments of a generated
// documentation tree. A generator emits one sidebar-items.js file per page
// directory; Scan walks the tree, parses every fragment it finds, and
// returns an immutable Tree keyed by page path. The whole tree is superseded
// on the next documentation rebuild, so a Tree is never mutated after Scan.
package doctree

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/mwiater/sidenav/internal/sidebar"
)

// FragmentFile is the file name the documentation generator gives every
// sidebar fragment.
const FragmentFile = "sidebar-items.js"

// defaultWorkers bounds concurrent fragment parsing when Options omits it.
const defaultWorkers = 8

// Options configures a Scan.
type Options struct {
	// Workers is the number of fragments parsed concurrently.
	// Default: 8.
	Workers int
}

// Diagnostic records a fragment that could not be parsed. Scan collects
// diagnostics instead of aborting so one broken page does not hide the rest
// of the tree.
type Diagnostic struct {
	Page string
	Err  error
}

// SymbolRef locates a symbol inside a Tree.
type SymbolRef struct {
	Page     string
	Category sidebar.Category
	Entry    sidebar.Entry
}

// Tree holds the parsed fragments of one documentation root.
type Tree struct {
	fragments map[string]*sidebar.Index
	pages     []string
	diags     []Diagnostic
}

// Scan walks root inside fsys, parsing every sidebar fragment it finds with
// a bounded worker pool. Unreadable or malformed fragments become
// Diagnostics; Scan itself fails only when the walk cannot proceed or the
// context is cancelled.
func Scan(ctx context.Context, fsys fs.FS, root string, opts Options) (*Tree, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.IsDir() && d.Name() == FragmentFile {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}

	tree := &Tree{fragments: make(map[string]*sidebar.Index, len(files))}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(file string) {
			defer wg.Done()
			defer func() { <-sem }()

			page := pageOf(root, file)
			data, err := fs.ReadFile(fsys, file)
			if err != nil {
				mu.Lock()
				tree.diags = append(tree.diags, Diagnostic{Page: page, Err: err})
				mu.Unlock()
				return
			}
			idx, err := sidebar.Parse(data)
			if err != nil {
				mu.Lock()
				tree.diags = append(tree.diags, Diagnostic{Page: page, Err: err})
				mu.Unlock()
				return
			}
			mu.Lock()
			tree.fragments[page] = idx
			mu.Unlock()
		}(file)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree.pages = make([]string, 0, len(tree.fragments))
	for p := range tree.fragments {
		tree.pages = append(tree.pages, p)
	}
	sort.Strings(tree.pages)
	sort.Slice(tree.diags, func(i, j int) bool { return tree.diags[i].Page < tree.diags[j].Page })
	return tree, nil
}

// pageOf derives the page path a fragment belongs to: the fragment's
// directory relative to the scan root, "." for the root page itself.
func pageOf(root, file string) string {
	dir := path.Dir(file)
	if root == "." || root == "" {
		return dir
	}
	rel := strings.TrimPrefix(dir, root)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "."
	}
	return rel
}

// Pages returns the page paths holding a fragment, sorted.
func (t *Tree) Pages() []string {
	return t.pages
}

// Fragment returns the parsed fragment for a page, or nil if the page has
// none.
func (t *Tree) Fragment(page string) *sidebar.Index {
	return t.fragments[page]
}

// Diagnostics returns the fragments that failed to parse, sorted by page.
func (t *Tree) Diagnostics() []Diagnostic {
	return t.diags
}

// LookupSymbol finds every occurrence of a symbol name across all pages,
// ordered by page path.
func (t *Tree) LookupSymbol(name string) []SymbolRef {
	var refs []SymbolRef
	for _, page := range t.pages {
		if cat, e, ok := t.fragments[page].Lookup(name); ok {
			refs = append(refs, SymbolRef{Page: page, Category: cat, Entry: e})
		}
	}
	return refs
}

// TotalEntries returns the number of entries across every fragment.
func (t *Tree) TotalEntries() int {
	n := 0
	for _, idx := range t.fragments {
		n += idx.Len()
	}
	return n
}
