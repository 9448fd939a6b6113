// internal/cli/helpers.go
package sidenav

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/sidenav/internal/appconfig"
	"github.com/mwiater/sidenav/internal/doctree"
	"github.com/mwiater/sidenav/internal/sidebar"
)

// errNoTarget is returned when neither an argument nor a configured docroot
// names something to operate on.
var errNoTarget = errors.New("no fragment or docroot given (pass a path or set docroot in the config)")

// resolveTarget picks the path a command operates on: the first positional
// argument if present, otherwise the configured docroot.
func resolveTarget(args []string, cfg *appconfig.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg != nil && cfg.Docroot != "" {
		return cfg.Docroot, nil
	}
	return "", errNoTarget
}

// isDir reports whether path names an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// loadFragmentFile reads and parses a single fragment file.
func loadFragmentFile(path string) (*sidebar.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fragment %q: %w", path, err)
	}
	idx, err := sidebar.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fragment %q: %w", path, err)
	}
	return idx, nil
}

// scanDocroot walks a documentation root for fragments using the configured
// worker count.
func scanDocroot(ctx context.Context, root string, cfg *appconfig.Config) (*doctree.Tree, error) {
	workers := 0
	if cfg != nil {
		workers = cfg.ScanWorkers()
	}
	parent := filepath.Dir(root)
	base := filepath.Base(root)
	return doctree.Scan(ctx, os.DirFS(parent), base, doctree.Options{Workers: workers})
}

// unknownCategories returns the categories in idx the generator is not known
// to emit, in source order.
func unknownCategories(idx *sidebar.Index) []sidebar.Category {
	var unknown []sidebar.Category
	for _, c := range idx.Categories() {
		if !c.Known() {
			unknown = append(unknown, c)
		}
	}
	return unknown
}
