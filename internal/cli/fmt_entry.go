// internal/cli/fmt_entry.go
package sidenav

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mwiater/sidenav/internal/logging"
	"github.com/mwiater/sidenav/internal/sidebar"
	"github.com/mwiater/sidenav/internal/util"
)

// runFmt canonicalizes one fragment file. It reports whether the canonical
// form differs from the file's current content. In write mode the file is
// rewritten only when it actually changed; in check mode nothing is written
// and nothing is printed; otherwise the canonical form goes to out.
func runFmt(out io.Writer, path string, write, check bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read fragment %q: %w", path, err)
	}
	idx, err := sidebar.Parse(data)
	if err != nil {
		return false, fmt.Errorf("parse fragment %q: %w", path, err)
	}

	canonical := idx.EncodeWrapped()
	changed := !bytes.Equal(bytes.TrimSpace(data), canonical)

	switch {
	case check:
		// Report only; the command turns changed into an exit status.
	case write:
		if changed {
			if err := util.WriteFile(path, canonical); err != nil {
				return changed, fmt.Errorf("write fragment %q: %w", path, err)
			}
			fmt.Fprintf(out, "rewrote %s\n", path)
		}
	default:
		fmt.Fprintf(out, "%s\n", canonical)
	}

	logging.LogFragment("fmt", path, len(idx.Categories()), idx.Len())
	return changed, nil
}
