// cmd/sidenav/main.go
package main

import (
	cmd "github.com/mwiater/sidenav/internal/cli"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Indirections for testing the wiring without running the command tree.
var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the sidenav CLI application by delegating to the cobra root
// command defined in the sidenav package. It does not take any arguments
// and does not return a value.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
