// internal/cli/show_config_entry.go
package sidenav

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// runShowConfig reports the effective configuration: the merged snapshot
// when PersistentPreRunE has materialized one, otherwise the raw viper view.
func runShowConfig(out io.Writer) {
	file := viper.ConfigFileUsed()
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	cfg := GetConfig()
	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		fmt.Fprintf(out, "  Docroot:   %s\n", viper.GetString("docroot"))
		fmt.Fprintf(out, "  Strict:    %v\n", viper.GetBool("strict"))
		fmt.Fprintf(out, "  Debug:     %v\n", viper.GetBool("debug"))
		fmt.Fprintf(out, "  JSON Mode: %v\n", viper.GetBool("jsonMode"))
		fmt.Fprintf(out, "  Workers:   %d\n", viper.GetInt("workers"))
		fmt.Fprintf(out, "  Log File:  %s\n", viper.GetString("logFile"))
		return
	}

	fmt.Fprintf(out, "  Docroot:   %s\n", cfg.Docroot)
	fmt.Fprintf(out, "  Strict:    %v\n", cfg.Strict)
	fmt.Fprintf(out, "  Debug:     %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode: %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Workers:   %d\n", cfg.ScanWorkers())
	fmt.Fprintf(out, "  Log File:  %s\n", cfg.LogFilePath())
}
