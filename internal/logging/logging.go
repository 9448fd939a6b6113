// internal/logging/logging.go
// Package logging provides the shared application logger: stdout plus an
// optional append-only log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stdout and, when logPath is non-empty,
// to an append-only file at that path, creating parent directories as
// needed. Calling Init again closes the previous file first.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches and closes the log file, restoring stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted application event to the logger.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogFragment records one fragment-level operation (lint, fmt, diff, ...)
// with the page it applied to and the fragment's size.
func LogFragment(action, page string, categories, entries int) {
	log.Println(buildFragmentMessage(action, page, categories, entries))
}

// buildFragmentMessage renders the fragment log line, normalizing the action
// verb and defaulting a blank page path.
func buildFragmentMessage(action, page string, categories, entries int) string {
	act := strings.TrimSpace(action)
	if act != "" {
		act = strings.ToUpper(act)
	}
	pageValue := strings.TrimSpace(page)
	if pageValue == "" {
		pageValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", act)}
	parts = append(parts, fmt.Sprintf("page=%s", pageValue))
	parts = append(parts, fmt.Sprintf("categories=%d", categories))
	parts = append(parts, fmt.Sprintf("entries=%d", entries))
	return strings.Join(parts, " ")
}
