// internal/appconfig/appconfig_test.go
package appconfig

import (
	"errors"
	"os"
	"testing"
)

// TestLoad tests the Load function to ensure it correctly handles various
// scenarios, including valid and invalid configurations. It verifies that a
// valid configuration file is loaded without error and that defaults are
// applied, while files with invalid JSON or nonexistent paths result in an
// appropriate error. This test uses temporary files to simulate different
// configuration scenarios and asserts that the function behaves as expected
// in each case.
func TestLoad(t *testing.T) {
	validConfig := `{
        "docroot": "doc/geo",
        "strict": true,
        "jsonMode": false,
        "logFile": "logs/sidenav.log"
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Docroot != "doc/geo" {
		t.Fatalf("expected docroot %q, got %q", "doc/geo", cfg.Docroot)
	}
	if !cfg.Strict {
		t.Fatal("expected strict to be true")
	}
	if cfg.ScanWorkers() != 8 {
		t.Fatalf("expected default of 8 scan workers, got %d", cfg.ScanWorkers())
	}
	if cfg.LogFilePath() != "logs/sidenav.log" {
		t.Fatalf("unexpected log file path: %q", cfg.LogFilePath())
	}

	invalidJSON := `{ "docroot": `
	tmpfile2, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile2.Name())
	if _, err := tmpfile2.Write([]byte(invalidJSON)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile2.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2.Name()); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	_, err = Load("definitely/not/here/config.json")
	if err == nil {
		t.Fatal("Load() with a nonexistent path should have failed")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing-file error should wrap os.ErrNotExist, got %v", err)
	}
}

// TestLogFilePathDefault tests that the log file path falls back to the
// application default when the config leaves it empty or whitespace.
func TestLogFilePathDefault(t *testing.T) {
	if got := (Config{}).LogFilePath(); got != "sidenav.log" {
		t.Errorf("expected default log path, got %q", got)
	}
	if got := (Config{LogFile: "   "}).LogFilePath(); got != "sidenav.log" {
		t.Errorf("expected default log path for blank value, got %q", got)
	}
}

// TestScanWorkers tests the worker count accessor's clamping behavior.
func TestScanWorkers(t *testing.T) {
	if got := (Config{Workers: -3}).ScanWorkers(); got != 8 {
		t.Errorf("negative workers: expected 8, got %d", got)
	}
	if got := (Config{Workers: 2}).ScanWorkers(); got != 2 {
		t.Errorf("explicit workers: expected 2, got %d", got)
	}
}
