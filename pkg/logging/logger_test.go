package logging

import (
	"os"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temporary log directory and resets
// global state, returning a cleanup function.
func setupTestDir(t *testing.T) (cleanup func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "browsermcp-logging-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	origLogDir := logDir

	// Mark directory init as done so NewLogger uses the temp dir directly
	initOnce = sync.Once{}
	initOnce.Do(func() {})
	initErr = nil
	logDir = tempDir
	runID = ""
	runIDOnce = sync.Once{}

	return func() {
		logDir = origLogDir
		initErr = nil
		initOnce = sync.Once{}
		runID = ""
		runIDOnce = sync.Once{}

		os.RemoveAll(tempDir)
	}
}

func TestNewLogger(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.runID == "" {
		t.Error("Expected non-empty run ID")
	}

	if logger.logPath == "" {
		t.Error("Expected non-empty log path")
	}

	if _, err := os.Stat(logger.logPath); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.logPath)
	}
}

func TestLoggerLevels(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("levels")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)
	logger.Close()

	data, err := os.ReadFile(logger.logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	for _, want := range []string{
		"[DEBUG] debug 1",
		"[INFO] info 2",
		"[WARN] warn 3",
		"[ERROR] error 4",
		"[levels]",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Log output missing %q:\n%s", want, content)
		}
	}
}

func TestLoggersShareRunID(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	first, err := NewLogger("first")
	if err != nil {
		t.Fatalf("Failed to create first logger: %v", err)
	}
	defer first.Close()

	second, err := NewLogger("second")
	if err != nil {
		t.Fatalf("Failed to create second logger: %v", err)
	}
	defer second.Close()

	if first.RunID() != second.RunID() {
		t.Errorf("Expected shared run ID, got %q and %q", first.RunID(), second.RunID())
	}

	if first.LogPath() != second.LogPath() {
		t.Errorf("Expected shared log file, got %q and %q", first.LogPath(), second.LogPath())
	}
}

func TestLoggerCloseIsIdempotent(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("close")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
