package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watchlog/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlog.log")
	logger, err := logging.New(logging.Options{Format: "json", FilePath: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", "component", "test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Fatalf("expected structured attribute in log output, got: %s", data)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic or print")
}
