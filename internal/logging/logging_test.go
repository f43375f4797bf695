package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := New(Options{Level: "debug", Path: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("recorded key", "keysym", "a")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "keysym=a") {
		t.Fatalf("debug log = %q, want it to contain keysym=a", string(data))
	}
}

func TestNew_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.json")

	logger, closeLog, err := New(Options{Format: "json", Path: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("started")
	_ = closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "{") || !strings.Contains(string(data), `"msg":"started"`) {
		t.Fatalf("json log = %q", string(data))
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := New(Options{Level: "warn", Path: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = closeLog()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("debug log = %q, want only the warning", string(data))
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("goes nowhere")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("New accepted unknown level")
	}
	if _, _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("New accepted unknown format")
	}
}
