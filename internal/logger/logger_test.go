package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tempo.log")

	log, cleanup, err := New(Config{Level: "info", Encoding: "json", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("model retrained")
	log.Debug("hidden at info level")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), string(data))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "model retrained" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp key")
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.log")

	log, cleanup, err := New(Config{Level: "loud", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("debug line")
	log.Info("info line")
	cleanup()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "debug line") {
		t.Error("expected debug to be filtered at fallback info level")
	}
	if !strings.Contains(string(data), "info line") {
		t.Error("expected info line to be written")
	}
}

func TestNew_Stderr(t *testing.T) {
	log, cleanup, err := New(Config{Level: "info", Encoding: "console", File: Stderr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if log == nil {
		t.Fatal("expected logger")
	}
}
