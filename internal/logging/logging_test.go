package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gymtrack.log")

	log, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Debugw("remote call succeeded", "op", "list members")
	log.Errorw("remote call failed", "op", "delete workout", "workout_id", "11")
	if err := log.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Fatalf("level = %v, want error", entry["level"])
	}
	if entry["msg"] != "remote call failed" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "remote call failed")
	}
	if entry["workout_id"] != "11" {
		t.Fatalf("workout_id = %v, want 11", entry["workout_id"])
	}
	if entry["logger"] != "gymtrack" {
		t.Fatalf("logger = %v, want gymtrack", entry["logger"])
	}
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gymtrack.log")

	log, err := New(path, "warn")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Infow("ignored")
	log.Warnw("kept")
	_ = log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "ignored") {
		t.Fatalf("info entry written at warn level:\n%s", data)
	}
	if !strings.Contains(string(data), "kept") {
		t.Fatalf("warn entry missing:\n%s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{" DEBUG ", zapcore.DebugLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) returned nil error")
	}
}

func TestNop_CloseIsSafe(t *testing.T) {
	if err := Nop().Close(); err != nil {
		t.Fatalf("Nop().Close() = %v, want nil", err)
	}
	var nilLogger *Logger
	if err := nilLogger.Close(); err != nil {
		t.Fatalf("nil Close() = %v, want nil", err)
	}
}
