package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		level    string
		message  string
		rendered string
	}{
		{
			name:     "plain text",
			input:    "panic: something odd",
			rendered: "panic: something odd",
		},
		{
			name:     "broken json",
			input:    `{"level":"error"`,
			rendered: `{"level":"error"`,
		},
		{
			name:     "error with fields",
			input:    `{"level":"error","logger":"gymtrack","msg":"remote call failed","op":"delete workout","workout_id":"11","error":"status 500"}`,
			level:    "error",
			message:  "remote call failed",
			rendered: "ERROR remote call failed error=status 500 op=delete workout workout_id=11",
		},
		{
			name:     "numbers are printed plainly",
			input:    `{"level":"debug","msg":"request","status":204}`,
			level:    "debug",
			message:  "request",
			rendered: "DEBUG request status=204",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Parse(tt.input)
			if e.Level != tt.level {
				t.Errorf("Level = %q, want %q", e.Level, tt.level)
			}
			if e.Message != tt.message {
				t.Errorf("Message = %q, want %q", e.Message, tt.message)
			}
			if got := e.String(); got != tt.rendered {
				t.Errorf("String() = %q, want %q", got, tt.rendered)
			}
		})
	}
}

func TestParse_Timestamp(t *testing.T) {
	e := Parse(`{"ts":"2024-01-01T10:11:12.000Z","level":"info","msg":"started"}`)
	if e.Time.IsZero() {
		t.Fatalf("Time not parsed")
	}
	if e.Time.UTC().Hour() != 10 || e.Time.UTC().Minute() != 11 {
		t.Fatalf("Time = %v, want 10:11 UTC", e.Time)
	}
}

func TestReadEntries_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gymtrack.log")
	data := `{"level":"info","msg":"one"}` + "\n\n" + `{"level":"warn","msg":"two"}` + "\n"
	if err := os.WriteFile(logPath, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ReadEntries(logPath, 0)
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadEntries() returned %d entries, want 2", len(entries))
	}
	if entries[1].Message != "two" {
		t.Fatalf("entries[1].Message = %q, want %q", entries[1].Message, "two")
	}
}
