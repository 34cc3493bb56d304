package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"disabled", LevelNone, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2:\n%s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["message"] != "warn 3" {
		t.Errorf("message = %v; want %q", entry["message"], "warn 3")
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v; want warn", entry["level"])
	}
	if entry["component"] != "fhirconv" {
		t.Errorf("component = %v; want fhirconv", entry["component"])
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, LevelError)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	l.SetLevel(LevelDebug)
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v; want DEBUG", l.Level())
	}
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing: %s", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Error("silenced")
	if buf.Len() != 0 {
		t.Errorf("LevelNone should silence everything, got %s", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, LevelInfo).With("job", "j-1")

	l.Info("done")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["job"] != "j-1" {
		t.Errorf("job = %v; want j-1", entry["job"])
	}
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Info("converted %s", "Patient/1")
	if !strings.Contains(buf.String(), "converted Patient/1") {
		t.Errorf("console output = %q", buf.String())
	}
}

func TestDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewJSON(&buf, LevelInfo))
	Info("hello")
	Disable()
	Error("gone")

	if !strings.Contains(buf.String(), "hello") || strings.Contains(buf.String(), "gone") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
