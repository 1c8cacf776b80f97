// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, level parsing, and output redirection

package log

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "empty is info", input: "", want: LevelInfo},
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "upper case", input: "WARN", want: LevelWarn},
		{name: "padded", input: " error ", want: LevelError},
		{name: "unknown", input: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// The remaining tests share the global level and writer, so they run
// sequentially.

func captureOutput(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	savedLevel := GetLevel()
	prev := SetOutput(&buf)
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := captureOutput(t, LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := captureOutput(t, LevelDebug)

	Debug("key %s", "Up")
	if got := buf.String(); got != "[DEBUG] key Up\n" {
		t.Errorf("output = %q, want %q", got, "[DEBUG] key Up\n")
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := captureOutput(t, LevelError)

	Warn("hidden")
	Error("probe failed: %v", "boom")
	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("warn leaked at error level: %q", got)
	}
	if !strings.Contains(got, "[ERROR] probe failed: boom") {
		t.Errorf("output = %q, want error line", got)
	}
}

func TestSetOutputNilDiscards(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	prev := SetOutput(nil)
	defer SetOutput(prev)

	if cur := SetOutput(nil); cur != io.Discard {
		t.Errorf("SetOutput(nil) installed %T, want io.Discard", cur)
	}
	Info("goes nowhere")
}
