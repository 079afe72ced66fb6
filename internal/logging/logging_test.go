package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "test"})
	l.core.now = func() time.Time {
		return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	}
	return l
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", tt.input, got, tt.expected)
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.Info("moved %d cursors", 3)

	want := "2025-01-02T03:04:05.000 [INFO] test: moved 3 cursors\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("messages below the level should be dropped")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message should be written")
	}
	if l.Enabled(LevelInfo) {
		t.Error("info should not be enabled")
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug).
		WithComponent("dispatcher").
		WithFields(map[string]any{"view": "abc", "cursors": 2})

	l.Debug("execute")

	if !strings.HasSuffix(buf.String(), "{component=dispatcher, cursors=2, view=abc}\n") {
		t.Errorf("unexpected fields in %q", buf.String())
	}
}

func TestDerivedLoggerSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelError)
	child := parent.WithField("k", "v")

	parent.SetLevel(LevelDebug)
	child.Debug("from child")

	if !strings.Contains(buf.String(), "from child") {
		t.Error("child should follow the parent's level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("discard logger should not be enabled")
	}
}
