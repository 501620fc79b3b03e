package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// resetLogger clears the singleton so each test starts fresh.
func resetLogger() {
	defaultLogger = nil
	once = *new(sync.Once)
}

func TestLevelGating(t *testing.T) {
	resetLogger()
	Init("warn")

	var buf bytes.Buffer
	SetOutput(&buf)
	SetColorEnable(false)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be gated at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be gated at warn level")
	}
	if !strings.Contains(out, "[WARN] warn message") {
		t.Error("warn message not found")
	}
	if !strings.Contains(out, "[ERROR] error message") {
		t.Error("error message not found")
	}
}

func TestSetLevel(t *testing.T) {
	resetLogger()
	Init("error")

	var buf bytes.Buffer
	SetOutput(&buf)
	SetColorEnable(false)

	Info("before")
	SetLevel("debug")
	Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("info should be gated before SetLevel")
	}
	if !strings.Contains(out, "after") {
		t.Error("info should pass after SetLevel")
	}
}

func TestColorToggle(t *testing.T) {
	resetLogger()
	Init("info")

	var buf bytes.Buffer
	SetOutput(&buf)

	SetColorEnable(true)
	Info("colored")
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI codes when color is enabled")
	}

	buf.Reset()
	SetColorEnable(false)
	Info("plain")
	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no ANSI codes when color is disabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"Warning": WARN,
		"error":   ERROR,
		"bogus":   INFO,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
