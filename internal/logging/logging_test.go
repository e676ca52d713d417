package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// captureLog redirects the log package output for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(orig)
		log.SetFlags(flags)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	buf := captureLog(t)

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug line leaked at info level: %q", buf.String())
	}

	SetLevel(LevelDebug)
	Debug("shown %d", 2)
	if !strings.Contains(buf.String(), "[DEBUG] shown 2") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestErrorAlwaysLogs(t *testing.T) {
	buf := captureLog(t)

	SetLevel(LevelError)
	Warn("quiet")
	Error("loud: %s", "boom")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("warn line leaked at error level: %q", out)
	}
	if !strings.Contains(out, "[ERROR] loud: boom") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestSetLevel_UnknownFallsBackToInfo(t *testing.T) {
	buf := captureLog(t)

	SetLevel("chatty")
	Debug("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown") {
		t.Errorf("warn line missing: %q", out)
	}
}
