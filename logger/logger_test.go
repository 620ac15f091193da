package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInitWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	l.Log("first message")
	l.Logf("slide %d saved", 3)
	l.Infow("deck built", "slides", 13)
	l.Close()

	matches, err := filepath.Glob(filepath.Join(dir, "lessondeck_*_1.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("log files = %v, %v", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"logging started", "first message", "slide 3 saved", "deck built", "slides", "13", "logging stopped"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerRunCount(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		l := NewLogger()
		if err := l.Init(dir); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		l.Close()
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "lessondeck_*_2.log")); len(matches) != 1 {
		t.Errorf("second run should create a _2 log, got %v", matches)
	}
}

func TestLoggerWithoutSinkIsSilent(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Close()
}

func TestLoggerAttach(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.Attach(&buf)
	l.Errorw("save failed", "path", "x.pptx")
	if out := buf.String(); !strings.Contains(out, "save failed") || !strings.Contains(out, "x.pptx") {
		t.Errorf("output = %q", out)
	}
}

func TestLoggerAttachAndFile(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	l := NewLogger()
	l.Attach(&buf)
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	l.Log("slide 1 [title] cover")
	l.Close()

	if !strings.Contains(buf.String(), "slide 1 [title] cover") {
		t.Errorf("attached writer lost output after Init: %q", buf.String())
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "lessondeck_*.log"))
	if len(matches) != 1 {
		t.Fatalf("log files = %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "slide 1 [title] cover") {
		t.Errorf("log file missing message:\n%s", data)
	}
}
