package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"paperwork/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"Trace": logrus.TraceLevel,
		"Info":  logrus.InfoLevel,
		"Warn":  logrus.WarnLevel,
		"Error": logrus.ErrorLevel,
		"Fatal": logrus.FatalLevel,
		"":      logrus.DebugLevel,
		"loud":  logrus.DebugLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	var console bytes.Buffer
	l := &Logger{console: &console}

	closer, err := l.Init(config.Log{File: path, MaxSize: 1, Level: "Info"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	l.Round("round-1", RoundStartedMsg)
	l.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %q, want only the info entry", lines)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["msg"] != RoundStartedMsg || entry["round"] != "round-1" || entry["level"] != "info" {
		t.Fatalf("entry = %v", entry)
	}
	if !strings.Contains(console.String(), "info: "+RoundStartedMsg) || strings.Contains(console.String(), "hidden") {
		t.Fatalf("console = %q", console.String())
	}
}

func TestDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	var console bytes.Buffer
	l := &Logger{console: &console}

	closer, err := l.Init(config.Log{File: path, MaxSize: 1, Level: "Debug"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	l.Debug(fmt.Sprintf(SeedMsg, 42))
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["msg"] != "random seed 42" || entry["level"] != "debug" {
		t.Fatalf("entry = %v", entry)
	}
	if !strings.Contains(console.String(), "debug: random seed 42") {
		t.Fatalf("console = %q", console.String())
	}
}

func TestInitRequiresFile(t *testing.T) {
	if _, err := (&Logger{}).Init(config.Log{}); err == nil {
		t.Fatalf("expected an error without a log file")
	}
}

func TestMessageFormats(t *testing.T) {
	tests := []struct{ got, want string }{
		{fmt.Sprintf(RewindFailedMsg, os.ErrClosed), "rewind audio player: file already closed"},
		{fmt.Sprintf(SeedMsg, int64(7)), "random seed 7"},
		{fmt.Sprintf(AssetFallbackMsg, "soundtrack", "drum beat", os.ErrNotExist), "soundtrack unavailable, using drum beat: file does not exist"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
