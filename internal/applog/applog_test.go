package applog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONRecordsCarrySessionAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Options{Level: "debug", Format: "json"}, &buf, nil)
	if _, err := uuid.Parse(l.Session); err != nil {
		t.Fatalf("session %q is not a uuid: %v", l.Session, err)
	}

	l.WithComponent("tui").Debug("moved", slog.Int("moves", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	checks := map[string]any{
		"app":       "valentine",
		"session":   l.Session,
		"component": "tui",
		"msg":       "moved",
		"moves":     float64(3),
	}
	for k, want := range checks {
		if rec[k] != want {
			t.Errorf("%s = %v, want %v", k, rec[k], want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Options{Level: "warn", Format: "text"}, &buf, nil)
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text record, got %q", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valentine.log")
	l := New(Options{Level: "info", Format: "json", File: path})
	l.Info("accepted", slog.Int("moves", 12))
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatal("log file is empty")
	}
	if !strings.Contains(sc.Text(), `"msg":"accepted"`) {
		t.Errorf("unexpected record %q", sc.Text())
	}
}

func TestNewWithoutFileDiscards(t *testing.T) {
	l := New(Options{})
	l.Info("nowhere")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
