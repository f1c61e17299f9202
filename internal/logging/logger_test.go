package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buffer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("dock icon located", "x", 12)

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("decode log line %q: %v", buffer.String(), err)
	}
	if record["msg"] != "dock icon located" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if ts, ok := record["time"].(string); !ok || !strings.HasSuffix(ts, "Z") {
		t.Fatalf("time = %v, want RFC3339 UTC", record["time"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "text", Output: &buffer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buffer.String(), "hidden") {
		t.Fatal("info record should be filtered at warn level")
	}
	if !strings.Contains(buffer.String(), "shown") {
		t.Fatal("warn record should be written")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		" debug ": slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range tests {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
