package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestSetup_JSONAddsStackOnError(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Error("failed", "component", "test")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid json record: %v", err)
	}
	if rec["component"] != "test" {
		t.Fatalf("missing component attr: %v", rec)
	}
	if _, ok := rec["stacktrace"]; !ok {
		t.Fatalf("expected stacktrace on error record")
	}
}
