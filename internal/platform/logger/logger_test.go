package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "pet-care-registry", Output: &buf})

	log.With(map[string]any{"request_id": "r-1"}).Info("user created", map[string]any{"user_id": "u-1", "": "dropped"})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "user created" || entry["app"] != "pet-care-registry" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["request_id"] != "r-1" || entry["user_id"] != "u-1" {
		t.Fatalf("expected fields to be merged, got %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be skipped")
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Output: &buf})

	log.Info("hidden", nil)
	log.Debug("hidden", nil)
	log.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParse(t *testing.T) {
	if ParseLevel(" DEBUG ") != Debug || ParseLevel("warning") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseFormat("json") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("ParseFormat mismatch")
	}
}
