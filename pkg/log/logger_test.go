package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(NewWriterOutput(&out)),
	)
	l.Info("dropped")
	l.Warn("kept")
	got := out.String()
	if strings.Contains(got, "dropped") {
		t.Fatalf("info entry should be gated at warn level: %q", got)
	}
	if !strings.Contains(got, "kept") {
		t.Fatalf("warn entry missing: %q", got)
	}
}

func TestJSONFormatterFields(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(WithOutput(NewWriterOutput(&out)))
	l.Info("buffer ready", Int("max_entries", 1000), Str("threshold", "debug"))

	var obj map[string]any
	if err := json.Unmarshal(out.Bytes(), &obj); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if obj["msg"] != "buffer ready" || obj["level"] != "INFO" {
		t.Fatalf("unexpected entry: %v", obj)
	}
	if obj["max_entries"] != float64(1000) || obj["threshold"] != "debug" {
		t.Fatalf("fields missing: %v", obj)
	}
}

func TestWithAttachesFields(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(WithFormatter(&TextFormatter{}), WithOutput(NewWriterOutput(&out)))
	child := l.WithComponent("eventbuf")
	child.Info("ready")
	if !strings.Contains(out.String(), "component=eventbuf") {
		t.Fatalf("expected component field attached: %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
		"":        InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
