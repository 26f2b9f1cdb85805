package capture

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rzbill/pulse/internal/eventbuf"
)

func TestHandleMapsLevelsToSeverities(t *testing.T) {
	buf := eventbuf.New(eventbuf.Options{})
	logger := slog.New(NewSlogAdapter(buf))

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	recs := buf.Query(eventbuf.Filter{})
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(recs))
	}
	want := []eventbuf.Severity{
		eventbuf.SeverityDebug,
		eventbuf.SeverityInfo,
		eventbuf.SeverityWarn,
		eventbuf.SeverityError,
	}
	for i, sev := range want {
		if recs[i].Severity != sev {
			t.Fatalf("record %d: expected severity %q, got %q", i, sev, recs[i].Severity)
		}
	}
}

func TestHandleLiftsSourceAndCorrelation(t *testing.T) {
	buf := eventbuf.New(eventbuf.Options{})
	logger := slog.New(NewSlogAdapter(buf))

	logger.Info("fetch complete", SourceKey, "http", CorrelationIDKey, "req-7", "status", 200)

	recs := buf.Query(eventbuf.Filter{CorrelationID: "req-7"})
	if len(recs) != 1 {
		t.Fatalf("expected 1 correlated record, got %d", len(recs))
	}
	r := recs[0]
	if r.Source != "http" {
		t.Fatalf("expected source lifted, got %q", r.Source)
	}
	if len(r.Args) != 2 || r.Args[0] != "status" {
		t.Fatalf("expected remaining attrs in args, got %v", r.Args)
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	buf := eventbuf.New(eventbuf.Options{})
	base := slog.New(NewSlogAdapter(buf))
	logger := base.With("version", "1.2").WithGroup("request")

	logger.Info("handled", "method", "GET")

	recs := buf.Query(eventbuf.Filter{})
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	args := recs[0].Args
	if len(args) != 4 {
		t.Fatalf("expected 4 arg entries, got %v", args)
	}
	if args[0] != "version" || args[2] != "request.method" {
		t.Fatalf("expected group-prefixed keys, got %v", args)
	}
}

func TestHandleUsesRecordTime(t *testing.T) {
	buf := eventbuf.New(eventbuf.Options{})
	adapter := NewSlogAdapter(buf)
	at := time.UnixMilli(1_700_000_123_456)
	r := slog.NewRecord(at, slog.LevelInfo, "timed", 0)
	if err := adapter.Handle(context.Background(), r); err != nil {
		t.Fatalf("handle: %v", err)
	}
	recs := buf.Query(eventbuf.Filter{})
	if recs[0].TimestampMs != 1_700_000_123_456 {
		t.Fatalf("expected slog record time carried over, got %d", recs[0].TimestampMs)
	}
}

func TestInstallAndUninstall(t *testing.T) {
	buf := eventbuf.New(eventbuf.Options{})
	adapter := NewSlogAdapter(buf)

	prev := slog.Default()
	uninstall := adapter.Install()
	slog.Info("captured")
	uninstall()
	if slog.Default() != prev {
		t.Fatalf("expected previous default logger restored")
	}

	if got := buf.Len(); got != 1 {
		t.Fatalf("expected 1 captured record, got %d", got)
	}
}
