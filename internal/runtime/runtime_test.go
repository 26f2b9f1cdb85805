package runtime

import (
	"context"
	"testing"

	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/eventbuf"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

func testOptions() Options {
	cfg := cfgpkg.Default()
	cfg.Buffer.MaxEntries = 10
	return Options{
		Config: cfg,
		Logger: logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{})),
	}
}

func TestOpenAppliesBufferConfig(t *testing.T) {
	opts := testOptions()
	opts.Config.Buffer.MaxSizeBytes = 4096
	opts.Config.Buffer.MinSeverity = "warn"
	rt := Open(opts)

	if got := rt.Buffer().MaxEntries(); got != 10 {
		t.Fatalf("expected maxEntries 10, got %d", got)
	}
	if got := rt.Buffer().MaxSizeBytes(); got != 4096 {
		t.Fatalf("expected maxSizeBytes 4096, got %d", got)
	}
	rt.Diagnostics().Ingest(eventbuf.Record{Severity: eventbuf.SeverityInfo, Message: "dropped"})
	rt.Diagnostics().Ingest(eventbuf.Record{Severity: eventbuf.SeverityError, Message: "kept"})
	if got := rt.Buffer().Len(); got != 1 {
		t.Fatalf("expected threshold applied from config, got %d records", got)
	}
}

func TestIndependentInstances(t *testing.T) {
	a := Open(testOptions())
	b := Open(testOptions())
	a.Diagnostics().Ingest(eventbuf.Record{Severity: eventbuf.SeverityInfo, Message: "only in a"})
	if got := b.Buffer().Len(); got != 0 {
		t.Fatalf("instances must be isolated, got %d records in b", got)
	}
}

func TestCheckHealth(t *testing.T) {
	rt := Open(testOptions())
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("expected healthy runtime, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rt.CheckHealth(ctx); err == nil {
		t.Fatalf("expected error for cancelled context")
	}

	var zero Runtime
	if err := zero.CheckHealth(context.Background()); err == nil {
		t.Fatalf("expected error for unwired runtime")
	}
}

func TestReset(t *testing.T) {
	rt := Open(testOptions())
	rt.Diagnostics().Ingest(eventbuf.Record{Severity: eventbuf.SeverityInfo, Message: "m"})
	rt.Reset()
	if got := rt.Buffer().Len(); got != 0 {
		t.Fatalf("expected empty buffer after reset, got %d", got)
	}
	if got := rt.Buffer().MaxEntries(); got != 10 {
		t.Fatalf("expected budgets to survive reset, got %d", got)
	}
}
