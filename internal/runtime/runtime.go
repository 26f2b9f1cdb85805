package runtime

import (
	"context"
	"errors"

	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/eventbuf"
	diagsvc "github.com/rzbill/pulse/internal/services/diagnostics"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	// Logger overrides the config-derived diagnostic logger. It must not be a
	// logger whose output is captured back into the buffer.
	Logger logpkg.Logger
}

// Runtime wires config, the diagnostic logger, the event buffer, and the
// diagnostics facade for a single in-process instance. It replaces any
// ambient singleton: consumers receive a *Runtime (or its parts) explicitly,
// and tests construct independent instances.
type Runtime struct {
	config cfgpkg.Config
	logger logpkg.Logger
	buf    *eventbuf.Buffer
	diag   *diagsvc.Service
}

// Open builds a Runtime from the given options.
func Open(opts Options) *Runtime {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = buildLogger(cfg.Log)
	}
	buf := eventbuf.New(eventbuf.Options{
		MaxEntries:   cfg.Buffer.MaxEntries,
		MaxSizeBytes: cfg.Buffer.MaxSizeBytes,
		MinSeverity:  eventbuf.Severity(cfg.Buffer.MinSeverity),
		Logger:       logger.WithComponent("eventbuf"),
	})
	return &Runtime{
		config: cfg,
		logger: logger,
		buf:    buf,
		diag:   diagsvc.New(buf, logger.WithComponent("diagnostics")),
	}
}

func buildLogger(cfg cfgpkg.LogConfig) logpkg.Logger {
	var formatter logpkg.Formatter = &logpkg.JSONFormatter{}
	if cfg.Format == "text" {
		formatter = &logpkg.TextFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(logpkg.ParseLevel(cfg.Level)),
		logpkg.WithFormatter(formatter),
	)
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.buf == nil || r.diag == nil {
		return errors.New("runtime not open")
	}
	return nil
}

// Buffer returns the event buffer.
func (r *Runtime) Buffer() *eventbuf.Buffer { return r.buf }

// Diagnostics returns the diagnostics facade.
func (r *Runtime) Diagnostics() *diagsvc.Service { return r.diag }

// Logger returns the diagnostic logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Reset empties the buffer and restarts id generation. Budgets and the
// severity threshold keep their current values.
func (r *Runtime) Reset() { r.buf.Clear() }
