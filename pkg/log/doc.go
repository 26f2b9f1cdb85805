// Package log provides Pulse's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that routes records through a
// formatter/outputs pipeline. This keeps output consistent across the
// codebase while staying interoperable with the slog ecosystem.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("eventbuf"))
//	l.Info("buffer ready", log.Int("max_entries", 1000))
//
// # Side channel use
//
// The event buffer reports recovered subscriber panics through this package
// rather than through any intercepted sink, so a faulty subscriber can never
// feed its own failure report back into the buffer.
package log
